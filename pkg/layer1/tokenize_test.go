package layer1

import (
	"testing"

	"github.com/go-latn/latn/pkg/vecspace"
	"github.com/go-latn/latn/pkg/vocabulary"
)

func TestTokenizeEmptyInput(t *testing.T) {
	vocab := vocabulary.DefaultVocabulary()
	hyps := Tokenize(vocab, "")
	if len(hyps) != 0 {
		t.Fatalf("expected empty input to yield no hypotheses, got %d", len(hyps))
	}
}

func TestTokenizeNonEmptyYieldsAtLeastOne(t *testing.T) {
	vocab := vocabulary.DefaultVocabulary()
	hyps := Tokenize(vocab, "move the red cube")
	if len(hyps) == 0 {
		t.Fatal("expected at least one hypothesis for non-empty input")
	}
}

func TestTokenizeRankingMonotonic(t *testing.T) {
	vocab := vocabulary.DefaultVocabulary()
	hyps := Tokenize(vocab, "move the red cube")
	for i := 1; i < len(hyps); i++ {
		if hyps[i].Confidence > hyps[i-1].Confidence {
			t.Fatalf("hypotheses not sorted descending at index %d: %v > %v", i, hyps[i].Confidence, hyps[i-1].Confidence)
		}
	}
}

func TestTokenizeUnknownWordNeverMerges(t *testing.T) {
	vocab := vocabulary.New()
	vocab.Define("cube", vecspace.NewWithFeatures(vecspace.Noun))
	hyps := Tokenize(vocab, "frobnicate cube")
	if len(hyps) == 0 {
		t.Fatal("expected at least one hypothesis")
	}
	best := hyps[0]
	if len(best.Tokens) != 2 {
		t.Fatalf("expected unknown word to stay a separate token, got %d tokens", len(best.Tokens))
	}
	if !best.Tokens[0].Vec.Isa(vecspace.Unknown) {
		t.Fatalf("expected first token unknown, got %+v", best.Tokens[0].Vec)
	}
	if best.Tokens[1].Vec.Word != "cube" {
		t.Fatalf("expected second token to be cube, got %q", best.Tokens[1].Vec.Word)
	}
}

func TestTokenizeVectorLiteral(t *testing.T) {
	vocab := vocabulary.DefaultVocabulary()
	hyps := Tokenize(vocab, "[3, 4, 5]")
	if len(hyps) != 1 {
		t.Fatalf("expected exactly one hypothesis for a literal, got %d", len(hyps))
	}
	tok := hyps[0].Tokens[0]
	if !tok.Vec.Isa(vecspace.VectorLiteral) {
		t.Fatal("expected vector literal dim set")
	}
	if tok.Vec.Get(vecspace.LocX) != 3 || tok.Vec.Get(vecspace.LocY) != 4 || tok.Vec.Get(vecspace.LocZ) != 5 {
		t.Fatalf("expected locX/Y/Z = 3,4,5, got %v/%v/%v",
			tok.Vec.Get(vecspace.LocX), tok.Vec.Get(vecspace.LocY), tok.Vec.Get(vecspace.LocZ))
	}
}

func TestTokenizeQuotedPreservesVerbatimContent(t *testing.T) {
	vocab := vocabulary.DefaultVocabulary()
	hyps := Tokenize(vocab, "'sky blue'")
	tok := hyps[0].Tokens[0]
	if !tok.Vec.Isa(vecspace.Quoted) {
		t.Fatal("expected quoted dim set")
	}
	if tok.Vec.Word != "sky blue" {
		t.Fatalf("expected verbatim inner text, got %q", tok.Vec.Word)
	}
}

func TestTokenizeCompoundPreferredOverSplit(t *testing.T) {
	vocab := vocabulary.New()
	vocab.Define("fire", vecspace.NewWithFeatures(vecspace.Noun))
	vocab.Define("truck", vecspace.NewWithFeatures(vecspace.Noun))
	compound := vecspace.NewWithFeatures(vecspace.Noun)
	vocab.Define("fire truck", compound)

	hyps := Tokenize(vocab, "fire truck")
	if len(hyps) < 2 {
		t.Fatalf("expected ambiguity between compound and split, got %d hypotheses", len(hyps))
	}
	best := hyps[0]
	if len(best.Tokens) != 1 {
		t.Fatalf("expected the compound reading to rank first, got %d tokens in top hypothesis", len(best.Tokens))
	}
}

// A function word that also happens to be a vocabulary entry (a
// determiner) must not fork the hypothesis tree against a longer
// compound starting at the same position: "a frame" should tokenize to
// exactly the compound reading, not branch on "a" standing alone.
func TestTokenizeFunctionWordNeverForksAgainstCompound(t *testing.T) {
	vocab := vocabulary.New()
	vocab.Define("a", vecspace.NewWithFeatures(vecspace.Det))
	vocab.Define("frame", vecspace.NewWithFeatures(vecspace.Noun))
	vocab.Define("a frame", vecspace.NewWithFeatures(vecspace.Noun))

	hyps := Tokenize(vocab, "a frame")
	if len(hyps) != 1 {
		t.Fatalf("expected a single segmentation, got %d: %+v", len(hyps), hyps)
	}
	if len(hyps[0].Tokens) != 1 {
		t.Fatalf("expected the compound reading as the only token, got %d tokens", len(hyps[0].Tokens))
	}
	if hyps[0].Tokens[0].Vec.Word != "a frame" {
		t.Fatalf("expected word %q, got %q", "a frame", hyps[0].Tokens[0].Vec.Word)
	}
}

func TestTokenizeNoSpuriousAmbiguity(t *testing.T) {
	vocab := vocabulary.New()
	vocab.Define("red", vecspace.NewWithFeatures(vecspace.Adj))
	vocab.Define("cube", vecspace.NewWithFeatures(vecspace.Noun))
	vocab.Define("red cube", vecspace.NewWithFeatures(vecspace.Noun))

	hyps := Tokenize(vocab, "the red cube")
	if len(hyps) != 2 {
		t.Fatalf("expected ambiguity only at the 'red cube' vs 'red'+'cube' boundary (2 hypotheses), got %d", len(hyps))
	}
}
