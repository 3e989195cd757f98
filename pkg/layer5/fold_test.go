package layer5

import (
	"testing"

	"github.com/go-latn/latn/pkg/layer1"
	"github.com/go-latn/latn/pkg/layer2"
	"github.com/go-latn/latn/pkg/layer3"
	"github.com/go-latn/latn/pkg/layer4"
	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vocabulary"
)

func buildL4Hypothesis(t *testing.T, text string) (stream.Hypothesis, *phrase.Arena) {
	t.Helper()
	vocab := vocabulary.DefaultVocabulary()
	l1 := layer1.Tokenize(vocab, text)
	if len(l1) == 0 {
		t.Fatalf("no L1 hypotheses for %q", text)
	}
	arena := phrase.NewArena()
	l2 := layer2.Fold(arena, nil, layer2.GroundOptions{}, l1)
	l3 := layer3.Fold(arena, l2)
	l4 := layer4.Fold(arena, l3)
	return l4[0], arena
}

func singleSP(t *testing.T, hyp stream.Hypothesis) *phrase.SentencePhrase {
	t.Helper()
	if len(hyp.Tokens) != 1 {
		t.Fatalf("expected exactly one top-level token, got %d", len(hyp.Tokens))
	}
	p, ok := hyp.Tokens[0].Phrase.(*phrase.Phrase)
	if !ok || p.Kind != phrase.KindSentencePhrase {
		t.Fatalf("expected a SentencePhrase token, got %#v", hyp.Tokens[0])
	}
	return p.SP
}

func TestFoldImperative(t *testing.T) {
	hyp, arena := buildL4Hypothesis(t, "create a cube")
	folded := Fold(arena, []stream.Hypothesis{hyp}, false)
	sp := singleSP(t, folded[0])
	if sp.Kind != phrase.SentenceImperative {
		t.Fatalf("expected imperative, got %v", sp.Kind)
	}
	if sp.Predicate == nil || sp.Predicate.Kind != phrase.KindVerbPhrase {
		t.Fatal("expected predicate bound to the folded VP")
	}
}

func TestFoldIdentificationBareNP(t *testing.T) {
	hyp, arena := buildL4Hypothesis(t, "the red cube")
	folded := Fold(arena, []stream.Hypothesis{hyp}, false)
	sp := singleSP(t, folded[0])
	if sp.Kind != phrase.SentenceIdentification {
		t.Fatalf("expected identification, got %v", sp.Kind)
	}
	if sp.Subject == nil {
		t.Fatal("expected subject bound")
	}
}

func TestFoldDeclarativeCopula(t *testing.T) {
	hyp, arena := buildL4Hypothesis(t, "the cube is red")
	folded := Fold(arena, []stream.Hypothesis{hyp}, false)
	sp := singleSP(t, folded[0])
	if sp.Kind != phrase.SentenceDeclarative {
		t.Fatalf("expected declarative, got %v", sp.Kind)
	}
	if sp.Subject == nil || sp.Predicate == nil {
		t.Fatal("expected both subject and predicate bound")
	}
}

func TestFoldDefinition(t *testing.T) {
	hyp, arena := buildL4Hypothesis(t, "'huge' is very large")
	folded := Fold(arena, []stream.Hypothesis{hyp}, false)
	sp := singleSP(t, folded[0])
	if sp.Kind != phrase.SentenceDefinition {
		t.Fatalf("expected definition, got %v", sp.Kind)
	}
	if sp.DefinitionWord != "huge" {
		t.Fatalf("expected definition word 'huge', got %q", sp.DefinitionWord)
	}
}

func TestFoldReportTrueCarriesPriorDescription(t *testing.T) {
	hyp, arena := buildL4Hypothesis(t, "create a cube")
	reported := Fold(arena, []stream.Hypothesis{hyp}, true)
	unreported := Fold(arena, []stream.Hypothesis{hyp}, false)
	if len(reported[0].Description) <= len(unreported[0].Description) {
		t.Fatal("expected report=true to produce a longer, provenance-carrying description")
	}
}
