package layer4

import (
	"testing"

	"github.com/go-latn/latn/pkg/layer1"
	"github.com/go-latn/latn/pkg/layer2"
	"github.com/go-latn/latn/pkg/layer3"
	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vocabulary"
)

func buildHypothesis(t *testing.T, text string) (stream.Hypothesis, *phrase.Arena) {
	t.Helper()
	vocab := vocabulary.DefaultVocabulary()
	l1 := layer1.Tokenize(vocab, text)
	if len(l1) == 0 {
		t.Fatalf("no L1 hypotheses for %q", text)
	}
	arena := phrase.NewArena()
	l2 := layer2.Fold(arena, nil, layer2.GroundOptions{}, l1)
	l3 := layer3.Fold(arena, l2)
	return l3[0], arena
}

func singleVP(t *testing.T, hyp stream.Hypothesis) *phrase.VerbPhrase {
	t.Helper()
	if len(hyp.Tokens) != 1 {
		t.Fatalf("expected the whole sentence to fold into one VP token, got %d", len(hyp.Tokens))
	}
	p, ok := hyp.Tokens[0].Phrase.(*phrase.Phrase)
	if !ok || p.Kind != phrase.KindVerbPhrase {
		t.Fatalf("expected a VerbPhrase token, got %#v", hyp.Tokens[0])
	}
	return p.VP
}

func TestFoldCreateVerbRequiresObject(t *testing.T) {
	hyp, arena := buildHypothesis(t, "create a cube")
	folded := Fold(arena, []stream.Hypothesis{hyp})
	vp := singleVP(t, folded[0])
	if vp.Class() != phrase.VerbClassCreate {
		t.Fatalf("expected create class, got %v", vp.Class())
	}
	if vp.Object == nil {
		t.Fatal("expected object NP bound")
	}
}

func TestFoldTransformWithDestinationPP(t *testing.T) {
	hyp, arena := buildHypothesis(t, "move the cube to the box")
	folded := Fold(arena, []stream.Hypothesis{hyp})
	vp := singleVP(t, folded[0])
	if vp.Class() != phrase.VerbClassTransform {
		t.Fatalf("expected transform class, got %v", vp.Class())
	}
	if len(vp.PPs) != 1 {
		t.Fatalf("expected one destination PP, got %d", len(vp.PPs))
	}
	if vp.MissingRequiredDirection {
		t.Fatal("expected MissingRequiredDirection false when a destination PP is present")
	}
}

func TestFoldTransformWithoutPPFlagsMissingDirection(t *testing.T) {
	hyp, arena := buildHypothesis(t, "rotate the cube")
	folded := Fold(arena, []stream.Hypothesis{hyp})
	vp := singleVP(t, folded[0])
	if !vp.MissingRequiredDirection {
		t.Fatal("expected MissingRequiredDirection true for a directional verb with no PP")
	}
}

func TestFoldScaleOnlyVerbNeverFlagsMissingDirection(t *testing.T) {
	hyp, arena := buildHypothesis(t, "scale the cube")
	folded := Fold(arena, []stream.Hypothesis{hyp})
	vp := singleVP(t, folded[0])
	if vp.MissingRequiredDirection {
		t.Fatal("expected a scale-only verb to never flag MissingRequiredDirection")
	}
}

func TestFoldTransformComparativeAdjComplement(t *testing.T) {
	hyp, arena := buildHypothesis(t, "scale the cube bigger")
	folded := Fold(arena, []stream.Hypothesis{hyp})
	vp := singleVP(t, folded[0])
	if len(vp.AdjComplements) != 1 {
		t.Fatalf("expected one comparative adjective complement, got %d", len(vp.AdjComplements))
	}
}

func TestFoldStyleVerbColorComplement(t *testing.T) {
	hyp, arena := buildHypothesis(t, "color the cube red")
	folded := Fold(arena, []stream.Hypothesis{hyp})
	vp := singleVP(t, folded[0])
	if vp.Class() != phrase.VerbClassStyle {
		t.Fatalf("expected style class, got %v", vp.Class())
	}
	if len(vp.AdjComplements) != 1 {
		t.Fatalf("expected one color complement, got %d", len(vp.AdjComplements))
	}
}

func TestFoldEditVerbTakesNoPP(t *testing.T) {
	hyp, arena := buildHypothesis(t, "delete the cube")
	folded := Fold(arena, []stream.Hypothesis{hyp})
	vp := singleVP(t, folded[0])
	if vp.Class() != phrase.VerbClassEdit {
		t.Fatalf("expected edit class, got %v", vp.Class())
	}
	if len(vp.PPs) != 0 {
		t.Fatalf("expected no PPs for an edit verb, got %d", len(vp.PPs))
	}
}

func TestFoldOrganizeVerbAssemblyTypeName(t *testing.T) {
	hyp, arena := buildHypothesis(t, "group the cube as 'table_setting'")
	folded := Fold(arena, []stream.Hypothesis{hyp})
	vp := singleVP(t, folded[0])
	if vp.Class() != phrase.VerbClassOrganize {
		t.Fatalf("expected organize class, got %v", vp.Class())
	}
	if vp.AssemblyTypeName != "table_setting" {
		t.Fatalf("expected assembly type name 'table_setting', got %q", vp.AssemblyTypeName)
	}
}

func TestFoldGenericVerbNeedsNoObject(t *testing.T) {
	hyp, arena := buildHypothesis(t, "undo")
	folded := Fold(arena, []stream.Hypothesis{hyp})
	vp := singleVP(t, folded[0])
	if vp.Class() != phrase.VerbClassGeneric {
		t.Fatalf("expected generic class, got %v", vp.Class())
	}
	if vp.Object != nil {
		t.Fatal("expected no object bound for a bare generic verb")
	}
}
