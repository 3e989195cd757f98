// Package latn is the layer executor façade: the parser's public entry
// point, wiring layers 1 through 5 together with optional scene
// attachment, dedup, and host-configurable caps against hypothesis
// explosion.
package latn

import (
	"github.com/go-latn/latn/pkg/layer1"
	"github.com/go-latn/latn/pkg/layer2"
	"github.com/go-latn/latn/pkg/layer3"
	"github.com/go-latn/latn/pkg/layer4"
	"github.com/go-latn/latn/pkg/layer5"
	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/scene"
	"github.com/go-latn/latn/pkg/sceneindex"
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
	"github.com/go-latn/latn/pkg/vocabulary"
)

// Parser is the single stateful entry point: a vocabulary (mutable
// across parses, per spec.md §6.1's runtime-learning requirement) and an
// optional attached scene for grounding.
type Parser struct {
	Vocab *vocabulary.Vocabulary
	scene *scene.Scene
	index *sceneindex.Index
}

// New returns a Parser over vocab. Passing nil starts from
// vocabulary.DefaultVocabulary().
func New(vocab *vocabulary.Vocabulary) *Parser {
	if vocab == nil {
		vocab = vocabulary.DefaultVocabulary()
	}
	return &Parser{Vocab: vocab}
}

// AttachScene binds s for subsequent grounding calls. WithANNAcceleration
// additionally builds a pkg/sceneindex index over s's entities; grounding
// does not read it.
func (p *Parser) AttachScene(s *scene.Scene, opts ...SceneOption) {
	settings := &sceneSettings{}
	for _, opt := range opts {
		opt(settings)
	}
	p.scene = s
	p.index = nil
	if settings.buildIndex && s != nil {
		ix := sceneindex.New()
		for _, e := range s.Entities() {
			ix.Insert(e)
		}
		p.index = ix
	}
}

// DetachScene removes the attached scene (and any ANN accelerator),
// reverting to ungrounded parsing.
func (p *Parser) DetachScene() {
	p.scene = nil
	p.index = nil
}

// AddVocabularyEntry defines or redefines a vocabulary word at runtime —
// the host side of Layer 5's definition-sentence handling (spec.md
// §6.1).
func (p *Parser) AddVocabularyEntry(word string, v vecspace.Vector) {
	p.Vocab.Define(word, v)
}

// LookupVocabulary resolves a single word through the attached
// vocabulary, propagating vocabulary.ErrUnknownToken unchanged on
// failure.
func (p *Parser) LookupVocabulary(word string) (vecspace.Vector, error) {
	return p.Vocab.VectorFromWord(word)
}

// ExecuteLayer1 runs lexical tokenization alone.
func (p *Parser) ExecuteLayer1(input string) Layer1Result {
	if input == "" {
		return Layer1Result{}
	}
	hyps := layer1.Tokenize(p.Vocab, input)
	return Layer1Result{
		Success:     len(hyps) > 0,
		Confidence:  topConfidence(hyps),
		Hypotheses:  hyps,
		Description: topDescription(hyps),
	}
}

// ExecuteLayer2 runs layers 1-2: lexical tokenization then noun-phrase
// folding, optionally grounding against the attached scene.
func (p *Parser) ExecuteLayer2(input string, cfg Layer2Config) Layer2Result {
	l1 := p.ExecuteLayer1(input)
	arena := phrase.NewArena()

	opts := layer2.GroundOptions{
		Enable:           cfg.Ground && p.scene != nil,
		ReturnAllMatches: cfg.ReturnAllMatches,
		MaxMatchesPerNP:  cfg.MaxMatchesPerNP,
	}
	hyps := layer2.Fold(arena, p.scene, opts, l1.Hypotheses)
	hyps = sortAndFinish(hyps, cfg.Config)

	return Layer2Result{
		Layer1:      &l1,
		Success:     len(hyps) > 0,
		Confidence:  topConfidence(hyps),
		Hypotheses:  hyps,
		Description: topDescription(hyps),
		NounPhrases: append(
			phraseTokensOfKind(hyps, phrase.KindNounPhrase),
			phraseTokensOfKind(hyps, phrase.KindSceneObjectPhrase)...,
		),
	}
}

// ExecuteLayer3 runs layers 1-3, additionally folding and spatially
// grounding prepositional phrases.
func (p *Parser) ExecuteLayer3(input string, cfg Layer3Config) Layer3Result {
	l2 := p.ExecuteLayer2(input, Layer2Config{Config: cfg.Config, Ground: cfg.Ground})
	arena := phrase.NewArena()

	hyps := layer3.Fold(arena, l2.Hypotheses)
	layer3.Ground(hyps)
	hyps = sortAndFinish(hyps, cfg.Config)

	return Layer3Result{
		Layer2:      &l2,
		Success:     len(hyps) > 0,
		Confidence:  topConfidence(hyps),
		Hypotheses:  hyps,
		Description: topDescription(hyps),
		PrepPhrases: phraseTokensOfKind(hyps, phrase.KindPrepPhrase),
	}
}

// ExecuteLayer4 runs layers 1-4, additionally folding verb phrases. It
// always grounds against the attached scene if one is set, since a
// verb's object needs exactly the same scene binding an L3-only caller
// might have opted out of.
func (p *Parser) ExecuteLayer4(input string) Layer4Result {
	l3 := p.ExecuteLayer3(input, Layer3Config{
		Config: Config{},
		Ground: p.scene != nil,
	})
	arena := phrase.NewArena()

	hyps := layer4.Fold(arena, l3.Hypotheses)
	stream.SortByConfidenceDesc(hyps)
	hyps = dedupHypotheses(hyps)

	return Layer4Result{
		Layer3:      &l3,
		Success:     len(hyps) > 0,
		Confidence:  topConfidence(hyps),
		Hypotheses:  hyps,
		Description: topDescription(hyps),
		VerbPhrases: phraseTokensOfKind(hyps, phrase.KindVerbPhrase),
	}
}

// ExecuteLayer5 runs the full five-layer pipeline, folding every
// hypothesis down to a single top-level SentencePhrase. report controls
// whether each hypothesis's Description prefixes the sentence's own
// summary with the description it carried into Layer 5, or is that
// summary alone.
func (p *Parser) ExecuteLayer5(input string, report bool) Layer5Result {
	l4 := p.ExecuteLayer4(input)
	arena := phrase.NewArena()

	hyps := layer5.Fold(arena, l4.Hypotheses, report)
	stream.SortByConfidenceDesc(hyps)
	hyps = dedupHypotheses(hyps)

	return Layer5Result{
		Layer4:          &l4,
		Success:         len(hyps) > 0,
		Confidence:      topConfidence(hyps),
		Hypotheses:      hyps,
		Description:     topDescription(hyps),
		SentencePhrases: phraseTokensOfKind(hyps, phrase.KindSentencePhrase),
	}
}
