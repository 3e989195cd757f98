package atn

import (
	"testing"

	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
)

type testBuilder struct {
	seenDet  bool
	nounWord string
}

func isDet(tok stream.Token) bool  { return tok.Vec.Isa(vecspace.Det) }
func isNoun(tok stream.Token) bool { return tok.Vec.Isa(vecspace.Noun) }

// buildDetNounNetwork accepts `det? noun`.
func buildDetNounNetwork() *Network {
	const (
		start State = iota
		afterDet
		accepted
	)
	net := NewNetwork(start)
	net.AddArc(start, Arc{Guard: isDet, Next: afterDet, Action: func(b Builder, tok stream.Token) {
		b.(*testBuilder).seenDet = true
	}})
	net.AddArc(start, Arc{Guard: isNoun, Next: accepted, Action: func(b Builder, tok stream.Token) {
		b.(*testBuilder).nounWord = tok.Vec.Word
	}})
	net.AddArc(afterDet, Arc{Guard: isNoun, Next: accepted, Action: func(b Builder, tok stream.Token) {
		b.(*testBuilder).nounWord = tok.Vec.Word
	}})
	net.Accept(accepted)
	return net
}

func nounTok(word string) stream.Token {
	v := vecspace.NewWithFeatures(vecspace.Noun)
	v.Word = word
	return stream.NewLiteral(v, stream.TextRange{})
}

func detTok() stream.Token {
	return stream.NewLiteral(vecspace.NewWithFeatures(vecspace.Det), stream.TextRange{})
}

func TestRunAcceptsBareNoun(t *testing.T) {
	c := stream.NewCursor([]stream.Token{nounTok("cube")})
	b := &testBuilder{}
	if !Run(buildDetNounNetwork(), c, b) {
		t.Fatalf("expected acceptance for bare noun")
	}
	if b.nounWord != "cube" {
		t.Fatalf("unexpected noun word %q", b.nounWord)
	}
	if c.Position() != 1 {
		t.Fatalf("expected cursor to consume 1 token, at %d", c.Position())
	}
}

func TestRunAcceptsDetNoun(t *testing.T) {
	c := stream.NewCursor([]stream.Token{detTok(), nounTok("box")})
	b := &testBuilder{}
	if !Run(buildDetNounNetwork(), c, b) {
		t.Fatalf("expected acceptance for det+noun")
	}
	if !b.seenDet {
		t.Fatalf("expected det action to fire")
	}
}

func TestRunRejectsNonAccepting(t *testing.T) {
	c := stream.NewCursor([]stream.Token{detTok()})
	b := &testBuilder{}
	if Run(buildDetNounNetwork(), c, b) {
		t.Fatalf("bare determiner should not be accepted")
	}
}
