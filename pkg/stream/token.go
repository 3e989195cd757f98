package stream

import "github.com/go-latn/latn/pkg/vecspace"

// PhraseRef is the back-pointer a folded phrase token carries to the
// structured phrase it stands for. It is declared here, not in the
// phrase package, so that stream (the lower-level package) never
// imports phrase (the higher-level one); *phrase.Phrase satisfies this
// interface.
type PhraseRef interface {
	Vector() vecspace.Vector
}

// Token is one element of a hypothesis's token sequence. It is either a
// literal scanned from source (Range non-empty, Phrase nil) or an
// opaque phrase token produced by folding (Phrase non-nil, Range spans
// the consumed source).
type Token struct {
	Vec    vecspace.Vector
	Range  TextRange
	Phrase PhraseRef
}

// NewLiteral builds a token scanned directly from source text.
func NewLiteral(v vecspace.Vector, r TextRange) Token {
	return Token{Vec: v, Range: r}
}

// NewPhraseToken builds an opaque folded-phrase token. v is the merged
// semantic vector computed by the layer that folded it (phrase-type
// dimension set, singular/plural/conj flags, merged child contents);
// ref is the back-pointer to the structured phrase.
func NewPhraseToken(v vecspace.Vector, r TextRange, ref PhraseRef) Token {
	return Token{Vec: v, Range: r, Phrase: ref}
}

// IsPhrase reports whether this token is an opaque phrase token rather
// than a literal.
func (t Token) IsPhrase() bool { return t.Phrase != nil }
