package vocabstore

import (
	"testing"

	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"

	"github.com/go-latn/latn/pkg/vecspace"
	"github.com/go-latn/latn/pkg/vocabulary"
)

func hugeVector() vecspace.Vector {
	v := vecspace.NewWithFeatures(vecspace.Adj)
	v.Set(vecspace.ScaleX, 3.0)
	v.Set(vecspace.ScaleY, 3.0)
	v.Set(vecspace.ScaleZ, 3.0)
	v.Word = "huge"
	return v
}

func TestDefineAndLoadIntoRoundTrips(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)

	s, err := Open(fs, "vocab.gob")
	require.NoError(t, err)
	require.NoError(t, s.Define("huge", hugeVector()))

	vocab := vocabulary.New()
	require.NoError(t, s.LoadInto(vocab))

	got, err := vocab.VectorFromWord("huge")
	require.NoError(t, err)
	require.Equal(t, 3.0, got.Get(vecspace.ScaleX))
	require.True(t, got.Isa(vecspace.Adj))
}

func TestCloseThenReopenSurvivesRestart(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)

	s1, err := Open(fs, "vocab.gob")
	require.NoError(t, err)
	require.NoError(t, s1.Define("huge", hugeVector()))
	require.NoError(t, s1.Close())

	s2, err := Open(fs, "vocab.gob")
	require.NoError(t, err)
	vocab := vocabulary.New()
	require.NoError(t, s2.LoadInto(vocab))

	got, err := vocab.VectorFromWord("huge")
	require.NoError(t, err)
	require.Equal(t, 3.0, got.Get(vecspace.ScaleZ))
}

func TestOpenOnEmptyFSStartsEmpty(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)

	s, err := Open(fs, "does-not-exist.gob")
	require.NoError(t, err)

	vocab := vocabulary.New()
	require.NoError(t, s.LoadInto(vocab))
	require.False(t, vocab.Has("huge"))
}

func TestNearestKnownWordsFindsClosestDefinition(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)

	s, err := Open(fs, "vocab.gob")
	require.NoError(t, err)
	require.NoError(t, s.Define("huge", hugeVector()))

	large := vecspace.NewWithFeatures(vecspace.Adj)
	large.Set(vecspace.ScaleX, 2.0)
	large.Set(vecspace.ScaleY, 2.0)
	large.Set(vecspace.ScaleZ, 2.0)

	matches, err := s.NearestKnownWords(large, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "huge", matches[0].Word)
}
