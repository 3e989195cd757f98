// Package sceneindex provides an optional approximate-nearest-neighbor
// index over scene entity vectors, for scenes large enough that linear
// similarity scans stop being cheap. It is never on the required path:
// scene.Scene.FindNounPhrase does not consult it, and pkg/latn builds one
// only when a scene is attached with WithANNAcceleration.
package sceneindex

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/fogfish/hnsw"
	hnswvec "github.com/fogfish/hnsw/vector"
	"github.com/hack-pad/hackpadfs"
	kvector "github.com/kshard/vector"

	"github.com/go-latn/latn/pkg/scene"
	"github.com/go-latn/latn/pkg/vecspace"
)

// Index accelerates nearest-entity lookup by projecting each entity's
// vector into vecspace.SimilaritySubspace and indexing the projections
// with HNSW under cosine distance.
type Index struct {
	hnsw    *hnsw.HNSW[hnswvec.VF32]
	byKey   map[uint32]scene.Entity
	nextKey uint32
	mu      sync.RWMutex
}

// New returns an empty index.
func New() *Index {
	return &Index{
		hnsw:  hnsw.New[hnswvec.VF32](hnswvec.SurfaceVF32(kvector.Cosine())),
		byKey: make(map[uint32]scene.Entity),
	}
}

func project(v vecspace.Vector) []float32 {
	out := make([]float32, len(vecspace.SimilaritySubspace))
	for i, d := range vecspace.SimilaritySubspace {
		out[i] = float32(v.Get(d))
	}
	return out
}

// Insert adds e to the index under a fresh internal key; inserting the
// same entity twice stores it twice.
func (idx *Index) Insert(e scene.Entity) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	key := idx.nextKey
	idx.nextKey++
	idx.byKey[key] = e
	idx.hnsw.Insert(hnswvec.VF32{Key: key, Vec: project(e.Vector())})
}

// Nearest returns up to k entities closest to npVector under cosine
// distance over the similarity subspace, most-similar first. It is an
// approximation of a full scan over scene.FindNounPhrase's candidate
// pool, intended for scenes with enough entities that a linear scan is
// the bottleneck.
func (idx *Index) Nearest(npVector vecspace.Vector, k int) []scene.Entity {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.hnsw.Size() == 0 {
		return nil
	}
	ef := k * 2
	if ef < 64 {
		ef = 64
	}
	results := idx.hnsw.Search(hnswvec.VF32{Vec: project(npVector)}, k, ef)

	out := make([]scene.Entity, 0, len(results))
	for _, r := range results {
		if e, ok := idx.byKey[r.Key]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Size reports how many entities are indexed.
func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.hnsw.Size()
}

// Save persists the index's raw nodes to fs at path, for scenes large
// enough that rebuilding the index on every process start is wasteful.
// It does not persist the key->Entity mapping: the host is expected to
// rebuild byKey by re-inserting its live entities in the same order
// after Load, since Entity itself isn't serializable in general.
func (idx *Index) Save(fs hackpadfs.FS, path string) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(idx.hnsw.Nodes()); err != nil {
		return fmt.Errorf("sceneindex: encode: %w", err)
	}
	return hackpadfs.WriteFullFile(fs, path, buf.Bytes(), 0644)
}

// Load rehydrates the HNSW graph structure from fs at path. Callers
// must re-Insert their live entities afterward to repopulate byKey; Load
// alone leaves Nearest unable to resolve keys back to entities.
func (idx *Index) Load(fs hackpadfs.FS, path string) error {
	content, err := hackpadfs.ReadFile(fs, path)
	if err != nil {
		return err
	}
	var nodes hnsw.Nodes[hnswvec.VF32]
	if err := gob.NewDecoder(bytes.NewReader(content)).Decode(&nodes); err != nil {
		return fmt.Errorf("sceneindex: decode: %w", err)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.hnsw = hnsw.FromNodes[hnswvec.VF32](hnswvec.SurfaceVF32(kvector.Cosine()), nodes)
	idx.byKey = make(map[uint32]scene.Entity)
	return nil
}
