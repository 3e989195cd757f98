// Package vocabstore provides optional SQLite-backed persistence for a
// vocabulary.Vocabulary, entirely outside the core parse path: pkg/latn
// never imports this package. A host that wants runtime-learned words
// (spec.md §6.1) to survive a process restart wraps its vocabulary with
// a Store; one that doesn't simply never opens one.
package vocabstore

import (
	"bytes"
	"database/sql"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"sync"

	_ "github.com/asg017/sqlite-vec-go-bindings/ncruces"
	"github.com/hack-pad/hackpadfs"
	_ "github.com/ncruces/go-sqlite3/driver"

	"github.com/go-latn/latn/pkg/vecspace"
	"github.com/go-latn/latn/pkg/vocabulary"
)

const schema = `
CREATE TABLE IF NOT EXISTS vocabulary (
	word TEXT PRIMARY KEY,
	vector BLOB NOT NULL
);
`

// vecTableDims is the width of the vec0 virtual table's embedding
// column: the same SimilaritySubspace projection pkg/sceneindex indexes
// scene entities under, so a "nearest known word" query and Layer 2's
// grounding score are computed over identical features.
var vecTableDims = len(vecspace.SimilaritySubspace)

// Store is a SQLite-backed vocabulary table, persisted as a single
// gob-encoded snapshot through a hackpadfs.FS the way pkg/sceneindex.Index
// persists its HNSW graph: the database itself lives in-memory for query
// speed, and Close flushes the current table contents to fs at path.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	fs   hackpadfs.FS
	path string
}

// entry is the gob-encoded unit Save/Load round-trips through fs.
type entry struct {
	Word   string
	Vector vecspace.Vector
}

// Open returns a Store backed by an in-memory SQLite database, seeded
// from any snapshot already present at path on fs. A missing file is not
// an error: Open then returns an empty store.
func Open(fs hackpadfs.FS, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("vocabstore: open: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("vocabstore: create schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf(
		`CREATE VIRTUAL TABLE IF NOT EXISTS vec_vocabulary USING vec0(embedding float[%d], word TEXT)`,
		vecTableDims,
	)); err != nil {
		db.Close()
		return nil, fmt.Errorf("vocabstore: create vec table: %w", err)
	}

	s := &Store{db: db, fs: fs, path: path}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// load reads the gob snapshot at s.path, if any, and inserts every entry
// into the freshly-opened in-memory database.
func (s *Store) load() error {
	content, err := hackpadfs.ReadFile(s.fs, s.path)
	if err != nil {
		return nil // no snapshot yet; an empty store is not an error
	}

	var entries []entry
	if err := gob.NewDecoder(bytes.NewReader(content)).Decode(&entries); err != nil {
		return fmt.Errorf("vocabstore: decode snapshot: %w", err)
	}
	for _, e := range entries {
		if err := s.define(e.Word, e.Vector); err != nil {
			return fmt.Errorf("vocabstore: load %q: %w", e.Word, err)
		}
	}
	return nil
}

// Define persists word's vector, upserting both the vocabulary table and
// its vec0 projection.
func (s *Store) Define(word string, v vecspace.Vector) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.define(word, v)
}

func (s *Store) define(word string, v vecspace.Vector) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("vocabstore: encode %q: %w", word, err)
	}

	if _, err := s.db.Exec(
		`INSERT INTO vocabulary (word, vector) VALUES (?, ?)
		 ON CONFLICT(word) DO UPDATE SET vector = excluded.vector`,
		word, buf.Bytes(),
	); err != nil {
		return fmt.Errorf("vocabstore: upsert %q: %w", word, err)
	}

	if _, err := s.db.Exec(`DELETE FROM vec_vocabulary WHERE word = ?`, word); err != nil {
		return fmt.Errorf("vocabstore: clear vec row %q: %w", word, err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO vec_vocabulary (embedding, word) VALUES (?, ?)`,
		encodeSubspace(v), word,
	); err != nil {
		return fmt.Errorf("vocabstore: insert vec row %q: %w", word, err)
	}
	return nil
}

// LoadInto defines every persisted word onto vocab, the host's usual way
// of repopulating a fresh vocabulary.Vocabulary at startup.
func (s *Store) LoadInto(vocab *vocabulary.Vocabulary) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT word, vector FROM vocabulary`)
	if err != nil {
		return fmt.Errorf("vocabstore: scan: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var word string
		var blob []byte
		if err := rows.Scan(&word, &blob); err != nil {
			return fmt.Errorf("vocabstore: scan row: %w", err)
		}
		var v vecspace.Vector
		if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&v); err != nil {
			return fmt.Errorf("vocabstore: decode %q: %w", word, err)
		}
		vocab.Define(word, v)
	}
	return rows.Err()
}

// NearestWord is one result of a NearestKnownWords query.
type NearestWord struct {
	Word     string
	Distance float64
}

// NearestKnownWords finds the k persisted words whose SimilaritySubspace
// projection is closest to v under sqlite-vec's default (L2) distance — the
// "is there already a word close to this?" check a host can run before
// accepting a new runtime definition (spec.md §6.1's "'huge' is very
// large" flow), warning on a near-duplicate rather than silently
// shadowing it.
func (s *Store) NearestKnownWords(v vecspace.Vector, k int) ([]NearestWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if k <= 0 {
		k = 1
	}
	rows, err := s.db.Query(
		`SELECT word, distance FROM vec_vocabulary
		 WHERE embedding MATCH ? AND k = ?
		 ORDER BY distance`,
		encodeSubspace(v), k,
	)
	if err != nil {
		return nil, fmt.Errorf("vocabstore: nearest: %w", err)
	}
	defer rows.Close()

	var out []NearestWord
	for rows.Next() {
		var nw NearestWord
		if err := rows.Scan(&nw.Word, &nw.Distance); err != nil {
			return nil, fmt.Errorf("vocabstore: scan nearest: %w", err)
		}
		out = append(out, nw)
	}
	return out, rows.Err()
}

// Close flushes the current vocabulary table to fs at path and closes
// the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT word, vector FROM vocabulary`)
	if err != nil {
		s.db.Close()
		return fmt.Errorf("vocabstore: snapshot scan: %w", err)
	}
	var entries []entry
	for rows.Next() {
		var word string
		var blob []byte
		if err := rows.Scan(&word, &blob); err != nil {
			rows.Close()
			s.db.Close()
			return fmt.Errorf("vocabstore: snapshot scan row: %w", err)
		}
		var v vecspace.Vector
		if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&v); err != nil {
			rows.Close()
			s.db.Close()
			return fmt.Errorf("vocabstore: snapshot decode: %w", err)
		}
		entries = append(entries, entry{Word: word, Vector: v})
	}
	rows.Close()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entries); err != nil {
		s.db.Close()
		return fmt.Errorf("vocabstore: snapshot encode: %w", err)
	}
	if err := hackpadfs.WriteFullFile(s.fs, s.path, buf.Bytes(), 0644); err != nil {
		s.db.Close()
		return fmt.Errorf("vocabstore: snapshot write: %w", err)
	}

	return s.db.Close()
}

// encodeSubspace renders v's SimilaritySubspace projection as the raw
// little-endian float32 blob sqlite-vec's vec0 module expects, the same
// layout the teacher encodes embeddings in.
func encodeSubspace(v vecspace.Vector) []byte {
	floats := make([]float32, len(vecspace.SimilaritySubspace))
	for i, d := range vecspace.SimilaritySubspace {
		floats[i] = float32(v.Get(d))
	}
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, floats); err != nil {
		return nil
	}
	return buf.Bytes()
}
