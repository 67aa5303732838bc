// Package store persists an indexed corpus in a bbolt database: the
// ordered documents, the inverted term index, and corpus statistics.
// The on-disk index is a cache of what Build produces from the same
// documents; it is rebuilt wholesale on every index run.
package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"pratika/internal/adapter/index"
	"pratika/internal/domain"
)

var (
	bucketDocs  = []byte("docs")
	bucketBlobs = []byte("blobs")
	bucketTerms = []byte("terms")
	bucketStats = []byte("stats")
	keyStats    = []byte("corpus_stats")
)

// BoltStore wraps a bbolt database holding one indexed corpus.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (creating if needed) the database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocs, bucketBlobs, bucketTerms, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

type docMeta struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Title   string `json:"title"`
	ModTime int64  `json:"mod_time"`
	DocLen  int    `json:"doc_len"`
}

func ordinalKey(ord int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(ord))
	return k
}

// SaveCorpus replaces the stored corpus with docs and idx in a single
// batch transaction.
func (s *BoltStore) SaveCorpus(docs []domain.Document, idx *index.Index) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketDocs, bucketBlobs, bucketTerms, bucketStats} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to reset bucket %s: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate bucket %s: %w", name, err)
			}
		}
		docsBucket := tx.Bucket(bucketDocs)
		blobsBucket := tx.Bucket(bucketBlobs)
		for ord, doc := range docs {
			meta := docMeta{
				ID:      doc.ID,
				Path:    doc.Path,
				Title:   doc.Title,
				ModTime: doc.ModTime.Unix(),
				DocLen:  idx.DocLen(ord),
			}
			data, err := json.Marshal(meta)
			if err != nil {
				return err
			}
			if err := docsBucket.Put(ordinalKey(ord), data); err != nil {
				return err
			}
			if err := blobsBucket.Put(ordinalKey(ord), []byte(doc.Text)); err != nil {
				return err
			}
		}
		termsBucket := tx.Bucket(bucketTerms)
		for _, tok := range idx.Terms() {
			data, err := json.Marshal(idx.Postings(tok))
			if err != nil {
				return err
			}
			if err := termsBucket.Put([]byte(tok), data); err != nil {
				return err
			}
		}
		stats, err := json.Marshal(idx.Stats())
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, stats)
	})
}

// LoadCorpus reads back the ordered documents. The in-memory index is
// rebuilt from the texts by the caller (index.Build), keeping the
// stored postings as a consistency reference for Stats.
func (s *BoltStore) LoadCorpus() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		docsBucket := tx.Bucket(bucketDocs)
		blobsBucket := tx.Bucket(bucketBlobs)
		return docsBucket.ForEach(func(k, v []byte) error {
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			docs = append(docs, domain.Document{
				ID:      meta.ID,
				Path:    meta.Path,
				Title:   meta.Title,
				Text:    string(blobsBucket.Get(k)),
				ModTime: time.Unix(meta.ModTime, 0),
			})
			return nil
		})
	})
	return docs, err
}

// Stats returns the stored corpus statistics.
func (s *BoltStore) Stats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

// Postings returns the stored posting list for a token.
func (s *BoltStore) Postings(token string) ([]index.Posting, error) {
	var postings []index.Posting
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTerms).Get([]byte(token))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &postings)
	})
	return postings, err
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
