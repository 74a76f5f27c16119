package rates

import (
	"encoding/json"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
)

var seriesBucket = []byte("series")

// BoltStore is a Store backed by a bbolt file, for keeping extracted
// simulation output around between sessions.  Series are stored as
// JSON.
//
// Not glamorous or efficient.
type BoltStore struct {
	filename string
	db       *bolt.DB
}

// NewBoltStore makes a BoltStore for the given file.  Call Open
// before use.
func NewBoltStore(filename string) *BoltStore {
	return &BoltStore{filename: filename}
}

func (s *BoltStore) Open() error {
	opts := &bolt.Options{
		Timeout: time.Second,
	}
	db, err := bolt.Open(s.filename, 0644, opts)
	if err != nil {
		return err
	}
	s.db = db
	return s.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(seriesBucket)
		return err
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Set writes a series.
func (s *BoltStore) Set(name string, data []float64) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(seriesBucket).Put([]byte(name), bs)
	})
}

func (s *BoltStore) Series(name string) ([]float64, error) {
	var data []float64
	err := s.db.View(func(tx *bolt.Tx) error {
		bs := tx.Bucket(seriesBucket).Get([]byte(name))
		if bs == nil {
			return &NotFound{Name: name}
		}
		return json.Unmarshal(bs, &data)
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *BoltStore) Names() ([]string, error) {
	acc := make([]string, 0, 32)
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(seriesBucket).Cursor()
		for name, _ := c.First(); name != nil; name, _ = c.Next() {
			acc = append(acc, string(name))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(acc)
	return acc, nil
}
