package lyrics

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

var lyricsBucket = []byte("lyrics")

// Entry is a cached lyrics answer.
type Entry struct {
	Content  string    `json:"content"`
	Synced   bool      `json:"synced"`
	Source   string    `json:"source"`
	StoredAt time.Time `json:"stored_at"`
}

// Cache stores lyrics in a bbolt database.
type Cache struct {
	db *bbolt.DB
}

// OpenCache opens or creates the cache database at path.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open lyrics cache: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(lyricsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create lyrics bucket: %w", err)
	}
	return &Cache{db: db}, nil
}

// CacheKey normalizes artist and title so trivial spelling variations hit
// the same entry.
func CacheKey(title, artist string) []byte {
	norm := func(s string) string {
		return strings.Join(strings.Fields(strings.ToLower(s)), " ")
	}
	return []byte(norm(artist) + "\x00" + norm(title))
}

// Get returns the entry stored for title and artist.
func (c *Cache) Get(title, artist string) (Entry, bool, error) {
	var (
		e     Entry
		found bool
	)
	err := c.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(lyricsBucket).Get(CacheKey(title, artist))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &e)
	})
	if err != nil {
		return Entry{}, false, fmt.Errorf("read lyrics cache: %w", err)
	}
	return e, found, nil
}

// Put stores e for title and artist, replacing any previous entry.
func (c *Cache) Put(title, artist string, e Entry) error {
	if e.StoredAt.IsZero() {
		e.StoredAt = time.Now()
	}
	v, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode lyrics entry: %w", err)
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(lyricsBucket).Put(CacheKey(title, artist), v)
	})
}

// Delete removes the entry for title and artist if present.
func (c *Cache) Delete(title, artist string) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(lyricsBucket).Delete(CacheKey(title, artist))
	})
}

// Len returns the number of cached entries.
func (c *Cache) Len() (int, error) {
	var n int
	err := c.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(lyricsBucket).Stats().KeyN
		return nil
	})
	return n, err
}

// Close closes the database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	err := c.db.Close()
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return nil
	}
	return err
}
