package dutch

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/boltdb/bolt"
)

var matchBucket = []byte("matches")

// matchCache persists per-file match slices in a bolt database so that
// repeated runs over an unchanged bundle tree skip the rescans. Entries are
// keyed by path, size and mtime; a changed file simply misses.
type matchCache struct {
	db *bolt.DB
}

func openMatchCache(filename string) (*matchCache, error) {
	db, err := bolt.Open(filename, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(matchBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &matchCache{db}, nil
}

func (cs *matchCache) close() error {
	return cs.db.Close()
}

func cacheKey(path string, info os.FileInfo) string {
	return fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
}

func (cs *matchCache) get(key string) ([]Match, bool, error) {
	var raw []byte
	err := cs.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(matchBucket).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if raw == nil {
		return nil, false, nil
	}
	var matches []Match
	if err := json.Unmarshal(raw, &matches); err != nil {
		return nil, false, err
	}
	return matches, true, nil
}

func (cs *matchCache) put(key string, matches []Match) error {
	raw, err := json.Marshal(matches)
	if err != nil {
		return err
	}
	return cs.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(matchBucket).Put([]byte(key), raw)
	})
}

// matchCollector produces the matches for one bundle file, consulting the
// cache when one is configured.
type matchCollector struct {
	encName string
	cfg     Config
	cache   *matchCache
}

func (mc *matchCollector) matches(path string) ([]Match, error) {
	var key string
	if mc.cache != nil {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		key = cacheKey(path, info)
		matches, ok, err := mc.cache.get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			return matches, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decodeReader(mc.encName, f)
	if err != nil {
		return nil, err
	}

	var matches []Match
	if err := Scan(r, mc.cfg, func(m Match) error {
		m.File = path
		matches = append(matches, m)
		return nil
	}); err != nil {
		return nil, err
	}

	if mc.cache != nil {
		if err := mc.cache.put(key, matches); err != nil {
			return nil, err
		}
	}
	return matches, nil
}
