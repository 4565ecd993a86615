package trainingspot

import (
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// cacheKey hashes (region, sorted object ids, bank flag) into a single
// uint64 via FNV-1a.
func cacheKey(region string, ids []string, bankRequired bool) uint64 {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	h := fnv.New64a()
	_, _ = h.Write([]byte(region))
	_, _ = h.Write([]byte{0})
	for _, id := range sorted {
		_, _ = h.Write([]byte(id))
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte(strconv.FormatBool(bankRequired)))
	return h.Sum64()
}

// JSONStore is a Store backed by one JSON file per cache key under dir.
// Load reports entries older than ttl as misses; their files stay on disk
// until the next Save for that key overwrites them.
type JSONStore struct {
	mu  sync.Mutex
	dir string
	ttl time.Duration
	log *slog.Logger
}

// NewJSONStore constructs a JSONStore rooted at dir. The directory must
// already exist; NewJSONStore does not create it.
func NewJSONStore(dir string, ttl time.Duration, log *slog.Logger) *JSONStore {
	if log == nil {
		log = slog.Default()
	}
	return &JSONStore{dir: dir, ttl: ttl, log: log}
}

func (s *JSONStore) path(key uint64) string {
	return filepath.Join(s.dir, strconv.FormatUint(key, 16)+".json")
}

// Load reads the record for key, discarding (and reporting a miss for) one
// that has aged past the configured TTL.
func (s *JSONStore) Load(key uint64) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, false, err
	}

	if s.ttl > 0 && time.Since(rec.InsertedAt) > s.ttl {
		s.log.Debug("trainingspot cache entry expired", "record_id", rec.RecordID, "age", time.Since(rec.InsertedAt))
		return Record{}, false, nil
	}
	return rec, true, nil
}

// Save writes rec for key, stamping a fresh RecordID if one isn't already
// set so log lines about this save can be correlated.
func (s *JSONStore) Save(key uint64, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.RecordID == "" {
		rec.RecordID = uuid.New().String()
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), raw, 0o644)
}

// memStore is an in-process Store used where persistence isn't wired, and
// in tests.
type memStore struct {
	mu      sync.Mutex
	entries map[uint64]Record
	ttl     time.Duration
}

// NewMemStore constructs an in-memory Store applying the same TTL
// discard-on-load semantics as JSONStore.
func NewMemStore(ttl time.Duration) Store {
	return &memStore{entries: make(map[uint64]Record), ttl: ttl}
}

func (m *memStore) Load(key uint64) (Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.entries[key]
	if !ok {
		return Record{}, false, nil
	}
	if m.ttl > 0 && time.Since(rec.InsertedAt) > m.ttl {
		delete(m.entries, key)
		return Record{}, false, nil
	}
	return rec, true, nil
}

func (m *memStore) Save(key uint64, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.RecordID == "" {
		rec.RecordID = uuid.New().String()
	}
	m.entries[key] = rec
	return nil
}
