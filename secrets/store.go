// Package secrets keeps the bonding secrets a central distributes during
// pairing, so a bonded central can reconnect without re-pairing. Secrets
// are keyed by (type, key bytes) and persisted through a pluggable blob
// backend; the wire format is binary-safe so keys and values containing
// zero or non-ASCII bytes survive a text-oriented medium.
package secrets

import (
	"sync"

	hog "github.com/ble-hog/hog"
)

type id struct {
	typ int
	key string // raw key bytes; string for map-key use only
}

// Entry is one exported bonding secret.
type Entry struct {
	Type  int
	Key   []byte
	Value []byte
}

// Store is a persistent keyed map of bonding secrets. The zero value is
// unusable; use New.
type Store struct {
	lock    sync.RWMutex
	values  map[id][]byte
	order   []id // insertion order, for stable positional lookups
	backend Backend
	log     hog.Logger
}

// New returns a store over the given backend. A nil backend keeps the
// store memory-only.
func New(backend Backend) *Store {
	return &Store{
		values:  make(map[id][]byte),
		backend: backend,
		log:     hog.GetLogger().ChildLogger(map[string]interface{}{"pkg": "secrets"}),
	}
}

// Put stores a secret, replacing any previous value for the same
// (type, key) pair.
func (s *Store) Put(typ int, key, value []byte) {
	s.lock.Lock()
	defer s.lock.Unlock()

	k := id{typ, string(key)}
	if _, ok := s.values[k]; !ok {
		s.order = append(s.order, k)
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.values[k] = v
}

// Get looks a secret up by exact key.
func (s *Store) Get(typ int, key []byte) ([]byte, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	v, ok := s.values[id{typ, string(key)}]
	return v, ok
}

// At looks a secret up by position among the entries of the given type.
// Positions are stable within a single load/save cycle; this supports the
// transport's index-based secret lookup convention.
func (s *Store) At(typ, index int) ([]byte, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	i := 0
	for _, k := range s.order {
		if k.typ != typ {
			continue
		}
		if i == index {
			return s.values[k], true
		}
		i++
	}
	return nil, false
}

// Remove deletes a secret. It reports false if the secret was absent.
func (s *Store) Remove(typ int, key []byte) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	k := id{typ, string(key)}
	if _, ok := s.values[k]; !ok {
		return false
	}
	delete(s.values, k)
	for i, o := range s.order {
		if o == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether a secret exists.
func (s *Store) Has(typ int, key []byte) bool {
	_, ok := s.Get(typ, key)
	return ok
}

// Len returns the number of stored secrets.
func (s *Store) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.values)
}

// Export returns every secret in insertion order.
func (s *Store) Export() []Entry {
	s.lock.RLock()
	defer s.lock.RUnlock()

	out := make([]Entry, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, Entry{Type: k.typ, Key: []byte(k.key), Value: s.values[k]})
	}
	return out
}

// Import replaces the store contents with the given entries.
func (s *Store) Import(entries []Entry) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.values = make(map[id][]byte, len(entries))
	s.order = s.order[:0]
	for _, e := range entries {
		k := id{e.Type, string(e.Key)}
		if _, ok := s.values[k]; !ok {
			s.order = append(s.order, k)
		}
		v := make([]byte, len(e.Value))
		copy(v, e.Value)
		s.values[k] = v
	}
}
