package secrets

import (
	"encoding/base64"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// wireEntry is the persisted form of a secret. Key and value ride as
// base64 so arbitrary bytes survive the JSON text encoding.
type wireEntry struct {
	Type  int    `json:"type"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Marshal serializes entries into the persisted wire format.
func Marshal(entries []Entry) ([]byte, error) {
	wire := make([]wireEntry, 0, len(entries))
	for _, e := range entries {
		wire = append(wire, wireEntry{
			Type:  e.Type,
			Key:   base64.StdEncoding.EncodeToString(e.Key),
			Value: base64.StdEncoding.EncodeToString(e.Value),
		})
	}
	out, err := jsoniter.Marshal(wire)
	if err != nil {
		return nil, errors.Wrap(err, "marshal secrets")
	}
	return out, nil
}

// Unmarshal parses the persisted wire format back into entries.
func Unmarshal(data []byte) ([]Entry, error) {
	var wire []wireEntry
	if err := jsoniter.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(err, "unmarshal secrets")
	}

	entries := make([]Entry, 0, len(wire))
	for _, w := range wire {
		key, err := base64.StdEncoding.DecodeString(w.Key)
		if err != nil {
			return nil, errors.Wrap(err, "decode secret key")
		}
		value, err := base64.StdEncoding.DecodeString(w.Value)
		if err != nil {
			return nil, errors.Wrap(err, "decode secret value")
		}
		entries = append(entries, Entry{Type: w.Type, Key: key, Value: value})
	}
	return entries, nil
}

// Load reads the backend and replaces the store contents. A missing or
// corrupt blob is not an error: the store falls back to empty and logs,
// since "no secrets" only means the next connection pairs from scratch.
func (s *Store) Load() {
	if s.backend == nil {
		return
	}

	data, err := s.backend.Load()
	if err != nil {
		s.log.Infof("no secrets available: %v", err)
		s.Import(nil)
		return
	}
	if len(data) == 0 {
		s.Import(nil)
		return
	}

	entries, err := Unmarshal(data)
	if err != nil {
		s.log.Warnf("discarding malformed secrets: %v", err)
		s.Import(nil)
		return
	}
	s.Import(entries)
}

// Sync writes the store contents through the backend. Failures are
// logged, never propagated; the in-memory store stays authoritative.
func (s *Store) Sync() {
	if s.backend == nil {
		return
	}

	data, err := Marshal(s.Export())
	if err != nil {
		s.log.Errorf("failed to serialize secrets: %v", err)
		return
	}
	if err := s.backend.Save(data); err != nil {
		s.log.Errorf("failed to save secrets: %v", err)
	}
}
