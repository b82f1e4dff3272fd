package control

import (
	"strconv"
	"sync"

	"github.com/go-drift/carousel/pkg/graphics"
)

// AttrStore is a string-keyed attribute map with change tracking. Typed
// setters serialize values to their wire encoding before storage; typed
// getters deserialize and fall back to the caller's default when a key is
// unset or holds an unparseable value.
//
// Writing a key to its current value is a no-op and marks nothing. A flush
// via [AttrStore.TakeDirty] drains only the keys changed since the previous
// flush.
//
// All methods are safe for concurrent use.
type AttrStore struct {
	mu    sync.RWMutex
	attrs map[string]string
	dirty map[string]struct{}
}

// NewAttrStore creates an empty attribute store.
func NewAttrStore() *AttrStore {
	return &AttrStore{
		attrs: make(map[string]string),
		dirty: make(map[string]struct{}),
	}
}

// Set stores a raw attribute value. Setting a key to its current value
// marks nothing.
func (s *AttrStore) Set(key, value string) {
	s.mu.Lock()
	if cur, ok := s.attrs[key]; !ok || cur != value {
		s.attrs[key] = value
		s.dirty[key] = struct{}{}
	}
	s.mu.Unlock()
}

// Remove deletes an attribute. The key is marked changed only if it was
// present; a removed key appears in the next drained patch with an empty
// value.
func (s *AttrStore) Remove(key string) {
	s.mu.Lock()
	if _, ok := s.attrs[key]; ok {
		delete(s.attrs, key)
		s.dirty[key] = struct{}{}
	}
	s.mu.Unlock()
}

// Lookup returns the raw value for a key and whether it is set.
func (s *AttrStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.attrs[key]
	return v, ok
}

// Get returns the raw value for a key, or the empty string when unset.
func (s *AttrStore) Get(key string) string {
	v, _ := s.Lookup(key)
	return v
}

// SetString stores a string attribute.
func (s *AttrStore) SetString(key, v string) {
	s.Set(key, v)
}

// String returns a string attribute, or def when unset.
func (s *AttrStore) String(key, def string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return def
}

// SetBool stores a bool attribute as "true" or "false".
func (s *AttrStore) SetBool(key string, v bool) {
	s.Set(key, strconv.FormatBool(v))
}

// Bool returns a bool attribute, or def when unset or unparseable.
func (s *AttrStore) Bool(key string, def bool) bool {
	raw, ok := s.Lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// SetInt stores an int attribute in decimal.
func (s *AttrStore) SetInt(key string, v int) {
	s.Set(key, strconv.Itoa(v))
}

// Int returns an int attribute, or def when unset or unparseable.
func (s *AttrStore) Int(key string, def int) int {
	raw, ok := s.Lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// SetFloat stores a float attribute in the shortest decimal form that
// round-trips.
func (s *AttrStore) SetFloat(key string, v float64) {
	s.Set(key, strconv.FormatFloat(v, 'g', -1, 64))
}

// Float returns a float attribute, or def when unset or unparseable.
func (s *AttrStore) Float(key string, def float64) float64 {
	raw, ok := s.Lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// LookupFloat returns a float attribute and whether a parseable value is
// set. Used for options that have no documented default.
func (s *AttrStore) LookupFloat(key string) (float64, bool) {
	raw, ok := s.Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// LookupInt returns an int attribute and whether a parseable value is set.
func (s *AttrStore) LookupInt(key string) (int, bool) {
	raw, ok := s.Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SetColor stores a color attribute as #AARRGGBB.
func (s *AttrStore) SetColor(key string, c graphics.Color) {
	s.Set(key, c.Hex())
}

// Color returns a color attribute, or def when unset or unparseable.
func (s *AttrStore) Color(key string, def graphics.Color) graphics.Color {
	raw, ok := s.Lookup(key)
	if !ok {
		return def
	}
	c, err := graphics.ParseColor(raw)
	if err != nil {
		return def
	}
	return c
}

// LookupColor returns a color attribute and whether a parseable value is
// set.
func (s *AttrStore) LookupColor(key string) (graphics.Color, bool) {
	raw, ok := s.Lookup(key)
	if !ok {
		return 0, false
	}
	c, err := graphics.ParseColor(raw)
	if err != nil {
		return 0, false
	}
	return c, true
}

// Dirty reports whether any attributes changed since the last drain.
func (s *AttrStore) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dirty) > 0
}

// TakeDirty drains the changed attributes and clears the change set.
// Returns nil when nothing changed. Keys removed since the last drain are
// present with an empty value.
func (s *AttrStore) TakeDirty() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.dirty) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.dirty))
	for key := range s.dirty {
		out[key] = s.attrs[key]
	}
	s.dirty = make(map[string]struct{})
	return out
}

// Snapshot returns a copy of all attributes. Used when registering a
// control tree with the host.
func (s *AttrStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.attrs))
	for k, v := range s.attrs {
		out[k] = v
	}
	return out
}
