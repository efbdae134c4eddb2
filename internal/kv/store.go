package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
)

// StorageError describes a failed read, write, or removal. The Store logs it
// and never hands it back to callers.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store mirrors JSON-encoded values into a Backend on a best-effort basis.
type Store struct {
	backend Backend
	logger  *slog.Logger
	onError func(*StorageError)
}

func NewStore(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, logger: logger}
}

// OnError registers a hook called after each storage failure is logged.
func (s *Store) OnError(fn func(*StorageError)) {
	s.onError = fn
}

func (s *Store) fail(op, key string, err error) {
	serr := &StorageError{Op: op, Key: key, Err: err}
	s.logger.Error("storage failure", "op", op, "key", key, "error", err)
	if s.onError != nil {
		s.onError(serr)
	}
}

// Get decodes the value stored at key into dst, which must be a non-nil
// pointer. It reports false when the key is absent or the stored value cannot
// be read, leaving dst untouched. Values are decoded into a fresh zero value,
// so fields dst already holds are never merged with stored ones.
func (s *Store) Get(key string, dst any) bool {
	data, err := s.backend.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		s.fail("read", key, err)
		return false
	}
	fresh := reflect.New(reflect.TypeOf(dst).Elem())
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		s.fail("decode", key, err)
		return false
	}
	reflect.ValueOf(dst).Elem().Set(fresh.Elem())
	return true
}

// Set encodes value and writes it at key. On failure the previously stored
// value is kept.
func (s *Store) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.fail("encode", key, err)
		return
	}
	if err := s.backend.Set(key, data); err != nil {
		s.fail("write", key, err)
	}
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(key string) {
	if err := s.backend.Delete(key); err != nil && !errors.Is(err, ErrNotFound) {
		s.fail("remove", key, err)
	}
}
