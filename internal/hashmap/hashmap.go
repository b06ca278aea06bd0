// Package hashmap is the fixed-bucket string-keyed map behind every scope.
//
// The map never resizes: it holds at most Cap() entries, the same number
// as its buckets, and refuses further inserts. Colliding keys are chained
// in insertion order. Insert does not check for an existing key, so a key
// may appear several times; Lookup and Delete both act on the earliest
// entry of that key.
package hashmap

import (
	"fmt"

	"minic/internal/diag"
	"minic/internal/trace"
)

// DefaultSize is the bucket count of a scope map.
const DefaultSize = 521

const hashSeed uint32 = 3323198485

// Hash mixes the bytes of key into a 32-bit value. Deterministic across
// runs and platforms.
func Hash(key string) uint32 {
	h := hashSeed
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 0x5bd1e995
		h ^= h >> 15
	}
	return h
}

type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// Map is a string-keyed map with a fixed number of buckets.
type Map[V any] struct {
	buckets []*entry[V]
	count   int
	tracer  trace.Tracer
}

// New creates a map with size buckets; size < 1 means DefaultSize.
func New[V any](size int) *Map[V] {
	if size < 1 {
		size = DefaultSize
	}
	return &Map[V]{buckets: make([]*entry[V], size), tracer: trace.Nop}
}

// WithTracer routes the map's debug events to t.
func (m *Map[V]) WithTracer(t trace.Tracer) *Map[V] {
	m.mustBeValid()
	if t == nil {
		t = trace.Nop
	}
	m.tracer = t
	return m
}

func (m *Map[V]) mustBeValid() {
	if m == nil {
		panic(diag.New(diag.ErrHashKey, "access through a nil map"))
	}
}

func (m *Map[V]) bucket(key string) int {
	return int(Hash(key) % uint32(len(m.buckets)))
}

// Insert appends key to the tail of its bucket chain. It returns false,
// leaving the map unchanged, when the map already holds Cap() entries.
func (m *Map[V]) Insert(key string, value V) bool {
	m.mustBeValid()
	if m.count == len(m.buckets) {
		trace.Point(m.tracer, trace.ScopeNode, "map.full", fmt.Sprintf("key=%s cap=%d", key, len(m.buckets)))
		return false
	}

	e := &entry[V]{key: key, value: value}
	idx := m.bucket(key)
	if m.buckets[idx] == nil {
		m.buckets[idx] = e
	} else {
		tail := m.buckets[idx]
		for tail.next != nil {
			tail = tail.next
		}
		tail.next = e
	}
	m.count++
	return true
}

// Lookup returns the value of the earliest entry with key.
func (m *Map[V]) Lookup(key string) (V, bool) {
	m.mustBeValid()
	for e := m.buckets[m.bucket(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes the earliest entry with key and reports whether one
// existed.
func (m *Map[V]) Delete(key string) bool {
	m.mustBeValid()
	idx := m.bucket(key)
	var prev *entry[V]
	for e := m.buckets[idx]; e != nil; prev, e = e, e.next {
		if e.key != key {
			continue
		}
		if prev == nil {
			m.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}
		m.count--
		return true
	}
	return false
}

// Len returns the number of stored entries.
func (m *Map[V]) Len() int {
	m.mustBeValid()
	return m.count
}

// Cap returns the bucket count, which is also the entry ceiling.
func (m *Map[V]) Cap() int {
	m.mustBeValid()
	return len(m.buckets)
}

// Range calls fn for every entry, bucket by bucket, chains head to tail,
// until fn returns false.
func (m *Map[V]) Range(fn func(key string, value V) bool) {
	m.mustBeValid()
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}
