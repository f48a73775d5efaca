package logkv

import (
	"errors"
	"sort"
)

// KeyValue is a single key-value pair attached to a log event.
type KeyValue struct {
	Key   string
	Value Value
}

// KV builds a pair, capturing the value with AnyValue.
func KV(key string, value any) KeyValue {
	return KeyValue{Key: key, Value: AnyValue(value)}
}

// Source is a source of key-value pairs: a single pair, a set of pairs, or
// several sources merged.
//
// A source does not guarantee ordering or uniqueness of keys, but it should
// yield the same pairs to subsequent visits. If fn returns an error the
// source stops and returns it.
type Source interface {
	VisitPairs(fn func(key string, value Value) error) error
}

// VisitPairs yields the single pair.
func (kv KeyValue) VisitPairs(fn func(key string, value Value) error) error {
	return fn(kv.Key, kv.Value)
}

// Pairs is an ordered list of pairs.
type Pairs []KeyValue

// VisitPairs yields each pair in order.
func (p Pairs) VisitPairs(fn func(key string, value Value) error) error {
	for _, kv := range p {
		if err := fn(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

// Fields is a map-shaped source. Values are captured with AnyValue at visit
// time and keys are yielded in sorted order so visits are deterministic.
type Fields map[string]any

// VisitPairs yields each entry in key order.
func (f Fields) VisitPairs(fn func(key string, value Value) error) error {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := fn(k, AnyValue(f[k])); err != nil {
			return err
		}
	}
	return nil
}

// errStopVisit short-circuits a visit that found what it was looking for.
var errStopVisit = errors.New("stop visit")

// Get returns the value for key. When the key appears more than once, the
// first occurrence wins.
func Get(s Source, key string) (Value, bool) {
	var found Value
	var ok bool
	err := s.VisitPairs(func(k string, v Value) error {
		if k == key {
			found, ok = v, true
			return errStopVisit
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopVisit) {
		return Value{}, false
	}
	return found, ok
}

// Count reports the number of pairs the source yields.
func Count(s Source) int {
	n := 0
	_ = s.VisitPairs(func(string, Value) error {
		n++
		return nil
	})
	return n
}

type mergedSource []Source

func (m mergedSource) VisitPairs(fn func(key string, value Value) error) error {
	for _, s := range m {
		if err := s.VisitPairs(fn); err != nil {
			return err
		}
	}
	return nil
}

// MergeSources combines sources into one that yields every source's pairs in
// argument order. Duplicate keys are preserved, so Get sees earlier sources
// first.
func MergeSources(sources ...Source) Source {
	return mergedSource(sources)
}
