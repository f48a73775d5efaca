// Package logr bridges logr-style key/value arguments into logkv values.
//
// logr callers pass flat keysAndValues slices and may hand over types that
// implement logr.Marshaler to control their own log representation. This
// package converts both into logkv's capture model so a logkv-aware backend
// can consume logr traffic without losing structure.
package logr

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/willibrandon/logkv"
)

// ValueOf captures a single logr value.
//
// Values implementing logr.Marshaler are captured through the fill
// mechanism: MarshalLog runs only when the value is actually visited, which
// matches logr's contract that marshaling is deferred until a sink consumes
// the entry. Everything else goes through logkv.AnyValue.
func ValueOf(v any) logkv.Value {
	if m, ok := v.(logr.Marshaler); ok {
		return logkv.FromFill(marshalerFiller{m: m})
	}
	return logkv.AnyValue(v)
}

// marshalerFiller defers logr.Marshaler resolution to visit time.
type marshalerFiller struct {
	m logr.Marshaler
}

func (f marshalerFiller) Fill(slot *logkv.Slot) error {
	return slot.FillAny(f.m.MarshalLog())
}

// Fields converts a flat keysAndValues slice into pairs.
//
// Keys that are not strings are stringified with fmt.Sprint. A trailing key
// with no value is kept and paired with the absent value, matching how logr
// sinks conventionally tolerate odd-length argument lists.
func Fields(keysAndValues ...any) logkv.Pairs {
	pairs := make(logkv.Pairs, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		if i+1 >= len(keysAndValues) {
			pairs = append(pairs, logkv.KeyValue{Key: key, Value: logkv.NoneValue()})
			break
		}
		pairs = append(pairs, logkv.KeyValue{Key: key, Value: ValueOf(keysAndValues[i+1])})
	}
	return pairs
}
