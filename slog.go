package logkv

import (
	"fmt"
	"log/slog"
	"time"
)

// FromSlog converts a slog.Value, resolving any slog.LogValuer first.
// Scalar kinds map onto primitives; groups and arbitrary payloads capture
// through AnyValue.
func FromSlog(v slog.Value) Value {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindBool:
		return BoolValue(v.Bool())
	case slog.KindInt64:
		return Int64Value(v.Int64())
	case slog.KindUint64:
		return Uint64Value(v.Uint64())
	case slog.KindFloat64:
		return Float64Value(v.Float64())
	case slog.KindString:
		return StringValue(v.String())
	case slog.KindDuration:
		return AnyValue(v.Duration())
	case slog.KindTime:
		return AnyValue(v.Time())
	case slog.KindGroup:
		return FromDebug(v.Group())
	default:
		return AnyValue(v.Any())
	}
}

// slogVisitor builds a slog.Value from a single dispatch.
type slogVisitor struct {
	out slog.Value
}

func (s *slogVisitor) VisitInt64(v int64) error {
	s.out = slog.Int64Value(v)
	return nil
}

func (s *slogVisitor) VisitUint64(v uint64) error {
	s.out = slog.Uint64Value(v)
	return nil
}

func (s *slogVisitor) VisitFloat64(v float64) error {
	s.out = slog.Float64Value(v)
	return nil
}

func (s *slogVisitor) VisitBool(v bool) error {
	s.out = slog.BoolValue(v)
	return nil
}

func (s *slogVisitor) VisitRune(v rune) error {
	s.out = slog.StringValue(string(v))
	return nil
}

func (s *slogVisitor) VisitString(v string) error {
	s.out = slog.StringValue(v)
	return nil
}

func (s *slogVisitor) VisitNone() error {
	s.out = slog.AnyValue(nil)
	return nil
}

func (s *slogVisitor) VisitDebug(v any) error {
	s.out = slog.AnyValue(v)
	return nil
}

func (s *slogVisitor) VisitDisplay(v fmt.Stringer) error {
	if t, ok := v.(time.Time); ok {
		s.out = slog.TimeValue(t)
		return nil
	}
	if d, ok := v.(time.Duration); ok {
		s.out = slog.DurationValue(d)
		return nil
	}
	s.out = slog.AnyValue(v)
	return nil
}

func (s *slogVisitor) VisitError(err error) error {
	s.out = slog.AnyValue(err)
	return nil
}

// ToSlog converts a Value into a slog.Value, preserving the captured kind
// where slog has an equivalent.
func ToSlog(v Value) slog.Value {
	var vis slogVisitor
	if err := v.Visit(&vis); err != nil {
		return slog.StringValue(v.String())
	}
	return vis.out
}
