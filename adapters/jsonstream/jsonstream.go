// Package jsonstream streams logkv values into json-iterator.
//
// This is the structured-serialization integration: a value presents itself
// to the stream through the same single-dispatch visit backends use, so
// primitives are written as native JSON scalars without any reflection and
// structured captures contribute their own MarshalJSON output verbatim.
package jsonstream

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/willibrandon/logkv"
)

var cfg = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode writes v into stream as a single JSON value.
func Encode(stream *jsoniter.Stream, v logkv.Value) error {
	if err := v.Visit(&streamVisitor{stream: stream}); err != nil {
		return err
	}
	return stream.Error
}

// streamVisitor forwards one value into a jsoniter.Stream.
type streamVisitor struct {
	stream *jsoniter.Stream
}

func (s *streamVisitor) VisitInt64(v int64) error {
	s.stream.WriteInt64(v)
	return s.stream.Error
}

func (s *streamVisitor) VisitUint64(v uint64) error {
	s.stream.WriteUint64(v)
	return s.stream.Error
}

func (s *streamVisitor) VisitFloat64(v float64) error {
	s.stream.WriteFloat64(v)
	return s.stream.Error
}

func (s *streamVisitor) VisitBool(v bool) error {
	s.stream.WriteBool(v)
	return s.stream.Error
}

func (s *streamVisitor) VisitRune(v rune) error {
	s.stream.WriteString(string(v))
	return s.stream.Error
}

func (s *streamVisitor) VisitString(v string) error {
	s.stream.WriteString(v)
	return s.stream.Error
}

func (s *streamVisitor) VisitNone() error {
	s.stream.WriteNil()
	return s.stream.Error
}

func (s *streamVisitor) VisitDebug(v any) error {
	s.stream.WriteString(fmt.Sprintf("%+v", v))
	return s.stream.Error
}

func (s *streamVisitor) VisitDisplay(v fmt.Stringer) error {
	s.stream.WriteString(v.String())
	return s.stream.Error
}

func (s *streamVisitor) VisitError(err error) error {
	s.stream.WriteString(err.Error())
	return s.stream.Error
}

func (s *streamVisitor) VisitStructured(v json.Marshaler) error {
	b, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	s.stream.WriteRaw(string(b))
	return s.stream.Error
}

// Marshal renders a single value as JSON.
func Marshal(v logkv.Value) ([]byte, error) {
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)
	if err := Encode(stream, v); err != nil {
		return nil, err
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// MarshalSource renders a source of pairs as a JSON object. Duplicate keys
// are written as the source yields them; JSON consumers conventionally keep
// the last occurrence.
func MarshalSource(src logkv.Source) ([]byte, error) {
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)

	stream.WriteObjectStart()
	first := true
	err := src.VisitPairs(func(key string, value logkv.Value) error {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(key)
		return Encode(stream, value)
	})
	if err != nil {
		return nil, err
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}
