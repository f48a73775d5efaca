// Package zap writes logkv values into zap's encoding layer.
//
// The adapter preserves each value's captured kind: primitives become typed
// zapcore fields with no intermediate formatting, displayable values keep
// their lazy Stringer, and structured values ride through zap's reflected
// encoding so their MarshalJSON output lands in the log as real JSON.
package zap

import (
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/zap/zapcore"

	"github.com/willibrandon/logkv"
)

// AddTo writes v into enc under key using a single visitor dispatch.
func AddTo(enc zapcore.ObjectEncoder, key string, v logkv.Value) error {
	return v.Visit(&objectVisitor{enc: enc, key: key})
}

// objectVisitor forwards one value into a zapcore.ObjectEncoder.
type objectVisitor struct {
	enc zapcore.ObjectEncoder
	key string
}

func (o *objectVisitor) VisitInt64(v int64) error {
	o.enc.AddInt64(o.key, v)
	return nil
}

func (o *objectVisitor) VisitUint64(v uint64) error {
	o.enc.AddUint64(o.key, v)
	return nil
}

func (o *objectVisitor) VisitFloat64(v float64) error {
	o.enc.AddFloat64(o.key, v)
	return nil
}

func (o *objectVisitor) VisitBool(v bool) error {
	o.enc.AddBool(o.key, v)
	return nil
}

func (o *objectVisitor) VisitRune(v rune) error {
	o.enc.AddString(o.key, string(v))
	return nil
}

func (o *objectVisitor) VisitString(v string) error {
	o.enc.AddString(o.key, v)
	return nil
}

func (o *objectVisitor) VisitNone() error {
	return o.enc.AddReflected(o.key, nil)
}

func (o *objectVisitor) VisitDebug(v any) error {
	o.enc.AddString(o.key, fmt.Sprintf("%+v", v))
	return nil
}

func (o *objectVisitor) VisitDisplay(v fmt.Stringer) error {
	o.enc.AddString(o.key, v.String())
	return nil
}

func (o *objectVisitor) VisitError(err error) error {
	o.enc.AddString(o.key, err.Error())
	return nil
}

func (o *objectVisitor) VisitStructured(v json.Marshaler) error {
	b, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	return o.enc.AddReflected(o.key, json.RawMessage(b))
}

// fieldVisitor builds a strongly typed zapcore.Field.
type fieldVisitor struct {
	key   string
	field zapcore.Field
}

func (f *fieldVisitor) VisitInt64(v int64) error {
	f.field = zapcore.Field{Key: f.key, Type: zapcore.Int64Type, Integer: v}
	return nil
}

func (f *fieldVisitor) VisitUint64(v uint64) error {
	f.field = zapcore.Field{Key: f.key, Type: zapcore.Uint64Type, Integer: int64(v)}
	return nil
}

func (f *fieldVisitor) VisitFloat64(v float64) error {
	f.field = zapcore.Field{Key: f.key, Type: zapcore.Float64Type, Integer: int64(math.Float64bits(v))}
	return nil
}

func (f *fieldVisitor) VisitBool(v bool) error {
	var n int64
	if v {
		n = 1
	}
	f.field = zapcore.Field{Key: f.key, Type: zapcore.BoolType, Integer: n}
	return nil
}

func (f *fieldVisitor) VisitRune(v rune) error {
	f.field = zapcore.Field{Key: f.key, Type: zapcore.StringType, String: string(v)}
	return nil
}

func (f *fieldVisitor) VisitString(v string) error {
	f.field = zapcore.Field{Key: f.key, Type: zapcore.StringType, String: v}
	return nil
}

func (f *fieldVisitor) VisitNone() error {
	f.field = zapcore.Field{Key: f.key, Type: zapcore.ReflectType, Interface: nil}
	return nil
}

func (f *fieldVisitor) VisitDebug(v any) error {
	f.field = zapcore.Field{Key: f.key, Type: zapcore.StringType, String: fmt.Sprintf("%+v", v)}
	return nil
}

func (f *fieldVisitor) VisitDisplay(v fmt.Stringer) error {
	f.field = zapcore.Field{Key: f.key, Type: zapcore.StringerType, Interface: v}
	return nil
}

func (f *fieldVisitor) VisitError(err error) error {
	f.field = zapcore.Field{Key: f.key, Type: zapcore.ErrorType, Interface: err}
	return nil
}

func (f *fieldVisitor) VisitStructured(v json.Marshaler) error {
	f.field = zapcore.Field{Key: f.key, Type: zapcore.ReflectType, Interface: v}
	return nil
}

// Field builds a zapcore.Field from a captured value. Fill captures resolve
// during this call; the resulting field carries the filled representation.
func Field(key string, v logkv.Value) zapcore.Field {
	vis := fieldVisitor{key: key}
	if err := v.Visit(&vis); err != nil {
		return zapcore.Field{Key: key, Type: zapcore.ErrorType, Interface: err}
	}
	return vis.field
}

// Fields converts every pair in a source. Pairs whose visit fails are
// carried as error fields rather than dropped.
func Fields(src logkv.Source) []zapcore.Field {
	var fields []zapcore.Field
	_ = src.VisitPairs(func(key string, value logkv.Value) error {
		fields = append(fields, Field(key, value))
		return nil
	})
	return fields
}
