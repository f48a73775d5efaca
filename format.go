package logkv

import "fmt"

// deferredFormat carries a format string and its arguments without rendering
// them. Formatting runs only if a visitor's debug fallback actually fires.
type deferredFormat struct {
	format string
	args   []any
}

func (d deferredFormat) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, d.format, d.args...)
}

// FormatValue captures a deferred Sprintf-style expression.
//
// The arguments are held, not formatted, until the value is rendered or a
// visitor's VisitDebug receives them. The result behaves like a debug
// capture: it renders as the formatted text and supports no coercion or
// downcast.
func FormatValue(format string, args ...any) Value {
	return FromDebug(deferredFormat{format: format, args: args})
}
