package core

import "fmt"

// MessageFunc produces a log message on demand. Backends call it only
// when the log call passes their level check, and at most once.
type MessageFunc func() any

// Resolve applies the message fallback rule and returns the message and
// program name to write. defaultProgName stands in for an absent
// progName. When both message and fn are absent the program name is
// demoted to the message and the label becomes defaultProgName.
//
// Resolve must only be called after the level check has passed, since
// it invokes fn.
func Resolve(message, progName any, fn MessageFunc, defaultProgName any) (msg, prog any) {
	if progName == nil {
		progName = defaultProgName
	}
	if message == nil {
		if fn != nil {
			message = fn()
		} else {
			message = progName
			progName = defaultProgName
		}
	}
	return message, progName
}

// Stringify renders a message value as text
func Stringify(v any) string {
	switch m := v.(type) {
	case string:
		return m
	case nil:
		return "nil"
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprintf("%+v", m)
	}
}

// Label renders a program name, treating nil as empty
func Label(v any) string {
	if v == nil {
		return ""
	}
	return Stringify(v)
}
