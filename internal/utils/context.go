package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EventCtxKey is the key under which the name of the user event being
// handled is stored.
var EventCtxKey = contextKey("event")

// WithEvent returns a copy of ctx tagged with the event name.
func WithEvent(ctx context.Context, event string) context.Context {
	return context.WithValue(ctx, EventCtxKey, event)
}

// GetEventFromContext retrieves the event name stored by WithEvent.
//
// Returns the name and an ok flag:
//   - ok == true: value is found and has the string type
//   - ok == false: value is missing or has an unexpected type
func GetEventFromContext(ctx context.Context) (string, bool) {
	event, ok := ctx.Value(EventCtxKey).(string)
	return event, ok
}
