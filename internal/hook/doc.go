// Package hook reads the single JSON payload Claude Code writes to a hook
// command's stdin and classifies it.
//
// Parsing never panics and never reports partial success: a payload is either
// a JSON object, yielding an Event, or it is rejected with ErrMalformed. Only
// the fields the notifier needs are extracted; unknown fields are ignored.
package hook
