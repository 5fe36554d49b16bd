// Package message turns a hook event into the notification shown to the
// user: title, body text, sound and the context forwarded to companion
// processes.
package message
