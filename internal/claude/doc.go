// Package claude manages the hook registrations claude-notify adds to a
// Claude Code settings.json file.
//
// The file is edited in place as raw JSON so unrelated settings keep their
// key order. Installs are idempotent: a hook command already
// present (compared with quoting and whitespace normalised) is never added
// twice. Writes are atomic (temp file + rename).
package claude
