// Package transcript finds the most recent assistant text in a Claude Code
// session transcript.
//
// A transcript is an append-only JSONL file: one record per line, newest
// last. The scan walks lines from the end of the file toward the start,
// decoding nothing but the fields it needs, and stops at the first assistant
// record that carries usable text. Older records are never read once a match
// is found, so the cost is proportional to the tail of the session rather
// than its full length.
//
// Line sources are plain iter.Seq[string] values. ReverseReader produces one
// from any io.ReaderAt; Backward produces one from an in-memory slice.
package transcript
