package transcript

import (
	"os"

	"github.com/ariel-frischer/claude-notify/internal/textutil"
)

const (
	// Fallback is returned whenever no assistant text can be found.
	Fallback = "Task complete"

	// SummaryLimit is the maximum number of runes kept from the reply.
	SummaryLimit = 120
)

// Summarize returns the latest assistant reply in the transcript at path,
// clipped to SummaryLimit runes. It returns Fallback when path is empty, the
// file cannot be read, or no assistant record has text.
func Summarize(path string) string {
	if path == "" {
		return Fallback
	}

	f, err := os.Open(path)
	if err != nil {
		return Fallback
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return Fallback
	}

	rr := NewReverseReader(f, info.Size())
	text, ok := LastAssistantText(rr.Lines())
	if !ok || rr.Err() != nil {
		return Fallback
	}
	return textutil.Clip(text, SummaryLimit)
}
