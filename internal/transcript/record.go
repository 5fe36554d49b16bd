package transcript

import (
	"iter"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	typeAssistant = "assistant"
	blockText     = "text"
)

// Record is one parsed transcript line.
type Record struct {
	root gjson.Result
}

// ParseRecord parses a single transcript line. ok is false for blank lines
// and for lines that are not a JSON object.
func ParseRecord(line string) (Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !gjson.Valid(line) {
		return Record{}, false
	}
	root := gjson.Parse(line)
	if !root.IsObject() {
		return Record{}, false
	}
	return Record{root: root}, true
}

// Type returns the record's "type" discriminant.
func (r Record) Type() string {
	res := r.root.Get("type")
	if res.Type != gjson.String {
		return ""
	}
	return res.Str
}

// IsAssistant reports whether the record was written by the agent.
func (r Record) IsAssistant() bool {
	return r.Type() == typeAssistant
}

// Text returns the first usable text in message.content, trimmed.
//
// Content may be a list of blocks, in which case blocks are checked in
// stored order and the first "text" block with non-blank text wins, or a
// plain string. ok is false when neither form yields non-blank text.
func (r Record) Text() (string, bool) {
	content := r.root.Get("message.content")
	switch {
	case content.IsArray():
		var found string
		content.ForEach(func(_, block gjson.Result) bool {
			if !block.IsObject() {
				return true
			}
			if kind := block.Get("type"); kind.Type != gjson.String || kind.Str != blockText {
				return true
			}
			text := block.Get("text")
			if text.Type != gjson.String {
				return true
			}
			found = strings.TrimSpace(text.Str)
			return found == ""
		})
		return found, found != ""
	case content.Type == gjson.String:
		text := strings.TrimSpace(content.Str)
		return text, text != ""
	}
	return "", false
}

// Records parses lines lazily, dropping those ParseRecord rejects.
func Records(lines iter.Seq[string]) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for line := range lines {
			rec, ok := ParseRecord(line)
			if !ok {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// LastAssistantText returns the text of the first assistant record in lines
// that has any. Pass lines newest first to get the most recent reply.
// Assistant records without usable text are passed over.
func LastAssistantText(lines iter.Seq[string]) (string, bool) {
	for rec := range Records(lines) {
		if !rec.IsAssistant() {
			continue
		}
		if text, ok := rec.Text(); ok {
			return text, true
		}
	}
	return "", false
}
