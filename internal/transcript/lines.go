package transcript

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"
)

// chunkSize is how many bytes ReverseReader reads per step.
const chunkSize = 64 * 1024

// ReverseReader yields the lines of an io.ReaderAt from last to first.
// It is single-use: Lines may be ranged over once.
type ReverseReader struct {
	r    io.ReaderAt
	size int64
	err  error
}

// NewReverseReader returns a ReverseReader over the first size bytes of r.
func NewReverseReader(r io.ReaderAt, size int64) *ReverseReader {
	return &ReverseReader{r: r, size: size}
}

// Lines returns the line sequence. Line terminators are stripped; a trailing
// newline at end of input produces one empty line first.
//
// A line longer than one chunk is kept as the list of chunks it spans and
// joined once, when its start is found.
func (rr *ReverseReader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		// pieces of the unfinished line, nearest to EOF first
		var pending [][]byte
		emit := func(head []byte) bool {
			line := joinLine(head, pending)
			pending = pending[:0]
			return yield(line)
		}

		off := rr.size
		for off > 0 {
			n := int64(chunkSize)
			if n > off {
				n = off
			}
			off -= n

			buf := make([]byte, n)
			if _, err := rr.r.ReadAt(buf, off); err != nil && err != io.EOF {
				rr.err = fmt.Errorf("reading transcript at offset %d: %w", off, err)
				return
			}

			end := len(buf)
			for {
				i := bytes.LastIndexByte(buf[:end], '\n')
				if i < 0 {
					break
				}
				if !emit(buf[i+1 : end]) {
					return
				}
				end = i
			}
			if end > 0 {
				pending = append(pending, buf[:end])
			}
		}
		emit(nil)
	}
}

// joinLine concatenates head with the pending pieces in file order.
func joinLine(head []byte, pending [][]byte) string {
	if len(pending) == 0 {
		return string(head)
	}
	size := len(head)
	for _, p := range pending {
		size += len(p)
	}
	var sb strings.Builder
	sb.Grow(size)
	sb.Write(head)
	for i := len(pending) - 1; i >= 0; i-- {
		sb.Write(pending[i])
	}
	return sb.String()
}

// Err returns the first read error hit by Lines, if any.
func (rr *ReverseReader) Err() error {
	return rr.err
}

// Backward yields lines from last to first.
func Backward(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := len(lines) - 1; i >= 0; i-- {
			if !yield(lines[i]) {
				return
			}
		}
	}
}
