package revlines

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"unicode/utf8"
)

const defaultChunkSize = 4096

// DecodeError reports a line that is not valid UTF-8.
type DecodeError struct {
	Offset int64 // byte offset of the line start
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line at offset %d is not valid UTF-8", e.Offset)
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithChunkSize sets how many bytes are read per backward step.
func WithChunkSize(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// Scanner yields the lines of a file from the last one to the first.
// It is single-pass: once consumed, a new Scanner over a freshly positioned
// reader is needed to scan again.
type Scanner struct {
	r         io.ReadSeeker
	chunkSize int

	started bool
	done    bool
	pos     int64  // offset of buf[0] in the file
	buf     []byte // bytes in [pos, end of pending line)
}

// New returns a Scanner over r. The reader is repositioned as the scan
// progresses.
func New(r io.ReadSeeker, opts ...Option) *Scanner {
	s := &Scanner{r: r, chunkSize: defaultChunkSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lines returns the remaining lines in reverse order. A failed element carries
// an empty line and a non-nil error. Decode failures are per line and the scan
// continues; a read or seek failure is yielded once and ends the sequence.
func (s *Scanner) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			line, offset, err := s.next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				s.done = true
				yield("", err)
				return
			}
			if !utf8.Valid(line) {
				if !yield("", &DecodeError{Offset: offset}) {
					return
				}
				continue
			}
			if !yield(string(line), nil) {
				return
			}
		}
	}
}

// next returns the last unread line and its offset, or io.EOF.
func (s *Scanner) next() ([]byte, int64, error) {
	if s.done {
		return nil, 0, io.EOF
	}
	if !s.started {
		if err := s.start(); err != nil {
			return nil, 0, err
		}
	}

	for {
		if i := bytes.LastIndexByte(s.buf, '\n'); i >= 0 {
			line := s.buf[i+1:]
			offset := s.pos + int64(i) + 1
			s.buf = s.buf[:i]
			return trimCR(line), offset, nil
		}
		if s.pos == 0 {
			s.done = true
			return trimCR(s.buf), 0, nil
		}
		if err := s.readChunk(); err != nil {
			return nil, 0, err
		}
	}
}

func (s *Scanner) start() error {
	s.started = true
	size, err := s.r.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("seek end: %w", err)
	}
	s.pos = size
	if size == 0 {
		s.done = true
		return io.EOF
	}
	if err := s.readChunk(); err != nil {
		return err
	}
	// A terminator on the last line does not start another one.
	if n := len(s.buf); n > 0 && s.buf[n-1] == '\n' {
		s.buf = s.buf[:n-1]
	}
	return nil
}

// readChunk prepends the chunk preceding pos to buf.
func (s *Scanner) readChunk() error {
	n := int64(s.chunkSize)
	if n > s.pos {
		n = s.pos
	}
	start := s.pos - n
	if _, err := s.r.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("seek %d: %w", start, err)
	}
	chunk := make([]byte, n, n+int64(len(s.buf)))
	if _, err := io.ReadFull(s.r, chunk); err != nil {
		if errors.Is(err, io.EOF) {
			// The file shrank under us; never report that as a clean end.
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("read %d bytes at %d: %w", n, start, err)
	}
	s.buf = append(chunk, s.buf...)
	s.pos = start
	return nil
}

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}
