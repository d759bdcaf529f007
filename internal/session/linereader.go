package session

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// LineReader delivers one line of client input per call. ReadLine suspends
// until a line arrives, the input closes, or ctx is cancelled; it never
// blocks other sessions.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// scanLineReader adapts a stream (a TCP connection, stdin) to LineReader.
// A single goroutine owns the blocking reads so ReadLine can also observe
// context cancellation.
type scanLineReader struct {
	lines chan string
	err   error
}

// NewScanLineReader starts reading lines from r until it is exhausted or
// closed. Closing the underlying stream is the caller's responsibility and
// is what unblocks the reading goroutine on disconnect.
func NewScanLineReader(r io.Reader) LineReader {
	s := &scanLineReader{lines: make(chan string)}
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			s.lines <- scanner.Text()
		}
		s.err = scanner.Err()
		close(s.lines)
	}()
	return s
}

func (s *scanLineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-s.lines:
		if !ok {
			if s.err != nil {
				return "", s.err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
