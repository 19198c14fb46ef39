package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader provides context-aware input reading that can be interrupted.
type NonBlockingReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewNonBlockingReader creates a new non-blocking reader.
func NewNonBlockingReader(reader io.Reader) *NonBlockingReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &NonBlockingReader{
		reader: bufio.NewReader(reader),
	}
}

type readResult struct {
	err   error
	value string
}

// await runs read in a goroutine and returns its result unless ctx ends first.
// The goroutine keeps running until the underlying read returns.
func (r *NonBlockingReader) await(ctx context.Context, read func() (string, error)) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}

	resultCh := make(chan readResult, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := read()
		resultCh <- readResult{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		return res.value, res.err
	}
}

// ReadLine reads one line and trims it. A final line without a newline is
// returned without error.
func (r *NonBlockingReader) ReadLine(ctx context.Context) (string, error) {
	line, err := r.await(ctx, func() (string, error) {
		return r.reader.ReadString('\n')
	})
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadAll reads until EOF and trims the result.
func (r *NonBlockingReader) ReadAll(ctx context.Context) (string, error) {
	text, err := r.await(ctx, func() (string, error) {
		b, err := io.ReadAll(r.reader)
		return string(b), err
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
