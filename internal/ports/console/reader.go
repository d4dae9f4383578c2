package console

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// lineReader delivers input lines over a channel so a pending prompt can be
// abandoned when ctx is cancelled. Reading starts on the first call to next
// and stops once close is called.
type lineReader struct {
	r         io.Reader
	lines     chan string
	done      chan struct{}
	err       error
	startOnce sync.Once
	closeOnce sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: r, lines: make(chan string), done: make(chan struct{})}
}

func (lr *lineReader) start() {
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(lr.r)
		for sc.Scan() {
			select {
			case lr.lines <- sc.Text():
			case <-lr.done:
				return
			}
		}
		lr.err = sc.Err()
	}()
}

// next returns the following line, io.EOF at end of input, or ctx.Err().
func (lr *lineReader) next(ctx context.Context) (string, error) {
	lr.startOnce.Do(lr.start)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-lr.done:
		return "", io.EOF
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// close releases the reading goroutine. A goroutine blocked inside the
// underlying Read exits once that Read returns.
func (lr *lineReader) close() {
	lr.closeOnce.Do(func() { close(lr.done) })
}
