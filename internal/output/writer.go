package output

import (
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// Writer is the shared output sink. Each call to Write is one mutual-exclusion
// unit: a block handed to Write is never interleaved with another caller's.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
	fd int // -1 unless w is an *os.File
}

// NewWriter creates a Writer around w. When w is an *os.File the data goes
// out through writev on its descriptor.
func NewWriter(w io.Writer) *Writer {
	fd := -1
	if f, ok := w.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &Writer{w: w, fd: fd}
}

// NewStdoutWriter creates a Writer that writes to stdout.
func NewStdoutWriter() *Writer {
	return NewWriter(os.Stdout)
}

// Write writes data as a single block. The lock is held only for the
// duration of the write itself.
func (w *Writer) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fd < 0 {
		return w.w.Write(data)
	}

	total := 0
	for total < len(data) {
		iovs := [][]byte{data[total:]}
		n, err := unix.Writev(w.fd, iovs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

var _ io.Writer = (*Writer)(nil)
