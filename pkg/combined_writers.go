package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees every write to all writers. Unlike io.MultiWriter it
// keeps writing after a failing writer, so a full log disk does not silence
// stdout.
type CombinedWriter struct {
	writers []io.Writer
}

var _ io.Writer = (*CombinedWriter)(nil)

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

// Write reports len(p) when at least one writer took the whole buffer, and
// the combined errors of the others.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	written := false
	for _, w := range cw.writers {
		n, werr := w.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		written = true
	}
	if !written {
		return 0, err
	}
	return len(p), err
}
