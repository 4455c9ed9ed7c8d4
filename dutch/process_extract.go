package dutch

import (
	"bufio"
	"fmt"
	"io"
)

// matchWriter writes one "Line <n>: <text>" record per match. The text is
// written as-is: no escaping, no quoting.
type matchWriter struct {
	bw *bufio.Writer
}

func newMatchWriter(out io.Writer) *matchWriter {
	return &matchWriter{bufio.NewWriter(out)}
}

func (mw *matchWriter) write(m Match) error {
	_, err := fmt.Fprintf(mw.bw, "Line %d: %s\n", m.Line, m.Text)
	return err
}

func (mw *matchWriter) flush() error {
	return mw.bw.Flush()
}
