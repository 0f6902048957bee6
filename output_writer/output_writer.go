package output_writer

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type Writer struct {
	w           io.Writer
	interactive bool
	omitNewline bool
}

// New detects whether w is a terminal. Anything that is not an *os.File is
// treated as a pipe.
func New(w io.Writer, omitNewline bool) *Writer {
	return &Writer{
		w:           w,
		interactive: IsTerminal(w),
		omitNewline: omitNewline,
	}
}

func NewWithTerminal(w io.Writer, interactive, omitNewline bool) *Writer {
	return &Writer{w: w, interactive: interactive, omitNewline: omitNewline}
}

func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Write emits result, followed by a newline only for an interactive
// destination that did not ask to omit it.
func (o *Writer) Write(result []byte) error {
	if o.AppendsNewline() {
		result = append(result[:len(result):len(result)], '\n')
	}
	_, err := o.w.Write(result)
	return err
}

func (o *Writer) AppendsNewline() bool {
	return o.interactive && !o.omitNewline
}
