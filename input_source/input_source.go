// Package input_source resolves where the data to transcode comes from and
// reads it in the shape the chosen direction needs.
package input_source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

var ErrFileOpen = errors.New("cannot open input file")

// Source is consumed once, through either ReadBytes or ReadString.
type Source interface {
	ReadBytes() ([]byte, error)
	ReadString() (string, error)
	Kind() string
}

// Resolve picks the file when set, then the literal, then stdin.
func Resolve(file string, literal *string, stdin io.Reader) Source {
	if file != "" {
		return File{Path: file}
	}
	if literal != nil {
		return Literal{Value: *literal}
	}
	return Stdin{Reader: stdin}
}

// Stdin reads until EOF. Piped input usually carries an incidental trailing
// newline, so it is dropped.
type Stdin struct {
	Reader io.Reader
}

func (s Stdin) Kind() string { return "stdin" }

func (s Stdin) ReadBytes() ([]byte, error) {
	contents := readAllTolerant(s.Reader, s.LogrusFields())
	if n := len(contents); n > 0 && contents[n-1] == '\n' {
		contents = contents[:n-1]
	}
	return contents, nil
}

func (s Stdin) ReadString() (string, error) {
	contents := readAllTolerant(s.Reader, s.LogrusFields())
	return strings.TrimRightFunc(string(contents), unicode.IsSpace), nil
}

func (s Stdin) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"source": s.Kind(),
	}
}

// File contents are taken verbatim.
type File struct {
	Path string
}

func (f File) Kind() string { return "file" }

func (f File) ReadBytes() ([]byte, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFileOpen, f.Path, err)
	}
	defer file.Close()

	return readAllTolerant(file, f.LogrusFields()), nil
}

func (f File) ReadString() (string, error) {
	contents, err := f.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(contents), nil
}

func (f File) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"source": f.Kind(),
		"path":   f.Path,
	}
}

type Literal struct {
	Value string
}

func (l Literal) Kind() string { return "literal" }

func (l Literal) ReadBytes() ([]byte, error) {
	return []byte(l.Value), nil
}

func (l Literal) ReadString() (string, error) {
	return l.Value, nil
}

// readAllTolerant keeps whatever was read before a failure. The error is
// logged and dropped.
func readAllTolerant(r io.Reader, fields logrus.Fields) []byte {
	if r == nil {
		return []byte{}
	}
	contents, err := io.ReadAll(r)
	if err != nil {
		logrus.WithFields(fields).WithError(err).WithField("read", len(contents)).Warn("Read failed, continuing with partial input")
	}
	return contents
}
