package transcoder

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"hexer/encoding"
	"hexer/input_source"
)

type Direction string

const (
	Encode Direction = "encode"
	Decode Direction = "decode"
)

type Transcoder struct {
	Direction   Direction
	Compression encoding.Compression
	// Upper selects the uppercase alphabet when encoding.
	Upper bool
	// Raw skips the lossy UTF-8 step when decoding.
	Raw bool
}

// Run reads src exactly once and returns the full result. Nothing is
// returned on error, so callers never emit partial output.
func (t Transcoder) Run(src input_source.Source) ([]byte, error) {
	switch t.Direction {
	case Encode, "":
		return t.encode(src)
	case Decode:
		return t.decode(src)
	default:
		return nil, fmt.Errorf("unknown direction: %s", t.Direction)
	}
}

func (t Transcoder) encode(src input_source.Source) ([]byte, error) {
	data, err := src.ReadBytes()
	if err != nil {
		return nil, err
	}
	data, err = encoding.Compress(data, t.Compression)
	if err != nil {
		return nil, err
	}

	codec := encoding.HexEncoderDecoder{Upper: t.Upper}
	out, err := codec.Encode(data)
	if err != nil {
		return nil, err
	}
	t.log(src).WithField("bytes", len(data)).Debug("Encoded")
	return out, nil
}

func (t Transcoder) decode(src input_source.Source) ([]byte, error) {
	text, err := src.ReadString()
	if err != nil {
		return nil, err
	}

	data, err := encoding.HexEncoderDecoder{}.Decode([]byte(text))
	if err != nil {
		return nil, err
	}
	data, err = encoding.Decompress(data, t.Compression)
	if err != nil {
		return nil, err
	}
	t.log(src).WithField("bytes", len(data)).Debug("Decoded")

	if t.Raw {
		return data, nil
	}
	return []byte(encoding.LossyText(data)), nil
}

func (t Transcoder) log(src input_source.Source) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"direction":   t.Direction,
		"source":      src.Kind(),
		"compression": t.Compression,
	})
}
