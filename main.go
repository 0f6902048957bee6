package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"hexer/encoding"
	"hexer/input_source"
	"hexer/output_writer"
	"hexer/transcoder"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var errUsage = errors.New("usage")

type Options struct {
	Encode      bool   `short:"e" long:"encode" description:"Encode the input into a hexstring"`
	Decode      bool   `short:"d" long:"decode" description:"Decode a hexstring"`
	File        string `short:"f" long:"file" value-name:"PATH" description:"File to read the input from"`
	OmitNewline bool   `short:"n" long:"ommit_newline" description:"Ommit the newline when printing the output. Useful when redirecting the output to a file"`
	Upper       bool   `short:"u" long:"upper" description:"Use uppercase hex digits when encoding"`
	Compression string `short:"c" long:"compression" value-name:"NAME" default:"plain" description:"Compress before encoding / decompress after decoding [plain, gzip, deflate, brotli, zstd]"`
	Raw         bool   `short:"r" long:"raw" description:"Write decoded bytes as-is instead of repairing them into UTF-8 text"`
	LogLevel    string `short:"l" long:"loglevel" value-name:"LEVEL" default:"warning" description:"set the logging level [debug, info, warning, error]"`

	Args struct {
		Input []string `positional-arg-name:"string" description:"Input from the cli arguments. Leave it blank and do not set a file to read from stdin"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logrus.SetOutput(stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)

	opts, err := parseOptions(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return ExitSuccess
		}
		fmt.Fprintf(stderr, "hexer: %v\n", err)
		return ExitUsage
	}

	tc, err := opts.buildTranscoder()
	if err != nil {
		fmt.Fprintf(stderr, "hexer: %v\n", err)
		return ExitUsage
	}
	src := opts.source(stdin)

	logr := logrus.WithFields(logrus.Fields{
		"direction": tc.Direction,
		"source":    src.Kind(),
	})
	result, err := tc.Run(src)
	if err != nil {
		fmt.Fprintf(stderr, "hexer: %v\n", err)
		logr.WithError(err).Debug("Transcoding failed")
		return ExitFailure
	}

	if err := output_writer.New(stdout, opts.OmitNewline).Write(result); err != nil {
		fmt.Fprintf(stderr, "hexer: writing output: %v\n", err)
		logr.WithError(err).Debug("Error writing output")
		return ExitFailure
	}
	logr.WithField("bytes", len(result)).Debug("Done")
	return ExitSuccess
}

func parseOptions(args []string) (*Options, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "hexer"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if parser.FindOptionByLongName("file").IsSet() && opts.File == "" {
		return nil, fmt.Errorf("%w: --file requires a non-empty path", errUsage)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", errUsage, rest)
	}
	if opts.Encode && opts.Decode {
		return nil, fmt.Errorf("%w: --encode and --decode are mutually exclusive", errUsage)
	}
	if len(opts.Args.Input) > 1 {
		return nil, fmt.Errorf("%w: only one input string may be given", errUsage)
	}
	if opts.File != "" && len(opts.Args.Input) > 0 {
		return nil, fmt.Errorf("%w: --file and an input string are mutually exclusive", errUsage)
	}

	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	logrus.SetLevel(level)

	return opts, nil
}

func (o *Options) buildTranscoder() (transcoder.Transcoder, error) {
	compression, err := encoding.ParseCompression(o.Compression)
	if err != nil {
		return transcoder.Transcoder{}, err
	}

	direction := transcoder.Encode
	if o.Decode {
		direction = transcoder.Decode
	}
	return transcoder.Transcoder{
		Direction:   direction,
		Compression: compression,
		Upper:       o.Upper,
		Raw:         o.Raw,
	}, nil
}

func (o *Options) source(stdin io.Reader) input_source.Source {
	var literal *string
	if len(o.Args.Input) == 1 {
		literal = &o.Args.Input[0]
	}
	return input_source.Resolve(o.File, literal, stdin)
}
