package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testCase struct {
	Args   []string
	Stdin  string
	Expect string
}

func runWith(t *testing.T, args []string, stdin string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("AB\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	testCases := []testCase{
		{Args: nil, Stdin: "AB\n", Expect: "4142"},
		{Args: []string{"-e"}, Stdin: "", Expect: ""},
		{Args: []string{"--encode", "AB"}, Expect: "4142"},
		{Args: []string{"-u", "\xab\xcd"}, Expect: "ABCD"},
		{Args: []string{"-f", path}, Expect: "41420a"},
		{Args: []string{"--file", path, "-n"}, Expect: "41420a"},
		{Args: []string{"-d", "4142"}, Expect: "AB"},
		{Args: []string{"-d", "ABCD", "-r"}, Expect: "\xab\xcd"},
		{Args: []string{"-d"}, Stdin: "68656c6c6f\n\n", Expect: "hello"},
		{Args: []string{"-d", "--", "6869"}, Expect: "hi"},
		{Args: []string{""}, Stdin: "ignored", Expect: ""},
	}

	for i, tc := range testCases {
		code, out, errOut := runWith(t, tc.Args, tc.Stdin)
		if code != ExitSuccess {
			t.Errorf("case %d: Expected exit %d, got %d (%s)", i, ExitSuccess, code, errOut)
		}
		if out != tc.Expect {
			t.Errorf("case %d: Expected %q, got %q", i, tc.Expect, out)
		}
	}
}

func TestRunCompressionRoundTrip(t *testing.T) {
	for _, c := range []string{"gzip", "deflate", "br", "zstd"} {
		code, encoded, errOut := runWith(t, []string{"-c", c, "compress me please"}, "")
		if code != ExitSuccess {
			t.Fatalf("%s: encode failed with %d: %s", c, code, errOut)
		}
		code, decoded, errOut := runWith(t, []string{"-d", "--compression", c, encoded}, "")
		if code != ExitSuccess {
			t.Fatalf("%s: decode failed with %d: %s", c, code, errOut)
		}
		if decoded != "compress me please" {
			t.Errorf("%s: Expected round trip, got %q", c, decoded)
		}
	}
}

func TestRunFatalErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	testCases := []testCase{
		{Args: []string{"-d", "abc"}},
		{Args: []string{"-d", "zz"}},
		{Args: []string{"-f", missing}},
		{Args: []string{"-d", "-f", missing}},
		{Args: []string{"-d", "-c", "gzip", "00"}},
	}

	for i, tc := range testCases {
		code, out, errOut := runWith(t, tc.Args, tc.Stdin)
		if code != ExitFailure {
			t.Errorf("case %d: Expected exit %d, got %d", i, ExitFailure, code)
		}
		if out != "" {
			t.Errorf("case %d: Expected no output, got %q", i, out)
		}
		if errOut == "" {
			t.Errorf("case %d: Expected a failure message on stderr", i)
		}
	}
}

func TestRunUsageErrors(t *testing.T) {
	testCases := []testCase{
		{Args: []string{"-e", "-d", "00"}},
		{Args: []string{"-f", "x", "literal"}},
		{Args: []string{"one", "two"}},
		{Args: []string{"--bogus"}},
		{Args: []string{"-c", "lzma", "x"}},
		{Args: []string{"-l", "loud", "x"}},
		{Args: []string{"-f", ""}, Stdin: "AB\n"},
		{Args: []string{"-f", "", "lit"}},
		{Args: []string{"--file=", "-d", "00"}},
	}

	for i, tc := range testCases {
		code, out, _ := runWith(t, tc.Args, tc.Stdin)
		if code != ExitUsage {
			t.Errorf("case %d: Expected exit %d, got %d", i, ExitUsage, code)
		}
		if out != "" {
			t.Errorf("case %d: Expected no output, got %q", i, out)
		}
	}
}

func TestRunFatalMessageIgnoresLogLevel(t *testing.T) {
	for _, level := range []string{"fatal", "panic"} {
		code, out, errOut := runWith(t, []string{"-l", level, "-d", "zz"}, "")
		if code != ExitFailure {
			t.Errorf("%s: Expected exit %d, got %d", level, ExitFailure, code)
		}
		if out != "" {
			t.Errorf("%s: Expected no output, got %q", level, out)
		}
		if !strings.HasPrefix(errOut, "hexer: ") || !strings.Contains(errOut, "malformed hex") {
			t.Errorf("%s: Expected failure message on stderr, got %q", level, errOut)
		}
	}
}

func TestRunHelp(t *testing.T) {
	code, out, _ := runWith(t, []string{"--help"}, "")
	if code != ExitSuccess {
		t.Errorf("Expected exit %d, got %d", ExitSuccess, code)
	}
	if !strings.Contains(out, "ommit_newline") {
		t.Errorf("Expected usage text, got %q", out)
	}
}

func TestParseOptionsSource(t *testing.T) {
	opts, err := parseOptions([]string{"-d", "-n", "-f", "in.hex"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !opts.Decode || !opts.OmitNewline || opts.File != "in.hex" {
		t.Errorf("Unexpected options: %+v", opts)
	}
	if src := opts.source(nil); src.Kind() != "file" {
		t.Errorf("Expected file source, got %s", src.Kind())
	}

	_, err = parseOptions([]string{"-e", "-d"})
	if !errors.Is(err, errUsage) {
		t.Errorf("Expected usage error, got %v", err)
	}
}
