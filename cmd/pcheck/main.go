// Command pcheck parses a key=value document and explains any failure
// using the parse error model. It can also print the error kind code table.
//
//	pcheck -input 'host=1, port=80x'
//	pcheck -file app.conf -hex
//	pcheck -kinds -format text
//	pcheck -i
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/parsekit/diag"
	"github.com/wippyai/parsekit/errors"
	"github.com/wippyai/parsekit/parse"
)

// errRejected is returned when the document does not parse. The report has
// already been written by then.
var errRejected = stderrors.New("document rejected")

type options struct {
	kinds  bool
	format string
	input  string
	file   string
	hex    bool
}

func main() {
	var (
		kinds       = flag.Bool("kinds", false, "Print the error kind code table and exit")
		format      = flag.String("format", "yaml", "Code table format (yaml, text)")
		input       = flag.String("input", "", "Document to check")
		file        = flag.String("file", "", "Read the document from a file")
		hex         = flag.Bool("hex", false, "Append a hex dump coloured by error kind")
		color       = flag.String("color", "auto", "Colour output (auto, always, never)")
		verbose     = flag.Bool("v", false, "Log parser steps to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if !*kinds && !*interactive && *input == "" && *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: pcheck -input <document> [-hex] [-color auto|always|never]")
		fmt.Fprintln(os.Stderr, "       pcheck -file <path> [-hex]")
		fmt.Fprintln(os.Stderr, "       pcheck -kinds [-format yaml|text]")
		fmt.Fprintln(os.Stderr, "       pcheck -i  (interactive mode)")
		os.Exit(2)
	}

	styles, err := stylesFor(*color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: create logger: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		parse.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(styles, *hex); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := options{kinds: *kinds, format: *format, input: *input, file: *file, hex: *hex}
	if err := run(os.Stdout, styles, opts); err != nil {
		if !stderrors.Is(err, errRejected) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// stylesFor resolves the -color flag. In auto mode colour is used only when
// out is a terminal.
func stylesFor(mode string, out *os.File) (diag.Styles, error) {
	switch mode {
	case "never":
		return diag.Plain(), nil
	case "always":
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI256)
		return diag.Color(r), nil
	case "auto":
		if term.IsTerminal(int(out.Fd())) {
			return diag.Color(lipgloss.NewRenderer(out)), nil
		}
		return diag.Plain(), nil
	default:
		return diag.Styles{}, fmt.Errorf("invalid -color value %q", mode)
	}
}

func run(w io.Writer, styles diag.Styles, opts options) error {
	if opts.kinds {
		return writeTable(w, opts.format)
	}

	src, err := source(opts)
	if err != nil {
		return err
	}

	entries, perr := check(src)
	if perr == nil {
		for _, e := range entries {
			fmt.Fprintf(w, "%s = %d\n", e.Key, e.Value)
		}
		return nil
	}
	if perr.Incomplete() {
		return perr
	}

	fmt.Fprint(w, report(src, perr.Inner, styles, opts.hex))
	return errRejected
}

// source returns the document named by opts. Trailing line breaks are
// dropped so that files ending in a newline are accepted.
func source(opts options) (string, error) {
	src := opts.input
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		src = string(data)
	}
	return strings.TrimRight(src, "\r\n"), nil
}

// report renders e against src, optionally followed by a kind legend and a
// coloured hex dump of the input.
func report(src string, e errors.Verbose[string], styles diag.Styles, hex bool) string {
	var b strings.Builder
	b.WriteString(diag.Render(src, e, styles))
	if !hex {
		return b.String()
	}

	original := []byte(src)
	spans := diag.Spans(original, errors.MapVerbose(e, func(rest string) []byte {
		return original[len(original)-len(rest):]
	}))
	b.WriteByte('\n')
	b.WriteString(diag.Codes(spans, styles))
	b.WriteByte('\n')
	b.WriteString(diag.Offsets(original, 8, spans, styles))
	return b.String()
}
