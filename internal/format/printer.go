package format

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/lexer"
	"github.com/carllerche/minifmt/internal/parser"
	"github.com/carllerche/minifmt/internal/source"
)

// ErrFormat is wrapped by every error returned from this package.
var ErrFormat = errors.New("format: cannot format input")

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

// ParseError reports that the input did not parse. Bag holds the
// diagnostics produced by the front-end.
type ParseError struct {
	Path string
	Bag  *diag.Bag
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %d parse error(s)", ErrFormat, e.Path, e.Bag.Len())
}

func (e *ParseError) Unwrap() error { return ErrFormat }

// unsupportedError aborts printing of a construct without a rendering rule.
type unsupportedError struct {
	msg string
}

func (e unsupportedError) Error() string { return e.msg }

func unsupported(format string, args ...any) {
	panic(unsupportedError{msg: fmt.Sprintf(format, args...)})
}

type printer struct {
	w   *Writer
	opt Options
}

// FormatFile renders a whole compilation unit.
func FormatFile(file *ast.File, opt Options) ([]byte, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: nil file", ErrFormat)
	}
	return run(opt, func(p *printer) { p.printFile(file) })
}

// FormatItem renders a single item as if it were the only item of a file.
func FormatItem(item ast.Item, opt Options) ([]byte, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: nil item", ErrFormat)
	}
	return run(opt, func(p *printer) { p.printItem(item) })
}

func run(opt Options, fn func(p *printer)) (out []byte, err error) {
	opt = opt.withDefaults()
	p := &printer{w: NewWriter(opt), opt: opt}
	defer func() {
		if r := recover(); r != nil {
			u, ok := r.(unsupportedError)
			if !ok {
				panic(r)
			}
			out, err = nil, fmt.Errorf("%w: %s", ErrFormat, u.msg)
		}
	}()
	fn(p)
	if p.w.Len() > 0 {
		p.w.Newline()
	}
	return p.w.Bytes(), nil
}

// FormatSource parses sf and formats the result. Parse failures are
// returned as *ParseError.
func FormatSource(sf *source.File, opt Options) ([]byte, error) {
	return FormatSourceLimit(sf, opt, 0)
}

// FormatSourceLimit is FormatSource with at most maxDiag diagnostics kept
// in a returned *ParseError. Zero keeps all of them.
func FormatSourceLimit(sf *source.File, opt Options, maxDiag int) ([]byte, error) {
	if sf == nil {
		return nil, fmt.Errorf("%w: nil source file", ErrFormat)
	}
	file, bag := parseOnce(sf, maxDiag)
	if bag.HasErrors() {
		return nil, &ParseError{Path: sf.Path, Bag: bag}
	}
	return FormatFile(file, opt)
}

// CheckRoundTrip formats the file, re-parses the output and formats it
// again, ensuring that the second pass reproduces the first byte for byte.
func CheckRoundTrip(sf *source.File, opt Options, maxDiag int) (ok bool, msg string) {
	origFile, origBag := parseOnce(sf, maxDiag)
	if origFile == nil {
		return false, "fmt-check: initial parse failed"
	}
	if origBag.HasErrors() {
		return false, "fmt-check: initial parse has errors"
	}

	formatted, err := FormatFile(origFile, opt)
	if err != nil {
		return false, "fmt-check: formatter failed: " + err.Error()
	}

	fs2 := source.NewFileSet()
	rebuilt := fs2.Get(fs2.AddVirtual(sf.Path, formatted))
	newFile, newBag := parseOnce(rebuilt, maxDiag)
	if newFile == nil || newBag.HasErrors() {
		return false, "fmt-check: reparse failed"
	}

	again, err := FormatFile(newFile, opt)
	if err != nil {
		return false, "fmt-check: second format failed: " + err.Error()
	}
	if !bytes.Equal(formatted, again) {
		return false, "fmt-check: output differs after round-trip"
	}
	return true, "fmt-check: OK"
}

func parseOnce(sf *source.File, maxDiag int) (*ast.File, *diag.Bag) {
	bag := diag.NewBag(maxDiag)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	lx := lexer.New(sf, lexer.Options{Reporter: reporter})
	opts := parser.Options{Reporter: reporter, MaxErrors: uint(bag.Cap())}
	res := parser.ParseFile(lx, opts)
	return res.File, bag
}
