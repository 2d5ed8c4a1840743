// Package caller recovers the literal source text of arguments at a call
// site. Go has no compile-time equivalent of stringify-ing macro arguments,
// so this parses the caller's source file at runtime instead: runtime.Caller
// locates the call, go/parser reads the file (cached after the first
// parse), and go/printer renders each argument expression back to text.
//
// Recovery is best effort. Stripped binaries, generated or relocated
// source, and lines with multiple matching calls all make it bail out;
// callers must handle the not-ok case.
package caller

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"

	"printc/internal/trace"
)

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]*parsedFile)
)

// ArgTexts returns the source text of the arguments of the call to fn at
// the caller's call site. skip counts additional stack frames between the
// function invoking ArgTexts and the call site: 0 means the call site is
// wherever the invoking function was called from, matching a single
// wrapper like printc.Dump.
//
// The call is identified by callee name (plain identifier or selector) and
// argument count. Multi-line call expressions are matched as long as the
// reported line falls inside them; argument text is collapsed to single
// spaces so labels stay one line.
func ArgTexts(skip int, fn string, argc int) ([]string, bool) {
	_, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		trace.L().Debug("caller frame unavailable")
		return nil, false
	}

	pf, err := parse(file)
	if err != nil {
		trace.L().Debug("caller source unavailable",
			zap.String("file", file), zap.Error(err))
		return nil, false
	}

	call := findCall(pf, line, fn, argc)
	if call == nil {
		trace.L().Debug("call site not found",
			zap.String("file", file), zap.Int("line", line), zap.String("fn", fn))
		return nil, false
	}

	texts := make([]string, len(call.Args))
	for i, arg := range call.Args {
		texts[i] = exprText(pf.fset, arg)
	}
	return texts, true
}

func parse(path string) (*parsedFile, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if pf, ok := cache[path]; ok {
		return pf, nil
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return nil, err
	}
	pf := &parsedFile{fset: fset, file: f}
	cache[path] = pf
	return pf, nil
}

// findCall locates the call to fn with argc arguments covering the given
// line. A call starting exactly on the line wins over one merely spanning
// it; two calls starting on the same line is ambiguous and returns nil.
func findCall(pf *parsedFile, line int, fn string, argc int) *ast.CallExpr {
	var exact, spanning []*ast.CallExpr
	ast.Inspect(pf.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if calleeName(call) != fn || len(call.Args) != argc {
			return true
		}
		start := pf.fset.Position(call.Pos()).Line
		end := pf.fset.Position(call.End()).Line
		switch {
		case start == line:
			exact = append(exact, call)
		case start < line && line <= end:
			spanning = append(spanning, call)
		}
		return true
	})

	if len(exact) == 1 {
		return exact[0]
	}
	if len(exact) == 0 && len(spanning) == 1 {
		return spanning[0]
	}
	return nil
}

func calleeName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	default:
		return ""
	}
}

func exprText(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return ""
	}
	// Collapse formatting whitespace so multi-line arguments label as one line.
	return strings.Join(strings.Fields(buf.String()), " ")
}
