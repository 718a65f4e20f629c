package registry

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// DocSource finds the documentation comment of a function value.
type DocSource interface {
	Doc(fn any) (string, error)
}

// FuncName returns the unqualified name of a function value,
// e.g. "intro" for main.intro and "func1" for a closure.
func FuncName(fn any) string {
	f := runtimeFunc(fn)
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

func runtimeFunc(fn any) *runtime.Func {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil
	}
	return runtime.FuncForPC(v.Pointer())
}

// SourceDocs reads doc comments from the Go source files the binary was built from.
// This works for `go run` and for binaries built on the presenting machine.
// Parsed files are cached.
type SourceDocs struct {
	mu    sync.Mutex
	files map[string]*parsedFile
}

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
}

// NewSourceDocs creates an empty SourceDocs.
func NewSourceDocs() *SourceDocs {
	return &SourceDocs{files: make(map[string]*parsedFile)}
}

// Doc returns the doc comment of the function declaration containing fn's entry point.
// It returns an empty string when the declaration has no comment.
func (s *SourceDocs) Doc(fn any) (string, error) {
	f := runtimeFunc(fn)
	if f == nil {
		return "", fmt.Errorf("not a function: %T", fn)
	}
	path, line := f.FileLine(f.Entry())

	pf, err := s.parse(path)
	if err != nil {
		return "", err
	}
	return declDoc(pf, line), nil
}

func (s *SourceDocs) parse(path string) (*parsedFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pf, ok := s.files[path]; ok {
		return pf, nil
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to read slide source: %w", err)
	}
	pf := &parsedFile{fset: fset, file: file}
	s.files[path] = pf
	return pf, nil
}

// declDoc finds the top-level function spanning line.
// Closures resolve to no doc comment, since only declarations carry one.
func declDoc(pf *parsedFile, line int) string {
	for _, decl := range pf.file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Body == nil {
			continue
		}
		start := pf.fset.Position(fd.Pos()).Line
		end := pf.fset.Position(fd.End()).Line
		if line < start || line > end {
			continue
		}
		if inClosure(pf, fd, line) {
			return ""
		}
		return strings.TrimSpace(fd.Doc.Text())
	}
	return ""
}

func inClosure(pf *parsedFile, fd *ast.FuncDecl, line int) bool {
	found := false
	ast.Inspect(fd.Body, func(n ast.Node) bool {
		lit, ok := n.(*ast.FuncLit)
		if !ok || found {
			return !found
		}
		if pf.fset.Position(lit.Pos()).Line <= line && line <= pf.fset.Position(lit.End()).Line {
			found = true
		}
		return !found
	})
	return found
}

// StaticDocs is a DocSource backed by a map from function name to doc.
// It serves binaries shipped without their sources, and tests.
type StaticDocs map[string]string

func (d StaticDocs) Doc(fn any) (string, error) {
	return d[FuncName(fn)], nil
}
