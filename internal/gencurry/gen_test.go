package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/hashicorp/go-hclog"
)

func declaredNames(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	qt.Assert(t, qt.IsNil(err))
	names := make(map[string]bool)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names[ts.Name.Name] = true
				}
			}
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				recv := d.Recv.List[0].Type
				if idx, ok := recv.(*ast.IndexListExpr); ok {
					recv = idx.X
				}
				if idx, ok := recv.(*ast.IndexExpr); ok {
					recv = idx.X
				}
				name = recv.(*ast.Ident).Name + "." + name
			}
			names[name] = true
		}
	}
	return names
}

func TestRenderDeclaresEveryArity(t *testing.T) {
	cfg := config{pkg: "curry", max: 6}

	src, err := render(cfg, genCurries)
	qt.Assert(t, qt.IsNil(err))
	names := declaredNames(t, src)
	for n := 2; n <= cfg.max; n++ {
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Curry%d", n)]))
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Curry%dOf", n)]))
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Curry%d.Curried", n)]))
		for j := 1; j < n; j++ {
			qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Curry%d.Apply%d", n, j)]))
		}
		qt.Check(t, qt.IsFalse(names[fmt.Sprintf("Curry%d.Apply%d", n, n)]))
		for j := 1; j < n-1; j++ {
			qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Curry%d.Partial%d", n, j)]))
			qt.Check(t, qt.IsTrue(names[fmt.Sprintf("partial%dx%d.Clone", n, j)]))
		}
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Curry%d.cloneCallable", n)]))
		qt.Check(t, qt.IsFalse(names[fmt.Sprintf("Curry%d.Partial%d", n, n-1)]))
	}
	qt.Check(t, qt.IsFalse(names["Curry7"]))

	src, err = render(cfg, genFuncs)
	qt.Assert(t, qt.IsNil(err))
	names = declaredNames(t, src)
	for n := 1; n <= cfg.max; n++ {
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Func%d", n)]))
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Fn%d.Call", n)]))
	}

	src, err = render(cfg, genClosures)
	qt.Assert(t, qt.IsNil(err))
	names = declaredNames(t, src)
	qt.Check(t, qt.IsFalse(names["Closure1"]))
	for k := 2; k <= cfg.max; k++ {
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Closure%d.Call", k)]))
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Closure%d.Bound", k)]))
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Closure%d.cloneCallable", k)]))
	}

	src, err = render(cfg, genUncurries)
	qt.Assert(t, qt.IsNil(err))
	names = declaredNames(t, src)
	for n := 2; n <= cfg.max; n++ {
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("NewUncurry%d", n)]))
		qt.Check(t, qt.IsTrue(names[fmt.Sprintf("Uncurry%d.Apply%d", n, n-1)]))
	}
}

func TestPartialType(t *testing.T) {
	qt.Assert(t, qt.Equals(partialType(1, 2), "Closure2[T1, T2, R]"))
	qt.Assert(t, qt.Equals(partialType(1, 3), "Closure2[T1, T2, Closure3[T1, T2, T3, R]]"))
	qt.Assert(t, qt.Equals(partialType(2, 3), "Closure3[T1, T2, T3, R]"))
}

func TestChain(t *testing.T) {
	qt.Assert(t, qt.Equals(chain(1, 3), "func(T1) func(T2) func(T3) R"))
	qt.Assert(t, qt.Equals(chain(3, 3), "func(T3) R"))
	qt.Assert(t, qt.Equals(chain(4, 3), "R"))
}

func TestJoinArgs(t *testing.T) {
	qt.Assert(t, qt.Equals(joinArgs(1, 1), "a1"))
	qt.Assert(t, qt.Equals(joinArgs(1, 2), "a1 and a2"))
	qt.Assert(t, qt.Equals(joinArgs(1, 4), "a1 through a4"))
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-out", "dir", "-pkg", "fun", "-max", "4"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg, config{out: "dir", pkg: "fun", max: 4}))

	_, err = parseFlags([]string{"-max", "1"})
	qt.Assert(t, qt.ErrorMatches(err, `max arity must be between 2 and 9, got 1`))

	_, err = parseFlags([]string{"-max", "10"})
	qt.Assert(t, qt.ErrorMatches(err, `max arity must be between 2 and 9, got 10`))

	_, err = parseFlags([]string{"-pkg", ""})
	qt.Assert(t, qt.ErrorMatches(err, `package name must not be empty`))
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	err := run([]string{"-out", dir, "-max", "3"}, hclog.NewNullLogger())
	qt.Assert(t, qt.IsNil(err))

	for _, f := range files {
		src, err := os.ReadFile(filepath.Join(dir, f.name))
		qt.Assert(t, qt.IsNil(err))
		_, err = parser.ParseFile(token.NewFileSet(), f.name, src, 0)
		qt.Check(t, qt.IsNil(err), qt.Commentf("file %s", f.name))
	}
}

func TestRunReportsWriteErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	err := run([]string{"-out", missing}, hclog.NewNullLogger())
	qt.Assert(t, qt.ErrorMatches(err, `writing .*fn_gen.go: .*`))
}

func TestCheckedInFilesAreCurrent(t *testing.T) {
	cfg := config{pkg: "curry", max: 6}
	for _, f := range files {
		t.Run(f.name, func(t *testing.T) {
			want, err := render(cfg, f.gen)
			qt.Assert(t, qt.IsNil(err))
			got, err := os.ReadFile(filepath.Join("..", "..", "curry", f.name))
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(string(got), string(want)), qt.Commentf("run go generate ./curry"))
		})
	}
}
