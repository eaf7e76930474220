package library

import (
	"testing"

	"github.com/vbtools/vbp/basic/parser"
)

func TestRegistry(t *testing.T) {
	tests := []struct {
		lookup  string
		name    string
		kind    Kind
		returns string
	}{
		{"second", "Second", KindFunction, "Integer"},
		{"SECOND", "Second", KindFunction, "Integer"},
		{"atn", "Atn", KindFunction, "Double"},
		{"exp", "Exp", KindFunction, "Double"},
		{"fix", "Fix", KindFunction, "Variant"},
		{"chrw$", "ChrW$", KindFunction, "String"},
		{"lcase$", "LCase$", KindFunction, "String"},
		{"rtrim$", "RTrim$", KindFunction, "String"},
		{"trim$", "Trim$", KindFunction, "String"},
		{"msgbox", "MsgBox", KindFunction, "Integer"},
		{"open", "Open", KindStatement, ""},
	}
	for _, tt := range tests {
		b, ok := Lookup(tt.lookup)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.lookup)
			continue
		}
		if b.Name != tt.name || b.Kind != tt.kind || b.Returns != tt.returns {
			t.Errorf("Lookup(%q) = %+v, want %s %v %s", tt.lookup, b, tt.name, tt.kind, tt.returns)
		}
	}

	if _, ok := Lookup("NoSuchBuiltin"); ok {
		t.Error("Lookup found a builtin that does not exist")
	}
	if len(Names()) != len(tests)-1 {
		t.Errorf("Names() has %d entries, want %d", len(Names()), len(tests)-1)
	}
}

// parse is a shorthand for the shape tests below.
func parse(t *testing.T, src string) *parser.Tree {
	t.Helper()
	tree, failures := parser.FromText("example.bas", src)
	if len(failures) != 0 {
		t.Fatalf("parse %q: failures %v", src, failures)
	}
	return tree
}

func TestFunctionCallShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Second", "x = Second(Now)\n"},
		{"Atn", "pi = Atn(1) * 4\n"},
		{"Exp", "e = Exp(1)\n"},
		{"Fix", "n = Fix(-8.4)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.src)
			if !tree.ContainsKind(parser.KindCallExpression) {
				t.Fatalf("no call expression:\n%s", tree.DebugTree())
			}
			stmt := tree.FirstChild()
			if stmt.Kind != parser.KindAssignmentStatement {
				t.Errorf("statement is %v, want assignment", stmt.Kind)
			}
		})
	}
}

func TestDollarVariantCallShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		text string
	}{
		{"ChrW", "s = ChrW$(169)\n", "ChrW$"},
		{"LCase", "s = LCase$(title)\n", "LCase$"},
		{"RTrim", "s = RTrim$(raw)\n", "RTrim$"},
		{"Trim", "s = Trim$(raw)\n", "Trim$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.src)
			calls := tree.FindChildrenByKind(parser.KindCallExpression)
			if len(calls) != 1 {
				t.Fatalf("got %d call expressions, want 1:\n%s", len(calls), tree.DebugTree())
			}
			callee := calls[0].FirstChildOfKind(parser.KindIdentifierExpression)
			if callee == nil || callee.Text() != tt.text {
				t.Errorf("callee %v, want folded name %s", callee, tt.text)
			}
		})
	}
}

func TestNestedDollarCalls(t *testing.T) {
	tree := parse(t, "s = Trim$(RTrim$(s))\n")
	calls := tree.FindChildrenByKind(parser.KindCallExpression)
	if len(calls) != 2 {
		t.Fatalf("got %d call expressions, want 2:\n%s", len(calls), tree.DebugTree())
	}
}

func TestMsgBoxCommandShape(t *testing.T) {
	tree := parse(t, "MsgBox \"Saved\", vbInformation, \"Done\"\n")
	stmt := tree.FirstChild()
	if stmt.Kind != parser.KindCallStatement {
		t.Fatalf("statement is %v, want CallStatement:\n%s", stmt.Kind, tree.DebugTree())
	}
	args := stmt.FirstChildOfKind(parser.KindArgumentList)
	if args == nil {
		t.Fatal("no argument list")
	}
	if got := len(args.ChildrenOfKind(parser.KindArgument)); got != 3 {
		t.Errorf("got %d arguments, want 3", got)
	}
}

func TestOpenStatementShape(t *testing.T) {
	tree := parse(t, "Open \"data.txt\" For Input As #1\n")
	stmt := tree.FirstChild()
	if stmt.Kind != parser.KindKeywordStatement {
		t.Fatalf("statement is %v, want KeywordStatement:\n%s", stmt.Kind, tree.DebugTree())
	}
	if !stmt.ContainsKind(parser.KindOpenKeyword) || !stmt.ContainsKind(parser.KindStringLiteral) {
		t.Errorf("open statement lost its pieces:\n%s", stmt)
	}
}
