package parser

import (
	"math/rand"
	"strings"
	"testing"
)

func childKinds(n *Node) []SyntaxKind {
	kinds := make([]SyntaxKind, len(n.Children))
	for i, child := range n.Children {
		kinds[i] = child.Kind
	}
	return kinds
}

func kindsEqual(got, want []SyntaxKind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestParseSubWithShadowedBuiltin(t *testing.T) {
	src := "' entry point\nSub Main()\n    Dim Second\n    Second 42\nEnd Sub\n"
	tree, failures := FromText("test.bas", src)
	if tree == nil {
		t.Fatal("got nil tree")
	}
	if len(failures) != 0 {
		t.Fatalf("got failures %v, want none", failures)
	}
	if tree.Text() != src {
		t.Errorf("Text() = %q, want input reproduced", tree.Text())
	}

	rootKinds := childKinds(tree.Root())
	wantRoot := []SyntaxKind{KindEndOfLineComment, KindNewline, KindSubStatement}
	if !kindsEqual(rootKinds, wantRoot) {
		t.Fatalf("root children %v, want %v", rootKinds, wantRoot)
	}

	sub := tree.ChildAt(2)
	wantSub := []SyntaxKind{
		KindSubKeyword, KindWhitespace, KindIdentifier, KindParameterList,
		KindNewline, KindStatementList, KindEndKeyword, KindWhitespace,
		KindSubKeyword, KindNewline,
	}
	if !kindsEqual(childKinds(sub), wantSub) {
		t.Fatalf("sub children %v, want %v", childKinds(sub), wantSub)
	}

	params := sub.FirstChildOfKind(KindParameterList)
	wantParams := []SyntaxKind{KindLeftParenthesis, KindRightParenthesis}
	if !kindsEqual(childKinds(params), wantParams) {
		t.Errorf("parameter list children %v, want %v", childKinds(params), wantParams)
	}

	body := sub.FirstChildOfKind(KindStatementList)
	dim := body.FirstChildOfKind(KindDimStatement)
	if dim == nil {
		t.Fatal("no DimStatement in body")
	}
	name := dim.FirstChildOfKind(KindIdentifier)
	if name == nil || name.TokenText() != "Second" {
		t.Errorf("dim declares %v, want identifier Second", name)
	}

	call := body.FirstChildOfKind(KindCallStatement)
	if call == nil {
		t.Fatal("no CallStatement in body")
	}
	callee := call.FirstChildOfKind(KindIdentifierExpression)
	if callee == nil || !callee.ContainsKind(KindIdentifier) {
		t.Errorf("call target %v, want identifier expression", callee)
	}
	if !call.ContainsKind(KindIntegerLiteral) {
		t.Error("call lost its argument literal")
	}
}

func TestParseColonSeparatedStatements(t *testing.T) {
	src := "a = 1: b = 2\n"
	tree, failures := FromText("test.bas", src)
	if len(failures) != 0 {
		t.Fatalf("got failures %v, want none", failures)
	}
	want := []SyntaxKind{
		KindAssignmentStatement, KindColonOperator, KindWhitespace, KindAssignmentStatement,
	}
	if !kindsEqual(childKinds(tree.Root()), want) {
		t.Fatalf("root children %v, want %v", childKinds(tree.Root()), want)
	}
	if tree.Text() != src {
		t.Errorf("Text() = %q, want %q", tree.Text(), src)
	}
}

func TestParseSingleLineIfInsideBlockIf(t *testing.T) {
	src := "If a Then\nIf b Then c = 1\nElse\nd = 2\nEnd If\n"
	tree, failures := FromText("test.bas", src)
	if len(failures) != 0 {
		t.Fatalf("got failures %v, want none", failures)
	}
	if tree.Text() != src {
		t.Errorf("Text() = %q, want %q", tree.Text(), src)
	}

	outer := tree.FirstChild()
	if outer == nil || outer.Kind != KindIfStatement {
		t.Fatalf("first statement %v, want IfStatement", outer)
	}
	if outer.FirstChildOfKind(KindElseClause) == nil {
		t.Fatal("block If lost its Else branch")
	}

	inner := outer.FirstChildOfKind(KindStatementList).FirstChildOfKind(KindIfStatement)
	if inner == nil {
		t.Fatal("no nested IfStatement in the Then block")
	}
	if inner.FirstChildOfKind(KindElseClause) != nil {
		t.Error("single-line If claimed the Else of the enclosing block")
	}
	if inner.ContainsKind(KindUnknown) {
		t.Errorf("nested If carries Unknown:\n%s", inner)
	}
}

func TestParseColonAfterThen(t *testing.T) {
	src := "If a Then: b = 1\n"
	tree, failures := FromText("test.bas", src)
	if len(failures) != 0 {
		t.Fatalf("got failures %v, want none", failures)
	}
	if tree.Text() != src {
		t.Errorf("Text() = %q, want %q", tree.Text(), src)
	}
	stmt := tree.FirstChild()
	if stmt == nil || stmt.Kind != KindIfStatement {
		t.Fatalf("first statement %v, want IfStatement", stmt)
	}
	if stmt.FirstChildOfKind(KindAssignmentStatement) == nil {
		t.Error("no AssignmentStatement after the colon")
	}
	if stmt.ContainsKind(KindUnknown) {
		t.Errorf("colon after Then produced Unknown:\n%s", stmt)
	}
}

func TestParseUnterminatedString(t *testing.T) {
	src := `s = "abc`
	tree, failures := FromText("test.bas", src)
	if tree == nil {
		t.Fatal("got nil tree")
	}
	if len(failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(failures))
	}
	if failures[0].Span.Offset != 4 {
		t.Errorf("failure offset %d, want 4 (the opening quote)", failures[0].Span.Offset)
	}
	if !tree.ContainsKind(KindUnknown) {
		t.Error("malformed text not carried as Unknown")
	}
	if tree.Text() != src {
		t.Errorf("Text() = %q, want %q", tree.Text(), src)
	}
}

func TestParseKeywordAsIdentifierKeepsKind(t *testing.T) {
	src := "Dim Date\nDate = 1\n"
	tree, failures := FromText("test.bas", src)
	if len(failures) != 0 {
		t.Fatalf("got failures %v, want none", failures)
	}
	dim := tree.Root().FirstChildOfKind(KindDimStatement)
	if dim.FirstChildOfKind(KindDateKeyword) == nil {
		t.Error("declared name lost its lexed keyword kind")
	}
	assign := tree.Root().FirstChildOfKind(KindAssignmentStatement)
	target := assign.FirstChildOfKind(KindIdentifierExpression)
	if target == nil {
		t.Fatal("assignment target is not an identifier expression")
	}
	if target.FirstChildOfKind(KindDateKeyword) == nil {
		t.Error("reinterpreted keyword was retagged")
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     SyntaxKind
		failures int
	}{
		{"dim with type", "Dim x As Long\n", KindDimStatement, 0},
		{"dim list", "Dim a, b(10), c As String * 20\n", KindDimStatement, 0},
		{"private variable", "Private counter As Long\n", KindDimStatement, 0},
		{"static variable", "Static hits As Integer\n", KindDimStatement, 0},
		{"const", "Const Max As Long = 10, Min = 0\n", KindConstStatement, 0},
		{"public const", "Public Const Name = \"x\"\n", KindConstStatement, 0},
		{"sub", "Sub Go()\nEnd Sub\n", KindSubStatement, 0},
		{"function", "Private Function F(ByVal x As Long, Optional y As Long = 1) As Long\nEnd Function\n", KindFunctionStatement, 0},
		{"property get", "Property Get Count() As Long\nEnd Property\n", KindPropertyStatement, 0},
		{"property let", "Public Property Let Count(n As Long)\nEnd Property\n", KindPropertyStatement, 0},
		{"declare", "Declare Function GetTickCount Lib \"kernel32\" () As Long\n", KindDeclareStatement, 0},
		{"declare alias", "Private Declare Sub CopyMem Lib \"kernel32\" Alias \"RtlMoveMemory\" (d As Any, s As Any, ByVal n As Long)\n", KindDeclareStatement, 0},
		{"type block", "Type Point\n    x As Long\n    y As Long\nEnd Type\n", KindTypeStatement, 0},
		{"enum block", "Enum Color\n    Red = 1\n    Green\nEnd Enum\n", KindEnumStatement, 0},
		{"redim", "ReDim Preserve a(1 To 10)\n", KindReDimStatement, 0},
		{"if block", "If a > 0 Then\n    b = 1\nElseIf a < 0 Then\n    b = 2\nElse\n    b = 3\nEnd If\n", KindIfStatement, 0},
		{"single line if", "If a Then b = 1 Else b = 2\n", KindIfStatement, 0},
		{"select case", "Select Case x\nCase 1, 2 To 5\n    y = 1\nCase Is > 10\n    y = 2\nCase Else\n    y = 3\nEnd Select\n", KindSelectCaseStatement, 0},
		{"for", "For i = 1 To 10 Step 2\n    s = s + i\nNext i\n", KindForStatement, 0},
		{"for each", "For Each item In coll\n    n = n + 1\nNext\n", KindForEachStatement, 0},
		{"do while", "Do While x > 0\n    x = x - 1\nLoop\n", KindDoStatement, 0},
		{"do loop until", "Do\n    x = x + 1\nLoop Until x = 5\n", KindDoStatement, 0},
		{"while wend", "While x < 3\n    x = x + 1\nWend\n", KindWhileStatement, 0},
		{"with", "With obj\n    .Name = \"a\"\n    .Save\nEnd With\n", KindWithStatement, 0},
		{"set", "Set obj = New Collection\n", KindSetStatement, 0},
		{"let", "Let x = 2\n", KindLetStatement, 0},
		{"call", "Call Foo(1, 2)\n", KindCallStatement, 0},
		{"implicit call", "MsgBox \"hi\", vbOKOnly\n", KindCallStatement, 0},
		{"named argument", "Foo x:=1\n", KindCallStatement, 0},
		{"member assignment", "rec.Value = 3\n", KindAssignmentStatement, 0},
		{"index assignment", "a(1) = 2\n", KindAssignmentStatement, 0},
		{"on error goto", "On Error GoTo handler\n", KindOnErrorStatement, 0},
		{"on error resume next", "On Error Resume Next\n", KindOnErrorStatement, 0},
		{"on goto", "On x GoTo first, second\n", KindOnGoToStatement, 0},
		{"goto", "GoTo done\n", KindGotoStatement, 0},
		{"gosub", "GoSub cleanup\n", KindGoSubStatement, 0},
		{"return", "Return\n", KindReturnStatement, 0},
		{"resume next", "Resume Next\n", KindResumeStatement, 0},
		{"exit sub", "Exit Sub\n", KindExitStatement, 0},
		{"label", "handler:\n", KindLabelStatement, 0},
		{"option explicit", "Option Explicit\n", KindOptionStatement, 0},
		{"attribute", "Attribute VB_Name = \"Module1\"\n", KindAttributeStatement, 0},
		{"open statement", "Open \"f.txt\" For Output As #1\n", KindKeywordStatement, 0},
		{"stop", "Stop\n", KindKeywordStatement, 0},
		{"erase", "Erase arr\n", KindKeywordStatement, 0},
		{"missing variable name", "Dim ,\n", KindDimStatement, 1},
		{"unclosed sub", "Sub f()\nx = 1\n", KindSubStatement, 1},
		{"missing then", "If a\nb = 1\nEnd If\n", KindIfStatement, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, failures := FromText("test.bas", tt.input)
			if tree == nil {
				t.Fatal("got nil tree")
			}
			if len(failures) != tt.failures {
				t.Errorf("got %d failures %v, want %d", len(failures), failures, tt.failures)
			}
			first := tree.FirstChild()
			if first == nil || first.Kind != tt.kind {
				t.Fatalf("first statement %v, want %v\n%s", first, tt.kind, tree.DebugTree())
			}
			if tree.Text() != tt.input {
				t.Errorf("Text() = %q, want %q", tree.Text(), tt.input)
			}
		})
	}
}

// parseValue parses "x = <src>\n" and returns the value expression of
// the assignment.
func parseValue(t *testing.T, src string) *Node {
	t.Helper()
	tree, failures := FromText("test.bas", "x = "+src+"\n")
	if len(failures) != 0 {
		t.Fatalf("parse %q: failures %v", src, failures)
	}
	assign := tree.FirstChild()
	if assign == nil || assign.Kind != KindAssignmentStatement {
		t.Fatalf("parse %q: no assignment\n%s", src, tree.DebugTree())
	}
	return assign.Children[len(assign.Children)-2]
}

func TestExpressionPrecedence(t *testing.T) {
	t.Run("multiplication binds tighter than addition", func(t *testing.T) {
		value := parseValue(t, "a + b * c")
		if value.Kind != KindBinaryExpression || value.FirstChildOfKind(KindAdditionOperator) == nil {
			t.Fatalf("top operator wrong:\n%s", value)
		}
		right := value.FirstChildOfKind(KindBinaryExpression)
		if right == nil || right.FirstChildOfKind(KindMultiplicationOperator) == nil {
			t.Errorf("b * c not grouped:\n%s", value)
		}
	})

	t.Run("exponentiation is left associative", func(t *testing.T) {
		value := parseValue(t, "2 ^ 3 ^ 2")
		if value.Kind != KindBinaryExpression || value.FirstChildOfKind(KindExponentiationOperator) == nil {
			t.Fatalf("top operator wrong:\n%s", value)
		}
		if value.Children[0].Kind != KindBinaryExpression {
			t.Errorf("left operand not grouped:\n%s", value)
		}
	})

	t.Run("Not binds tighter than And", func(t *testing.T) {
		value := parseValue(t, "Not a And b")
		if value.Kind != KindBinaryExpression || value.FirstChildOfKind(KindAndKeyword) == nil {
			t.Fatalf("top operator wrong:\n%s", value)
		}
		if value.Children[0].Kind != KindUnaryExpression {
			t.Errorf("Not a not grouped:\n%s", value)
		}
	})

	t.Run("negation binds looser than exponent", func(t *testing.T) {
		value := parseValue(t, "-x ^ 2")
		if value.Kind != KindUnaryExpression {
			t.Fatalf("top is %v, want UnaryExpression", value.Kind)
		}
		if value.FirstChildOfKind(KindBinaryExpression) == nil {
			t.Errorf("x ^ 2 not grouped:\n%s", value)
		}
	})

	t.Run("comparison inside value expression", func(t *testing.T) {
		value := parseValue(t, "a = b")
		if value.Kind != KindBinaryExpression || value.FirstChildOfKind(KindEqualityOperator) == nil {
			t.Errorf("a = b value is %v, want comparison", value.Kind)
		}
	})
}

func TestExpressionForms(t *testing.T) {
	tests := []struct {
		input string
		kind  SyntaxKind
	}{
		{"New Collection", KindNewExpression},
		{"AddressOf Handler", KindAddressOfExpression},
		{"TypeOf o Is Collection", KindTypeOfExpression},
		{"(a)", KindParenthesizedExpression},
		{"obj.Item(1).Name", KindMemberAccessExpression},
		{"Trim$(s)", KindCallExpression},
		{"Me", KindIdentifierExpression},
		{"Nothing", KindLiteralExpression},
		{"#1/2/2026#", KindLiteralExpression},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value := parseValue(t, tt.input)
			if value.Kind != tt.kind {
				t.Errorf("got %v, want %v\n%s", value.Kind, tt.kind, value)
			}
		})
	}
}

func TestDollarSuffixFolding(t *testing.T) {
	value := parseValue(t, "Trim$(s)")
	callee := value.FirstChildOfKind(KindIdentifierExpression)
	if callee == nil {
		t.Fatalf("no callee:\n%s", value)
	}
	if callee.FirstChildOfKind(KindDollarSign) == nil {
		t.Errorf("dollar sign not folded into the name:\n%s", callee)
	}
	if callee.Text() != "Trim$" {
		t.Errorf("callee text %q, want Trim$", callee.Text())
	}
}

func TestLineContinuation(t *testing.T) {
	src := "x = 1 _\n    + 2\n"
	tree, failures := FromText("test.bas", src)
	if len(failures) != 0 {
		t.Fatalf("got failures %v, want none", failures)
	}
	assign := tree.FirstChild()
	if assign == nil || assign.Kind != KindAssignmentStatement {
		t.Fatalf("no assignment:\n%s", tree.DebugTree())
	}
	if !assign.ContainsKind(KindLineContinuation) {
		t.Error("continuation trivia not carried in the statement")
	}
	if tree.Text() != src {
		t.Errorf("Text() = %q, want %q", tree.Text(), src)
	}
}

func TestFromTextRejectsInvalidUTF8(t *testing.T) {
	tree, failures := FromText("test.bas", "x = 1\n\xff\xfe")
	if tree != nil {
		t.Error("got a tree for undecodable input, want nil")
	}
	if len(failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(failures))
	}
	if failures[0].Span.Offset != 6 {
		t.Errorf("failure offset %d, want 6", failures[0].Span.Offset)
	}
}

func TestFailureError(t *testing.T) {
	_, failures := FromText("mod.bas", `s = "abc`)
	if len(failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(failures))
	}
	want := "mod.bas:4: unterminated string literal"
	if failures[0].Error() != want {
		t.Errorf("got %q, want %q", failures[0].Error(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"\n",
		"   \t  \n\n",
		"Sub Main()\n    Dim x As Long\n    x = x + 1 ' bump\nEnd Sub\n",
		"If a Then: b = 1: End If",
		"s = \"unterminated",
		"x = #not a date\ny = 2\n",
		"a = 1 _\n  + 2\r\nRem trailing\r\n",
		"~ stray @ bytes $ here\n",
		"For i=1 To 3: s=s+i: Next\n",
		"Select Case x\nCase Else\nEnd Select\n",
		"Type T\n  n As Long\nEnd Type",
		"Do\nLoop While Not done\n",
	}
	for _, src := range sources {
		tree, _ := FromText("test.bas", src)
		if tree == nil {
			t.Fatalf("nil tree for %q", src)
		}
		if tree.Text() != src {
			t.Errorf("Text() = %q, want %q", tree.Text(), src)
		}
	}
}

// TestRoundTripGenerated stitches random fragments, valid and broken,
// into programs and checks the tree always reproduces them exactly.
func TestRoundTripGenerated(t *testing.T) {
	fragments := []string{
		"Dim x", "x = 1", "If a Then\n", "End If\n", "' c", "Rem x",
		"\"str\"", "\"open", ":", "\n", "\r\n", " ", "\t", "_\n",
		"#1/1/2020#", "#", "Sub f()\n", "End Sub\n", "&HFF", "1.5e3",
		")", "(", "<>", "<=", "@", "~", "a.b", "Trim$", "For i = 1 To 2\n",
		"Next\n", "Do\n", "Loop\n", "Select Case x\n", "End Select\n",
		"Case 1\n", "Else", "End", "With o\n", "End With\n", "42", "+", "-",
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 250; i++ {
		var b strings.Builder
		for n := rng.Intn(30); n > 0; n-- {
			b.WriteString(fragments[rng.Intn(len(fragments))])
		}
		src := b.String()
		tree, _ := FromText("gen.bas", src)
		if tree == nil {
			t.Fatalf("nil tree for %q", src)
		}
		if tree.Text() != src {
			t.Fatalf("iteration %d: Text() = %q, want %q", i, tree.Text(), src)
		}
	}
}
