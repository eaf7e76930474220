package parser

import (
	"strings"
	"testing"
)

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []SyntaxKind
	}{
		{
			input:    "Dim count",
			expected: []SyntaxKind{KindDimKeyword, KindWhitespace, KindIdentifier},
		},
		{
			input:    "dIm X",
			expected: []SyntaxKind{KindDimKeyword, KindWhitespace, KindIdentifier},
		},
		{
			input:    "x = 1",
			expected: []SyntaxKind{KindIdentifier, KindWhitespace, KindEqualityOperator, KindWhitespace, KindIntegerLiteral},
		},
		{
			input:    "10 10& 3! 2# 5@ 1.5 1e3 2.5E-2",
			expected: []SyntaxKind{KindIntegerLiteral, KindWhitespace, KindLongLiteral, KindWhitespace, KindSingleLiteral, KindWhitespace, KindDoubleLiteral, KindWhitespace, KindCurrencyLiteral, KindWhitespace, KindSingleLiteral, KindWhitespace, KindSingleLiteral, KindWhitespace, KindSingleLiteral},
		},
		{
			input:    "&HFF &HFF& &o17",
			expected: []SyntaxKind{KindIntegerLiteral, KindWhitespace, KindLongLiteral, KindWhitespace, KindIntegerLiteral},
		},
		{
			input:    `"a""b"`,
			expected: []SyntaxKind{KindStringLiteral},
		},
		{
			input:    "#1/2/2026#",
			expected: []SyntaxKind{KindDateLiteral},
		},
		{
			input:    "# foo",
			expected: []SyntaxKind{KindOctothorpe, KindWhitespace, KindIdentifier},
		},
		{
			input:    "' a comment",
			expected: []SyntaxKind{KindEndOfLineComment},
		},
		{
			input:    "Rem old style",
			expected: []SyntaxKind{KindRemComment},
		},
		{
			input:    "a _\nb",
			expected: []SyntaxKind{KindIdentifier, KindWhitespace, KindLineContinuation, KindIdentifier},
		},
		{
			input:    "a _ b",
			expected: []SyntaxKind{KindIdentifier, KindWhitespace, KindUnderscore, KindWhitespace, KindIdentifier},
		},
		{
			input:    "a <> b",
			expected: []SyntaxKind{KindIdentifier, KindWhitespace, KindInequalityOperator, KindWhitespace, KindIdentifier},
		},
		{
			input:    "a <= b >= c",
			expected: []SyntaxKind{KindIdentifier, KindWhitespace, KindLessThanOrEqualOperator, KindWhitespace, KindIdentifier, KindWhitespace, KindGreaterThanOrEqualOperator, KindWhitespace, KindIdentifier},
		},
		{
			input:    "a: b",
			expected: []SyntaxKind{KindIdentifier, KindColonOperator, KindWhitespace, KindIdentifier},
		},
		{
			input:    "x\r\ny\rz\n",
			expected: []SyntaxKind{KindIdentifier, KindNewline, KindIdentifier, KindNewline, KindIdentifier, KindNewline},
		},
		{
			input:    `a \ b ^ c`,
			expected: []SyntaxKind{KindIdentifier, KindWhitespace, KindBackwardSlashOperator, KindWhitespace, KindIdentifier, KindWhitespace, KindExponentiationOperator, KindWhitespace, KindIdentifier},
		},
		{
			input:    "Trim$",
			expected: []SyntaxKind{KindIdentifier, KindDollarSign},
		},
		{
			input:    "Timer",
			expected: []SyntaxKind{KindIdentifier},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.bas")
			var kinds []SyntaxKind
			for _, tok := range lexer.Tokenize() {
				if tok.Kind == KindEndOfFile {
					break
				}
				kinds = append(kinds, tok.Kind)
			}
			if len(kinds) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d %v", len(kinds), kinds, len(tt.expected), tt.expected)
			}
			for i := range kinds {
				if kinds[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, kinds[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerPreservesSpelling(t *testing.T) {
	lexer := NewLexer([]byte("DIM Count"), "test.bas")
	tok := lexer.NextToken()
	if tok.Kind != KindDimKeyword {
		t.Fatalf("got %v, want DimKeyword", tok.Kind)
	}
	if tok.Text != "DIM" {
		t.Errorf("got %q, want original spelling preserved", tok.Text)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	lexer := NewLexer([]byte(`s = "abc`), "test.bas")
	tokens := lexer.Tokenize()
	last := tokens[len(tokens)-2]
	if last.Kind != KindUnknown {
		t.Fatalf("got %v, want Unknown", last.Kind)
	}
	failures := lexer.Failures()
	if len(failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(failures))
	}
	if failures[0].Span.Offset != 4 {
		t.Errorf("failure at offset %d, want 4 (the opening quote)", failures[0].Span.Offset)
	}
}

func TestLexerLossless(t *testing.T) {
	inputs := []string{
		"Sub Main()\n    Dim x As Long\n    x = 1\nEnd Sub\n",
		"If a Then: b = 1: End If",
		`s = "unterminated`,
		"x = #not a date\ny = 2",
		"a = 1 _\n  + 2 ' sum\r\n",
		"~ @ $ weird ~~ bytes",
	}
	for _, input := range inputs {
		lexer := NewLexer([]byte(input), "test.bas")
		var b strings.Builder
		for _, tok := range lexer.Tokenize() {
			b.WriteString(tok.Text)
		}
		if b.String() != input {
			t.Errorf("token texts reconstruct %q, want %q", b.String(), input)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		kind SyntaxKind
	}{
		{"Sub", KindSubKeyword},
		{"SUB", KindSubKeyword},
		{"elseif", KindElseIfKeyword},
		{"Second", KindIdentifier},
		{"TypeOf", KindTypeOfKeyword},
		{"xyzzy", KindIdentifier},
	}
	for _, tt := range tests {
		if got := LookupKeyword(tt.word); got != tt.kind {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.word, got, tt.kind)
		}
	}
}
