package parser

// Lexer turns source text into a total, ordered token stream: every
// input byte lands in exactly one token, trivia included, so the tree
// built from the stream can reproduce the input byte-for-byte. Lexing
// never aborts; malformed input yields Unknown tokens plus failures.
type Lexer struct {
	input    []byte
	origin   string
	pos      int
	failures []Failure
}

func NewLexer(input []byte, origin string) *Lexer {
	return &Lexer{input: input, origin: origin}
}

// Failures returns the lexical failures recorded so far.
func (l *Lexer) Failures() []Failure {
	return l.failures
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		l.pos++
	}
}

func (l *Lexer) token(kind SyntaxKind, start int) Token {
	return Token{
		Kind: kind,
		Text: string(l.input[start:l.pos]),
		Span: Span{Offset: start, Length: l.pos - start},
	}
}

func (l *Lexer) fail(message string, span Span) {
	l.failures = append(l.failures, Failure{Origin: l.origin, Message: message, Span: span})
}

// NextToken scans and returns the next token. After the input is
// exhausted it returns EndOfFile tokens with an empty span.
func (l *Lexer) NextToken() Token {
	start := l.pos

	if l.pos >= len(l.input) {
		return Token{Kind: KindEndOfFile, Span: Span{Offset: start}}
	}

	ch := l.peek()

	if ch == ' ' || ch == '\t' {
		return l.scanWhitespace(start)
	}
	if ch == '\r' || ch == '\n' {
		return l.scanNewline(start)
	}
	if ch == '\'' {
		return l.scanLineComment(start)
	}
	if ch == '_' {
		return l.scanUnderscore(start)
	}
	if isLetter(ch) {
		return l.scanWord(start)
	}
	if isDigit(ch) {
		return l.scanNumber(start)
	}
	if ch == '"' {
		return l.scanStringLiteral(start)
	}
	if ch == '#' {
		return l.scanDateLiteral(start)
	}
	if ch == '&' && (l.peekN(1) == 'H' || l.peekN(1) == 'h' || l.peekN(1) == 'O' || l.peekN(1) == 'o') {
		return l.scanRadixLiteral(start)
	}

	return l.scanSymbol(start)
}

func (l *Lexer) scanWhitespace(start int) Token {
	for l.peek() == ' ' || l.peek() == '\t' {
		l.advance()
	}
	return l.token(KindWhitespace, start)
}

func (l *Lexer) scanNewline(start int) Token {
	if l.peek() == '\r' {
		l.advance()
		if l.peek() == '\n' {
			l.advance()
		}
	} else {
		l.advance()
	}
	return l.token(KindNewline, start)
}

func (l *Lexer) scanLineComment(start int) Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '\n' && l.peek() != '\r' {
		l.advance()
	}
	return l.token(KindEndOfLineComment, start)
}

// scanUnderscore distinguishes a line continuation, underscore plus
// optional blanks plus newline folded into one trivia token, from a
// lone underscore symbol.
func (l *Lexer) scanUnderscore(start int) Token {
	n := 1
	for l.peekN(n) == ' ' || l.peekN(n) == '\t' {
		n++
	}
	if l.peekN(n) == '\r' || l.peekN(n) == '\n' {
		l.advanceN(n)
		if l.peek() == '\r' {
			l.advance()
			if l.peek() == '\n' {
				l.advance()
			}
		} else {
			l.advance()
		}
		return l.token(KindLineContinuation, start)
	}
	l.advance()
	return l.token(KindUnderscore, start)
}

func (l *Lexer) scanWord(start int) Token {
	for isLetter(l.peek()) || isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	word := string(l.input[start:l.pos])
	if lowerASCII(word) == "rem" {
		for l.peek() != 0 && l.peek() != '\n' && l.peek() != '\r' {
			l.advance()
		}
		return l.token(KindRemComment, start)
	}
	return l.token(LookupKeyword(word), start)
}

// scanNumber reads a numeric literal: digits, optional fraction,
// optional E or D exponent, optional type suffix. The suffix picks the
// literal kind; an unsuffixed number with a fraction or exponent is a
// Single, an unsuffixed integral number an Integer.
func (l *Lexer) scanNumber(start int) Token {
	fractional := false
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		fractional = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	if e := l.peek(); e == 'e' || e == 'E' || e == 'd' || e == 'D' {
		n := 1
		if l.peekN(n) == '+' || l.peekN(n) == '-' {
			n++
		}
		if isDigit(l.peekN(n)) {
			fractional = true
			l.advanceN(n)
			for isDigit(l.peek()) {
				l.advance()
			}
		}
	}

	switch l.peek() {
	case '%':
		l.advance()
		return l.token(KindIntegerLiteral, start)
	case '&':
		l.advance()
		return l.token(KindLongLiteral, start)
	case '!':
		l.advance()
		return l.token(KindSingleLiteral, start)
	case '#':
		l.advance()
		return l.token(KindDoubleLiteral, start)
	case '@':
		l.advance()
		return l.token(KindCurrencyLiteral, start)
	}
	if fractional {
		return l.token(KindSingleLiteral, start)
	}
	return l.token(KindIntegerLiteral, start)
}

// scanRadixLiteral reads &H hex and &O octal literals, with an optional
// & suffix forcing Long.
func (l *Lexer) scanRadixLiteral(start int) Token {
	hex := l.peekN(1) == 'H' || l.peekN(1) == 'h'
	n := 2
	digits := 0
	for {
		ch := l.peekN(n)
		if hex && isHexDigit(ch) || !hex && ch >= '0' && ch <= '7' {
			n++
			digits++
			continue
		}
		break
	}
	if digits == 0 {
		l.advance()
		return l.token(KindAmpersand, start)
	}
	l.advanceN(n)
	if l.peek() == '&' {
		l.advance()
		return l.token(KindLongLiteral, start)
	}
	return l.token(KindIntegerLiteral, start)
}

// scanStringLiteral reads a double-quoted string with doubled-quote
// escapes. A newline or end of input before the closing quote makes the
// text an Unknown token and records a failure at the opening quote.
func (l *Lexer) scanStringLiteral(start int) Token {
	l.advance()
	for {
		ch := l.peek()
		if ch == 0 || ch == '\n' || ch == '\r' {
			l.fail("unterminated string literal", Span{Offset: start, Length: 1})
			return l.token(KindUnknown, start)
		}
		if ch == '"' {
			if l.peekN(1) == '"' {
				l.advanceN(2)
				continue
			}
			l.advance()
			return l.token(KindStringLiteral, start)
		}
		l.advance()
	}
}

// scanDateLiteral reads a #...# date literal confined to one line. When
// no closing octothorpe appears before the line ends, the opening
// octothorpe is emitted as a plain symbol instead.
func (l *Lexer) scanDateLiteral(start int) Token {
	n := 1
	for {
		ch := l.peekN(n)
		if ch == 0 || ch == '\n' || ch == '\r' {
			l.advance()
			return l.token(KindOctothorpe, start)
		}
		if ch == '#' {
			l.advanceN(n + 1)
			return l.token(KindDateLiteral, start)
		}
		n++
	}
}

func (l *Lexer) scanSymbol(start int) Token {
	ch := l.advance()
	switch ch {
	case '<':
		if l.peek() == '>' {
			l.advance()
			return l.token(KindInequalityOperator, start)
		}
		if l.peek() == '=' {
			l.advance()
			return l.token(KindLessThanOrEqualOperator, start)
		}
		return l.token(KindLessThanOperator, start)
	case '>':
		if l.peek() == '=' {
			l.advance()
			return l.token(KindGreaterThanOrEqualOperator, start)
		}
		return l.token(KindGreaterThanOperator, start)
	case '=':
		return l.token(KindEqualityOperator, start)
	case '+':
		return l.token(KindAdditionOperator, start)
	case '-':
		return l.token(KindSubtractionOperator, start)
	case '*':
		return l.token(KindMultiplicationOperator, start)
	case '/':
		return l.token(KindDivisionOperator, start)
	case '\\':
		return l.token(KindBackwardSlashOperator, start)
	case '^':
		return l.token(KindExponentiationOperator, start)
	case '&':
		return l.token(KindAmpersand, start)
	case '.':
		return l.token(KindPeriodOperator, start)
	case ':':
		return l.token(KindColonOperator, start)
	case ',':
		return l.token(KindComma, start)
	case ';':
		return l.token(KindSemicolon, start)
	case '(':
		return l.token(KindLeftParenthesis, start)
	case ')':
		return l.token(KindRightParenthesis, start)
	case '[':
		return l.token(KindLeftSquareBracket, start)
	case ']':
		return l.token(KindRightSquareBracket, start)
	case '{':
		return l.token(KindLeftCurlyBrace, start)
	case '}':
		return l.token(KindRightCurlyBrace, start)
	case '!':
		return l.token(KindExclamationMark, start)
	case '$':
		return l.token(KindDollarSign, start)
	case '%':
		return l.token(KindPercent, start)
	case '@':
		return l.token(KindAtSign, start)
	}
	l.fail("unexpected character", Span{Offset: start, Length: l.pos - start})
	return l.token(KindUnknown, start)
}

// Tokenize runs the lexer over the whole input and returns every token
// up to and including the final EndOfFile marker.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == KindEndOfFile {
			return tokens
		}
	}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}
