package parser

import (
	"unicode/utf8"
)

// Parser builds a lossless concrete syntax tree from the token stream.
// Trivia tokens are attached to the nearest enclosing node in source
// order, so the finished tree covers every input byte. Syntax
// violations are recorded as failures and the parse resynchronizes;
// it never panics and never stops early.
type Parser struct {
	origin   string
	tokens   []Token
	pos      int
	failures []Failure
}

// FromText parses one source text. The returned tree is non-nil for
// every decodable input, however malformed; failures describe anything
// that went wrong. Only undecodable input (invalid UTF-8) yields a nil
// tree.
func FromText(origin, source string) (*Tree, []Failure) {
	if !utf8.ValidString(source) {
		return nil, []Failure{{
			Origin:  origin,
			Message: "source is not valid UTF-8",
			Span:    Span{Offset: invalidByteOffset(source), Length: 1},
		}}
	}

	lexer := NewLexer([]byte(source), origin)
	p := &Parser{origin: origin, tokens: lexer.Tokenize()}
	p.failures = append(p.failures, lexer.Failures()...)

	root := p.parseRoot()
	return &Tree{Origin: origin, root: root}, p.failures
}

func invalidByteOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return 0
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: KindEndOfFile, Span: Span{Offset: p.endOffset()}}
	}
	return p.tokens[p.pos]
}

// peekSignificant returns the first token at or after the cursor that
// is not trivia. Newlines are significant.
func (p *Parser) peekSignificant() Token {
	for i := p.pos; i < len(p.tokens); i++ {
		if !p.tokens[i].Kind.IsTrivia() {
			return p.tokens[i]
		}
	}
	return Token{Kind: KindEndOfFile, Span: Span{Offset: p.endOffset()}}
}

// peekSignificantN returns the nth significant token after the current
// significant one, n=1 being its immediate significant successor.
func (p *Parser) peekSignificantN(n int) Token {
	seen := -1
	for i := p.pos; i < len(p.tokens); i++ {
		if p.tokens[i].Kind.IsTrivia() {
			continue
		}
		seen++
		if seen == n {
			return p.tokens[i]
		}
	}
	return Token{Kind: KindEndOfFile, Span: Span{Offset: p.endOffset()}}
}

func (p *Parser) endOffset() int {
	if len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[len(p.tokens)-1].Span.End()
}

func (p *Parser) at(kind SyntaxKind) bool {
	return p.peekSignificant().Kind == kind
}

func (p *Parser) atAny(kinds ...SyntaxKind) bool {
	current := p.peekSignificant().Kind
	for _, kind := range kinds {
		if current == kind {
			return true
		}
	}
	return false
}

func (p *Parser) atEOF() bool {
	return p.peekSignificant().Kind == KindEndOfFile
}

// eatTrivia moves trivia tokens in front of the cursor into parent.
func (p *Parser) eatTrivia(parent *Node) {
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind.IsTrivia() {
		parent.AddChild(NewTokenNode(p.tokens[p.pos]))
		p.pos++
	}
}

// consume appends the current raw token to parent and advances.
func (p *Parser) consume(parent *Node) Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		parent.AddChild(NewTokenNode(tok))
		p.pos++
	}
	return tok
}

// consumeSignificant attaches pending trivia to parent, then consumes
// the significant token under the cursor.
func (p *Parser) consumeSignificant(parent *Node) Token {
	p.eatTrivia(parent)
	return p.consume(parent)
}

// expect consumes the next significant token when it has the wanted
// kind. Otherwise it records a failure naming what was missing and
// leaves the cursor alone.
func (p *Parser) expect(parent *Node, kind SyntaxKind, what string) bool {
	if p.at(kind) {
		p.consumeSignificant(parent)
		return true
	}
	p.fail("expected " + what)
	return false
}

func (p *Parser) fail(message string) {
	tok := p.peekSignificant()
	span := tok.Span
	if span.Length == 0 {
		span.Length = 1
		if tok.Kind == KindEndOfFile {
			span.Length = 0
		}
	}
	p.failures = append(p.failures, Failure{Origin: p.origin, Message: message, Span: span})
}

func (p *Parser) failAt(message string, span Span) {
	p.failures = append(p.failures, Failure{Origin: p.origin, Message: message, Span: span})
}

// syncKinds are the tokens error recovery resynchronizes on: ends of
// logical lines and the keywords that close or continue a block.
var syncKinds = map[SyntaxKind]bool{
	KindNewline:       true,
	KindColonOperator: true,
	KindEndOfFile:     true,
	KindEndKeyword:    true,
	KindLoopKeyword:   true,
	KindWendKeyword:   true,
	KindNextKeyword:   true,
	KindElseKeyword:   true,
	KindElseIfKeyword: true,
	KindCaseKeyword:   true,
}

// sync skips forward to the next synchronization token. Skipped tokens
// are wrapped in an Unknown node appended to parent, so the tree stays
// lossless across the recovery.
func (p *Parser) sync(parent *Node) {
	unknown := &Node{Kind: KindUnknown}
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		if tok.Kind == KindEndOfFile || !tok.Kind.IsTrivia() && syncKinds[tok.Kind] {
			break
		}
		unknown.AddChild(NewTokenNode(tok))
		p.pos++
	}
	if len(unknown.Children) > 0 {
		parent.AddChild(unknown)
	}
}

// finishLine closes a single-line statement: trailing trivia, then the
// newline. Stray tokens before the line end are a failure and get
// wrapped for recovery. A colon or EOF ends the statement without
// consuming anything.
func (p *Parser) finishLine(parent *Node) {
	p.eatTrivia(parent)
	switch p.peek().Kind {
	case KindNewline:
		p.consume(parent)
	case KindColonOperator, KindEndOfFile:
	case KindElseKeyword, KindElseIfKeyword:
		// Single-line If: the Else belongs to the enclosing statement.
	default:
		p.fail("expected end of statement")
		p.sync(parent)
		p.eatTrivia(parent)
		if p.peek().Kind == KindNewline {
			p.consume(parent)
		}
	}
}

// parseRoot builds the Root node: statements, separators, trivia and
// blank lines as direct children, in source order.
func (p *Parser) parseRoot() *Node {
	root := &Node{Kind: KindRoot}
	p.parseStatementsInto(root, nil)
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind != KindEndOfFile {
		root.AddChild(NewTokenNode(p.tokens[p.pos]))
		p.pos++
	}
	return root
}

// parseStatementsInto fills parent with statements until EOF or until
// stop reports that the next significant token closes the enclosing
// block. Newlines, colons and trivia between statements become direct
// children of parent.
func (p *Parser) parseStatementsInto(parent *Node, stop func(SyntaxKind) bool) {
	lineStart := true
	for {
		p.eatTrivia(parent)
		tok := p.peek()
		switch tok.Kind {
		case KindEndOfFile:
			return
		case KindNewline:
			p.consume(parent)
			lineStart = true
			continue
		case KindColonOperator:
			p.consume(parent)
			lineStart = false
			continue
		}
		if stop != nil && stop(tok.Kind) {
			return
		}

		before := p.pos
		parent.AddChild(p.parseStatement(lineStart))
		lineStart = false
		if p.pos == before {
			// No progress; swallow one token so the loop terminates.
			p.fail("unexpected token")
			unknown := &Node{Kind: KindUnknown}
			p.consume(unknown)
			parent.AddChild(unknown)
		}
	}
}

// blockStop returns a stop predicate matching any of the given kinds.
func blockStop(kinds ...SyntaxKind) func(SyntaxKind) bool {
	set := make(map[SyntaxKind]bool, len(kinds))
	for _, kind := range kinds {
		set[kind] = true
	}
	return func(kind SyntaxKind) bool { return set[kind] }
}

// parseStatementList parses a block body into a StatementList node,
// stopping before any of the closing kinds.
func (p *Parser) parseStatementList(closers ...SyntaxKind) *Node {
	list := &Node{Kind: KindStatementList}
	p.parseStatementsInto(list, blockStop(closers...))
	if len(list.Children) == 0 {
		list.Span = Span{Offset: p.peek().Span.Offset}
	}
	return list
}

// parseStatement dispatches on the leading significant token. lineStart
// is true only for the first statement of a physical line; labels are
// recognized there and nowhere else.
func (p *Parser) parseStatement(lineStart bool) *Node {
	switch p.peekSignificant().Kind {
	case KindDimKeyword:
		return p.parseVariableDeclaration()
	case KindPrivateKeyword, KindPublicKeyword, KindFriendKeyword, KindStaticKeyword:
		return p.parseDeclarationWithModifiers()
	case KindSubKeyword:
		return p.parseProcedure(KindSubStatement, nil)
	case KindFunctionKeyword:
		return p.parseProcedure(KindFunctionStatement, nil)
	case KindPropertyKeyword:
		return p.parseProcedure(KindPropertyStatement, nil)
	case KindDeclareKeyword:
		return p.parseDeclare(nil)
	case KindConstKeyword:
		return p.parseConst(nil)
	case KindTypeKeyword:
		return p.parseTypeStatement(nil)
	case KindEnumKeyword:
		return p.parseEnumStatement(nil)
	case KindReDimKeyword:
		return p.parseReDim()
	case KindIfKeyword:
		return p.parseIf()
	case KindSelectKeyword:
		return p.parseSelectCase()
	case KindForKeyword:
		return p.parseFor()
	case KindDoKeyword:
		return p.parseDo()
	case KindWhileKeyword:
		return p.parseWhile()
	case KindWithKeyword:
		return p.parseWith()
	case KindCallKeyword:
		return p.parseExplicitCall()
	case KindSetKeyword:
		return p.parseSetOrLet(KindSetStatement)
	case KindLetKeyword:
		return p.parseSetOrLet(KindLetStatement)
	case KindOnKeyword:
		return p.parseOn()
	case KindGotoKeyword:
		return p.parseJump(KindGotoStatement)
	case KindGoSubKeyword:
		return p.parseJump(KindGoSubStatement)
	case KindReturnKeyword:
		return p.parseBareKeywordLine(KindReturnStatement)
	case KindResumeKeyword:
		return p.parseResume()
	case KindExitKeyword:
		return p.parseExit()
	case KindOptionKeyword:
		return p.parseOption()
	case KindAttributeKeyword:
		return p.parseAttribute()
	case KindEndKeyword:
		// A bare End statement; block closers never reach here because
		// statement lists stop before the End keyword.
		return p.parseKeywordStatement()
	case KindEndOfFile:
		stmt := &Node{Kind: KindUnknown, Span: Span{Offset: p.peek().Span.Offset}}
		return stmt
	}

	tok := p.peekSignificant()
	if keywordStatementKinds[tok.Kind] {
		return p.parseKeywordStatement()
	}

	if lineStart && isNameToken(tok.Kind) && p.peekSignificantN(1).Kind == KindColonOperator {
		return p.parseLabel()
	}

	if isExpressionStart(tok.Kind) {
		return p.parseAssignmentOrCall()
	}

	stmt := &Node{Kind: KindUnknown}
	p.fail("expected statement")
	p.sync(stmt)
	if len(stmt.Children) == 0 {
		stmt.Span = Span{Offset: tok.Span.Offset}
	}
	return stmt
}

// keywordStatementKinds lists the keywords that introduce flat
// statements parsed as the keyword plus its operand text to end of
// line: file and system commands with no block structure.
var keywordStatementKinds = map[SyntaxKind]bool{
	KindOpenKeyword:          true,
	KindCloseKeyword:         true,
	KindPrintKeyword:         true,
	KindInputKeyword:         true,
	KindLineKeyword:          true,
	KindWriteKeyword:         true,
	KindGetKeyword:           true,
	KindPutKeyword:           true,
	KindSeekKeyword:          true,
	KindLockKeyword:          true,
	KindUnlockKeyword:        true,
	KindWidthKeyword:         true,
	KindResetKeyword:         true,
	KindKillKeyword:          true,
	KindNameKeyword:          true,
	KindMkDirKeyword:         true,
	KindRmDirKeyword:         true,
	KindChDirKeyword:         true,
	KindChDriveKeyword:       true,
	KindFileCopyKeyword:      true,
	KindSetAttrKeyword:       true,
	KindSavePictureKeyword:   true,
	KindSaveSettingKeyword:   true,
	KindDeleteSettingKeyword: true,
	KindAppActivateKeyword:   true,
	KindSendKeysKeyword:      true,
	KindBeepKeyword:          true,
	KindStopKeyword:          true,
	KindRandomizeKeyword:     true,
	KindEraseKeyword:         true,
	KindLSetKeyword:          true,
	KindRSetKeyword:          true,
	KindMidKeyword:           true,
	KindMidBKeyword:          true,
	KindLoadKeyword:          true,
	KindUnloadKeyword:        true,
	KindRaiseEventKeyword:    true,
	KindImplementsKeyword:    true,
	KindEventKeyword:         true,
	KindDefBoolKeyword:       true,
	KindDefByteKeyword:       true,
	KindDefCurKeyword:        true,
	KindDefDateKeyword:       true,
	KindDefDblKeyword:        true,
	KindDefDecKeyword:        true,
	KindDefIntKeyword:        true,
	KindDefLngKeyword:        true,
	KindDefObjKeyword:        true,
	KindDefSngKeyword:        true,
	KindDefStrKeyword:        true,
	KindDefVarKeyword:        true,
	KindVersionKeyword:       true,
	KindBeginKeyword:         true,
	KindErrorKeyword:         true,
}

// parseKeywordStatement wraps a keyword-led command and everything up
// to the end of its logical line in one KeywordStatement node.
func (p *Parser) parseKeywordStatement() *Node {
	stmt := &Node{Kind: KindKeywordStatement}
	p.consumeToLineEnd(stmt)
	return stmt
}

// parseLabel parses a line label: a name followed by a colon at the
// start of a physical line.
func (p *Parser) parseLabel() *Node {
	stmt := &Node{Kind: KindLabelStatement}
	p.consumeSignificant(stmt)
	p.consumeSignificant(stmt)
	return stmt
}

// isNameToken reports whether the kind can serve as a name: a plain
// identifier, or a keyword appearing in a name position. The token
// keeps its lexed kind either way.
func isNameToken(kind SyntaxKind) bool {
	return kind == KindIdentifier || kind.IsKeyword() && !structuralKeywords[kind]
}

// structuralKeywords can never be reinterpreted as names: operators
// spelled as words and the punctuation keywords of block syntax.
var structuralKeywords = map[SyntaxKind]bool{
	KindAndKeyword:       true,
	KindOrKeyword:        true,
	KindXorKeyword:       true,
	KindEqvKeyword:       true,
	KindImpKeyword:       true,
	KindModKeyword:       true,
	KindNotKeyword:       true,
	KindIsKeyword:        true,
	KindLikeKeyword:      true,
	KindThenKeyword:      true,
	KindElseKeyword:      true,
	KindElseIfKeyword:    true,
	KindEndKeyword:       true,
	KindToKeyword:        true,
	KindStepKeyword:      true,
	KindNextKeyword:      true,
	KindLoopKeyword:      true,
	KindWendKeyword:      true,
	KindCaseKeyword:      true,
	KindAsKeyword:        true,
	KindNewKeyword:       true,
	KindAddressOfKeyword: true,
	KindTypeOfKeyword:    true,
	KindInKeyword:        true,
	KindEachKeyword:      true,
}

func isExpressionStart(kind SyntaxKind) bool {
	switch kind {
	case KindIdentifier, KindStringLiteral, KindIntegerLiteral, KindLongLiteral,
		KindSingleLiteral, KindDoubleLiteral, KindCurrencyLiteral, KindDateLiteral,
		KindLeftParenthesis, KindPeriodOperator, KindSubtractionOperator,
		KindAdditionOperator, KindNotKeyword, KindNewKeyword, KindAddressOfKeyword,
		KindTypeOfKeyword, KindMeKeyword, KindTrueKeyword, KindFalseKeyword,
		KindNothingKeyword, KindNullKeyword, KindEmptyKeyword, KindUnknown:
		return true
	}
	return isNameToken(kind)
}
