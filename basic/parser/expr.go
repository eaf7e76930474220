package parser

// Operator binding powers, loosest to tightest. Comparison operators
// share one level; Not sits between comparisons and And.
const (
	precImp        = 1
	precEqv        = 2
	precXor        = 3
	precOr         = 4
	precAnd        = 5
	precNot        = 6
	precComparison = 7
	precConcat     = 8
	precAdditive   = 9
	precMod        = 10
	precIntDiv     = 11
	precMultiply   = 12
	precNegate     = 13
	precExponent   = 14
)

func binaryPrecedence(kind SyntaxKind) int {
	switch kind {
	case KindImpKeyword:
		return precImp
	case KindEqvKeyword:
		return precEqv
	case KindXorKeyword:
		return precXor
	case KindOrKeyword:
		return precOr
	case KindAndKeyword:
		return precAnd
	case KindEqualityOperator, KindInequalityOperator, KindLessThanOperator,
		KindGreaterThanOperator, KindLessThanOrEqualOperator,
		KindGreaterThanOrEqualOperator, KindIsKeyword, KindLikeKeyword:
		return precComparison
	case KindAmpersand:
		return precConcat
	case KindAdditionOperator, KindSubtractionOperator:
		return precAdditive
	case KindModKeyword:
		return precMod
	case KindBackwardSlashOperator:
		return precIntDiv
	case KindMultiplicationOperator, KindDivisionOperator:
		return precMultiply
	case KindExponentiationOperator:
		return precExponent
	}
	return 0
}

func (p *Parser) parseExpression() *Node {
	return p.parseBinaryExpression(precImp)
}

// parseBinaryExpression is the precedence-climbing loop: operators at
// or above minPrec fold into left-associated BinaryExpression nodes.
func (p *Parser) parseBinaryExpression(minPrec int) *Node {
	left := p.parseUnaryExpression()
	for {
		prec := binaryPrecedence(p.peekSignificant().Kind)
		if prec == 0 || prec < minPrec {
			return left
		}
		node := &Node{Kind: KindBinaryExpression}
		node.AddChild(left)
		p.consumeSignificant(node)
		node.AddChild(p.parseBinaryExpression(prec + 1))
		left = node
	}
}

func (p *Parser) parseUnaryExpression() *Node {
	switch p.peekSignificant().Kind {
	case KindNotKeyword:
		node := &Node{Kind: KindUnaryExpression}
		p.consumeSignificant(node)
		node.AddChild(p.parseBinaryExpression(precComparison))
		return node
	case KindSubtractionOperator, KindAdditionOperator:
		node := &Node{Kind: KindUnaryExpression}
		p.consumeSignificant(node)
		node.AddChild(p.parseBinaryExpression(precExponent))
		return node
	}
	return p.parsePostfixExpression()
}

// parsePostfixExpression parses a primary followed by any chain of
// member accesses, bang accesses and call argument lists.
func (p *Parser) parsePostfixExpression() *Node {
	expr := p.parsePrimaryExpression()
	for {
		switch p.peekSignificant().Kind {
		case KindPeriodOperator, KindExclamationMark:
			node := &Node{Kind: KindMemberAccessExpression}
			node.AddChild(expr)
			p.consumeSignificant(node)
			if isNameToken(p.peekSignificant().Kind) {
				p.parseNameInto(node)
			} else {
				p.fail("expected member name")
				return node
			}
			expr = node
		case KindLeftParenthesis:
			node := &Node{Kind: KindCallExpression}
			node.AddChild(expr)
			node.AddChild(p.parseParenArgumentList())
			expr = node
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimaryExpression() *Node {
	tok := p.peekSignificant()
	switch tok.Kind {
	case KindStringLiteral, KindIntegerLiteral, KindLongLiteral, KindSingleLiteral,
		KindDoubleLiteral, KindCurrencyLiteral, KindDateLiteral,
		KindTrueKeyword, KindFalseKeyword, KindNothingKeyword,
		KindNullKeyword, KindEmptyKeyword:
		node := &Node{Kind: KindLiteralExpression}
		p.consumeSignificant(node)
		return node
	case KindMeKeyword:
		node := &Node{Kind: KindIdentifierExpression}
		p.consumeSignificant(node)
		return node
	case KindLeftParenthesis:
		node := &Node{Kind: KindParenthesizedExpression}
		p.consumeSignificant(node)
		node.AddChild(p.parseExpression())
		p.expect(node, KindRightParenthesis, "closing parenthesis")
		return node
	case KindNewKeyword:
		node := &Node{Kind: KindNewExpression}
		p.consumeSignificant(node)
		p.parseQualifiedNameInto(node, "type name")
		return node
	case KindAddressOfKeyword:
		node := &Node{Kind: KindAddressOfExpression}
		p.consumeSignificant(node)
		node.AddChild(p.parsePostfixExpression())
		return node
	case KindTypeOfKeyword:
		node := &Node{Kind: KindTypeOfExpression}
		p.consumeSignificant(node)
		node.AddChild(p.parsePostfixExpression())
		p.expect(node, KindIsKeyword, "Is")
		p.parseQualifiedNameInto(node, "type name")
		return node
	case KindPeriodOperator:
		// Leading-dot member access, resolved against the enclosing
		// With block at a later stage.
		node := &Node{Kind: KindMemberAccessExpression}
		p.consumeSignificant(node)
		if isNameToken(p.peekSignificant().Kind) {
			p.parseNameInto(node)
		} else {
			p.fail("expected member name")
		}
		return node
	case KindUnknown:
		// The lexer already reported this text; carry it as-is.
		node := &Node{Kind: KindUnknown}
		p.consumeSignificant(node)
		return node
	}

	if isNameToken(tok.Kind) {
		node := &Node{Kind: KindIdentifierExpression}
		p.parseNameInto(node)
		return node
	}

	p.fail("expected expression")
	return &Node{Kind: KindUnknown, Span: Span{Offset: tok.Span.Offset}}
}

// parseNameInto consumes a name token into node, keeping the token's
// lexed kind even when it is a keyword used as a name. A dollar sign
// glued directly to the word, the string-returning builtin spelling,
// is folded into the same node.
func (p *Parser) parseNameInto(node *Node) {
	p.consumeSignificant(node)
	if p.peek().Kind == KindDollarSign {
		p.consume(node)
	}
}

// parseQualifiedNameInto consumes a dotted name, name (. name)*, used
// for type references after New, As and TypeOf ... Is.
func (p *Parser) parseQualifiedNameInto(node *Node, what string) {
	if !isNameToken(p.peekSignificant().Kind) {
		p.fail("expected " + what)
		return
	}
	p.consumeSignificant(node)
	for p.at(KindPeriodOperator) && isNameToken(p.peekSignificantN(1).Kind) {
		p.consumeSignificant(node)
		p.consumeSignificant(node)
	}
}

// parseParenArgumentList parses a parenthesized argument list,
// tolerating empty positions as in f(a, , b).
func (p *Parser) parseParenArgumentList() *Node {
	list := &Node{Kind: KindArgumentList}
	p.consumeSignificant(list)
	if p.at(KindRightParenthesis) {
		p.consumeSignificant(list)
		return list
	}
	for {
		list.AddChild(p.parseArgument())
		if p.at(KindComma) {
			p.consumeSignificant(list)
			continue
		}
		break
	}
	p.expect(list, KindRightParenthesis, "closing parenthesis")
	return list
}

// parseCommandArgumentList parses the argument list of a call statement
// written without parentheses, ending at the logical line end.
func (p *Parser) parseCommandArgumentList() *Node {
	list := &Node{Kind: KindArgumentList}
	for {
		list.AddChild(p.parseArgument())
		if p.at(KindComma) {
			p.consumeSignificant(list)
			continue
		}
		return list
	}
}

// parseArgument parses one argument: empty, named (name:=value), or a
// plain expression.
func (p *Parser) parseArgument() *Node {
	arg := &Node{Kind: KindArgument}
	tok := p.peekSignificant()
	switch tok.Kind {
	case KindComma, KindRightParenthesis, KindNewline, KindColonOperator, KindEndOfFile:
		arg.Span = Span{Offset: tok.Span.Offset}
		return arg
	}
	if isNameToken(tok.Kind) &&
		p.peekSignificantN(1).Kind == KindColonOperator &&
		p.peekSignificantN(2).Kind == KindEqualityOperator {
		p.consumeSignificant(arg)
		p.consumeSignificant(arg)
		p.consumeSignificant(arg)
	}
	arg.AddChild(p.parseExpression())
	return arg
}

// parseAssignmentOrCall handles statements that begin with a value
// expression: an assignment when an equals sign follows the target,
// otherwise an implicit call with command-style arguments.
func (p *Parser) parseAssignmentOrCall() *Node {
	target := p.parsePostfixExpression()

	if p.at(KindEqualityOperator) {
		stmt := &Node{Kind: KindAssignmentStatement}
		stmt.AddChild(target)
		p.consumeSignificant(stmt)
		stmt.AddChild(p.parseExpression())
		p.finishLine(stmt)
		return stmt
	}

	stmt := &Node{Kind: KindCallStatement}
	stmt.AddChild(target)
	next := p.peekSignificant().Kind
	if next == KindComma || isExpressionStart(next) {
		stmt.AddChild(p.parseCommandArgumentList())
	}
	p.finishLine(stmt)
	return stmt
}

// parseExplicitCall parses a Call statement; the callee carries its
// parenthesized argument list as a regular call expression.
func (p *Parser) parseExplicitCall() *Node {
	stmt := &Node{Kind: KindCallStatement}
	p.consumeSignificant(stmt)
	stmt.AddChild(p.parsePostfixExpression())
	p.finishLine(stmt)
	return stmt
}

// parseSetOrLet parses Set and Let assignments.
func (p *Parser) parseSetOrLet(kind SyntaxKind) *Node {
	stmt := &Node{Kind: kind}
	p.consumeSignificant(stmt)
	stmt.AddChild(p.parsePostfixExpression())
	if p.expect(stmt, KindEqualityOperator, "=") {
		stmt.AddChild(p.parseExpression())
	} else {
		p.sync(stmt)
	}
	p.finishLine(stmt)
	return stmt
}
