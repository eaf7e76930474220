package parser

// Control-flow statement parsers: If, Select Case, the loop forms,
// With blocks, jumps and error-handling statements.

// parseIf parses both forms of the If statement: the block form ending
// in End If and the single-line form with inline branches after Then.
func (p *Parser) parseIf() *Node {
	stmt := &Node{Kind: KindIfStatement}
	p.consumeSignificant(stmt)
	stmt.AddChild(p.parseExpression())
	p.expect(stmt, KindThenKeyword, "Then")

	p.eatTrivia(stmt)
	if p.peek().Kind == KindNewline {
		p.consume(stmt)
		stmt.AddChild(p.parseStatementList(KindEndKeyword, KindElseIfKeyword, KindElseKeyword))

		for p.at(KindElseIfKeyword) {
			clause := &Node{Kind: KindElseIfClause}
			p.consumeSignificant(clause)
			clause.AddChild(p.parseExpression())
			p.expect(clause, KindThenKeyword, "Then")
			p.finishLine(clause)
			clause.AddChild(p.parseStatementList(KindEndKeyword, KindElseIfKeyword, KindElseKeyword))
			stmt.AddChild(clause)
		}
		if p.at(KindElseKeyword) {
			clause := &Node{Kind: KindElseClause}
			p.consumeSignificant(clause)
			p.finishLine(clause)
			clause.AddChild(p.parseStatementList(KindEndKeyword))
			stmt.AddChild(clause)
		}

		if p.at(KindEndKeyword) {
			p.consumeSignificant(stmt)
			p.expect(stmt, KindIfKeyword, "If")
			p.finishLine(stmt)
		} else {
			p.fail("expected End If")
		}
		return stmt
	}

	// Single-line form: statements inline after Then, an optional
	// inline Else branch, all on one physical line. Once the branch has
	// crossed the newline an Else on the next line belongs to an
	// enclosing block If, never to this statement.
	if p.parseInlineBranch(stmt) {
		return stmt
	}
	if p.at(KindElseKeyword) {
		clause := &Node{Kind: KindElseClause}
		p.consumeSignificant(clause)
		p.parseInlineBranch(clause)
		stmt.AddChild(clause)
	}
	return stmt
}

// parseInlineBranch parses colon-separated statements up to the end of
// the physical line or an Else keyword. The last statement consumes the
// terminating newline; the return value reports whether it did, i.e.
// whether the physical line is over.
func (p *Parser) parseInlineBranch(parent *Node) bool {
	for {
		p.eatTrivia(parent)
		if p.peek().Kind == KindColonOperator {
			// A colon here is a bare separator, legal directly after
			// Then and between statements.
			p.consume(parent)
			switch p.peekSignificant().Kind {
			case KindElseKeyword, KindEndOfFile:
				return false
			case KindNewline:
				p.eatTrivia(parent)
				p.consume(parent)
				return true
			}
			continue
		}
		parent.AddChild(p.parseStatement(false))
		if p.pos > 0 && p.tokens[p.pos-1].Kind == KindNewline {
			return true
		}
		p.eatTrivia(parent)
		if p.peek().Kind != KindColonOperator {
			return false
		}
	}
}

// parseSelectCase parses a Select Case block with its Case clauses.
func (p *Parser) parseSelectCase() *Node {
	stmt := &Node{Kind: KindSelectCaseStatement}
	p.consumeSignificant(stmt)
	p.expect(stmt, KindCaseKeyword, "Case")
	stmt.AddChild(p.parseExpression())
	p.finishLine(stmt)

	for {
		p.eatTrivia(stmt)
		switch p.peek().Kind {
		case KindNewline:
			p.consume(stmt)
			continue
		case KindCaseKeyword:
			stmt.AddChild(p.parseCaseClause())
			continue
		case KindEndKeyword, KindEndOfFile:
		default:
			p.fail("expected Case clause")
			before := p.pos
			p.sync(stmt)
			if p.pos == before {
				unknown := &Node{Kind: KindUnknown}
				p.consume(unknown)
				stmt.AddChild(unknown)
			}
			continue
		}
		break
	}

	if p.at(KindEndKeyword) {
		p.consumeSignificant(stmt)
		p.expect(stmt, KindSelectKeyword, "Select")
		p.finishLine(stmt)
	} else {
		p.fail("expected End Select")
	}
	return stmt
}

// parseCaseClause parses one Case arm: Case Else, or a comma-separated
// list of tests, each a value, a "low To high" range or an
// "Is <comparison> value" form.
func (p *Parser) parseCaseClause() *Node {
	if p.peekSignificantN(1).Kind == KindElseKeyword {
		clause := &Node{Kind: KindCaseElseClause}
		p.consumeSignificant(clause)
		p.consumeSignificant(clause)
		p.finishLine(clause)
		clause.AddChild(p.parseStatementList(KindCaseKeyword, KindEndKeyword))
		return clause
	}

	clause := &Node{Kind: KindCaseClause}
	p.consumeSignificant(clause)
	for {
		clause.AddChild(p.parseCaseTest())
		if p.at(KindComma) {
			p.consumeSignificant(clause)
			continue
		}
		break
	}
	p.finishLine(clause)
	clause.AddChild(p.parseStatementList(KindCaseKeyword, KindEndKeyword))
	return clause
}

func (p *Parser) parseCaseTest() *Node {
	test := &Node{Kind: KindCaseTest}
	if p.at(KindIsKeyword) {
		p.consumeSignificant(test)
		if p.atAny(KindEqualityOperator, KindInequalityOperator, KindLessThanOperator,
			KindGreaterThanOperator, KindLessThanOrEqualOperator, KindGreaterThanOrEqualOperator) {
			p.consumeSignificant(test)
		} else {
			p.fail("expected comparison operator")
		}
		test.AddChild(p.parseExpression())
		return test
	}
	test.AddChild(p.parseExpression())
	if p.at(KindToKeyword) {
		p.consumeSignificant(test)
		test.AddChild(p.parseExpression())
	}
	return test
}

// parseFor parses For ... Next and For Each ... Next loops.
func (p *Parser) parseFor() *Node {
	stmt := &Node{Kind: KindForStatement}
	p.consumeSignificant(stmt)

	if p.at(KindEachKeyword) {
		stmt.Kind = KindForEachStatement
		p.consumeSignificant(stmt)
		if isNameToken(p.peekSignificant().Kind) {
			p.parseNameInto(stmt)
		} else {
			p.fail("expected loop variable")
		}
		p.expect(stmt, KindInKeyword, "In")
		stmt.AddChild(p.parseExpression())
	} else {
		if isNameToken(p.peekSignificant().Kind) {
			p.parseNameInto(stmt)
		} else {
			p.fail("expected loop variable")
		}
		p.expect(stmt, KindEqualityOperator, "=")
		stmt.AddChild(p.parseExpression())
		p.expect(stmt, KindToKeyword, "To")
		stmt.AddChild(p.parseExpression())
		if p.at(KindStepKeyword) {
			p.consumeSignificant(stmt)
			stmt.AddChild(p.parseExpression())
		}
	}
	p.finishLine(stmt)

	stmt.AddChild(p.parseStatementList(KindNextKeyword, KindEndKeyword))

	if p.at(KindNextKeyword) {
		p.consumeSignificant(stmt)
		if isNameToken(p.peekSignificant().Kind) {
			p.parseNameInto(stmt)
		}
		p.finishLine(stmt)
	} else {
		p.fail("expected Next")
	}
	return stmt
}

// parseDo parses Do loops with the condition on either end.
func (p *Parser) parseDo() *Node {
	stmt := &Node{Kind: KindDoStatement}
	p.consumeSignificant(stmt)
	if p.atAny(KindWhileKeyword, KindUntilKeyword) {
		p.consumeSignificant(stmt)
		stmt.AddChild(p.parseExpression())
	}
	p.finishLine(stmt)

	stmt.AddChild(p.parseStatementList(KindLoopKeyword, KindEndKeyword))

	if p.at(KindLoopKeyword) {
		p.consumeSignificant(stmt)
		if p.atAny(KindWhileKeyword, KindUntilKeyword) {
			p.consumeSignificant(stmt)
			stmt.AddChild(p.parseExpression())
		}
		p.finishLine(stmt)
	} else {
		p.fail("expected Loop")
	}
	return stmt
}

// parseWhile parses a While ... Wend loop.
func (p *Parser) parseWhile() *Node {
	stmt := &Node{Kind: KindWhileStatement}
	p.consumeSignificant(stmt)
	stmt.AddChild(p.parseExpression())
	p.finishLine(stmt)

	stmt.AddChild(p.parseStatementList(KindWendKeyword, KindEndKeyword))

	if p.at(KindWendKeyword) {
		p.consumeSignificant(stmt)
		p.finishLine(stmt)
	} else {
		p.fail("expected Wend")
	}
	return stmt
}

// parseWith parses a With ... End With block.
func (p *Parser) parseWith() *Node {
	stmt := &Node{Kind: KindWithStatement}
	p.consumeSignificant(stmt)
	stmt.AddChild(p.parseExpression())
	p.finishLine(stmt)

	stmt.AddChild(p.parseStatementList(KindEndKeyword))

	if p.at(KindEndKeyword) {
		p.consumeSignificant(stmt)
		p.expect(stmt, KindWithKeyword, "With")
		p.finishLine(stmt)
	} else {
		p.fail("expected End With")
	}
	return stmt
}

// parseOn parses On Error handlers and computed On ... GoTo/GoSub
// jumps.
func (p *Parser) parseOn() *Node {
	stmt := &Node{}
	p.consumeSignificant(stmt)

	if p.at(KindErrorKeyword) {
		stmt.Kind = KindOnErrorStatement
		p.consumeSignificant(stmt)
		switch p.peekSignificant().Kind {
		case KindGotoKeyword:
			p.consumeSignificant(stmt)
			p.parseJumpTarget(stmt)
		case KindResumeKeyword:
			p.consumeSignificant(stmt)
			p.expect(stmt, KindNextKeyword, "Next")
		default:
			p.fail("expected GoTo or Resume")
			p.sync(stmt)
		}
		p.finishLine(stmt)
		return stmt
	}

	stmt.Kind = KindOnGoToStatement
	stmt.AddChild(p.parseExpression())
	if p.atAny(KindGotoKeyword, KindGoSubKeyword) {
		p.consumeSignificant(stmt)
		p.parseJumpTarget(stmt)
		for p.at(KindComma) {
			p.consumeSignificant(stmt)
			p.parseJumpTarget(stmt)
		}
	} else {
		p.fail("expected GoTo or GoSub")
		p.sync(stmt)
	}
	p.finishLine(stmt)
	return stmt
}

// parseJumpTarget consumes a label name or line number.
func (p *Parser) parseJumpTarget(stmt *Node) {
	if isNameToken(p.peekSignificant().Kind) || p.at(KindIntegerLiteral) {
		p.consumeSignificant(stmt)
		return
	}
	p.fail("expected label")
}

// parseJump parses GoTo and GoSub statements.
func (p *Parser) parseJump(kind SyntaxKind) *Node {
	stmt := &Node{Kind: kind}
	p.consumeSignificant(stmt)
	p.parseJumpTarget(stmt)
	p.finishLine(stmt)
	return stmt
}

// parseResume parses Resume, Resume Next and Resume label.
func (p *Parser) parseResume() *Node {
	stmt := &Node{Kind: KindResumeStatement}
	p.consumeSignificant(stmt)
	if p.at(KindNextKeyword) {
		p.consumeSignificant(stmt)
	} else if isNameToken(p.peekSignificant().Kind) || p.at(KindIntegerLiteral) {
		p.consumeSignificant(stmt)
	}
	p.finishLine(stmt)
	return stmt
}

// parseExit parses Exit Sub, Exit Function, Exit Property, Exit For and
// Exit Do.
func (p *Parser) parseExit() *Node {
	stmt := &Node{Kind: KindExitStatement}
	p.consumeSignificant(stmt)
	if p.atAny(KindSubKeyword, KindFunctionKeyword, KindPropertyKeyword, KindForKeyword, KindDoKeyword) {
		p.consumeSignificant(stmt)
	} else {
		p.fail("expected Sub, Function, Property, For or Do")
	}
	p.finishLine(stmt)
	return stmt
}

// parseBareKeywordLine parses a statement that is just its keyword.
func (p *Parser) parseBareKeywordLine(kind SyntaxKind) *Node {
	stmt := &Node{Kind: kind}
	p.consumeSignificant(stmt)
	p.finishLine(stmt)
	return stmt
}
