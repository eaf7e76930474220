package parser

// Declaration statement parsers: procedures, variables, constants,
// user-defined types, enums, external declares, Option and Attribute
// lines.

// parseDeclarationWithModifiers handles statements opened by a
// visibility or Static modifier. The second significant token decides
// whether a procedure, a declaration block or a variable list follows.
func (p *Parser) parseDeclarationWithModifiers() *Node {
	stmt := &Node{}
	for p.atAny(KindPrivateKeyword, KindPublicKeyword, KindFriendKeyword, KindStaticKeyword) {
		// A modifier keyword used as an assignment target stays a
		// plain expression statement.
		if p.peekSignificantN(1).Kind == KindEqualityOperator {
			break
		}
		p.consumeSignificant(stmt)
	}
	if len(stmt.Children) == 0 {
		return p.parseAssignmentOrCall()
	}

	switch p.peekSignificant().Kind {
	case KindSubKeyword:
		return p.parseProcedure(KindSubStatement, stmt)
	case KindFunctionKeyword:
		return p.parseProcedure(KindFunctionStatement, stmt)
	case KindPropertyKeyword:
		return p.parseProcedure(KindPropertyStatement, stmt)
	case KindDeclareKeyword:
		return p.parseDeclare(stmt)
	case KindConstKeyword:
		return p.parseConst(stmt)
	case KindTypeKeyword:
		return p.parseTypeStatement(stmt)
	case KindEnumKeyword:
		return p.parseEnumStatement(stmt)
	case KindEventKeyword:
		stmt.Kind = KindKeywordStatement
		p.consumeToLineEnd(stmt)
		return stmt
	}
	stmt.Kind = KindDimStatement
	p.parseVariableList(stmt)
	p.finishLine(stmt)
	return stmt
}

// parseVariableDeclaration parses a Dim statement.
func (p *Parser) parseVariableDeclaration() *Node {
	stmt := &Node{Kind: KindDimStatement}
	p.consumeSignificant(stmt)
	p.parseVariableList(stmt)
	p.finishLine(stmt)
	return stmt
}

// parseVariableList parses the comma-separated declarators shared by
// Dim, ReDim and modifier-led variable declarations: an optional
// WithEvents marker, the name, optional array bounds and an optional
// As clause.
func (p *Parser) parseVariableList(stmt *Node) {
	for {
		if p.at(KindWithEventsKeyword) {
			p.consumeSignificant(stmt)
		}
		if !isNameToken(p.peekSignificant().Kind) {
			p.fail("expected variable name")
			p.sync(stmt)
			return
		}
		p.parseNameInto(stmt)
		p.parseSubscriptsInto(stmt)
		p.parseAsClauseInto(stmt)
		if p.at(KindComma) {
			p.consumeSignificant(stmt)
			continue
		}
		return
	}
}

// parseSubscriptsInto parses parenthesized array bounds, each bound
// either an upper expression or a "lower To upper" range.
func (p *Parser) parseSubscriptsInto(parent *Node) {
	if !p.at(KindLeftParenthesis) {
		return
	}
	list := &Node{Kind: KindArgumentList}
	p.consumeSignificant(list)
	if p.at(KindRightParenthesis) {
		p.consumeSignificant(list)
		parent.AddChild(list)
		return
	}
	for {
		bound := &Node{Kind: KindArgument}
		bound.AddChild(p.parseExpression())
		if p.at(KindToKeyword) {
			p.consumeSignificant(bound)
			bound.AddChild(p.parseExpression())
		}
		list.AddChild(bound)
		if p.at(KindComma) {
			p.consumeSignificant(list)
			continue
		}
		break
	}
	p.expect(list, KindRightParenthesis, "closing parenthesis")
	parent.AddChild(list)
}

// parseAsClauseInto parses an optional "As [New] Type" clause,
// including the fixed-length string form "As String * n".
func (p *Parser) parseAsClauseInto(parent *Node) {
	if !p.at(KindAsKeyword) {
		return
	}
	clause := &Node{Kind: KindAsClause}
	p.consumeSignificant(clause)
	if p.at(KindNewKeyword) {
		p.consumeSignificant(clause)
	}
	p.parseQualifiedNameInto(clause, "type name")
	if p.at(KindMultiplicationOperator) {
		p.consumeSignificant(clause)
		clause.AddChild(p.parseExpression())
	}
	parent.AddChild(clause)
}

// parseProcedure parses Sub, Function and Property declarations down to
// their matching End line. stmt may already hold leading modifiers.
func (p *Parser) parseProcedure(kind SyntaxKind, stmt *Node) *Node {
	if stmt == nil {
		stmt = &Node{}
	}
	stmt.Kind = kind
	opener := p.consumeSignificant(stmt).Kind
	if kind == KindPropertyStatement {
		if p.atAny(KindGetKeyword, KindLetKeyword, KindSetKeyword) {
			p.consumeSignificant(stmt)
		} else {
			p.fail("expected Get, Let or Set")
		}
	}
	if isNameToken(p.peekSignificant().Kind) {
		p.parseNameInto(stmt)
	} else {
		p.fail("expected procedure name")
		p.sync(stmt)
	}
	if p.at(KindLeftParenthesis) {
		stmt.AddChild(p.parseParameterList())
	}
	if kind != KindSubStatement {
		p.parseAsClauseInto(stmt)
	}
	p.finishLine(stmt)

	stmt.AddChild(p.parseStatementList(KindEndKeyword))

	if p.at(KindEndKeyword) {
		p.consumeSignificant(stmt)
		p.expect(stmt, opener, procedureNoun(kind))
		p.finishLine(stmt)
	} else {
		p.fail("expected End " + procedureNoun(kind))
	}
	return stmt
}

func procedureNoun(kind SyntaxKind) string {
	switch kind {
	case KindFunctionStatement:
		return "Function"
	case KindPropertyStatement:
		return "Property"
	}
	return "Sub"
}

// parseParameterList parses a parenthesized formal parameter list.
func (p *Parser) parseParameterList() *Node {
	list := &Node{Kind: KindParameterList}
	p.consumeSignificant(list)
	if p.at(KindRightParenthesis) {
		p.consumeSignificant(list)
		return list
	}
	for {
		list.AddChild(p.parseParameter())
		if p.at(KindComma) {
			p.consumeSignificant(list)
			continue
		}
		break
	}
	p.expect(list, KindRightParenthesis, "closing parenthesis")
	return list
}

// parseParameter parses one formal parameter: passing-mode modifiers,
// name, optional empty parens marking an array, optional As clause and
// optional default value.
func (p *Parser) parseParameter() *Node {
	param := &Node{Kind: KindParameter}
	for p.atAny(KindOptionalKeyword, KindByValKeyword, KindByRefKeyword, KindParamArrayKeyword) {
		p.consumeSignificant(param)
	}
	if !isNameToken(p.peekSignificant().Kind) {
		p.fail("expected parameter name")
		return param
	}
	p.parseNameInto(param)
	if p.at(KindLeftParenthesis) && p.peekSignificantN(1).Kind == KindRightParenthesis {
		p.consumeSignificant(param)
		p.consumeSignificant(param)
	}
	p.parseAsClauseInto(param)
	if p.at(KindEqualityOperator) {
		p.consumeSignificant(param)
		param.AddChild(p.parseExpression())
	}
	return param
}

// parseDeclare parses an external procedure declaration.
func (p *Parser) parseDeclare(stmt *Node) *Node {
	if stmt == nil {
		stmt = &Node{}
	}
	stmt.Kind = KindDeclareStatement
	p.consumeSignificant(stmt)
	if p.atAny(KindSubKeyword, KindFunctionKeyword) {
		p.consumeSignificant(stmt)
	} else {
		p.fail("expected Sub or Function")
	}
	if isNameToken(p.peekSignificant().Kind) {
		p.parseNameInto(stmt)
	} else {
		p.fail("expected procedure name")
	}
	if p.expect(stmt, KindLibKeyword, "Lib") {
		p.expect(stmt, KindStringLiteral, "library name")
	}
	if p.at(KindAliasKeyword) {
		p.consumeSignificant(stmt)
		p.expect(stmt, KindStringLiteral, "alias name")
	}
	if p.at(KindLeftParenthesis) {
		stmt.AddChild(p.parseParameterList())
	}
	p.parseAsClauseInto(stmt)
	p.finishLine(stmt)
	return stmt
}

// parseConst parses a constant declaration list.
func (p *Parser) parseConst(stmt *Node) *Node {
	if stmt == nil {
		stmt = &Node{}
	}
	stmt.Kind = KindConstStatement
	p.consumeSignificant(stmt)
	for {
		if !isNameToken(p.peekSignificant().Kind) {
			p.fail("expected constant name")
			p.sync(stmt)
			break
		}
		p.parseNameInto(stmt)
		p.parseAsClauseInto(stmt)
		if p.expect(stmt, KindEqualityOperator, "=") {
			stmt.AddChild(p.parseExpression())
		}
		if p.at(KindComma) {
			p.consumeSignificant(stmt)
			continue
		}
		break
	}
	p.finishLine(stmt)
	return stmt
}

// parseTypeStatement parses a Type ... End Type block of field members.
func (p *Parser) parseTypeStatement(stmt *Node) *Node {
	if stmt == nil {
		stmt = &Node{}
	}
	stmt.Kind = KindTypeStatement
	p.consumeSignificant(stmt)
	if isNameToken(p.peekSignificant().Kind) {
		p.parseNameInto(stmt)
	} else {
		p.fail("expected type name")
	}
	p.finishLine(stmt)

	for {
		p.eatTrivia(stmt)
		switch p.peek().Kind {
		case KindNewline, KindColonOperator:
			p.consume(stmt)
			continue
		case KindEndKeyword, KindEndOfFile:
		default:
			if isNameToken(p.peek().Kind) {
				member := &Node{Kind: KindTypeMember}
				p.parseNameInto(member)
				p.parseSubscriptsInto(member)
				p.parseAsClauseInto(member)
				p.finishLine(member)
				stmt.AddChild(member)
				continue
			}
			p.fail("expected type member")
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
		p.expect(stmt, KindTypeKeyword, "Type")
		p.finishLine(stmt)
	} else {
		p.fail("expected End Type")
	}
	return stmt
}

// parseEnumStatement parses an Enum ... End Enum block.
func (p *Parser) parseEnumStatement(stmt *Node) *Node {
	if stmt == nil {
		stmt = &Node{}
	}
	stmt.Kind = KindEnumStatement
	p.consumeSignificant(stmt)
	if isNameToken(p.peekSignificant().Kind) {
		p.parseNameInto(stmt)
	} else {
		p.fail("expected enum name")
	}
	p.finishLine(stmt)

	for {
		p.eatTrivia(stmt)
		switch p.peek().Kind {
		case KindNewline, KindColonOperator:
			p.consume(stmt)
			continue
		case KindEndKeyword, KindEndOfFile:
		default:
			if isNameToken(p.peek().Kind) {
				member := &Node{Kind: KindEnumMember}
				p.parseNameInto(member)
				if p.at(KindEqualityOperator) {
					p.consumeSignificant(member)
					member.AddChild(p.parseExpression())
				}
				p.finishLine(member)
				stmt.AddChild(member)
				continue
			}
			p.fail("expected enum member")
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
		p.expect(stmt, KindEnumKeyword, "Enum")
		p.finishLine(stmt)
	} else {
		p.fail("expected End Enum")
	}
	return stmt
}

// parseReDim parses a ReDim statement.
func (p *Parser) parseReDim() *Node {
	stmt := &Node{Kind: KindReDimStatement}
	p.consumeSignificant(stmt)
	if p.at(KindPreserveKeyword) {
		p.consumeSignificant(stmt)
	}
	p.parseVariableList(stmt)
	p.finishLine(stmt)
	return stmt
}

// parseOption parses an Option line: the specifier tokens after the
// keyword are kept flat up to the end of the line.
func (p *Parser) parseOption() *Node {
	stmt := &Node{Kind: KindOptionStatement}
	p.consumeToLineEnd(stmt)
	return stmt
}

// parseAttribute parses an Attribute line: a dotted attribute name, an
// equals sign and one or more comma-separated values.
func (p *Parser) parseAttribute() *Node {
	stmt := &Node{Kind: KindAttributeStatement}
	p.consumeSignificant(stmt)
	p.parseQualifiedNameInto(stmt, "attribute name")
	if p.expect(stmt, KindEqualityOperator, "=") {
		stmt.AddChild(p.parseExpression())
		for p.at(KindComma) {
			p.consumeSignificant(stmt)
			stmt.AddChild(p.parseExpression())
		}
	} else {
		p.sync(stmt)
	}
	p.finishLine(stmt)
	return stmt
}

// consumeToLineEnd consumes the rest of the logical line into stmt,
// newline included, colon excluded.
func (p *Parser) consumeToLineEnd(stmt *Node) {
	for {
		p.eatTrivia(stmt)
		switch p.peek().Kind {
		case KindNewline:
			p.consume(stmt)
			return
		case KindColonOperator, KindEndOfFile:
			return
		}
		p.consume(stmt)
	}
}
