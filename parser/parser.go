// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Recursive-descent parser that turns a Token stream (from the lexer) into an
//          Abstract Syntax Tree. Block structure rides entirely on the lexer's INDENT/DEDENT
//          tokens; this parser never re-examines whitespace.
// ==============================================================================================

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"agam/ast"
	"agam/lexer"
	"agam/token"
)

// Precedence levels, lowest to highest, mirroring the grammar's
// assignment -> or -> and -> equality -> comparison -> additive ->
// multiplicative -> unary -> postfix chain.
const (
	_ int = iota
	LOWEST
	LOGIC_OR
	LOGIC_AND
	EQUALS
	COMPARISON
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[token.TokenType]int{
	token.ALLADHU:      LOGIC_OR,
	token.MATRUM:       LOGIC_AND,
	token.EQUAL_EQUAL:  EQUALS,
	token.NOT_EQUAL:    EQUALS,
	token.LESS:         COMPARISON,
	token.GREATER:      COMPARISON,
	token.LESS_EQUAL:   COMPARISON,
	token.GREATER_EQUAL: COMPARISON,
	token.PLUS:         SUM,
	token.MINUS:        SUM,
	token.STAR:         PRODUCT,
	token.SLASH:        PRODUCT,
	token.PERCENT:      PRODUCT,
	token.LPAREN:       CALL,
	token.LBRACKET:     CALL,
	token.DOT:          CALL,
}

// ParseError reports a malformed token sequence with the 1-based source
// position it was found at.
type ParseError struct {
	Line, Column int
	Msg          string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parser holds the state of a single parse over a token stream pulled
// lazily from a *lexer.Lexer. extra buffers tokens looked at beyond
// peekToken, needed only to disambiguate a parenthesized grouping from an
// arrow-lambda parameter list before committing to either parse.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	extra     []token.Token
	errors    []*ParseError
}

// New initializes a Parser over l, priming curToken/peekToken.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse runs source through a fresh Lexer and Parser, returning the
// resulting Program or the first parse error encountered.
func Parse(source string) (*ast.Program, error) {
	p := New(lexer.New(source))
	program := p.ParseProgram()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return program, nil
}

func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if len(p.extra) > 0 {
		p.peekToken = p.extra[0]
		p.extra = p.extra[1:]
	} else {
		p.peekToken = p.l.NextToken()
	}
}

// peekAt returns the token n positions past curToken (n=1 is peekToken
// itself) without consuming anything, filling the lookahead buffer as
// needed.
func (p *Parser) peekAt(n int) token.Token {
	if n <= 1 {
		return p.peekToken
	}
	for len(p.extra) < n-1 {
		p.extra = append(p.extra, p.l.NextToken())
	}
	return p.extra[n-2]
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.errors = append(p.errors, &ParseError{
		Line: p.peekToken.Line, Column: p.peekToken.Column,
		Msg: fmt.Sprintf("எதிர்பார்க்கப்பட்ட டோக்கன் %s, கிடைத்தது %s", token.Display(t), token.Display(p.peekToken.Type)),
	})
}

func (p *Parser) errorf(format string, a ...interface{}) {
	p.errors = append(p.errors, &ParseError{
		Line: p.curToken.Line, Column: p.curToken.Column,
		Msg: fmt.Sprintf(format, a...),
	})
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// skipNewlines advances past any run of NEWLINE tokens under curToken.
func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// ParseProgram is the entry point: it parses top-level statements until EOF.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

// parseBlock expects curToken to be sitting on the COLON that opens a
// block; it consumes COLON NEWLINE INDENT <statement>+ DEDENT and leaves
// curToken on the DEDENT.
func (p *Parser) parseBlock() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}

	if !p.expectPeek(token.NEWLINE) {
		return block
	}
	if !p.expectPeek(token.INDENT) {
		return block
	}
	p.nextToken() // move onto the first token of the block body

	for !p.curTokenIs(token.DEDENT) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
		p.skipNewlines()
	}

	if len(block.Statements) == 0 {
		p.errorf("வெற்றுத் தொகுதி அனுமதிக்கப்படாது (empty block)")
	}
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.MAARI:
		return p.parseLetStatement(false)
	case token.MAARAADHA:
		return p.parseLetStatement(true)
	case token.SEYAL:
		return p.parseFunctionStatement()
	case token.KATTAMAIPPU:
		return p.parseStructStatement()
	case token.VIRUPPAM:
		return p.parseEnumStatement()
	case token.IRAKKUMADHI:
		return p.parseImportStatement()
	case token.IRUNDHU:
		return p.parseFromImportStatement()
	case token.ENDRAAL:
		return p.parseIfStatement()
	case token.VARAI:
		return p.parseWhileStatement()
	case token.OVVORU:
		return p.parseForStatement()
	case token.THIRUMBU:
		return p.parseReturnStatement()
	case token.NIRUTHU:
		return &ast.BreakStatement{Token: p.curToken}
	case token.THODAR:
		return &ast.ContinueStatement{Token: p.curToken}
	case token.ACHIDU:
		return p.parsePrintStatement()
	case token.MUYARCHI:
		return p.parseTryCatchStatement()
	case token.VEESU:
		return p.parseThrowStatement()
	case token.PORUTHU:
		return p.parseMatchStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement(isConst bool) ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken, IsConst: isConst}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.EQUAL) {
		return nil
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseFunctionStatement() ast.Statement {
	stmt := &ast.FunctionStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt.Parameters = p.parseParameterList()
	if !p.expectPeek(token.COLON) {
		return nil
	}
	stmt.Body = p.parseBlock()
	return stmt
}

func (p *Parser) parseParameterList() []*ast.Identifier {
	params := []*ast.Identifier{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseStructStatement() ast.Statement {
	stmt := &ast.StructStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.COLON) {
		return nil
	}
	if !p.expectPeek(token.NEWLINE) {
		return nil
	}
	if !p.expectPeek(token.INDENT) {
		return nil
	}
	p.nextToken()

	for !p.curTokenIs(token.DEDENT) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		if !p.curTokenIs(token.IDENT) {
			p.errorf("கட்டமைப்பு புலத்தின் பெயர் எதிர்பார்க்கப்படுகிறது")
			return nil
		}
		field := ast.StructField{Name: p.curToken.Literal}
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			field.Type = p.curToken.Literal
		}
		stmt.Fields = append(stmt.Fields, field)
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseEnumStatement() ast.Statement {
	stmt := &ast.EnumStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.COLON) {
		return nil
	}
	if !p.expectPeek(token.NEWLINE) {
		return nil
	}
	if !p.expectPeek(token.INDENT) {
		return nil
	}
	p.nextToken()

	for !p.curTokenIs(token.DEDENT) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		if !p.curTokenIs(token.IDENT) {
			p.errorf("விருப்பத்தின் மாறுபாடு பெயர் எதிர்பார்க்கப்படுகிறது")
			return nil
		}
		stmt.Variants = append(stmt.Variants, p.curToken.Literal)
		p.nextToken()
	}
	return stmt
}

// parseImportStatement handles இறக்குமதி module (plain namespace import).
func (p *Parser) parseImportStatement() ast.Statement {
	stmt := &ast.ImportStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Module = p.curToken.Literal
	return stmt
}

// parseFromImportStatement handles இருந்து module இறக்குமதி a, b.
func (p *Parser) parseFromImportStatement() ast.Statement {
	stmt := &ast.ImportStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Module = p.curToken.Literal
	if !p.expectPeek(token.IRAKKUMADHI) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Items = append(stmt.Items, p.curToken.Literal)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.Items = append(stmt.Items, p.curToken.Literal)
	}
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	stmt.Consequence = p.parseBlock()

	for p.peekTokenIs(token.ILLAYENDRAAL) {
		p.nextToken()
		elif := ast.ElifBranch{}
		p.nextToken()
		elif.Condition = p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return nil
		}
		elif.Body = p.parseBlock()
		stmt.ElifBranches = append(stmt.ElifBranches, elif)
	}

	if p.peekTokenIs(token.ILLAI) {
		p.nextToken()
		if !p.expectPeek(token.COLON) {
			return nil
		}
		stmt.Alternative = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	stmt.Body = p.parseBlock()
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Variable = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.ULLA) {
		return nil
	}
	p.nextToken()
	stmt.Iterable = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	stmt.Body = p.parseBlock()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	if p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.DEDENT) || p.peekTokenIs(token.EOF) {
		return stmt
	}
	p.nextToken()
	stmt.ReturnValue = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt.Arguments = p.parseExpressionList(token.RPAREN)
	return stmt
}

func (p *Parser) parseTryCatchStatement() ast.Statement {
	stmt := &ast.TryCatchStatement{Token: p.curToken}
	if !p.expectPeek(token.COLON) {
		return nil
	}
	stmt.TryBlock = p.parseBlock()
	if !p.expectPeek(token.PIDI) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.ErrorName = p.curToken.Literal
	if !p.expectPeek(token.COLON) {
		return nil
	}
	stmt.CatchBlock = p.parseBlock()
	return stmt
}

func (p *Parser) parseThrowStatement() ast.Statement {
	stmt := &ast.ThrowStatement{Token: p.curToken}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

// parseMatchStatement handles பொருத்து value: pattern => body ... , one arm
// per line. A arm's body is a single statement on the arm's own line, or an
// indented block when a NEWLINE follows the arrow.
func (p *Parser) parseMatchStatement() ast.Statement {
	stmt := &ast.MatchStatement{Token: p.curToken}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	if !p.expectPeek(token.NEWLINE) {
		return nil
	}
	if !p.expectPeek(token.INDENT) {
		return nil
	}
	p.nextToken()

	for !p.curTokenIs(token.DEDENT) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		arm := ast.MatchArm{Pattern: p.parsePattern()}
		if !p.expectPeek(token.ARROW) {
			return nil
		}
		arm.Body = p.parseMatchArmBody()
		stmt.Arms = append(stmt.Arms, arm)
		p.nextToken()
	}
	return stmt
}

// parseMatchArmBody parses what follows a match arm's '=>': curToken sits
// on ARROW on entry. A NEWLINE right after the arrow means an indented
// block; otherwise the body is the single statement on the same line.
func (p *Parser) parseMatchArmBody() *ast.BlockStatement {
	if p.peekTokenIs(token.NEWLINE) {
		return p.parseBlock()
	}
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()
	if stmt := p.parseStatement(); stmt != nil {
		block.Statements = append(block.Statements, stmt)
	}
	return block
}

// parsePattern parses one match-arm pattern: wildcard, enum variant,
// literal, or a plain-identifier binding. curToken sits on the pattern's
// first token on entry and its last token on return.
func (p *Parser) parsePattern() ast.Pattern {
	switch p.curToken.Type {
	case token.UNDERSCORE:
		return &ast.WildcardPattern{Token: p.curToken}
	case token.NUMBER, token.STRING, token.UNMAI, token.POI, token.ILLA:
		return &ast.LiteralPattern{Token: p.curToken, Value: p.parseExpression(LOWEST)}
	case token.IDENT:
		tok := p.curToken
		if p.peekTokenIs(token.DOT) {
			enumName := tok.Literal
			p.nextToken() // consume DOT
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			return &ast.EnumVariantPattern{Token: tok, Enum: enumName, Variant: p.curToken.Literal}
		}
		return &ast.BindingPattern{Token: tok, Name: tok.Literal}
	default:
		p.errorf("எதிர்பாராத பொருத்த வடிவம் %s", token.Display(p.curToken.Type))
		return nil
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	return stmt
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// parseExpression parses an assignment-or-lower expression starting at
// curToken, consuming through its last token.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	if p.curTokenIs(token.ARROW) {
		p.errorf("எதிர்பாராத டோக்கன் =>")
		return nil
	}
	left := p.parseBinary(precedence)
	if left == nil {
		return nil
	}
	if precedence == LOWEST && p.peekTokenIs(token.EQUAL) {
		return p.parseAssignmentFrom(left)
	}
	return left
}

func (p *Parser) parseAssignmentFrom(left ast.Expression) ast.Expression {
	p.nextToken() // curToken = EQUAL
	p.nextToken() // move to rhs
	value := p.parseExpression(LOWEST)

	switch l := left.(type) {
	case *ast.Identifier:
		return &ast.AssignmentExpression{Name: l, Value: value}
	case *ast.IndexExpression:
		return &ast.IndexAssignmentExpression{Left: l.Left, Index: l.Index, Value: value}
	case *ast.MemberAccessExpression:
		return &ast.MemberAssignmentExpression{Object: l.Object, Member: l.Member, Value: value}
	default:
		p.errorf("ஒதுக்கீட்டின் இலக்காக முடியாது (invalid assignment target)")
		return left
	}
}

// parseBinary climbs the or/and/equality/comparison/sum/product chain via
// precedence comparison, falling to parseUnary at the top.
func (p *Parser) parseBinary(precedence int) ast.Expression {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() && isBinaryOperator(p.peekToken.Type) {
		opTok := p.peekToken
		opPrecedence := p.peekPrecedence()
		p.nextToken()
		operator := binaryOperatorLiteral(opTok.Type)
		p.nextToken()
		right := p.parseBinary(opPrecedence)
		left = &ast.InfixExpression{Token: opTok, Left: left, Operator: operator, Right: right}
	}
	return left
}

func isBinaryOperator(t token.TokenType) bool {
	switch t {
	case token.ALLADHU, token.MATRUM, token.EQUAL_EQUAL, token.NOT_EQUAL,
		token.LESS, token.GREATER, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return true
	default:
		return false
	}
}

func binaryOperatorLiteral(t token.TokenType) string {
	switch t {
	case token.ALLADHU:
		return "or"
	case token.MATRUM:
		return "and"
	default:
		return string(t)
	}
}

func (p *Parser) parseUnary() ast.Expression {
	if p.curTokenIs(token.MINUS) || p.curTokenIs(token.ILLAMAL) {
		tok := p.curToken
		operator := "-"
		if tok.Type == token.ILLAMAL {
			operator = "not"
		}
		p.nextToken()
		right := p.parseUnary()
		return &ast.PrefixExpression{Token: tok, Operator: operator, Right: right}
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any chain of
// call/index/member-access postfix operators.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch {
		case p.peekTokenIs(token.LPAREN):
			p.nextToken()
			tok := p.curToken
			args := p.parseExpressionList(token.RPAREN)
			expr = &ast.CallExpression{Token: tok, Function: expr, Arguments: args}
		case p.peekTokenIs(token.LBRACKET):
			p.nextToken()
			tok := p.curToken
			p.nextToken()
			index := p.parseExpression(LOWEST)
			if !p.expectPeek(token.RBRACKET) {
				return nil
			}
			expr = &ast.IndexExpression{Token: tok, Left: expr, Index: index}
		case p.peekTokenIs(token.DOT):
			p.nextToken()
			tok := p.curToken
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			expr = &ast.MemberAccessExpression{Token: tok, Object: expr, Member: p.curToken.Literal}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.curToken.Type {
	case token.NUMBER:
		return p.parseNumberLiteral()
	case token.STRING:
		return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	case token.FSTRING:
		return p.parseFStringLiteral()
	case token.UNMAI:
		return &ast.BooleanLiteral{Token: p.curToken, Value: true}
	case token.POI:
		return &ast.BooleanLiteral{Token: p.curToken, Value: false}
	case token.ILLA:
		return &ast.NullLiteral{Token: p.curToken}
	case token.IDENT:
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	case token.LPAREN:
		return p.parseGroupedOrLambda()
	case token.LBRACKET:
		return p.parseListLiteral()
	case token.LBRACE:
		return p.parseDictLiteral()
	case token.SEYALI:
		return p.parseLambdaKeywordForm()
	default:
		p.errorf("எதிர்பாராத டோக்கன் %s", token.Display(p.curToken.Type))
		return nil
	}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := p.curToken.Literal
	if v, err := strconv.ParseFloat(lit, 64); err == nil {
		return &ast.NumberLiteral{Token: p.curToken, Value: v}
	}
	v, err := lexer.TamilToNumber(lit)
	if err != nil {
		p.errorf("தவறான எண் '%s'", lit)
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: v}
}

// parseFStringLiteral splits the lexer's raw FSTRING body into literal and
// embedded-expression parts on balanced {...} spans, re-lexing and
// re-parsing each embedded span as its own expression.
func (p *Parser) parseFStringLiteral() ast.Expression {
	node := &ast.FStringLiteral{Token: p.curToken}
	raw := p.curToken.Literal

	var literal strings.Builder
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '{' {
			if literal.Len() > 0 {
				node.Parts = append(node.Parts, ast.FStringPart{Literal: literal.String()})
				literal.Reset()
			}
			depth := 1
			j := i + 1
			for ; j < len(runes) && depth > 0; j++ {
				switch runes[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
			}
			if depth != 0 {
				p.errorf("f-சரத்தில் பொருந்தாத அடைப்புக்குறி")
				return nil
			}
			exprSrc := string(runes[i+1 : j-1])
			sub := New(lexer.New(exprSrc))
			expr := sub.parseExpression(LOWEST)
			if len(sub.errors) > 0 {
				p.errors = append(p.errors, sub.errors...)
			}
			node.Parts = append(node.Parts, ast.FStringPart{Expr: expr})
			i = j - 1
			continue
		}
		literal.WriteRune(r)
	}
	if literal.Len() > 0 {
		node.Parts = append(node.Parts, ast.FStringPart{Literal: literal.String()})
	}
	return node
}

// parseGroupedOrLambda disambiguates a parenthesized grouping from an
// arrow-lambda's parameter list by scanning ahead for a matching ')'
// immediately followed by '=>'.
func (p *Parser) parseGroupedOrLambda() ast.Expression {
	if p.looksLikeArrowLambda() {
		return p.parseArrowLambda()
	}
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

// looksLikeArrowLambda scans ahead from the current '(' for its matching
// ')' and checks whether '=>' immediately follows, without consuming any
// tokens (parsing never backtracks once committed).
func (p *Parser) looksLikeArrowLambda() bool {
	depth := 1
	for i := 1; ; i++ {
		tok := p.peekAt(i)
		switch tok.Type {
		case token.EOF, token.NEWLINE:
			return false
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return p.peekAt(i + 1).Type == token.ARROW
			}
		}
	}
}

func (p *Parser) parseArrowLambda() ast.Expression {
	tok := p.curToken
	params := p.parseParameterList()
	// parseParameterList takes each comma-separated token as a parameter
	// name and leaves curToken on RPAREN. A malformed list, or one not
	// followed by '=>', is reported as a parse error; there is no retry as
	// a grouped expression.
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.LambdaLiteral{Token: tok, Parameters: params, Body: body}
}

// parseLambdaKeywordForm parses செயலி(params): expr.
func (p *Parser) parseLambdaKeywordForm() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParameterList()
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.LambdaLiteral{Token: tok, Parameters: params, Body: body}
}

func (p *Parser) parseListLiteral() ast.Expression {
	tok := p.curToken
	elems := p.parseExpressionList(token.RBRACKET)
	return &ast.ListLiteral{Token: tok, Elements: elems}
}

func (p *Parser) parseDictLiteral() ast.Expression {
	tok := p.curToken
	dict := &ast.DictLiteral{Token: tok}
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return dict
	}
	for {
		p.nextToken()
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		val := p.parseExpression(LOWEST)
		dict.Pairs = append(dict.Pairs, ast.DictPair{Key: key, Value: val})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return dict
}

// parseExpressionList parses a comma-separated run of expressions up to
// and including the closing token end, leaving curToken on end.
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}
