package hlir

import "github.com/lumen-lang/lumen/internal/location"

// Block is an ordered sequence of statements.
type Block []Statement

// StatementKind discriminates Statement's variants.
type StatementKind int

const (
	StmtCommand StatementKind = iota
	StmtIfElse
	StmtWhile
	StmtLoop
)

// Statement is a single block-level construct: a command, or one of the
// three structured control forms that survive until CFG lowering.
type Statement struct {
	Loc  location.Loc
	Kind StatementKind

	Command Command

	Cond     *Exp
	IfBlock  Block
	ElseBlock Block

	WhileCondBlock Block
	WhileCondExp   *Exp
	WhileBody      Block

	LoopBody    Block
	LoopHasBreak bool
}

// NewCommandStatement wraps a single command as a statement.
func NewCommandStatement(loc location.Loc, cmd Command) Statement {
	return Statement{Loc: loc, Kind: StmtCommand, Command: cmd}
}

// NewIfElseStatement builds a structured if/else statement.
func NewIfElseStatement(loc location.Loc, cond *Exp, ifBlock, elseBlock Block) Statement {
	return Statement{Loc: loc, Kind: StmtIfElse, Cond: cond, IfBlock: ifBlock, ElseBlock: elseBlock}
}

// NewWhileStatement builds a structured while statement: its condition is
// itself evaluated by a block of statements followed by an expression.
func NewWhileStatement(loc location.Loc, condBlock Block, condExp *Exp, body Block) Statement {
	return Statement{Loc: loc, Kind: StmtWhile, WhileCondBlock: condBlock, WhileCondExp: condExp, WhileBody: body}
}

// NewLoopStatement builds a structured (possibly infinite) loop statement.
func NewLoopStatement(loc location.Loc, body Block, hasBreak bool) Statement {
	return Statement{Loc: loc, Kind: StmtLoop, LoopBody: body, LoopHasBreak: hasBreak}
}
