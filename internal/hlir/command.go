package hlir

import (
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/location"
)

// Label is the opaque integer identity of a basic block.
type Label int

// CommandKind discriminates Command's variants.
type CommandKind int

const (
	CmdAssign CommandKind = iota
	CmdMutate
	CmdAbort
	CmdReturn
	CmdBreak
	CmdContinue
	CmdIgnoreAndPop
	CmdJump
	CmdJumpIf
)

// Command is a single non-branching (or terminating) unit of execution
// within a block.
type Command struct {
	Loc  location.Loc
	Kind CommandKind

	AssignLValues []LValue
	AssignExp     *Exp

	MutateLHS *Exp
	MutateRHS *Exp

	AbortExp *Exp

	ReturnFromUser bool
	ReturnExp      *Exp

	PopNum int
	PopExp *Exp

	JumpFromUser bool
	JumpTarget   Label

	JumpIfCond    *Exp
	JumpIfTrue    Label
	JumpIfFalse   Label
}

// IsTerminal reports whether this command ends a basic block: it either
// exits the function or transfers control via a jump.
func (c Command) IsTerminal() bool {
	switch c.Kind {
	case CmdAbort, CmdReturn, CmdJump, CmdJumpIf:
		return true
	default:
		return false
	}
}

// IsExit reports whether this command leaves the function entirely.
func (c Command) IsExit() bool {
	switch c.Kind {
	case CmdAbort, CmdReturn:
		return true
	default:
		return false
	}
}

// IsUnit reports whether this command has no observable effect beyond
// sequencing: an empty assignment of a unit-typed expression, or an
// IgnoreAndPop of a unit-typed expression.
func (c Command) IsUnit() bool {
	switch c.Kind {
	case CmdAssign:
		return len(c.AssignLValues) == 0 && c.AssignExp.Type.Kind == TypeUnit
	case CmdIgnoreAndPop:
		return c.PopExp.Type.Kind == TypeUnit
	default:
		return false
	}
}

// Successors returns the set of labels control may transfer to directly
// after this command. It is a fatal internal error to call this on a
// non-terminal command, or on residual Break/Continue: both must have been
// rewritten to Jump before basic blocks are constructed.
func (c Command) Successors() []Label {
	switch c.Kind {
	case CmdAbort, CmdReturn:
		return nil
	case CmdJump:
		return []Label{c.JumpTarget}
	case CmdJumpIf:
		return []Label{c.JumpIfTrue, c.JumpIfFalse}
	case CmdBreak, CmdContinue:
		diag.ICE("break/continue not translated to jumps")
		return nil
	default:
		diag.ICE("Should not be last command in block")
		return nil
	}
}

// BasicBlock is a linear run of commands ending in a terminal command.
type BasicBlock = []Command

// BasicBlocks is an ordered mapping from label to basic block, iterated in
// first-insertion order for deterministic debug output.
type BasicBlocks struct {
	order  []Label
	blocks map[Label]BasicBlock
}

// NewBasicBlocks builds an empty BasicBlocks.
func NewBasicBlocks() *BasicBlocks {
	return &BasicBlocks{blocks: map[Label]BasicBlock{}}
}

// Add inserts a labeled basic block, preserving first-insertion order.
func (b *BasicBlocks) Add(label Label, block BasicBlock) {
	if _, ok := b.blocks[label]; !ok {
		b.order = append(b.order, label)
	}
	b.blocks[label] = block
}

// Get returns the basic block for label, if present.
func (b *BasicBlocks) Get(label Label) (BasicBlock, bool) {
	bb, ok := b.blocks[label]
	return bb, ok
}

// Labels returns all labels in insertion order.
func (b *BasicBlocks) Labels() []Label {
	out := make([]Label, len(b.order))
	copy(out, b.order)
	return out
}
