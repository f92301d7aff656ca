package hlir

import (
	"github.com/google/uuid"

	"github.com/lumen-lang/lumen/internal/location"
)

// UnaryOp is the closed set of unary operators surviving into HLIR.
type UnaryOp int

const (
	UnaryNot UnaryOp = iota
)

func (o UnaryOp) String() string {
	switch o {
	case UnaryNot:
		return "!"
	default:
		return "?unop"
	}
}

// BinOp is the closed set of binary operators surviving into HLIR.
type BinOp int

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinBitAnd
	BinBitOr
	BinXor
	BinShl
	BinShr
	BinLt
	BinGt
	BinLe
	BinGe
	BinEq
	BinNeq
	BinAnd
	BinOr
)

var binOpSymbols = map[BinOp]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinMod: "%",
	BinBitAnd: "&", BinBitOr: "|", BinXor: "^", BinShl: "<<", BinShr: ">>",
	BinLt: "<", BinGt: ">", BinLe: "<=", BinGe: ">=", BinEq: "==", BinNeq: "!=",
	BinAnd: "&&", BinOr: "||",
}

func (o BinOp) String() string {
	if s, ok := binOpSymbols[o]; ok {
		return s
	}
	return "?binop"
}

// MoveOpAnnotation records why a `move` expression was introduced: written
// directly by the user, or synthesized by an earlier pass because a
// variable's last use or non-copy ability required it.
type MoveOpAnnotation int

const (
	MoveFromUser MoveOpAnnotation = iota
	MoveInferredLastUsage
	MoveInferredNoCopy
)

// UnitCase records why a Unit expression exists: it trails a block, it was
// synthesized implicitly, or it came directly from the user's source.
type UnitCase int

const (
	UnitTrailing UnitCase = iota
	UnitImplicit
	UnitFromUser
)

// SpecId is an opaque identity for a spec block retained structurally in
// HLIR. The original compiler assigns these from a process-local counter;
// this port uses a random identity instead, since a library may have many
// concurrently-constructed programs (see DESIGN.md).
type SpecId struct {
	id uuid.UUID
}

// NewSpecId allocates a fresh SpecId.
func NewSpecId() SpecId {
	return SpecId{id: uuid.New()}
}

func (s SpecId) String() string {
	return s.id.String()
}

// ModuleCall is a fully-resolved call to a function in another (or the
// same) module.
type ModuleCall struct {
	Module        ModuleIdent
	Name          FunctionName
	TypeArguments []*BaseType
	Arguments     *Exp
}

// Is reports a structural match against address+module+function name.
func (m ModuleCall) Is(address, module, name string) bool {
	return m.Module.Is(address, module) && m.Name.String() == name
}

// ExpKind discriminates UnannotatedExp's many variants.
type ExpKind int

const (
	ExpUnit ExpKind = iota
	ExpValue
	ExpMove
	ExpCopy
	ExpConstant
	ExpModuleCall
	ExpFreeze
	ExpVector
	ExpDereference
	ExpUnaryExp
	ExpBinopExp
	ExpPack
	ExpMultiple
	ExpBorrow
	ExpBorrowLocal
	ExpCast
	ExpUnreachable
	ExpSpec
	ExpUnresolvedError
)

// PackField pairs a struct field with its declared type and initializing
// expression.
type PackField struct {
	Field Field
	Type  *BaseType
	Init  *Exp
}

// UnannotatedExp is the closed set of expression forms surviving into HLIR.
// Every field not relevant to Kind is left zero.
type UnannotatedExp struct {
	Loc  location.Loc
	Kind ExpKind

	UnitCase UnitCase

	Value Value

	MoveAnnotation MoveOpAnnotation
	CopyFromUser   bool
	Var            Var

	Constant ConstantName

	Call *ModuleCall

	Inner *Exp

	VectorLen      int
	VectorElemType *BaseType
	VectorElems    []*Exp

	UnOp  UnaryOp
	BinOp BinOp
	Left  *Exp
	Right *Exp

	PackStruct   StructName
	PackTypeArgs []*BaseType
	PackFields   []PackField

	Multiple []*Exp

	BorrowIsMut     bool
	BorrowField     Field
	BorrowFromUnpack *location.Loc

	CastType BuiltinTypeName

	SpecId   SpecId
	SpecUses map[Var]SingleType
}

// Exp pairs an unannotated expression with its computed type.
type Exp struct {
	Type Type
	Exp  *UnannotatedExp
}
