package hlir

import "github.com/lumen-lang/lumen/internal/location"

// LValueKind discriminates LValue's three variants.
type LValueKind int

const (
	LValueIgnore LValueKind = iota
	LValueVar
	LValueUnpack
)

// UnpackField pairs a struct field with the l-value it binds to.
type UnpackField struct {
	Field  Field
	Target LValue
}

// LValue is an assignment target: a discard, a local binding, or a
// struct-destructuring pattern.
type LValue struct {
	Loc      location.Loc
	Kind     LValueKind
	Var      Var
	VarType  SingleType
	Struct   StructName
	TypeArgs []*BaseType
	Fields   []UnpackField
}

// NewIgnoreLValue builds the Ignore l-value.
func NewIgnoreLValue(loc location.Loc) LValue {
	return LValue{Loc: loc, Kind: LValueIgnore}
}

// NewVarLValue builds a local-binding l-value.
func NewVarLValue(loc location.Loc, v Var, ty SingleType) LValue {
	return LValue{Loc: loc, Kind: LValueVar, Var: v, VarType: ty}
}

// NewUnpackLValue builds a struct-destructuring l-value.
func NewUnpackLValue(loc location.Loc, s StructName, typeArgs []*BaseType, fields []UnpackField) LValue {
	return LValue{Loc: loc, Kind: LValueUnpack, Struct: s, TypeArgs: typeArgs, Fields: fields}
}
