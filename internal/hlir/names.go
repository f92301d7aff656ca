// Package hlir implements the High-Level IR: a desugared, post-type-checking
// program representation of modules, structs, constants, and functions whose
// function bodies are block-structured statements over commands, l-values,
// and annotated expressions.
package hlir

import (
	"github.com/lumen-lang/lumen/internal/ability"
	"github.com/lumen-lang/lumen/internal/location"
	"github.com/lumen-lang/lumen/internal/symbol"
)

// Var is a local variable name.
type Var struct {
	Name symbol.Name
}

func (v Var) Loc() location.Loc { return v.Name.Loc }
func (v Var) Value() string     { return v.Name.Value.String() }

// IsUnderscore reports whether this variable is exactly "_".
func (v Var) IsUnderscore() bool {
	return v.Value() == "_"
}

// StartsWithUnderscore reports whether this variable's name begins with an
// underscore (by convention, unused-but-bound locals).
func (v Var) StartsWithUnderscore() bool {
	s := v.Value()
	return len(s) > 0 && s[0] == '_'
}

// StructName, FunctionName, and ConstantName are declaration-site item
// names, distinguished by type for clarity at call sites.
type StructName struct{ Name symbol.Name }
type FunctionName struct{ Name symbol.Name }
type ConstantName struct{ Name symbol.Name }

func (n StructName) String() string   { return n.Name.Value.String() }
func (n FunctionName) String() string { return n.Name.Value.String() }
func (n ConstantName) String() string { return n.Name.Value.String() }

// Field is a struct field name.
type Field struct{ Name symbol.Name }

func (f Field) String() string { return f.Name.Value.String() }

// ModuleIdent is the fully qualified address+name identity of a module.
type ModuleIdent struct {
	Address string
	Module  string
}

// Is reports a structural address+name match.
func (m ModuleIdent) Is(address, module string) bool {
	return m.Address == address && m.Module == module
}

func (m ModuleIdent) String() string {
	return m.Address + "::" + m.Module
}

// BuiltinTypeName is the closed set of primitive type names.
type BuiltinTypeName int

const (
	BU8 BuiltinTypeName = iota
	BU16
	BU32
	BU64
	BU128
	BU256
	BBool
	BAddress
	BSigner
	BVector
)

func (b BuiltinTypeName) String() string {
	switch b {
	case BU8:
		return "u8"
	case BU16:
		return "u16"
	case BU32:
		return "u32"
	case BU64:
		return "u64"
	case BU128:
		return "u128"
	case BU256:
		return "u256"
	case BBool:
		return "bool"
	case BAddress:
		return "address"
	case BSigner:
		return "signer"
	case BVector:
		return "vector"
	default:
		return "?builtin"
	}
}

// IsNumeric reports whether b names one of the unsigned integer types.
func (b BuiltinTypeName) IsNumeric() bool {
	switch b {
	case BU8, BU16, BU32, BU64, BU128, BU256:
		return true
	default:
		return false
	}
}

// TParam is a type parameter as it survives into HLIR: already resolved,
// carrying only its name and computed ability constraints.
type TParam struct {
	Name      symbol.Name
	Abilities ability.Set
}

// StructTypeParameter pairs a TParam with whether it is phantom. Phantom
// parameters do not contribute to their struct's own computed abilities.
type StructTypeParameter struct {
	Param     TParam
	IsPhantom bool
}

// TypeNameKind discriminates TypeName's two variants.
type TypeNameKind int

const (
	TypeNameBuiltin TypeNameKind = iota
	TypeNameModuleType
)

// TypeName names either a builtin type or a user-defined module type.
type TypeName struct {
	Loc     location.Loc
	Kind    TypeNameKind
	Builtin BuiltinTypeName
	Module  ModuleIdent
	Struct  StructName
}

// Is reports a structural match against a module type name.
func (t TypeName) Is(address, module, name string) bool {
	return t.Kind == TypeNameModuleType && t.Module.Is(address, module) && t.Struct.String() == name
}
