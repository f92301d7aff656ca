package hlir

import (
	"github.com/lumen-lang/lumen/internal/ability"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/location"
)

// BaseTypeKind discriminates BaseType's four variants.
type BaseTypeKind int

const (
	BaseParam BaseTypeKind = iota
	BaseApply
	BaseUnreachable
	BaseUnresolvedError
)

// BaseType is a non-reference type: a type parameter, an applied type
// constructor (with its computed ability set), or one of the two error
// recovery placeholders.
type BaseType struct {
	Loc       location.Loc
	Kind      BaseTypeKind
	Param     TParam
	Abilities ability.Set
	TypeName  TypeName
	TypeArgs  []*BaseType
}

// NewBaseTypeParam builds a Param-kind BaseType.
func NewBaseTypeParam(loc location.Loc, p TParam) *BaseType {
	return &BaseType{Loc: loc, Kind: BaseParam, Param: p, Abilities: p.Abilities}
}

// NewBaseTypeUnreachable builds the Unreachable placeholder. It carries the
// full ability set so that a surrounding container's ability computation is
// never poisoned by its presence.
func NewBaseTypeUnreachable(loc location.Loc) *BaseType {
	return &BaseType{Loc: loc, Kind: BaseUnreachable, Abilities: ability.All()}
}

// NewBaseTypeUnresolvedError builds the UnresolvedError placeholder. It
// carries the full ability set for the same reason as Unreachable.
func NewBaseTypeUnresolvedError(loc location.Loc) *BaseType {
	return &BaseType{Loc: loc, Kind: BaseUnresolvedError, Abilities: ability.All()}
}

// NewBuiltinBaseType builds an Apply(TypeName::Builtin(b)) type, computing
// its ability set from the builtin kind and, for vector, the single element
// type argument's own abilities.
func NewBuiltinBaseType(loc location.Loc, b BuiltinTypeName, typeArgs []*BaseType) *BaseType {
	var abilities ability.Set
	switch b {
	case BSigner:
		abilities = ability.Signer()
	case BVector:
		if len(typeArgs) != 1 {
			diag.ICE("vector builtin type requires exactly one type argument, got %d", len(typeArgs))
		}
		abilities = ability.Collection(typeArgs[0].Abilities)
	default:
		abilities = ability.Primitives()
	}
	return &BaseType{
		Loc:       loc,
		Kind:      BaseApply,
		Abilities: abilities,
		TypeName:  TypeName{Loc: loc, Kind: TypeNameBuiltin, Builtin: b},
		TypeArgs:  typeArgs,
	}
}

// NewModuleBaseType builds an Apply(TypeName::ModuleType) type. The ability
// set of a user-defined struct is computed upstream (it depends on the
// struct's own declared abilities, not solely its type arguments) and is
// passed in directly.
func NewModuleBaseType(loc location.Loc, module ModuleIdent, name StructName, typeArgs []*BaseType, abilities ability.Set) *BaseType {
	return &BaseType{
		Loc:       loc,
		Kind:      BaseApply,
		Abilities: abilities,
		TypeName:  TypeName{Loc: loc, Kind: TypeNameModuleType, Module: module, Struct: name},
		TypeArgs:  typeArgs,
	}
}

// IsApply reports whether this is an Apply of the given module type name,
// with out params set to the type name and type arguments on success.
func (b *BaseType) IsApply(address, module, name string) (TypeName, []*BaseType, bool) {
	if b.Kind == BaseApply && b.TypeName.Is(address, module, name) {
		return b.TypeName, b.TypeArgs, true
	}
	return TypeName{}, nil, false
}

// SingleTypeKind discriminates SingleType's two variants.
type SingleTypeKind int

const (
	SingleBase SingleTypeKind = iota
	SingleRef
)

// SingleType is a possibly-referenced BaseType. References always carry
// copy+drop abilities regardless of the referent.
type SingleType struct {
	Loc   location.Loc
	Kind  SingleTypeKind
	Base  *BaseType
	IsMut bool
}

// NewSingleTypeBase wraps a BaseType as a non-reference SingleType.
func NewSingleTypeBase(b *BaseType) SingleType {
	return SingleType{Loc: b.Loc, Kind: SingleBase, Base: b}
}

// NewSingleTypeRef wraps a BaseType as a (possibly mutable) reference.
func NewSingleTypeRef(loc location.Loc, isMut bool, b *BaseType) SingleType {
	return SingleType{Loc: loc, Kind: SingleRef, Base: b, IsMut: isMut}
}

// Abilities returns this single type's ability set: references delegate to
// the fixed reference ability set, base types delegate to their own.
func (s SingleType) Abilities() ability.Set {
	if s.Kind == SingleRef {
		return ability.References()
	}
	return s.Base.Abilities
}

// IsApply delegates to the wrapped base type when this is a Base variant.
func (s SingleType) IsApply(address, module, name string) (TypeName, []*BaseType, bool) {
	if s.Kind != SingleBase {
		return TypeName{}, nil, false
	}
	return s.Base.IsApply(address, module, name)
}

// TypeKind discriminates Type's three variants.
type TypeKind int

const (
	TypeUnit TypeKind = iota
	TypeSingle
	TypeMultiple
)

// Type is a function-result-shaped type: unit, a single value, or a tuple
// of two or more values.
type Type struct {
	Loc     location.Loc
	Kind    TypeKind
	Single  SingleType
	Members []SingleType
}

// UnitType builds the Unit type.
func UnitType(loc location.Loc) Type {
	return Type{Loc: loc, Kind: TypeUnit}
}

// FromSlice builds a Type from zero or more SingleTypes: zero yields Unit,
// one yields Single, two or more yield Multiple.
func FromSlice(loc location.Loc, ss []SingleType) Type {
	switch len(ss) {
	case 0:
		return UnitType(loc)
	case 1:
		return Type{Loc: loc, Kind: TypeSingle, Single: ss[0]}
	default:
		return Type{Loc: loc, Kind: TypeMultiple, Members: ss}
	}
}

// TypeAtIndex returns the SingleType at position i. It is a fatal internal
// error to call this on Unit, or with an out-of-range index on Single or
// Multiple.
func (t Type) TypeAtIndex(i int) SingleType {
	switch t.Kind {
	case TypeSingle:
		if i != 0 {
			diag.ICE("type_at_index: index %d out of range for Single", i)
		}
		return t.Single
	case TypeMultiple:
		if i < 0 || i >= len(t.Members) {
			diag.ICE("type_at_index: index %d out of range for Multiple of length %d", i, len(t.Members))
		}
		return t.Members[i]
	default:
		diag.ICE("type_at_index: called on Unit")
		panic("unreachable")
	}
}

// IsApply delegates to the wrapped single type when this is a Single
// variant.
func (t Type) IsApply(address, module, name string) (TypeName, []*BaseType, bool) {
	if t.Kind != TypeSingle {
		return TypeName{}, nil, false
	}
	return t.Single.IsApply(address, module, name)
}
