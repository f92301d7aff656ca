package hlir

import (
	"github.com/lumen-lang/lumen/internal/ability"
	"github.com/lumen-lang/lumen/internal/collections"
	"github.com/lumen-lang/lumen/internal/location"
	"github.com/lumen-lang/lumen/internal/symbol"
)

// WarningFilter is carried through from the surface syntax so that
// downstream lint passes can suppress specific warning codes per item. Its
// contents are opaque to HLIR itself.
type WarningFilter struct {
	Codes []string
}

// Attribute is a single surface-level `#[...]` annotation retained for
// downstream tooling (test runners, documentation generators).
type Attribute struct {
	Name symbol.Name
	Args []string
}

// StructFieldsKind discriminates StructFields' two variants.
type StructFieldsKind int

const (
	StructFieldsDefined StructFieldsKind = iota
	StructFieldsNative
)

// StructFields is either a concrete list of typed fields or a marker that
// the struct's layout is provided natively (no HLIR-visible fields).
type StructFields struct {
	Kind       StructFieldsKind
	Fields     []StructFieldPair
	NativeLoc  location.Loc
}

// StructFieldPair is a single declared field.
type StructFieldPair struct {
	Field Field
	Type  *BaseType
}

// StructDefinition is a struct declaration.
type StructDefinition struct {
	WarningFilter     WarningFilter
	DeclarationIndex  int
	Attributes        []Attribute
	Loc               location.Loc
	Abilities         ability.Set
	TypeParameters    []StructTypeParameter
	Fields            StructFields
}

// Constant is a module-level constant declaration.
type Constant struct {
	WarningFilter    WarningFilter
	DeclarationIndex int
	Attributes       []Attribute
	Loc              location.Loc
	Signature        *BaseType
	Locals           *collections.UniqueMap[Var, SingleType]
	Body             Block
}

// VisibilityKind discriminates Visibility's three variants.
type VisibilityKind int

const (
	VisibilityPublic VisibilityKind = iota
	VisibilityFriend
	VisibilityInternal
)

// Visibility records a function's exposure: public, friend (visible to
// declared sibling modules only), or internal (module-private).
type Visibility struct {
	Kind VisibilityKind
	Loc  location.Loc
}

// FunctionSignature describes a function's parameters and return type,
// independent of its body.
type FunctionSignature struct {
	TypeParameters []TParam
	Parameters     []FunctionParameter
	ReturnType     Type
}

// FunctionParameter is a single declared parameter.
type FunctionParameter struct {
	Var  Var
	Type SingleType
}

// FunctionBodyKind discriminates FunctionBody's two variants.
type FunctionBodyKind int

const (
	FunctionBodyNative FunctionBodyKind = iota
	FunctionBodyDefined
)

// FunctionBody is either a native marker or a concrete locals+block body.
type FunctionBody struct {
	Kind   FunctionBodyKind
	Locals *collections.UniqueMap[Var, SingleType]
	Body   Block
}

// Function is a function declaration.
type Function struct {
	WarningFilter    WarningFilter
	DeclarationIndex int
	Attributes       []Attribute
	Loc              location.Loc
	Visibility       Visibility
	Entry            *location.Loc
	Signature        FunctionSignature
	Body             FunctionBody
}

// ModuleDefinition is a single compiled module: its structs, constants, and
// functions, plus the bookkeeping needed to order modules by dependency.
type ModuleDefinition struct {
	WarningFilter   WarningFilter
	PackageName     *symbol.Symbol
	Attributes      []Attribute
	Loc             location.Loc
	IsSourceModule  bool
	DependencyOrder int
	Friends         map[ModuleIdent]location.Loc
	Structs         *collections.UniqueMap[StructName, *StructDefinition]
	Constants       *collections.UniqueMap[ConstantName, *Constant]
	Functions       *collections.UniqueMap[FunctionName, *Function]
}

// NewModuleDefinition builds an empty module shell ready to be populated.
func NewModuleDefinition(loc location.Loc, isSource bool, depOrder int) *ModuleDefinition {
	return &ModuleDefinition{
		Loc:             loc,
		IsSourceModule:  isSource,
		DependencyOrder: depOrder,
		Friends:         map[ModuleIdent]location.Loc{},
		Structs:         collections.NewUniqueMap[StructName, *StructDefinition](),
		Constants:       collections.NewUniqueMap[ConstantName, *Constant](),
		Functions:       collections.NewUniqueMap[FunctionName, *Function](),
	}
}

// Script is a single entry-point script: its entry function plus whatever
// constants it needs, none of which are exposed outside the script itself.
// A script declares no structs.
type Script struct {
	WarningFilter WarningFilter
	Attributes    []Attribute
	Loc           location.Loc
	PackageName   *symbol.Symbol
	Constants     *collections.UniqueMap[ConstantName, *Constant]
	FunctionName  FunctionName
	Function      *Function
}

// Program is the root of the HLIR: every compiled module plus every
// compiled script.
type Program struct {
	Modules *collections.UniqueMap[ModuleIdent, *ModuleDefinition]
	Scripts map[symbol.Symbol]*Script
}

// NewProgram builds an empty Program.
func NewProgram() *Program {
	return &Program{
		Modules: collections.NewUniqueMap[ModuleIdent, *ModuleDefinition](),
		Scripts: map[symbol.Symbol]*Script{},
	}
}
