package hlir

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/ability"
	"github.com/lumen-lang/lumen/internal/location"
	"github.com/lumen-lang/lumen/internal/symbol"
)

func testLoc() location.Loc {
	file := location.NewAnonymousFileId("hlir_test.lu")
	return location.MakeLoc(file, 0, 1)
}

func TestTypeFromSlice(t *testing.T) {
	loc := testLoc()
	u64 := NewSingleTypeBase(NewBuiltinBaseType(loc, BU64, nil))
	boolT := NewSingleTypeBase(NewBuiltinBaseType(loc, BBool, nil))

	if got := FromSlice(loc, nil); got.Kind != TypeUnit {
		t.Errorf("FromSlice(nil) kind = %v, want Unit", got.Kind)
	}
	single := FromSlice(loc, []SingleType{u64})
	if single.Kind != TypeSingle {
		t.Fatalf("FromSlice(1) kind = %v, want Single", single.Kind)
	}
	if single.TypeAtIndex(0).Base.TypeName.Builtin != BU64 {
		t.Errorf("TypeAtIndex(0) = %v, want BU64", single.TypeAtIndex(0))
	}

	multi := FromSlice(loc, []SingleType{u64, boolT})
	if multi.Kind != TypeMultiple {
		t.Fatalf("FromSlice(2) kind = %v, want Multiple", multi.Kind)
	}
	if multi.TypeAtIndex(1).Base.TypeName.Builtin != BBool {
		t.Errorf("TypeAtIndex(1) = %v, want BBool", multi.TypeAtIndex(1))
	}
}

func TestTypeAtIndexPanicsOnUnit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling TypeAtIndex on Unit")
		}
	}()
	FromSlice(testLoc(), nil).TypeAtIndex(0)
}

func TestVectorAbilitiesFilterByElement(t *testing.T) {
	loc := testLoc()
	// signer has only drop; a vector<signer> should carry only drop (copy
	// and store both require the element to have copy/store, which signer
	// lacks; key requires store, also lacking).
	signer := NewBuiltinBaseType(loc, BSigner, nil)
	vecOfSigner := NewBuiltinBaseType(loc, BVector, []*BaseType{signer})
	if vecOfSigner.Abilities.Has(ability.Copy) {
		t.Errorf("vector<signer> should not have copy")
	}
	if !vecOfSigner.Abilities.Has(ability.Drop) {
		t.Errorf("vector<signer> should have drop")
	}
	if vecOfSigner.Abilities.Has(ability.Store) {
		t.Errorf("vector<signer> should not have store")
	}

	// vector<u64>: u64 has copy+drop+store, so the vector gets all three,
	// and key as well, since key only requires the element to be store.
	u64 := NewBuiltinBaseType(loc, BU64, nil)
	vecOfU64 := NewBuiltinBaseType(loc, BVector, []*BaseType{u64})
	for _, a := range []ability.Ability{ability.Copy, ability.Drop, ability.Store} {
		if !vecOfU64.Abilities.Has(a) {
			t.Errorf("vector<u64> missing ability %v", a)
		}
	}
	if !vecOfU64.Abilities.Has(ability.Key) {
		t.Errorf("vector<u64> should have key")
	}
}

func TestUnreachableAndUnresolvedErrorCarryFullAbilities(t *testing.T) {
	loc := testLoc()
	unreachable := NewBaseTypeUnreachable(loc)
	unresolved := NewBaseTypeUnresolvedError(loc)
	for _, a := range []ability.Ability{ability.Copy, ability.Drop, ability.Store, ability.Key} {
		if !unreachable.Abilities.Has(a) {
			t.Errorf("Unreachable missing ability %v", a)
		}
		if !unresolved.Abilities.Has(a) {
			t.Errorf("UnresolvedError missing ability %v", a)
		}
	}

	// A vector of Unreachable must not have its ability computation
	// poisoned to Empty by the placeholder's presence.
	vecOfUnreachable := NewBuiltinBaseType(loc, BVector, []*BaseType{unreachable})
	for _, a := range []ability.Ability{ability.Copy, ability.Drop, ability.Store, ability.Key} {
		if !vecOfUnreachable.Abilities.Has(a) {
			t.Errorf("vector<Unreachable> missing ability %v, abilities poisoned to Empty", a)
		}
	}
}

func TestKeyRequiresStore(t *testing.T) {
	if ability.Key.Requires() != ability.Store {
		t.Errorf("Key.Requires() = %v, want Store", ability.Key.Requires())
	}
	// A collection of a store-but-not-key element should itself be
	// eligible for key, mirroring the propagation rule.
	storeOnly := ability.Of(ability.Store)
	computed := ability.Collection(storeOnly)
	if !computed.Has(ability.Key) {
		t.Errorf("Collection(store) should include key, got %v", computed)
	}
}

func TestCommandPredicates(t *testing.T) {
	loc := testLoc()
	unitExp := &Exp{Type: UnitType(loc), Exp: &UnannotatedExp{Loc: loc, Kind: ExpUnit}}

	ret := Command{Kind: CmdReturn, ReturnExp: unitExp}
	if !ret.IsTerminal() || !ret.IsExit() {
		t.Errorf("return command should be terminal and exit")
	}
	if len(ret.Successors()) != 0 {
		t.Errorf("return command should have no successors")
	}

	jump := Command{Kind: CmdJump, JumpTarget: Label(3)}
	if !jump.IsTerminal() || jump.IsExit() {
		t.Errorf("jump should be terminal but not an exit")
	}
	if succ := jump.Successors(); len(succ) != 1 || succ[0] != Label(3) {
		t.Errorf("jump successors = %v, want [3]", succ)
	}

	jumpIf := Command{Kind: CmdJumpIf, JumpIfTrue: Label(1), JumpIfFalse: Label(2)}
	succ := jumpIf.Successors()
	if len(succ) != 2 || succ[0] != Label(1) || succ[1] != Label(2) {
		t.Errorf("jump_if successors = %v, want [1 2]", succ)
	}

	assign := Command{Kind: CmdAssign, AssignExp: unitExp}
	if !assign.IsUnit() {
		t.Errorf("empty assign of unit expression should be IsUnit")
	}
}

func TestVectorValueStringIncludesElementType(t *testing.T) {
	loc := testLoc()
	u64 := NewBuiltinBaseType(loc, BU64, nil)
	v := NewVectorValue(loc, u64, []Value{
		{Loc: loc, Kind: ValueU64, U64: 1},
		{Loc: loc, Kind: ValueU64, U64: 2},
	})
	want := "vector#value<u64>[1u64, 2u64]"
	if got := v.String(); got != want {
		t.Errorf("Vector value String() = %q, want %q", got, want)
	}
}

func TestDebugIgnoreAndPopJoinsUnderscores(t *testing.T) {
	loc := testLoc()
	unitExp := &Exp{Type: UnitType(loc), Exp: &UnannotatedExp{Loc: loc, Kind: ExpUnit}}
	cmd := Command{Kind: CmdIgnoreAndPop, PopNum: 3, PopExp: unitExp}
	want := "pop _, _, _ = /*;()*/;"
	if got := DebugCommand(cmd); got != want {
		t.Errorf("DebugCommand(pop) = %q, want %q", got, want)
	}
}

func TestDebugUnreachableAndUnresolvedErrorExpressions(t *testing.T) {
	loc := testLoc()
	unreachable := DebugExp(&Exp{Type: UnitType(loc), Exp: &UnannotatedExp{Loc: loc, Kind: ExpUnreachable}})
	if unreachable != "unreachable" {
		t.Errorf("DebugExp(Unreachable) = %q, want %q", unreachable, "unreachable")
	}
	unresolved := DebugExp(&Exp{Type: UnitType(loc), Exp: &UnannotatedExp{Loc: loc, Kind: ExpUnresolvedError}})
	if unresolved != "_|_" {
		t.Errorf("DebugExp(UnresolvedError) = %q, want %q", unresolved, "_|_")
	}
}

func TestDebugExpVectorUsesLengthNotLiteral(t *testing.T) {
	loc := testLoc()
	u64 := NewBuiltinBaseType(loc, BU64, nil)
	elem := &Exp{Type: FromSlice(loc, []SingleType{NewSingleTypeBase(u64)}), Exp: &UnannotatedExp{
		Loc: loc, Kind: ExpValue, Value: Value{Loc: loc, Kind: ValueU64, U64: 7},
	}}
	e := &UnannotatedExp{
		Loc:            loc,
		Kind:           ExpVector,
		VectorLen:      1,
		VectorElemType: u64,
		VectorElems:    []*Exp{elem},
	}
	want := "vector#1<u64>[7u64]"
	if got := debugUnannotated(e); got != want {
		t.Errorf("debugUnannotated(vector) = %q, want %q", got, want)
	}
}

func TestSuccessorsOfNonTerminalIsICE(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Successors on a non-terminal command")
		}
	}()
	Command{Kind: CmdAssign}.Successors()
}

func TestSuccessorsOfResidualBreakIsICE(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Successors on residual Break")
		}
	}()
	Command{Kind: CmdBreak}.Successors()
}

func TestDebugOutputIsDeterministic(t *testing.T) {
	prog := buildSampleProgram()
	first := DebugProgram(prog)
	second := DebugProgram(prog)
	if first != second {
		t.Errorf("DebugProgram output is not deterministic:\n%s\n---\n%s", first, second)
	}
	if first == "" {
		t.Errorf("DebugProgram produced empty output")
	}
}

func buildSampleProgram() *Program {
	loc := testLoc()
	prog := NewProgram()

	moduleIdent := ModuleIdent{Address: "0x1", Module: "coin"}
	mod := NewModuleDefinition(loc, true, 0)

	u64 := NewSingleTypeBase(NewBuiltinBaseType(loc, BU64, nil))
	structName := StructName{Name: symbol.MakeName(loc, "Coin")}
	sDef := &StructDefinition{
		Loc:       loc,
		Abilities: ability.Of(ability.Store, ability.Key),
		Fields: StructFields{
			Kind: StructFieldsDefined,
			Fields: []StructFieldPair{
				{Field: Field{Name: symbol.MakeName(loc, "value")}, Type: u64.Base},
			},
		},
	}
	mod.Structs.Add(structName, sDef)

	fnName := FunctionName{Name: symbol.MakeName(loc, "value")}
	v := Var{Name: symbol.MakeName(loc, "self")}
	body := Block{
		NewCommandStatement(loc, Command{
			Kind: CmdReturn,
			ReturnExp: &Exp{
				Type: FromSlice(loc, []SingleType{u64}),
				Exp:  &UnannotatedExp{Loc: loc, Kind: ExpCopy, Var: v},
			},
		}),
	}
	fn := &Function{
		Loc:        loc,
		Visibility: Visibility{Kind: VisibilityPublic},
		Signature: FunctionSignature{
			Parameters: []FunctionParameter{{Var: v, Type: u64}},
			ReturnType: FromSlice(loc, []SingleType{u64}),
		},
		Body: FunctionBody{Kind: FunctionBodyDefined, Body: body},
	}
	mod.Functions.Add(fnName, fn)

	prog.Modules.Add(moduleIdent, mod)
	return prog
}

func TestUniqueMapRejectsDuplicateModules(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic inserting a duplicate module")
		}
	}()
	loc := testLoc()
	prog := NewProgram()
	id := ModuleIdent{Address: "0x1", Module: "m"}
	prog.Modules.Add(id, NewModuleDefinition(loc, true, 0))
	prog.Modules.Add(id, NewModuleDefinition(loc, true, 0))
}
