package hlir

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lumen-lang/lumen/internal/ability"
)

// printer accumulates a deterministic textual rendering of HLIR values,
// mirroring the original compiler's AstDebug trait: every compound value
// renders the same way on every run given the same data, so golden tests
// can pin it.
type printer struct {
	sb     strings.Builder
	indent int
}

func newPrinter() *printer {
	return &printer{}
}

func (p *printer) writeIndent() {
	p.sb.WriteString(strings.Repeat("  ", p.indent))
}

func (p *printer) line(format string, args ...interface{}) {
	p.writeIndent()
	fmt.Fprintf(&p.sb, format, args...)
	p.sb.WriteByte('\n')
}

func (p *printer) raw(s string) {
	p.sb.WriteString(s)
}

// DebugProgram renders a Program deterministically: modules in address
// order, then name order; scripts in name order.
func DebugProgram(prog *Program) string {
	p := newPrinter()

	modIdents := prog.Modules.Keys()
	slices.SortFunc(modIdents, func(a, b ModuleIdent) int {
		if a.Address != b.Address {
			return strings.Compare(a.Address, b.Address)
		}
		return strings.Compare(a.Module, b.Module)
	})
	for _, id := range modIdents {
		mod, _ := prog.Modules.Get(id)
		p.debugModule(id, mod)
	}

	var scriptNames []string
	for name := range prog.Scripts {
		scriptNames = append(scriptNames, name.String())
	}
	slices.Sort(scriptNames)
	for _, name := range scriptNames {
		for sym, script := range prog.Scripts {
			if sym.String() == name {
				p.debugScript(name, script)
				break
			}
		}
	}

	return p.sb.String()
}

func (p *printer) debugModule(id ModuleIdent, mod *ModuleDefinition) {
	p.line("module %s {", id)
	p.indent++

	mod.Structs.Iter(func(name StructName, s *StructDefinition) {
		p.debugStruct(name, s)
	})
	mod.Constants.Iter(func(name ConstantName, c *Constant) {
		p.debugConstant(name, c)
	})
	mod.Functions.Iter(func(name FunctionName, f *Function) {
		p.debugFunction(name, f)
	})

	p.indent--
	p.line("}")
}

func (p *printer) debugScript(name string, s *Script) {
	p.line("script %s {", name)
	p.indent++
	p.debugFunction(s.FunctionName, s.Function)
	p.indent--
	p.line("}")
}

func (p *printer) debugStruct(name StructName, s *StructDefinition) {
	prefix := ""
	if s.Fields.Kind == StructFieldsNative {
		prefix = "native "
	}
	p.line("%sstruct#%d %s: %s {", prefix, s.DeclarationIndex, name, debugAbilities(s.Abilities))
	if s.Fields.Kind == StructFieldsDefined {
		p.indent++
		for _, f := range s.Fields.Fields {
			p.line("%s: %s;", f.Field, DebugBaseType(f.Type))
		}
		p.indent--
	}
	p.line("}")
}

func (p *printer) debugConstant(name ConstantName, c *Constant) {
	p.line("const#%d %s: %s;", c.DeclarationIndex, name, DebugBaseType(c.Signature))
}

func (p *printer) debugFunction(name FunctionName, f *Function) {
	visibility := ""
	switch f.Visibility.Kind {
	case VisibilityPublic:
		visibility = "public "
	case VisibilityFriend:
		visibility = "public(friend) "
	}
	entry := ""
	if f.Entry != nil {
		entry = "entry "
	}
	native := ""
	if f.Body.Kind == FunctionBodyNative {
		native = "native "
	}

	var params []string
	for _, param := range f.Signature.Parameters {
		params = append(params, fmt.Sprintf("%s: %s", param.Var.Value(), DebugSingleType(param.Type)))
	}

	p.line("%s%s%sfun#%d %s(%s): %s {", visibility, entry, native, f.DeclarationIndex, name,
		strings.Join(params, ", "), DebugType(f.Signature.ReturnType))

	if f.Body.Kind == FunctionBodyDefined {
		p.indent++
		p.debugBlock(f.Body.Body)
		p.indent--
	}
	p.line("}")
}

func debugAbilities(set ability.Set) string {
	var names []string
	for _, a := range []ability.Ability{ability.Copy, ability.Drop, ability.Store, ability.Key} {
		if set.Has(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, ", ")
}

func (p *printer) debugBlock(b Block) {
	for _, stmt := range b {
		p.debugStatement(stmt)
	}
}

func (p *printer) debugStatement(s Statement) {
	switch s.Kind {
	case StmtCommand:
		p.line("%s", DebugCommand(s.Command))
	case StmtIfElse:
		p.line("if (%s) {", DebugExp(s.Cond))
		p.indent++
		p.debugBlock(s.IfBlock)
		p.indent--
		p.line("} else {")
		p.indent++
		p.debugBlock(s.ElseBlock)
		p.indent--
		p.line("}")
	case StmtWhile:
		p.line("while (")
		p.indent++
		p.debugBlock(s.WhileCondBlock)
		p.line("%s", DebugExp(s.WhileCondExp))
		p.indent--
		p.line(") {")
		p.indent++
		p.debugBlock(s.WhileBody)
		p.indent--
		p.line("}")
	case StmtLoop:
		marker := ""
		if !s.LoopHasBreak {
			marker = " // no break"
		}
		p.line("loop {%s", marker)
		p.indent++
		p.debugBlock(s.LoopBody)
		p.indent--
		p.line("}")
	}
}

// DebugCommand renders a single command using the original's exact textual
// forms (jump N / jump@N, return e / return@e, pop N _ ... = e, etc.).
func DebugCommand(c Command) string {
	switch c.Kind {
	case CmdAssign:
		if len(c.AssignLValues) == 0 {
			return DebugExp(c.AssignExp) + ";"
		}
		var lvs []string
		for _, lv := range c.AssignLValues {
			lvs = append(lvs, DebugLValue(lv))
		}
		return strings.Join(lvs, ", ") + " = " + DebugExp(c.AssignExp) + ";"
	case CmdMutate:
		return "*" + DebugExp(c.MutateLHS) + " = " + DebugExp(c.MutateRHS) + ";"
	case CmdAbort:
		return "abort " + DebugExp(c.AbortExp) + ";"
	case CmdReturn:
		if c.ReturnFromUser {
			return "return@" + DebugExp(c.ReturnExp) + ";"
		}
		return "return " + DebugExp(c.ReturnExp) + ";"
	case CmdBreak:
		return "break;"
	case CmdContinue:
		return "continue;"
	case CmdIgnoreAndPop:
		underscores := make([]string, c.PopNum)
		for i := range underscores {
			underscores[i] = "_"
		}
		return fmt.Sprintf("pop %s = %s;", strings.Join(underscores, ", "), DebugExp(c.PopExp))
	case CmdJump:
		if c.JumpFromUser {
			return fmt.Sprintf("jump@%d;", c.JumpTarget)
		}
		return fmt.Sprintf("jump %d;", c.JumpTarget)
	case CmdJumpIf:
		return fmt.Sprintf("jump_if(%s) %d else %d;", DebugExp(c.JumpIfCond), c.JumpIfTrue, c.JumpIfFalse)
	default:
		return "?command"
	}
}

// DebugLValue renders an l-value.
func DebugLValue(lv LValue) string {
	switch lv.Kind {
	case LValueIgnore:
		return "_"
	case LValueVar:
		return lv.Var.Value()
	case LValueUnpack:
		var fields []string
		for _, f := range lv.Fields {
			fields = append(fields, fmt.Sprintf("%s: %s", f.Field, DebugLValue(f.Target)))
		}
		return fmt.Sprintf("%s{%s}", lv.Struct, strings.Join(fields, ", "))
	default:
		return "?lvalue"
	}
}

// DebugBaseType renders a base type.
func DebugBaseType(b *BaseType) string {
	switch b.Kind {
	case BaseParam:
		return b.Param.Name.Value.String()
	case BaseApply:
		name := debugTypeName(b.TypeName)
		if len(b.TypeArgs) == 0 {
			return name
		}
		var args []string
		for _, a := range b.TypeArgs {
			args = append(args, DebugBaseType(a))
		}
		return fmt.Sprintf("%s<%s>", name, strings.Join(args, ", "))
	case BaseUnreachable:
		return "_|_"
	case BaseUnresolvedError:
		return "_"
	default:
		return "?basetype"
	}
}

func debugTypeName(t TypeName) string {
	if t.Kind == TypeNameBuiltin {
		return t.Builtin.String()
	}
	return fmt.Sprintf("%s::%s", t.Module, t.Struct)
}

// DebugSingleType renders a single type.
func DebugSingleType(s SingleType) string {
	if s.Kind == SingleRef {
		if s.IsMut {
			return "&mut " + DebugBaseType(s.Base)
		}
		return "&" + DebugBaseType(s.Base)
	}
	return DebugBaseType(s.Base)
}

// DebugType renders a function-result type.
func DebugType(t Type) string {
	switch t.Kind {
	case TypeUnit:
		return "()"
	case TypeSingle:
		return DebugSingleType(t.Single)
	case TypeMultiple:
		var members []string
		for _, m := range t.Members {
			members = append(members, DebugSingleType(m))
		}
		return "(" + strings.Join(members, ", ") + ")"
	default:
		return "?type"
	}
}

// DebugExp renders an annotated expression.
func DebugExp(e *Exp) string {
	if e == nil {
		return "_"
	}
	return debugUnannotated(e.Exp)
}

func debugUnannotated(e *UnannotatedExp) string {
	switch e.Kind {
	case ExpUnit:
		switch e.UnitCase {
		case UnitImplicit:
			return "/*()*/"
		case UnitTrailing:
			return "/*;()*/"
		default:
			return "()"
		}
	case ExpValue:
		return e.Value.String()
	case ExpMove:
		switch e.MoveAnnotation {
		case MoveFromUser:
			return "move@" + e.Var.Value()
		case MoveInferredLastUsage:
			return "move#last " + e.Var.Value()
		case MoveInferredNoCopy:
			return "move#no-copy " + e.Var.Value()
		default:
			return "move " + e.Var.Value()
		}
	case ExpCopy:
		if e.CopyFromUser {
			return "copy@" + e.Var.Value()
		}
		return "copy " + e.Var.Value()
	case ExpConstant:
		return e.Constant.String()
	case ExpModuleCall:
		var args []string
		if e.Call.Arguments != nil {
			args = append(args, DebugExp(e.Call.Arguments))
		}
		return fmt.Sprintf("%s::%s(%s)", e.Call.Module, e.Call.Name, strings.Join(args, ", "))
	case ExpFreeze:
		return "freeze(" + DebugExp(e.Inner) + ")"
	case ExpVector:
		var elems []string
		for _, el := range e.VectorElems {
			elems = append(elems, DebugExp(el))
		}
		return fmt.Sprintf("vector#%d<%s>[%s]", e.VectorLen, DebugBaseType(e.VectorElemType), strings.Join(elems, ", "))
	case ExpDereference:
		return "*" + DebugExp(e.Inner)
	case ExpUnaryExp:
		return e.UnOp.String() + DebugExp(e.Inner)
	case ExpBinopExp:
		return fmt.Sprintf("(%s %s %s)", DebugExp(e.Left), e.BinOp, DebugExp(e.Right))
	case ExpPack:
		var fields []string
		for _, f := range e.PackFields {
			fields = append(fields, fmt.Sprintf("%s: %s", f.Field, DebugExp(f.Init)))
		}
		return fmt.Sprintf("%s{%s}", e.PackStruct, strings.Join(fields, ", "))
	case ExpMultiple:
		var parts []string
		for _, m := range e.Multiple {
			parts = append(parts, DebugExp(m))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case ExpBorrow:
		prefix := "&"
		if e.BorrowIsMut {
			prefix = "&mut "
		}
		suffix := ""
		if e.BorrowFromUnpack != nil {
			suffix = "#from_unpack"
		}
		return fmt.Sprintf("%s%s.%s%s", prefix, DebugExp(e.Inner), e.BorrowField, suffix)
	case ExpBorrowLocal:
		prefix := "&"
		if e.BorrowIsMut {
			prefix = "&mut "
		}
		return prefix + e.Var.Value()
	case ExpCast:
		return fmt.Sprintf("(%s as %s)", DebugExp(e.Inner), e.CastType)
	case ExpUnreachable:
		return "unreachable"
	case ExpSpec:
		var uses []string
		for v := range e.SpecUses {
			uses = append(uses, v.Value())
		}
		slices.Sort(uses)
		return fmt.Sprintf("spec #%s uses [%s]", e.SpecId, strings.Join(uses, ", "))
	case ExpUnresolvedError:
		return "_|_"
	default:
		return "?exp"
	}
}
