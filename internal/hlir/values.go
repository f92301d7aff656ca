package hlir

import (
	"fmt"
	"math/big"

	"github.com/lumen-lang/lumen/internal/location"
)

// NumericalAddress is a resolved account address literal.
type NumericalAddress struct {
	Bytes [32]byte
}

func (a NumericalAddress) String() string {
	return fmt.Sprintf("%x", a.Bytes)
}

// ValueKind discriminates Value's variants.
type ValueKind int

const (
	ValueAddress ValueKind = iota
	ValueU8
	ValueU16
	ValueU32
	ValueU64
	ValueU128
	ValueU256
	ValueBool
	ValueVector
)

// Value is a fully-evaluated constant value: an address, a sized unsigned
// integer, a bool, or a homogeneous vector of values.
type Value struct {
	Loc     location.Loc
	Kind    ValueKind
	Address NumericalAddress
	U8      uint8
	U16     uint16
	U32     uint32
	U64     uint64
	// U128 and U256 have no native Go integer wide enough to hold them;
	// math/big.Int is the standard library's arbitrary-precision integer
	// type and is used here rather than a hand-rolled fixed-width type (see
	// DESIGN.md).
	U128       *big.Int
	U256       *big.Int
	Bool       bool
	VectorElem *BaseType
	Vector     []Value
}

// NewU128Value builds a ValueU128 from a big.Int, copying it so the caller
// may continue to mutate their own reference.
func NewU128Value(loc location.Loc, n *big.Int) Value {
	return Value{Loc: loc, Kind: ValueU128, U128: new(big.Int).Set(n)}
}

// NewU256Value builds a ValueU256 from a big.Int, copying it so the caller
// may continue to mutate their own reference.
func NewU256Value(loc location.Loc, n *big.Int) Value {
	return Value{Loc: loc, Kind: ValueU256, U256: new(big.Int).Set(n)}
}

// NewVectorValue builds a ValueVector from its homogeneous element type and
// the already-evaluated element values.
func NewVectorValue(loc location.Loc, elemType *BaseType, elems []Value) Value {
	return Value{Loc: loc, Kind: ValueVector, VectorElem: elemType, Vector: elems}
}

func (v Value) String() string {
	switch v.Kind {
	case ValueAddress:
		return "@" + v.Address.String()
	case ValueU8:
		return fmt.Sprintf("%du8", v.U8)
	case ValueU16:
		return fmt.Sprintf("%du16", v.U16)
	case ValueU32:
		return fmt.Sprintf("%du32", v.U32)
	case ValueU64:
		return fmt.Sprintf("%du64", v.U64)
	case ValueU128:
		return fmt.Sprintf("%su128", v.U128.String())
	case ValueU256:
		return fmt.Sprintf("%su256", v.U256.String())
	case ValueBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValueVector:
		s := fmt.Sprintf("vector#value<%s>[", DebugBaseType(v.VectorElem))
		for i, e := range v.Vector {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + "]"
	default:
		return "?value"
	}
}
