// Package symbol provides process-global interned strings, compared by
// identity rather than content.
package symbol

import (
	"sync"

	"github.com/lumen-lang/lumen/internal/location"
)

// Symbol is an interned string handle. Two symbols are equal iff they were
// interned from equal strings.
type Symbol struct {
	id int
}

var (
	mu       sync.Mutex
	table    = map[string]Symbol{}
	interned []string
)

// Intern returns the Symbol for s, interning it if this is the first
// occurrence in the process.
func Intern(s string) Symbol {
	mu.Lock()
	defer mu.Unlock()
	if sym, ok := table[s]; ok {
		return sym
	}
	sym := Symbol{id: len(interned)}
	interned = append(interned, s)
	table[s] = sym
	return sym
}

// String returns the original text of the symbol.
func (s Symbol) String() string {
	mu.Lock()
	defer mu.Unlock()
	return interned[s.id]
}

// Name pairs an interned symbol with the location it was written at.
type Name struct {
	Loc   location.Loc
	Value Symbol
}

// MakeName constructs a Name, interning text.
func MakeName(loc location.Loc, text string) Name {
	return Name{Loc: loc, Value: Intern(text)}
}

func (n Name) String() string {
	return n.Value.String()
}
