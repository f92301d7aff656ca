// Package location provides file identity and byte-span positions shared by
// the lexer and the HLIR.
package location

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// FileHash is a content identity for a source file's bytes.
type FileHash [32]byte

// HashBytes computes the FileHash of the given source bytes.
func HashBytes(text []byte) FileHash {
	var h FileHash
	sum := blake2b.Sum256(text)
	copy(h[:], sum[:])
	return h
}

func (h FileHash) String() string {
	return fmt.Sprintf("%x", [32]byte(h))
}

// FileId identifies a source file independent of its path on disk. Two
// FileIds compare equal only if they were built from the same content hash,
// or are the same synthetic identity; display name is cosmetic only.
type FileId struct {
	hash      FileHash
	synthetic uuid.UUID
	isSynth   bool
	display   string
}

// NewFileId builds a FileId from the content of a real source file.
func NewFileId(text []byte, display string) FileId {
	return FileId{hash: HashBytes(text), display: display}
}

// NewAnonymousFileId builds a FileId for source with no stable backing file
// (REPL snippets, in-memory fixtures), using a fresh random identity so that
// two snippets with identical bytes remain distinguishable.
func NewAnonymousFileId(display string) FileId {
	return FileId{synthetic: uuid.New(), isSynth: true, display: display}
}

// DisplayName returns the cosmetic name used in diagnostics.
func (f FileId) DisplayName() string {
	return f.display
}

// Equal reports whether two FileIds name the same identity.
func (f FileId) Equal(other FileId) bool {
	if f.isSynth != other.isSynth {
		return false
	}
	if f.isSynth {
		return f.synthetic == other.synthetic
	}
	return f.hash == other.hash
}

// Loc is a half-open byte span within an identified file.
type Loc struct {
	File  FileId
	Start uint32
	End   uint32
}

// MakeLoc constructs a Loc, requiring start <= end.
func MakeLoc(file FileId, start, end uint32) Loc {
	if start > end {
		panic(fmt.Sprintf("location: invalid span [%d, %d)", start, end))
	}
	return Loc{File: file, Start: start, End: end}
}

// Equal reports whether two locations name the same file and span.
func (l Loc) Equal(other Loc) bool {
	return l.File.Equal(other.File) && l.Start == other.Start && l.End == other.End
}

func (l Loc) String() string {
	return fmt.Sprintf("%s:%d-%d", l.File.DisplayName(), l.Start, l.End)
}
