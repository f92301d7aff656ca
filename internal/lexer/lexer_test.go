package lexer

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/location"
)

func newTestLexer(src string) *Lexer {
	file := location.NewAnonymousFileId("test.lu")
	return New(src, file, E2024)
}

// scanAll drains a lexer to EOF and returns the tokens encountered.
func scanAll(t *testing.T, lx *Lexer) []Tok {
	t.Helper()
	var toks []Tok
	for {
		if err := lx.Advance(); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		toks = append(toks, lx.Peek())
		if lx.Peek() == EOF {
			break
		}
	}
	return toks
}

func TestBasicTokenStream(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Tok
	}{
		{"let binding", "let x = 42u64;", []Tok{Let, Identifier, Equal, NumTypedValue, Semicolon, EOF}},
		{"amp mut requires space", "&mut x", []Tok{AmpMut, Identifier, EOF}},
		{"amp mut without space is two tokens", "&mutx", []Tok{Amp, Identifier, EOF}},
		{"nested block comment then number", "/* /* nested */ */ 0x1Fu8", []Tok{NumTypedValue, EOF}},
		{"longest match punctuation", "<==> ==> == <= << >= >> :: && || != ..", []Tok{
			LessEqualEqualGreater, EqualEqualGreater, EqualEqual, LessEqual, LessLess,
			GreaterEqual, GreaterGreater, ColonColon, AmpAmp, PipePipe, ExclaimEqual, PeriodPeriod, EOF,
		}},
		{"restricted identifier", "`foo` + 1", []Tok{RestrictedIdentifier, Plus, NumValue, EOF}},
		{"byte and hex strings", `b"abc" x"ff"`, []Tok{ByteStringValue, ByteStringValue, EOF}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lx := newTestLexer(test.input)
			got := scanAll(t, lx)
			if len(got) != len(test.want) {
				t.Fatalf("token count mismatch: got %v want %v", got, test.want)
			}
			for i := range got {
				if got[i] != test.want[i] {
					t.Errorf("token %d: got %v want %v", i, got[i], test.want[i])
				}
			}
		})
	}
}

func TestEditionSensitiveKeywords(t *testing.T) {
	file := location.NewAnonymousFileId("edition.lu")

	legacy := New("match", file, Legacy)
	if err := legacy.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if legacy.Peek() != Identifier {
		t.Errorf("legacy edition: want Identifier for 'match', got %v", legacy.Peek())
	}

	modern := New("match", file, E2024)
	if err := modern.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if modern.Peek() != Match {
		t.Errorf("e2024 edition: want Match keyword, got %v", modern.Peek())
	}
}

func TestNumberSuffixes(t *testing.T) {
	tests := []struct {
		input   string
		want    Tok
		wantLen int
	}{
		{"1u8", NumTypedValue, 3},
		{"1u16", NumTypedValue, 4},
		{"1u32", NumTypedValue, 4},
		{"1u64", NumTypedValue, 4},
		{"1u128", NumTypedValue, 5},
		{"1u256", NumTypedValue, 5},
		{"123", NumValue, 3},
		{"0x1F", NumValue, 4},
		{"0x1Fu8", NumTypedValue, 6},
	}
	for _, test := range tests {
		lx := newTestLexer(test.input)
		if err := lx.Advance(); err != nil {
			t.Fatalf("%s: advance failed: %v", test.input, err)
		}
		if lx.Peek() != test.want {
			t.Errorf("%s: got %v want %v", test.input, lx.Peek(), test.want)
		}
		if len(lx.Content()) != test.wantLen {
			t.Errorf("%s: content length got %d want %d", test.input, len(lx.Content()), test.wantLen)
		}
	}
}

func TestDocCommentMatching(t *testing.T) {
	lx := newTestLexer("/** doc */ fun f() {}")
	sink := diag.NewSink()

	if err := lx.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if lx.Peek() != Fun {
		t.Fatalf("want Fun, got %v", lx.Peek())
	}
	lx.MatchDocComments()

	matched := lx.CheckAndGetDocComments(sink)
	if sink.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	text, ok := matched[uint32(lx.StartLoc())]
	if !ok {
		t.Fatalf("doc comment was not matched to fun's start offset")
	}
	if text != " doc " {
		t.Errorf("doc comment text: got %q want %q", text, " doc ")
	}
}

func TestUnmatchedDocCommentReportsDiagnostic(t *testing.T) {
	lx := newTestLexer("/// orphaned\nlet x = 1;")
	sink := diag.NewSink()
	for {
		if err := lx.Advance(); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		if lx.Peek() == EOF {
			break
		}
	}
	lx.CheckAndGetDocComments(sink)
	if !sink.HasErrors() {
		t.Errorf("expected an unmatched doc comment diagnostic")
	}
}

func TestQuadrupleSlashIsNotDoc(t *testing.T) {
	lx := newTestLexer("//// not a doc\nlet")
	sink := diag.NewSink()
	if err := lx.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if lx.Peek() != Let {
		t.Fatalf("want Let, got %v", lx.Peek())
	}
	lx.MatchDocComments()
	matched := lx.CheckAndGetDocComments(sink)
	if sink.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	if len(matched) != 0 {
		t.Errorf("expected no matched doc comments, got %v", matched)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx := newTestLexer("/* never closed")
	if err := lx.Advance(); err == nil {
		t.Fatalf("expected error for unterminated block comment")
	}
}

func TestInvalidCharacter(t *testing.T) {
	lx := newTestLexer("$")
	err := lx.Advance()
	if err == nil {
		t.Fatalf("expected error for invalid character")
	}
	d, ok := err.(*diag.Diagnostic)
	if !ok {
		t.Fatalf("expected *diag.Diagnostic, got %T", err)
	}
	if d.Code != diag.InvalidCharacter {
		t.Errorf("got code %v want %v", d.Code, diag.InvalidCharacter)
	}
}

func TestLookaheadDoesNotMutateState(t *testing.T) {
	lx := newTestLexer("a b c")
	if err := lx.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	beforePeek := lx.Peek()
	beforeStart := lx.StartLoc()

	next, err := lx.Lookahead()
	if err != nil {
		t.Fatalf("lookahead failed: %v", err)
	}
	if next != Identifier {
		t.Errorf("lookahead: got %v want Identifier", next)
	}
	if lx.Peek() != beforePeek || lx.StartLoc() != beforeStart {
		t.Errorf("lookahead mutated lexer state")
	}

	first, second, err := lx.Lookahead2()
	if err != nil {
		t.Fatalf("lookahead2 failed: %v", err)
	}
	if first != Identifier || second != Identifier {
		t.Errorf("lookahead2: got (%v, %v) want (Identifier, Identifier)", first, second)
	}
	if lx.Peek() != beforePeek || lx.StartLoc() != beforeStart {
		t.Errorf("lookahead2 mutated lexer state")
	}
}

func TestTrimStartWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"\r", "\r"},
		{"\rxxx", "\rxxx"},
		{"\t\rxxx", "\rxxx"},
		{"\r\n\rxxx", "\rxxx"},
		{"\n", ""},
		{"\r\n", ""},
		{"\t", ""},
		{" ", ""},
		{"\nxxx", "xxx"},
		{"\r\nxxx", "xxx"},
		{"\txxx", "xxx"},
		{" xxx", "xxx"},
		{" \r\n", ""},
		{"\t\r\n", ""},
		{"\n\r\n", ""},
		{"\r\n ", ""},
		{"\r\n\t", ""},
		{"\r\n\n", ""},
		{" \r\nxxx", "xxx"},
		{"\t\r\nxxx", "xxx"},
		{"\n\r\nxxx", "xxx"},
		{"\r\n xxx", "xxx"},
		{"\r\n\txxx", "xxx"},
		{"\r\n\nxxx", "xxx"},
		{" \r\n\r\n", ""},
		{"\r\n \t\n", ""},
		{" \r\n\r\nxxx", "xxx"},
		{"\r\n \t\nxxx", "xxx"},
		{" \r\n\r\nxxx\n", "xxx\n"},
		{"\r\n \t\nxxx\r\n", "xxx\r\n"},
	}
	for _, test := range tests {
		got := trimStartWhitespace(test.input)
		if got != test.want {
			t.Errorf("trimStartWhitespace(%q): got %q want %q", test.input, got, test.want)
		}
	}
}
