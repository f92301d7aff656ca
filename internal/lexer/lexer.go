// Package lexer scans source text into a stream of tokens, stripping
// whitespace and comments while preserving doc-comment regions and exact
// byte positions.
package lexer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"

	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/location"
)

type commentSpan struct {
	start, end uint32
}

// Lexer holds the scanning state for one source file. It is not safe for
// concurrent use by multiple goroutines.
type Lexer struct {
	text    string
	file    location.FileId
	edition Edition

	docComments        map[commentSpan]string
	matchedDocComments map[uint32]string

	prevEnd  int
	curStart int
	curEnd   int
	token    Tok
}

// New constructs a Lexer over text. No token is current until the first
// call to Advance.
func New(text string, file location.FileId, edition Edition) *Lexer {
	return &Lexer{
		text:                text,
		file:                file,
		edition:             edition,
		docComments:         map[commentSpan]string{},
		matchedDocComments:  map[uint32]string{},
		token:               EOF,
	}
}

// Peek returns the current token kind.
func (lx *Lexer) Peek() Tok {
	return lx.token
}

// Content returns the source slice covering the current token.
func (lx *Lexer) Content() string {
	return lx.text[lx.curStart:lx.curEnd]
}

// FileID returns the file identity this lexer was constructed over.
func (lx *Lexer) FileID() location.FileId {
	return lx.file
}

// StartLoc returns the byte offset of the start of the current token.
func (lx *Lexer) StartLoc() int {
	return lx.curStart
}

// PreviousEndLoc returns the byte offset of the end of the previous token.
func (lx *Lexer) PreviousEndLoc() int {
	return lx.prevEnd
}

// CurrentTokenLoc returns the span of the current token.
func (lx *Lexer) CurrentTokenLoc() location.Loc {
	return location.MakeLoc(lx.file, uint32(lx.curStart), uint32(lx.curEnd))
}

// Advance skips whitespace and comments, then scans the next token,
// updating the lexer's state. On error the lexer's state is only partly
// updated and the caller must stop lexing.
func (lx *Lexer) Advance() error {
	lx.prevEnd = lx.curEnd
	text, err := lx.trimWhitespaceAndComments(lx.curEnd)
	if err != nil {
		return err
	}
	lx.curStart = len(lx.text) - len(text)
	tok, tokLen, err := findToken(lx.file, lx.edition, text, lx.curStart)
	if err != nil {
		return err
	}
	lx.curEnd = lx.curStart + tokLen
	lx.token = tok
	return nil
}

// Lookahead returns the token kind that would follow the current one
// without mutating the lexer's primary position fields.
func (lx *Lexer) Lookahead() (Tok, error) {
	text, err := lx.trimWhitespaceAndComments(lx.curEnd)
	if err != nil {
		return EOF, err
	}
	nextStart := len(lx.text) - len(text)
	tok, _, err := findToken(lx.file, lx.edition, text, nextStart)
	return tok, err
}

// Lookahead2 returns the two token kinds that would follow the current one,
// without mutating the lexer's primary position fields.
func (lx *Lexer) Lookahead2() (Tok, Tok, error) {
	text, err := lx.trimWhitespaceAndComments(lx.curEnd)
	if err != nil {
		return EOF, EOF, err
	}
	offset := len(lx.text) - len(text)
	first, length, err := findToken(lx.file, lx.edition, text, offset)
	if err != nil {
		return EOF, EOF, err
	}
	text2, err := lx.trimWhitespaceAndComments(offset + length)
	if err != nil {
		return EOF, EOF, err
	}
	offset2 := len(lx.text) - len(text2)
	second, _, err := findToken(lx.file, lx.edition, text2, offset2)
	return first, second, err
}

// ReplaceToken narrows the current token to a shorter kind/length, used
// when the parser needs to split a greedily-matched token (e.g. ">>" into
// two ">" tokens).
func (lx *Lexer) ReplaceToken(tok Tok, length int) {
	lx.token = tok
	lx.curEnd = lx.curStart + length
}

// MatchDocComments claims any doc comments lying strictly between the end
// of the previous token and the start of the current one, associating them
// with the current token's start offset.
func (lx *Lexer) MatchDocComments() {
	start := uint32(lx.prevEnd)
	end := uint32(lx.curStart)

	var spans []commentSpan
	var parts []string
	for span := range lx.docComments {
		if span.start >= start && span.end <= end {
			spans = append(spans, span)
		}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})
	if len(spans) == 0 {
		return
	}
	for _, span := range spans {
		parts = append(parts, lx.docComments[span])
		delete(lx.docComments, span)
	}
	lx.matchedDocComments[end] = strings.Join(parts, "\n")
}

// CheckAndGetDocComments flushes diagnostics for any doc comments that were
// never matched to an item, then transfers ownership of the matched map to
// the caller.
func (lx *Lexer) CheckAndGetDocComments(sink *diag.Sink) map[uint32]string {
	const msg = "Documentation comment cannot be matched to a language item"

	type pending struct {
		span commentSpan
	}
	var pendings []pending
	for span := range lx.docComments {
		pendings = append(pendings, pending{span})
	}
	slices.SortFunc(pendings, func(a, b pending) int {
		if a.span.start != b.span.start {
			return int(a.span.start) - int(b.span.start)
		}
		return int(a.span.end) - int(b.span.end)
	})
	for _, p := range pendings {
		loc := location.MakeLoc(lx.file, p.span.start, p.span.end)
		sink.Add(diag.New(diag.Error, diag.InvalidDocComment, loc, msg))
	}

	matched := lx.matchedDocComments
	lx.matchedDocComments = map[uint32]string{}
	return matched
}

// trimWhitespaceAndComments strips leading whitespace and comments starting
// at offset, recording any doc comments encountered along the way, and
// returns the remaining suffix of the source text.
func (lx *Lexer) trimWhitespaceAndComments(offset int) (string, error) {
	text := lx.text[offset:]

	getOffset := func(substring string) int {
		return len(lx.text) - len(substring)
	}

	for {
		text = trimStartWhitespace(text)

		if strings.HasPrefix(text, "/*") {
			type nested struct {
				start int
				isDoc bool
			}
			var locs []nested
			for {
				text = trimStartWhile(text, func(b byte) bool { return b != '/' && b != '*' })
				if text == "" {
					outer := locs[0]
					width := 2
					if outer.isDoc {
						width = 3
					}
					loc := location.MakeLoc(lx.file, uint32(outer.start), uint32(outer.start+width))
					return "", diag.New(diag.Error, diag.InvalidDocComment, loc, "Unclosed block comment")
				} else if strings.HasPrefix(text, "/*") {
					start := getOffset(text)
					text = text[2:]
					isDoc := strings.HasPrefix(text, "*") && !strings.HasPrefix(text, "**") && len(locs) == 0
					locs = append(locs, nested{start, isDoc})
				} else if strings.HasPrefix(text, "*/") {
					last := locs[len(locs)-1]
					locs = locs[:len(locs)-1]
					text = text[2:]
					if last.isDoc {
						end := getOffset(text)
						lx.docComments[commentSpan{uint32(last.start), uint32(end)}] = lx.text[last.start+3 : end-2]
					}
					if len(locs) == 0 {
						break
					}
				} else {
					text = text[1:]
				}
			}
			continue
		} else if strings.HasPrefix(text, "//") {
			start := getOffset(text)
			isDoc := strings.HasPrefix(text, "///") && !strings.HasPrefix(text, "////")
			text = trimStartWhile(text, func(b byte) bool { return b != '\n' })
			if isDoc {
				end := getOffset(text)
				comment := strings.TrimRight(lx.text[start+3:end], "\r")
				lx.docComments[commentSpan{uint32(start), uint32(end)}] = comment
			}
			continue
		}
		break
	}
	return text, nil
}

// trimStartWhile trims leading bytes satisfying pred.
func trimStartWhile(text string, pred func(byte) bool) string {
	i := 0
	for i < len(text) && pred(text[i]) {
		i++
	}
	return text[i:]
}

// trimStartWhitespace trims leading space, tab, lf, and the atomic crlf
// pair. A bare carriage return is left untouched.
func trimStartWhitespace(text string) string {
	pos := 0
	for pos < len(text) {
		switch text[pos] {
		case ' ', '\t', '\n':
			pos++
		case '\r':
			if pos+1 < len(text) && text[pos+1] == '\n' {
				pos += 2
			} else {
				return text[pos:]
			}
		default:
			return text[pos:]
		}
	}
	return text[pos:]
}

// findToken determines the next token and its byte length starting at
// text, without mutating any lexer state.
func findToken(file location.FileId, edition Edition, text string, startOffset int) (Tok, int, error) {
	if text == "" {
		return EOF, 0, nil
	}
	c, _ := utf8.DecodeRuneInString(text)

	switch {
	case c >= '0' && c <= '9':
		if strings.HasPrefix(text, "0x") && len(text) > 2 {
			tok, hexLen := getHexNumber(text[2:])
			if hexLen == 0 || strings.HasPrefix(text[2:], "u") {
				return NumValue, 1, nil
			}
			return tok, 2 + hexLen, nil
		}
		tok, l := getDecimalNumber(text)
		return tok, l, nil

	case c == '`':
		isValid := false
		length := 1
		if len(text) > 1 {
			next, _ := utf8.DecodeRuneInString(text[1:])
			if isLetter(next) || next == '_' {
				sub := text[1:]
				nameLen := getNameLen(sub)
				length = nameLen + 1
				if nameLen+1 < len(text) && text[1+nameLen] == '`' {
					isValid = true
					length = nameLen + 2
				}
			}
		}
		if !isValid {
			loc := location.MakeLoc(file, uint32(startOffset), uint32(startOffset+length))
			return EOF, 0, diag.New(diag.Error, diag.InvalidRestrictedIdentifier, loc,
				"Missing closing backtick (`) for restricted identifier escaping")
		}
		return RestrictedIdentifier, length, nil

	case isLetter(c) || c == '_':
		isHex := strings.HasPrefix(text, "x\"")
		isByte := strings.HasPrefix(text, "b\"")
		if isHex || isByte {
			line := firstLine(text)
			line = line[2:]
			last, ok := getStringLen(line)
			if !ok {
				loc := location.MakeLoc(file, uint32(startOffset), uint32(startOffset+len(line)+2))
				code := diag.InvalidByteString
				if isHex {
					code = diag.InvalidHexString
				}
				return EOF, 0, diag.New(diag.Error, code, loc, "Missing closing quote (\") after byte string")
			}
			return ByteStringValue, 2 + last + 1, nil
		}
		l := getNameLen(text)
		return getNameToken(edition, text[:l]), l, nil

	case c == '&':
		if strings.HasPrefix(text, "&mut ") {
			return AmpMut, 5, nil
		} else if strings.HasPrefix(text, "&&") {
			return AmpAmp, 2, nil
		}
		return Amp, 1, nil

	case c == '|':
		if strings.HasPrefix(text, "||") {
			return PipePipe, 2, nil
		}
		return Pipe, 1, nil

	case c == '=':
		if strings.HasPrefix(text, "==>") {
			return EqualEqualGreater, 3, nil
		} else if strings.HasPrefix(text, "==") {
			return EqualEqual, 2, nil
		}
		return Equal, 1, nil

	case c == '!':
		if strings.HasPrefix(text, "!=") {
			return ExclaimEqual, 2, nil
		}
		return Exclaim, 1, nil

	case c == '<':
		if strings.HasPrefix(text, "<==>") {
			return LessEqualEqualGreater, 4, nil
		} else if strings.HasPrefix(text, "<=") {
			return LessEqual, 2, nil
		} else if strings.HasPrefix(text, "<<") {
			return LessLess, 2, nil
		}
		return Less, 1, nil

	case c == '>':
		if strings.HasPrefix(text, ">=") {
			return GreaterEqual, 2, nil
		} else if strings.HasPrefix(text, ">>") {
			return GreaterGreater, 2, nil
		}
		return Greater, 1, nil

	case c == ':':
		if strings.HasPrefix(text, "::") {
			return ColonColon, 2, nil
		}
		return Colon, 1, nil

	case c == '%':
		return Percent, 1, nil
	case c == '(':
		return LParen, 1, nil
	case c == ')':
		return RParen, 1, nil
	case c == '[':
		return LBracket, 1, nil
	case c == ']':
		return RBracket, 1, nil
	case c == '*':
		return Star, 1, nil
	case c == '+':
		return Plus, 1, nil
	case c == ',':
		return Comma, 1, nil
	case c == '-':
		return Minus, 1, nil
	case c == '.':
		if strings.HasPrefix(text, "..") {
			return PeriodPeriod, 2, nil
		}
		return Period, 1, nil
	case c == '/':
		return Slash, 1, nil
	case c == ';':
		return Semicolon, 1, nil
	case c == '^':
		return Caret, 1, nil
	case c == '{':
		return LBrace, 1, nil
	case c == '}':
		return RBrace, 1, nil
	case c == '#':
		return NumSign, 1, nil
	case c == '@':
		return AtSign, 1, nil
	default:
		loc := location.MakeLoc(file, uint32(startOffset), uint32(startOffset))
		return EOF, 0, diag.New(diag.Error, diag.InvalidCharacter, loc, "Invalid character: '"+string(c)+"'")
	}
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// getNameLen returns the length of the longest prefix matching
// [a-zA-Z0-9_]. The caller is responsible for validating the first
// character separately.
func getNameLen(text string) int {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c >= '0' && c <= '9') {
			return i
		}
	}
	return len(text)
}

func getDecimalNumber(text string) (Tok, int) {
	n := 0
	for n < len(text) {
		c := text[n]
		if !(c >= '0' && c <= '9' || c == '_') {
			break
		}
		n++
	}
	return getNumberMaybeWithSuffix(text, n)
}

func getHexNumber(text string) (Tok, int) {
	n := 0
	for n < len(text) {
		c := text[n]
		if !(c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' || c >= '0' && c <= '9' || c == '_') {
			break
		}
		n++
	}
	return getNumberMaybeWithSuffix(text, n)
}

func getNumberMaybeWithSuffix(text string, numTextLen int) (Tok, int) {
	rest := text[numTextLen:]
	switch {
	case strings.HasPrefix(rest, "u8"):
		return NumTypedValue, numTextLen + 2
	case strings.HasPrefix(rest, "u64"), strings.HasPrefix(rest, "u16"), strings.HasPrefix(rest, "u32"):
		return NumTypedValue, numTextLen + 3
	case strings.HasPrefix(rest, "u128"), strings.HasPrefix(rest, "u256"):
		return NumTypedValue, numTextLen + 4
	default:
		return NumValue, numTextLen
	}
}

// getStringLen returns the byte length of a quoted string body (escape-aware:
// a backslash and the byte after it never end the string), and whether a
// closing quote was found.
func getStringLen(text string) (int, bool) {
	pos := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\\' {
			if i+1 < len(text) {
				i++
				pos++
			}
		} else if c == '"' {
			return pos, true
		}
		pos++
	}
	return 0, false
}
