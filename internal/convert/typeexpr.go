package convert

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"cbind/internal/entity"
)

// primitives maps source spellings to their C equivalents.
var primitives = map[string]string{
	"i8":    "int8_t",
	"u8":    "uint8_t",
	"i16":   "int16_t",
	"u16":   "uint16_t",
	"i32":   "int32_t",
	"u32":   "uint32_t",
	"i64":   "int64_t",
	"u64":   "uint64_t",
	"isize": "intptr_t",
	"usize": "uintptr_t",
	"f32":   "float",
	"f64":   "double",
	"bool":  "bool",
	"unit":  "void",
	"void":  "void",
}

// unsupported names have no C-compatible representation at all; a field or
// parameter using one fails conversion instead of becoming a dangling name.
var unsupported = map[string]string{
	"str":    "unsized string slice",
	"String": "owned heap string",
	"char":   "32-bit scalar char",
}

// ParseType parses one type expression as written in a manifest:
//
//	*const Point    [u8; 16]    Pair<i32>    fn(i32, i32) -> i32
//
// Primitive spellings are mapped to C; identifiers that are neither
// primitive nor unsupported become Named references resolved later against
// the symbol table.
func ParseType(s string) (entity.Type, error) {
	p := &typeParser{input: s}
	t, err := p.parse()
	if err != nil {
		return entity.Type{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return entity.Type{}, fmt.Errorf("unexpected trailing %q in type %q", p.input[p.pos:], s)
	}
	return t, nil
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) parse() (entity.Type, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return entity.Type{}, fmt.Errorf("empty type expression")
	}
	switch c := p.input[p.pos]; {
	case c == '&':
		return entity.Type{}, fmt.Errorf("reference type in %q is not representable", p.input)
	case c == '*':
		p.pos++
		konst := false
		switch {
		case p.eatWord("const"):
			konst = true
		case p.eatWord("mut"):
		}
		elem, err := p.parse()
		if err != nil {
			return entity.Type{}, err
		}
		return entity.Ptr(elem, konst), nil
	case c == '[':
		p.pos++
		elem, err := p.parse()
		if err != nil {
			return entity.Type{}, err
		}
		p.skipSpace()
		if !p.eat(';') {
			return entity.Type{}, fmt.Errorf("expected ';' in array type %q", p.input)
		}
		n, err := p.number()
		if err != nil {
			return entity.Type{}, err
		}
		p.skipSpace()
		if !p.eat(']') {
			return entity.Type{}, fmt.Errorf("expected ']' in array type %q", p.input)
		}
		return entity.Type{Kind: entity.TypeArray, Elem: &elem, Len: n}, nil
	default:
		ident := p.ident()
		if ident == "" {
			return entity.Type{}, fmt.Errorf("expected type at %q", p.input[p.pos:])
		}
		if ident == "fn" {
			return p.funcPtr()
		}
		return p.named(ident)
	}
}

func (p *typeParser) named(ident string) (entity.Type, error) {
	if reason, ok := unsupported[ident]; ok {
		return entity.Type{}, fmt.Errorf("type %s is not representable (%s)", ident, reason)
	}
	if spelling, ok := primitives[ident]; ok {
		return entity.Primitive(spelling), nil
	}
	p.skipSpace()
	if !p.eat('<') {
		return entity.Named(ident), nil
	}
	var args []entity.Type
	for {
		arg, err := p.parse()
		if err != nil {
			return entity.Type{}, err
		}
		args = append(args, arg)
		p.skipSpace()
		if p.eat(',') {
			continue
		}
		if p.eat('>') {
			break
		}
		return entity.Type{}, fmt.Errorf("expected ',' or '>' in %q", p.input)
	}
	return entity.Named(ident, args...), nil
}

func (p *typeParser) funcPtr() (entity.Type, error) {
	p.skipSpace()
	if !p.eat('(') {
		return entity.Type{}, fmt.Errorf("expected '(' after fn in %q", p.input)
	}
	var params []entity.Type
	p.skipSpace()
	if !p.eat(')') {
		for {
			param, err := p.parse()
			if err != nil {
				return entity.Type{}, err
			}
			params = append(params, param)
			p.skipSpace()
			if p.eat(',') {
				continue
			}
			if p.eat(')') {
				break
			}
			return entity.Type{}, fmt.Errorf("expected ',' or ')' in %q", p.input)
		}
	}
	result := entity.Primitive("void")
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], "->") {
		p.pos += 2
		var err error
		result, err = p.parse()
		if err != nil {
			return entity.Type{}, err
		}
	}
	return entity.Type{Kind: entity.TypeFuncPtr, Params: params, Result: &result}, nil
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *typeParser) eat(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// eatWord consumes word only when it is a whole identifier at the cursor.
func (p *typeParser) eatWord(word string) bool {
	p.skipSpace()
	end := p.pos + len(word)
	if end > len(p.input) || p.input[p.pos:end] != word {
		return false
	}
	if end < len(p.input) && isIdentByte(p.input[end]) {
		return false
	}
	p.pos = end
	return true
}

func (p *typeParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *typeParser) number() (uint32, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("expected array length in %q", p.input)
	}
	n, err := strconv.ParseUint(p.input[start:p.pos], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad array length in %q: %w", p.input, err)
	}
	out, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, fmt.Errorf("array length in %q out of range: %w", p.input, err)
	}
	return out, nil
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
