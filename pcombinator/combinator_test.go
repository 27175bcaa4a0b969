package pcombinator

import (
	"reflect"
	"testing"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func TestSatisfy(t *testing.T) {
	p := Satisfy(isDigit)

	v, rest, ok := p([]byte("9ab"))
	if !ok || v != '9' || string(rest) != "ab" {
		t.Errorf("got (%v, %q, %v), want ('9', \"ab\", true)", v, rest, ok)
	}

	_, rest, ok = p([]byte("ab"))
	if ok || string(rest) != "ab" {
		t.Errorf("got (_, %q, %v), want (_, \"ab\", false)", rest, ok)
	}
}

func TestByte(t *testing.T) {
	p := Byte('#')
	if _, _, ok := p([]byte("#rgb")); !ok {
		t.Error("Byte('#') failed to match leading #")
	}
	if _, _, ok := p([]byte("rgb")); ok {
		t.Error("Byte('#') matched without a leading #")
	}
}

func TestLiteral(t *testing.T) {
	p := Literal([]byte("ESC["))
	v, rest, ok := p([]byte("ESC[31m"))
	if !ok || string(v) != "ESC[" || string(rest) != "31m" {
		t.Errorf("got (%q, %q, %v)", v, rest, ok)
	}
	if _, _, ok := p([]byte("nope")); ok {
		t.Error("Literal matched non-matching prefix")
	}
	if _, _, ok := p([]byte("ES")); ok {
		t.Error("Literal matched input shorter than the literal")
	}
}

func TestAlt(t *testing.T) {
	p := Alt(Byte('a'), Byte('b'), Byte('c'))
	for _, in := range []string{"a", "b", "c"} {
		if _, _, ok := p([]byte(in)); !ok {
			t.Errorf("Alt failed to match %q", in)
		}
	}
	if _, _, ok := p([]byte("d")); ok {
		t.Error("Alt matched an input none of its alternatives accept")
	}
}

func TestMap(t *testing.T) {
	toUpper := Map(Satisfy(func(b byte) bool { return b >= 'a' && b <= 'z' }), func(b byte) byte {
		return b - 'a' + 'A'
	})
	v, _, ok := toUpper([]byte("x"))
	if !ok || v != 'X' {
		t.Errorf("Map got (%v, %v), want ('X', true)", v, ok)
	}
}

func TestCount(t *testing.T) {
	hexDigit := Satisfy(func(b byte) bool {
		return isDigit(b) || (b >= 'a' && b <= 'f')
	})
	p := Count(hexDigit, 3)

	v, rest, ok := p([]byte("1a2b"))
	want := []byte{'1', 'a', '2'}
	if !ok || !reflect.DeepEqual(v, want) || string(rest) != "b" {
		t.Errorf("got (%v, %q, %v), want (%v, \"b\", true)", v, rest, ok, want)
	}

	if _, _, ok := p([]byte("1a")); ok {
		t.Error("Count(p, 3) succeeded with only 2 matching inputs")
	}
}

func TestSeq2(t *testing.T) {
	p := Seq2(Byte('#'), Count(Satisfy(isDigit), 2))
	v, rest, ok := p([]byte("#42x"))
	if !ok || v.A != '#' || !reflect.DeepEqual(v.B, []byte{'4', '2'}) || string(rest) != "x" {
		t.Errorf("got (%+v, %q, %v)", v, rest, ok)
	}
}

func TestSeq3(t *testing.T) {
	p := Seq3(Byte('a'), Byte('b'), Byte('c'))
	v, rest, ok := p([]byte("abcd"))
	if !ok || v.A != 'a' || v.B != 'b' || v.C != 'c' || string(rest) != "d" {
		t.Errorf("got (%+v, %q, %v)", v, rest, ok)
	}
	if _, _, ok := p([]byte("abd")); ok {
		t.Error("Seq3 matched when the third byte did not satisfy c")
	}
}
