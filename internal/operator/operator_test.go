package operator

import (
	"testing"

	"github.com/cocode/gobasic/internal/runtime"
)

func TestAddNumbers(t *testing.T) {
	v, err := Binary("+", runtime.Number(2), runtime.Number(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != 5 {
		t.Fatalf("2+3 = %v, want 5", v.Num)
	}
}

func TestAddConcatenatesStrings(t *testing.T) {
	v, err := Binary("+", runtime.String("FOO"), runtime.String("BAR"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Str != "FOOBAR" {
		t.Fatalf(`"FOO"+"BAR" = %q, want "FOOBAR"`, v.Str)
	}
}

func TestAddMixedTypesIsTypeMismatch(t *testing.T) {
	_, err := Binary("+", runtime.String("FOO"), runtime.Number(1))
	if err == nil {
		t.Fatal("expected a type mismatch error adding a string and a number")
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := Binary("/", runtime.Number(1), runtime.Number(0))
	if err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestExponentNegativeBaseFractionalExponentIsError(t *testing.T) {
	_, err := Binary("^", runtime.Number(-4), runtime.Number(0.5))
	if err == nil {
		t.Fatal("expected an error raising a negative base to a fractional exponent")
	}
}

func TestExponentNegativeBaseIntegerExponentIsFine(t *testing.T) {
	v, err := Binary("^", runtime.Number(-2), runtime.Number(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != -8 {
		t.Fatalf("(-2)^3 = %v, want -8", v.Num)
	}
}

func TestCompareStrings(t *testing.T) {
	v, err := Binary("<", runtime.String("APPLE"), runtime.String("BANANA"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != -1 {
		t.Fatalf(`"APPLE"<"BANANA" = %v, want -1 (true)`, v.Num)
	}
}

func TestCompareMixedTypesIsTypeMismatch(t *testing.T) {
	_, err := Binary("=", runtime.String("1"), runtime.Number(1))
	if err == nil {
		t.Fatal("expected a type mismatch error comparing a string and a number")
	}
}

func TestLogicalAndOr(t *testing.T) {
	v, err := Binary("AND", runtime.Number(-1), runtime.Number(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != -1 {
		t.Fatalf("-1 AND 5 = %v, want -1 (true)", v.Num)
	}

	v, err = Binary("OR", runtime.Number(0), runtime.Number(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != 0 {
		t.Fatalf("0 OR 0 = %v, want 0 (false)", v.Num)
	}
}

func TestUnaryMinus(t *testing.T) {
	v, err := Unary("-", runtime.Number(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != -5 {
		t.Fatalf("-5 = %v, want -5", v.Num)
	}
}

func TestUnaryNot(t *testing.T) {
	v, err := Unary("NOT", runtime.Number(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != -1 {
		t.Fatalf("NOT 0 = %v, want -1 (true)", v.Num)
	}
}

func TestUnaryOnStringIsTypeMismatch(t *testing.T) {
	if _, err := Unary("-", runtime.String("X")); err == nil {
		t.Fatal("expected a type mismatch error negating a string")
	}
	if _, err := Unary("NOT", runtime.String("X")); err == nil {
		t.Fatal("expected a type mismatch error on NOT of a string")
	}
}
