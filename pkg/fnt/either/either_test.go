package either

import (
	"strconv"
	"testing"
)

func TestRight_Map(t *testing.T) {
	e := Map(Right[string](5), func(n int) string { return strconv.Itoa(n + 1) })
	v, ok := e.GetRight()
	if !ok || v != "6" {
		t.Fatalf("expected Right(6), got ok=%v v=%q", ok, v)
	}
}

func TestLeft_MapAbsorbs(t *testing.T) {
	called := false
	e := Map(Left[string, int]("nope"), func(n int) int { called = true; return n })
	if called {
		t.Fatal("transform must not run on Left")
	}
	l, ok := e.GetLeft()
	if !ok || l != "nope" {
		t.Fatalf("expected Left(nope), got ok=%v l=%q", ok, l)
	}
}

func TestChain(t *testing.T) {
	nonZero := func(n int) Either[string, int] {
		if n == 0 {
			return Left[string, int]("zero")
		}
		return Right[string](n)
	}

	if v, ok := Chain(Right[string](3), nonZero).GetRight(); !ok || v != 3 {
		t.Fatalf("expected Right(3), got ok=%v v=%d", ok, v)
	}
	if l, ok := Chain(Right[string](0), nonZero).GetLeft(); !ok || l != "zero" {
		t.Fatalf("expected Left(zero), got ok=%v l=%q", ok, l)
	}
	if l, ok := Chain(Left[string, int]("bad"), nonZero).GetLeft(); !ok || l != "bad" {
		t.Fatalf("expected Left to propagate, got ok=%v l=%q", ok, l)
	}
}

func TestMapLeft(t *testing.T) {
	e := MapLeft(Left[string, int]("err"), func(s string) int { return len(s) })
	if l, ok := e.GetLeft(); !ok || l != 3 {
		t.Fatalf("expected Left(3), got ok=%v l=%d", ok, l)
	}
	r := MapLeft(Right[string](7), func(s string) int { return len(s) })
	if v, ok := r.GetRight(); !ok || v != 7 {
		t.Fatalf("expected Right(7), got ok=%v v=%d", ok, v)
	}
}

func TestFold(t *testing.T) {
	show := func(e Either[string, int]) string {
		return Fold(e,
			func(l string) string { return "fail:" + l },
			func(r int) string { return "ok:" + strconv.Itoa(r) })
	}

	if got := show(Right[string](42)); got != "ok:42" {
		t.Fatalf("expected ok:42, got %q", got)
	}
	if got := show(Left[string, int]("nope")); got != "fail:nope" {
		t.Fatalf("expected fail:nope, got %q", got)
	}
}

func TestFunctorLaws(t *testing.T) {
	ident := func(n int) int { return n }
	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	for _, e := range []Either[string, int]{Right[string](5), Left[string, int]("err")} {
		if e.Map(ident) != e {
			t.Fatalf("map identity changed %v", e)
		}
		composed := e.Map(func(n int) int { return inc(double(n)) })
		stepped := e.Map(double).Map(inc)
		if composed != stepped {
			t.Fatalf("map composition mismatch: %v vs %v", composed, stepped)
		}
	}
}
