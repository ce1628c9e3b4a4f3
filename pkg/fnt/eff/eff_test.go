package eff

import (
	"strconv"
	"testing"
)

func TestConstructionDefersWork(t *testing.T) {
	ran := 0
	e := From(func() int { ran++; return 7 })
	m := Map(e, func(n int) string { return strconv.Itoa(n) })

	if ran != 0 {
		t.Fatalf("construction must not run the effect, ran=%d", ran)
	}
	if got := m.Run(); got != "7" {
		t.Fatalf("expected 7, got %q", got)
	}
	if ran != 1 {
		t.Fatalf("expected exactly one run, got %d", ran)
	}
}

func TestChain_CollapsesNesting(t *testing.T) {
	e := Chain(Of(3), func(n int) IO[int] { return Of(n * 10) })
	if got := e.Run(); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestRunIsNotIdempotent(t *testing.T) {
	n := 0
	e := From(func() int { n++; return n })
	if e.Run() != 1 || e.Run() != 2 {
		t.Fatal("each Run must perform the effect again")
	}
}

func TestFunctorLaws(t *testing.T) {
	ident := func(n int) int { return n }
	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	base := Of(5)
	if base.Map(ident).Run() != base.Run() {
		t.Fatal("map identity changed the result")
	}

	composed := base.Map(func(n int) int { return inc(double(n)) })
	stepped := base.Map(double).Map(inc)
	if composed.Run() != stepped.Run() {
		t.Fatalf("map composition mismatch: %d vs %d", composed.Run(), stepped.Run())
	}
}
