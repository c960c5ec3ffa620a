package cellset

import "testing"

func TestAddAndCardinality(t *testing.T) {
	s := New()
	s.Add(5)
	s.Add(5)
	s.Add(9)
	if got := s.Cardinality(); got != 2 {
		t.Errorf("expected cardinality 2 after duplicate add, got %d", got)
	}
	if !s.Contains(5) || !s.Contains(9) {
		t.Error("expected both 5 and 9 to be present")
	}
}

func TestIntersectionCells(t *testing.T) {
	a := New()
	a.Add(1)
	a.Add(2)
	a.Add(3)

	b := New()
	b.Add(2)
	b.Add(3)
	b.Add(4)

	got := a.IntersectionCells(b)
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("expected [2 3], got %v", got)
	}
	// Source sets must be untouched.
	if a.Cardinality() != 3 || b.Cardinality() != 3 {
		t.Error("IntersectionCells must not mutate its operands")
	}
}

func TestIntersectsNoOverlap(t *testing.T) {
	a := New()
	a.Add(1)
	b := New()
	b.Add(2)
	if a.Intersects(b) {
		t.Error("disjoint sets must not intersect")
	}
}
