package multicriteria

import "testing"

func TestCriteriaDominatesIncludesEqual(t *testing.T) {
	a := Criteria{1, 2}
	b := Criteria{1, 2}
	if !a.Dominates(b) {
		t.Fatalf("equal vectors should weakly dominate each other")
	}
	if a.StrictlyDominates(b) {
		t.Fatalf("equal vectors must not strictly dominate")
	}
}

func TestCriteriaDominatesRequiresNoWorseComponent(t *testing.T) {
	a := Criteria{1, 5}
	b := Criteria{2, 3}
	if a.Dominates(b) || b.Dominates(a) {
		t.Fatalf("trade-off vectors must not dominate each other")
	}
}

func TestCriteriaStrictDominance(t *testing.T) {
	a := Criteria{1, 2}
	b := Criteria{1, 3}
	if !a.StrictlyDominates(b) {
		t.Fatalf("expected a to strictly dominate b")
	}
	if b.StrictlyDominates(a) {
		t.Fatalf("b must not dominate a")
	}
}

func TestCriteriaLessIsLexicographic(t *testing.T) {
	a := Criteria{1, 100}
	b := Criteria{2, 0}
	if !a.Less(b) {
		t.Fatalf("expected a < b lexicographically on the first criterion")
	}
	if b.Less(a) {
		t.Fatalf("b must not be less than a")
	}
}

func TestCriteriaAddSub(t *testing.T) {
	a := Criteria{3, 4}
	b := Criteria{1, 2}
	sum := a.Add(b)
	if !sum.Equal(Criteria{4, 6}) {
		t.Fatalf("got %v", sum)
	}
	diff := sum.Sub(b)
	if !diff.Equal(a) {
		t.Fatalf("got %v", diff)
	}
}
