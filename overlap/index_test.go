package overlap

import "testing"

func TestAnyOverlap(t *testing.T) {
	idx, err := NewIndex([]Span{
		{Start: 100, End: 200},
		{Start: 500, End: 600},
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"contained", 120, 130, true},
		{"containing", 0, 1000, true},
		{"sharing one base at the end", 50, 101, true},
		{"sharing one base at the start", 199, 250, true},
		{"adjacent on the left", 50, 100, false},
		{"adjacent on the right", 200, 300, false},
		{"between the intervals", 250, 400, false},
	}

	for _, c := range cases {
		if got := idx.AnyOverlap(c.start, c.end); got != c.want {
			t.Errorf("%s: AnyOverlap(%d, %d) = %t, want %t", c.name, c.start, c.end, got, c.want)
		}
	}
}

func TestCount(t *testing.T) {
	idx, err := NewIndex([]Span{
		{Start: 10, End: 11},
		{Start: 20, End: 21},
		{Start: 400, End: 401},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := idx.Count(0, 100); got != 2 {
		t.Errorf("Count(0, 100) = %d, want 2", got)
	}
	if got := idx.Count(100, 200); got != 0 {
		t.Errorf("Count(100, 200) = %d, want 0", got)
	}
	if got := idx.Count(0, 500); got != 3 {
		t.Errorf("Count(0, 500) = %d, want 3", got)
	}
}

func TestEmptyIndex(t *testing.T) {
	idx, err := NewIndex(nil)
	if err != nil {
		t.Fatal(err)
	}

	if idx.AnyOverlap(0, 1000) {
		t.Error("empty index reported an overlap")
	}
	if n := idx.Count(0, 1000); n != 0 {
		t.Errorf("empty index counted %d overlaps", n)
	}
}

func TestRejectsMalformedSpan(t *testing.T) {
	if _, err := NewIndex([]Span{{Start: 10, End: 10}}); err == nil {
		t.Error("expected an error for an empty span")
	}
	if _, err := NewIndex([]Span{{Start: 10, End: 5}}); err == nil {
		t.Error("expected an error for a reversed span")
	}
}
