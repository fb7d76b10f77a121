package place

import "testing"

func testPlaces() []*Place {
	return []*Place{
		{ID: "a", Title: "Cheap Room", Price: 8},
		{ID: "b", Title: "Modest Flat", Price: 45},
		{ID: "c", Title: "Nice House", Price: 100},
		{ID: "d", Title: "Penthouse", Price: 400},
	}
}

func TestFilterThresholds(t *testing.T) {
	// For each threshold, exactly the places with price <= threshold
	// remain visible.
	tests := []struct {
		max  float64
		want []string
	}{
		{10, []string{"a"}},
		{50, []string{"a", "b"}},
		{100, []string{"a", "b", "c"}},
		{MaxPriceAll, []string{"a", "b", "c", "d"}},
	}

	for _, tc := range tests {
		got := Filter(testPlaces(), tc.max)
		if len(got) != len(tc.want) {
			t.Errorf("Filter(max=%v) returned %d places, want %d", tc.max, len(got), len(tc.want))
			continue
		}
		for i, p := range got {
			if p.ID != tc.want[i] {
				t.Errorf("Filter(max=%v)[%d] = %s, want %s", tc.max, i, p.ID, tc.want[i])
			}
		}
	}
}

func TestFilterBoundaryInclusive(t *testing.T) {
	places := []*Place{{ID: "x", Price: 50}}
	if got := Filter(places, 50); len(got) != 1 {
		t.Error("price equal to the bound should stay visible")
	}
}

func TestParseMaxPrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"all", MaxPriceAll, false},
		{"", MaxPriceAll, false},
		{"10", 10, false},
		{"50", 50, false},
		{"100", 100, false},
		{"12.5", 12.5, false},
		{"-3", 0, true},
		{"cheap", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseMaxPrice(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMaxPrice(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMaxPrice(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMaxPrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFilterLabel(t *testing.T) {
	if got := FilterLabel("all"); got != "all prices" {
		t.Errorf("label = %q", got)
	}
	if got := FilterLabel("50"); got != "≤ $50" {
		t.Errorf("label = %q", got)
	}
}
