package standings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func zonesFor(n int) []Zone {
	zones := make([]Zone, n)
	for i := range zones {
		zones[i] = ClassifyZone(i, n)
	}
	return zones
}

func TestClassifyZone(t *testing.T) {
	q, r, x := ZoneQualification, ZoneRelegation, ZoneNeutral

	tests := []struct {
		n    int
		want []Zone
	}{
		{n: 0, want: []Zone{}},
		{n: 1, want: []Zone{q}},
		{n: 2, want: []Zone{q, q}},
		{n: 3, want: []Zone{q, q, q}},
		{n: 4, want: []Zone{q, q, q, r}},
		{n: 5, want: []Zone{q, q, q, r, r}},
		{n: 6, want: []Zone{q, q, q, r, r, r}},
		{n: 7, want: []Zone{q, q, q, x, r, r, r}},
		{n: 10, want: []Zone{q, q, q, x, x, x, x, r, r, r}},
	}

	for _, tt := range tests {
		got := zonesFor(tt.n)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("n=%d zones mismatch (-want +got):\n%s", tt.n, diff)
		}
	}
}

// Rows inside both bands must stay in qualification.
func TestClassifyZoneQualificationWinsOverlap(t *testing.T) {
	tests := []struct {
		index, n int
	}{
		{index: 0, n: 5},
		{index: 2, n: 5}, // 2 >= 5-3
		{index: 0, n: 3}, // 0 >= 3-3
		{index: 1, n: 2},
	}

	for _, tt := range tests {
		if got := ClassifyZone(tt.index, tt.n); got != ZoneQualification {
			t.Errorf("ClassifyZone(%d, %d) = %v, want qualification", tt.index, tt.n, got)
		}
	}

	if got := ClassifyZone(3, 5); got != ZoneRelegation {
		t.Errorf("ClassifyZone(3, 5) = %v, want relegation", got)
	}
}

func TestZoneString(t *testing.T) {
	if ZoneQualification.String() != "qualification" || ZoneRelegation.String() != "relegation" || ZoneNeutral.String() != "neutral" {
		t.Errorf("unexpected zone names")
	}
	if got := Zone(42).String(); got != "Zone(42)" {
		t.Errorf("Zone(42).String() = %q", got)
	}
}
