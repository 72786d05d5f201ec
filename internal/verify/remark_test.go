package verify_test

import (
	"testing"

	"github.com/jobport/jobport/internal/verify"
)

func TestRemark_Tiers(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, "Poor"},
		{19, "Poor"},
		{20, "Average"},
		{39, "Average"},
		{40, "Good"},
		{59, "Good"},
		{60, "Very Good"},
		{79, "Very Good"},
		{80, "Excellent"},
		{100, "Excellent"},
	}

	for _, tc := range cases {
		if got := verify.Remark(tc.count, 100); got != tc.want {
			t.Errorf("Remark(%d, 100) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestRemark_Clamps(t *testing.T) {
	if got := verify.Remark(-5, 100); got != "Poor" {
		t.Errorf("Remark(-5, 100) = %q, want Poor", got)
	}
	// Count above vocabulary size clamps down before banding.
	if got := verify.Remark(150, 30); got != "Average" {
		t.Errorf("Remark(150, 30) = %q, want Average", got)
	}
}
