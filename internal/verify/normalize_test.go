package verify_test

import (
	"testing"

	"github.com/jobport/jobport/internal/verify"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"John Smith", "john smith"},
		{"JOHN   SMITH", "john smith"},
		{"john.smith@example.com", "john smith example com"},
		{"Task-Oriented", "task oriented"},
		{"line1\nline2\r\nline3", "line1 line2 line3"},
		{"--- !!! ---", ""},
		{"  C++ & Go, SQL;  ", "c go sql"},
		{"über café", "ber caf"},
	}

	for _, tc := range cases {
		if got := verify.Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"John Smith",
		"Mixed CASE with  punctuation!!! and\nnewlines",
		"already normalized text",
		"123-456-7890",
	}
	for _, in := range inputs {
		once := verify.Normalize(in)
		twice := verify.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
