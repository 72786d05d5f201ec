package verify

import (
	"strings"

	"github.com/jobport/jobport/internal/utils"
)

// Mode selects how much of the document is checked.
type Mode int

const (
	// NameOnly tests subject attribution only; keyword scoring is skipped.
	NameOnly Mode = iota
	// FullContentCheck additionally scores keyword density against the
	// verifier's vocabulary.
	FullContentCheck
)

// Result is the immutable outcome of a single verification run. The verifier
// only scores; accept/reject policy (thresholds) belongs to the caller.
type Result struct {
	NameFound           bool     `json:"name_found"`
	MatchedKeywordCount int      `json:"matched_keyword_count"`
	MatchedKeywords     []string `json:"matched_keywords,omitempty"`
}

// Verifier runs name-presence and keyword-density checks over normalized
// document text. Pure and deterministic; safe for concurrent use.
type Verifier struct {
	vocab Vocabulary
}

func New(vocab Vocabulary) *Verifier {
	return &Verifier{vocab: vocab}
}

func (v *Verifier) Vocabulary() Vocabulary { return v.vocab }

// Verify checks whether text is attributable to subjectName and, in
// FullContentCheck mode, how many distinct vocabulary terms it contains.
// The name test is an exact substring match over normalized text; a middle
// initial present on one side only yields a false negative by contract.
func (v *Verifier) Verify(text, subjectName string, mode Mode) (Result, error) {
	const op = "Verifier.Verify"

	haystack := Normalize(text)
	if haystack == "" {
		return Result{}, utils.E(utils.CodeInvalidArgument, op, "empty document text", nil)
	}

	needle := Normalize(subjectName)
	if needle == "" {
		return Result{}, utils.E(utils.CodeInvalidArgument, op, "empty subject name", nil)
	}

	res := Result{NameFound: strings.Contains(haystack, needle)}
	if mode == FullContentCheck {
		res.MatchedKeywordCount, res.MatchedKeywords = v.scan(haystack)
	}
	return res, nil
}

// KeywordScan scores keyword density only, with no subject attribution.
// Used by the ATS diagnostic so it cannot drift from the gating path.
func (v *Verifier) KeywordScan(text string) (Result, error) {
	const op = "Verifier.KeywordScan"

	haystack := Normalize(text)
	if haystack == "" {
		return Result{}, utils.E(utils.CodeInvalidArgument, op, "empty document text", nil)
	}

	var res Result
	res.MatchedKeywordCount, res.MatchedKeywords = v.scan(haystack)
	return res, nil
}

// scan counts distinct vocabulary terms occurring as substrings anywhere in
// normalized text. Substring (not token) semantics: with punctuation stripped,
// a term may match inside a longer run. That looseness is part of the
// contract.
func (v *Verifier) scan(haystack string) (int, []string) {
	var matched []string
	for _, term := range v.vocab.Terms {
		if strings.Contains(haystack, term) {
			matched = append(matched, term)
		}
	}
	return len(matched), matched
}
