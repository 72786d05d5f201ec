package models

// VerificationReport is the user-facing outcome of a document verification.
// When the gate fails it says which check failed and the achieved count versus
// the threshold, so the user can self-correct.
type VerificationReport struct {
	Passed bool `json:"passed"`

	NameFound           bool     `json:"name_found"`
	MatchedKeywordCount int      `json:"matched_keyword_count"`
	KeywordThreshold    int      `json:"keyword_threshold"`
	MatchedKeywords     []string `json:"matched_keywords,omitempty"`

	// "name" or "keyword_density"; empty when passed.
	FailedCheck string `json:"failed_check,omitempty"`
}

// ATSReport is the read-only diagnostic returned by the ATS score endpoint.
type ATSReport struct {
	MatchedKeywordCount int    `json:"matched_keyword_count"`
	VocabularySize      int    `json:"vocabulary_size"`
	Remark              string `json:"remark"`
}
