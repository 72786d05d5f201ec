package verify

// Remark maps a raw keyword count to the five-tier qualitative label used by
// the ATS score endpoint. The count is clamped to [0, vocabularySize] before
// banding; bands are absolute counts.
func Remark(keywordCount, vocabularySize int) string {
	if keywordCount < 0 {
		keywordCount = 0
	}
	if vocabularySize >= 0 && keywordCount > vocabularySize {
		keywordCount = vocabularySize
	}

	switch {
	case keywordCount < 20:
		return "Poor"
	case keywordCount < 40:
		return "Average"
	case keywordCount < 60:
		return "Good"
	case keywordCount < 80:
		return "Very Good"
	default:
		return "Excellent"
	}
}
