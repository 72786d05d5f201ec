package verify_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jobport/jobport/internal/utils"
	"github.com/jobport/jobport/internal/verify"
)

// richCV builds a document naming the subject and containing at least n
// distinct resume vocabulary terms.
func richCV(subject string, n int) string {
	return subject + " " + strings.Join(verify.ResumeVocabulary.Terms[:n], " ")
}

func TestVerify_EmptyDocumentText(t *testing.T) {
	v := verify.New(verify.ResumeVocabulary)
	for _, text := range []string{"", "   ", "\n\t", "!!! --- ..."} {
		if _, err := v.Verify(text, "John Smith", verify.FullContentCheck); !utils.IsCode(err, utils.CodeInvalidArgument) {
			t.Errorf("Verify(%q) expected invalid-argument error, got %v", text, err)
		}
	}
}

func TestVerify_EmptySubjectName(t *testing.T) {
	v := verify.New(verify.ResumeVocabulary)
	for _, name := range []string{"", "   ", "..."} {
		if _, err := v.Verify("some document text", name, verify.NameOnly); !utils.IsCode(err, utils.CodeInvalidArgument) {
			t.Errorf("Verify(subject=%q) expected invalid-argument error, got %v", name, err)
		}
	}
}

func TestVerify_NameFound_IgnoresFormatting(t *testing.T) {
	v := verify.New(verify.ResumeVocabulary)

	res, err := v.Verify("Résumé of JOHN   SMITH, software engineer", "john smith", verify.NameOnly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NameFound {
		t.Error("expected name to be found despite casing and punctuation")
	}
	if res.MatchedKeywordCount != 0 || res.MatchedKeywords != nil {
		t.Errorf("NameOnly mode must skip keyword scoring, got count=%d", res.MatchedKeywordCount)
	}
}

func TestVerify_NameNotFound(t *testing.T) {
	v := verify.New(verify.ResumeVocabulary)

	res, err := v.Verify("John Smith's resume with lots of experience", "Jane Doe", verify.FullContentCheck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NameFound {
		t.Error("expected NameFound=false for a different subject")
	}
}

func TestVerify_ExtraMiddleInitialIsFalseNegative(t *testing.T) {
	v := verify.New(verify.ResumeVocabulary)

	// Exact substring semantics: no fuzzy matching across middle initials.
	res, err := v.Verify("CV of John Smith", "John A Smith", verify.NameOnly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NameFound {
		t.Error("expected false negative when the account name has an extra middle initial")
	}
}

func TestVerify_KeywordCountBound(t *testing.T) {
	v := verify.New(verify.ResumeVocabulary)

	res, err := v.Verify(richCV("John Smith", len(verify.ResumeVocabulary.Terms)), "John Smith", verify.FullContentCheck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MatchedKeywordCount < 0 || res.MatchedKeywordCount > verify.ResumeVocabulary.Size() {
		t.Errorf("count %d outside [0, %d]", res.MatchedKeywordCount, verify.ResumeVocabulary.Size())
	}
	if len(res.MatchedKeywords) != res.MatchedKeywordCount {
		t.Errorf("matched set size %d != count %d", len(res.MatchedKeywords), res.MatchedKeywordCount)
	}
}

func TestVerify_Deterministic(t *testing.T) {
	v := verify.New(verify.ResumeVocabulary)
	text := richCV("John Smith", 50)

	first, err := v.Verify(text, "John Smith", verify.FullContentCheck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := v.Verify(text, "John Smith", verify.FullContentCheck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input produced different results: %+v vs %+v", first, second)
	}
}

func TestVerify_SubstringSemanticsAreLoose(t *testing.T) {
	v := verify.New(verify.ResumeVocabulary)

	// Hyphens are stripped by normalization, so "task-oriented" satisfies the
	// "task oriented" term; "experiences" contains "experience".
	res, err := v.Verify("A task-oriented engineer with many experiences", "engineer", verify.FullContentCheck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := map[string]bool{}
	for _, k := range res.MatchedKeywords {
		found[k] = true
	}
	if !found["task oriented"] {
		t.Error(`expected "task oriented" to match hyphenated source text`)
	}
	if !found["experience"] {
		t.Error(`expected "experience" to match inside "experiences"`)
	}
}

func TestVerify_AcceptScenario(t *testing.T) {
	v := verify.New(verify.ResumeVocabulary)

	res, err := v.Verify(richCV("John Smith", 45), "John Smith", verify.FullContentCheck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NameFound {
		t.Error("expected NameFound=true")
	}
	if res.MatchedKeywordCount < verify.ResumeKeywordThreshold {
		t.Errorf("expected count >= %d, got %d", verify.ResumeKeywordThreshold, res.MatchedKeywordCount)
	}
}

func TestKeywordScan_MatchesVerifyCounts(t *testing.T) {
	v := verify.New(verify.ResumeVocabulary)
	text := richCV("whoever", 30)

	scan, err := v.KeywordScan(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	full, err := v.Verify(text, "whoever", verify.FullContentCheck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scan.MatchedKeywordCount != full.MatchedKeywordCount {
		t.Errorf("diagnostic path count %d diverges from gating path count %d", scan.MatchedKeywordCount, full.MatchedKeywordCount)
	}
}

func TestVocabularySizes(t *testing.T) {
	if verify.ResumeVocabulary.Size() < verify.ResumeKeywordThreshold {
		t.Errorf("resume vocabulary (%d) smaller than its threshold (%d)", verify.ResumeVocabulary.Size(), verify.ResumeKeywordThreshold)
	}
	if verify.CertificateVocabulary.Size() < verify.CertificateKeywordThreshold {
		t.Errorf("certificate vocabulary (%d) smaller than its threshold (%d)", verify.CertificateVocabulary.Size(), verify.CertificateKeywordThreshold)
	}
}
