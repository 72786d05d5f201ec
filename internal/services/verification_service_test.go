package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jobport/jobport/internal/utils"
	"github.com/jobport/jobport/internal/verify"
)

// fullResumeText matches every resume vocabulary term, with the subject name
// prepended so the name check also passes.
func fullResumeText(name string) string {
	return name + "\n" + strings.Join(verify.ResumeVocabulary.Terms, "\n")
}

func fullCertificateText(name string) string {
	return name + "\n" + strings.Join(verify.CertificateVocabulary.Terms, "\n")
}

func TestVerifyCVPasses(t *testing.T) {
	svc := NewVerificationService(&fakeExtractor{})
	doc := []byte(fullResumeText("ada lovelace"))

	report, text, err := svc.VerifyCV(context.Background(), doc, "application/pdf", "ada lovelace")
	if err != nil {
		t.Fatalf("VerifyCV: %v", err)
	}
	if !report.Passed {
		t.Fatalf("report = %+v, want pass", report)
	}
	if !report.NameFound {
		t.Error("NameFound = false, want true")
	}
	if report.KeywordThreshold != verify.ResumeKeywordThreshold {
		t.Errorf("KeywordThreshold = %d, want %d", report.KeywordThreshold, verify.ResumeKeywordThreshold)
	}
	if report.MatchedKeywordCount < verify.ResumeKeywordThreshold {
		t.Errorf("MatchedKeywordCount = %d, below threshold", report.MatchedKeywordCount)
	}
	if report.FailedCheck != "" {
		t.Errorf("FailedCheck = %q on a passing report", report.FailedCheck)
	}
	if text != string(doc) {
		t.Error("extracted text not returned to caller")
	}
}

func TestVerifyCVNameMissing(t *testing.T) {
	svc := NewVerificationService(&fakeExtractor{})
	doc := []byte(fullResumeText("grace hopper"))

	report, _, err := svc.VerifyCV(context.Background(), doc, "application/pdf", "ada lovelace")
	if err != nil {
		t.Fatalf("VerifyCV: %v", err)
	}
	if report.Passed {
		t.Fatal("report passed despite missing name")
	}
	if report.FailedCheck != "name" {
		t.Errorf("FailedCheck = %q, want name", report.FailedCheck)
	}
}

func TestVerifyCVKeywordDensityTooLow(t *testing.T) {
	svc := NewVerificationService(&fakeExtractor{})
	// Name present but only a handful of vocabulary terms.
	doc := []byte("ada lovelace\n" + strings.Join(verify.ResumeVocabulary.Terms[:5], "\n"))

	report, _, err := svc.VerifyCV(context.Background(), doc, "application/pdf", "ada lovelace")
	if err != nil {
		t.Fatalf("VerifyCV: %v", err)
	}
	if report.Passed {
		t.Fatal("report passed below keyword threshold")
	}
	if report.FailedCheck != "keyword_density" {
		t.Errorf("FailedCheck = %q, want keyword_density", report.FailedCheck)
	}
	if report.MatchedKeywordCount >= verify.ResumeKeywordThreshold {
		t.Errorf("MatchedKeywordCount = %d, expected below %d",
			report.MatchedKeywordCount, verify.ResumeKeywordThreshold)
	}
}

func TestVerifyCertificatePasses(t *testing.T) {
	svc := NewVerificationService(&fakeExtractor{})
	doc := []byte(fullCertificateText("acme gmbh"))

	report, _, err := svc.VerifyCertificate(context.Background(), doc, "application/pdf", "acme gmbh")
	if err != nil {
		t.Fatalf("VerifyCertificate: %v", err)
	}
	if !report.Passed {
		t.Fatalf("report = %+v, want pass", report)
	}
	if report.KeywordThreshold != verify.CertificateKeywordThreshold {
		t.Errorf("KeywordThreshold = %d, want %d", report.KeywordThreshold, verify.CertificateKeywordThreshold)
	}
}

func TestVerifyExtractionFailure(t *testing.T) {
	svc := NewVerificationService(&fakeExtractor{err: errors.New("tika is down")})

	_, _, err := svc.VerifyCV(context.Background(), []byte("ignored"), "application/pdf", "ada lovelace")
	if !utils.IsCode(err, utils.CodeUnavailable) {
		t.Fatalf("error = %v, want UNAVAILABLE", err)
	}
	if _, err := svc.ATSScore(context.Background(), []byte("ignored"), "application/pdf"); !utils.IsCode(err, utils.CodeUnavailable) {
		t.Fatalf("ATSScore error = %v, want UNAVAILABLE", err)
	}
}

func TestATSScore(t *testing.T) {
	svc := NewVerificationService(&fakeExtractor{})
	// No name anywhere: ATS scoring must not require one.
	doc := []byte(strings.Join(verify.ResumeVocabulary.Terms, "\n"))

	report, err := svc.ATSScore(context.Background(), doc, "application/pdf")
	if err != nil {
		t.Fatalf("ATSScore: %v", err)
	}
	if report.VocabularySize != verify.ResumeVocabulary.Size() {
		t.Errorf("VocabularySize = %d, want %d", report.VocabularySize, verify.ResumeVocabulary.Size())
	}
	if report.MatchedKeywordCount != report.VocabularySize {
		t.Errorf("MatchedKeywordCount = %d, want full vocabulary %d",
			report.MatchedKeywordCount, report.VocabularySize)
	}
	if want := verify.Remark(report.MatchedKeywordCount, report.VocabularySize); report.Remark != want {
		t.Errorf("Remark = %q, want %q", report.Remark, want)
	}
}
