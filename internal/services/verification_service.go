package services

import (
	"context"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/providers/extract"
	"github.com/jobport/jobport/internal/utils"
	"github.com/jobport/jobport/internal/verify"
)

// VerificationService turns an uploaded document into a pass/fail credibility
// signal: extraction (external collaborator), scoring (pure verifier), then
// the caller-side gate policy with named thresholds. The report always says
// which check failed and the achieved count versus the threshold.
type VerificationService interface {
	// VerifyCV gates seeker registration and CV attachment: name must be
	// found and resume keyword density must meet the resume threshold.
	VerifyCV(ctx context.Context, document []byte, mimeType, subjectName string) (*models.VerificationReport, string, error)
	// VerifyCertificate gates employer registration: company name must be
	// found and certificate keyword density must meet the certificate
	// threshold.
	VerifyCertificate(ctx context.Context, document []byte, mimeType, companyName string) (*models.VerificationReport, string, error)
	// ATSScore is the read-only diagnostic: resume keyword density with no
	// name check, mapped to a qualitative remark.
	ATSScore(ctx context.Context, document []byte, mimeType string) (*models.ATSReport, error)
}

type verificationService struct {
	extractor   extract.Provider
	resume      *verify.Verifier
	certificate *verify.Verifier
}

func NewVerificationService(extractor extract.Provider) VerificationService {
	return &verificationService{
		extractor:   extractor,
		resume:      verify.New(verify.ResumeVocabulary),
		certificate: verify.New(verify.CertificateVocabulary),
	}
}

func (s *verificationService) VerifyCV(ctx context.Context, document []byte, mimeType, subjectName string) (*models.VerificationReport, string, error) {
	const op = "VerificationService.VerifyCV"
	return s.gate(ctx, op, s.resume, verify.ResumeKeywordThreshold, document, mimeType, subjectName)
}

func (s *verificationService) VerifyCertificate(ctx context.Context, document []byte, mimeType, companyName string) (*models.VerificationReport, string, error) {
	const op = "VerificationService.VerifyCertificate"
	return s.gate(ctx, op, s.certificate, verify.CertificateKeywordThreshold, document, mimeType, companyName)
}

// gate runs the full pipeline and applies the accept/reject policy for one
// document kind. The extracted text is returned so callers can persist it
// after a pass.
func (s *verificationService) gate(ctx context.Context, op string, v *verify.Verifier, threshold int, document []byte, mimeType, subjectName string) (*models.VerificationReport, string, error) {
	text, err := s.extractor.ExtractText(ctx, document, mimeType)
	if err != nil {
		return nil, "", utils.E(utils.CodeUnavailable, op, "document text extraction failed", err)
	}

	res, err := v.Verify(text, subjectName, verify.FullContentCheck)
	if err != nil {
		return nil, "", err
	}

	report := &models.VerificationReport{
		NameFound:           res.NameFound,
		MatchedKeywordCount: res.MatchedKeywordCount,
		KeywordThreshold:    threshold,
		MatchedKeywords:     res.MatchedKeywords,
	}
	switch {
	case !res.NameFound:
		report.FailedCheck = "name"
	case res.MatchedKeywordCount < threshold:
		report.FailedCheck = "keyword_density"
	default:
		report.Passed = true
	}
	return report, text, nil
}

func (s *verificationService) ATSScore(ctx context.Context, document []byte, mimeType string) (*models.ATSReport, error) {
	const op = "VerificationService.ATSScore"

	text, err := s.extractor.ExtractText(ctx, document, mimeType)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "document text extraction failed", err)
	}

	res, err := s.resume.KeywordScan(text)
	if err != nil {
		return nil, err
	}

	size := s.resume.Vocabulary().Size()
	return &models.ATSReport{
		MatchedKeywordCount: res.MatchedKeywordCount,
		VocabularySize:      size,
		Remark:              verify.Remark(res.MatchedKeywordCount, size),
	}, nil
}
