package services

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jobport/jobport/internal/models"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/storage"
	"github.com/jobport/jobport/internal/utils"
)

// CVDocumentService handles CV attachment after registration: the document
// is verified against the profile's name, archived to object storage, and
// its extracted text stored on the profile for later matching.
type CVDocumentService interface {
	AttachCV(ctx context.Context, userID, fileName string, fileSize int, mimeType string, document []byte) (*models.CVDocument, *models.VerificationReport, error)
}

type cvDocumentService struct {
	docs         pgrepo.CVDocumentRepository
	profiles     pgrepo.ProfileRepository
	verification VerificationService
	uploader     storage.Uploader
}

func NewCVDocumentService(docs pgrepo.CVDocumentRepository, profiles pgrepo.ProfileRepository, verification VerificationService, uploader storage.Uploader) CVDocumentService {
	return &cvDocumentService{docs: docs, profiles: profiles, verification: verification, uploader: uploader}
}

func (s *cvDocumentService) AttachCV(ctx context.Context, userID, fileName string, fileSize int, mimeType string, document []byte) (*models.CVDocument, *models.VerificationReport, error) {
	const op = "CVDocumentService.AttachCV"

	if userID == "" {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if s.uploader == nil {
		return nil, nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}

	report, cvText, err := s.verification.VerifyCV(ctx, document, mimeType, profile.FullName)
	if err != nil {
		return nil, nil, err
	}
	if !report.Passed {
		return nil, report, utils.E(utils.CodeInvalidArgument, op, "cv verification failed", nil)
	}

	objectName := "cv/" + userID + "/" + uuid.NewString()
	storedPath, err := s.uploader.Upload(ctx, objectName, mimeType, bytes.NewReader(document))
	if err != nil {
		return nil, report, utils.E(utils.CodeUnavailable, op, "failed to archive document", err)
	}

	row := &models.CVDocument{
		ID:                  uuid.NewString(),
		UserID:              userID,
		FileName:            fileName,
		FilePath:            storedPath,
		FileSize:            fileSize,
		MimeType:            mimeType,
		MatchedKeywordCount: report.MatchedKeywordCount,
		UploadAt:            time.Now().UTC(),
	}
	if err := s.docs.Insert(ctx, row); err != nil {
		return nil, report, utils.E(utils.CodeInternal, op, "failed to persist cv document metadata", err)
	}

	if err := s.profiles.SetCVText(ctx, userID, cvText); err != nil {
		return nil, report, utils.E(utils.CodeInternal, op, "failed to update profile cv text", err)
	}

	return row, report, nil
}
