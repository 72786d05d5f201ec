package services

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobport/jobport/internal/models"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/utils"
)

// RegistrationService gates account creation on document verification: a
// seeker must present a CV attributable to them, an employer a registration
// certificate naming their company.
type RegistrationService interface {
	RegisterSeeker(ctx context.Context, email, password, fullName, educationLevel string, cv []byte, cvMimeType string) (*models.User, *models.VerificationReport, error)
	RegisterEmployer(ctx context.Context, email, password, contactName, companyName string, certificate []byte, certMimeType string) (*models.User, *models.VerificationReport, error)
	Login(ctx context.Context, email, password string) (token string, user *models.User, err error)
}

type registrationService struct {
	users        pgrepo.UserRepository
	profiles     pgrepo.ProfileRepository
	verification VerificationService
}

func NewRegistrationService(users pgrepo.UserRepository, profiles pgrepo.ProfileRepository, verification VerificationService) RegistrationService {
	return &registrationService{users: users, profiles: profiles, verification: verification}
}

func (s *registrationService) RegisterSeeker(ctx context.Context, email, password, fullName, educationLevel string, cv []byte, cvMimeType string) (*models.User, *models.VerificationReport, error) {
	const op = "RegistrationService.RegisterSeeker"

	if email == "" || password == "" || fullName == "" {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "email, password, and full_name are required", nil)
	}

	report, cvText, err := s.verification.VerifyCV(ctx, cv, cvMimeType, fullName)
	if err != nil {
		return nil, nil, err
	}
	if !report.Passed {
		return nil, report, utils.E(utils.CodeInvalidArgument, op, "cv verification failed", nil)
	}

	user, err := s.createUser(ctx, op, email, password, models.RoleSeeker, fullName, "")
	if err != nil {
		return nil, report, err
	}

	profile := &models.SeekerProfile{
		UserID:         user.ID,
		FullName:       fullName,
		EducationLevel: educationLevel,
		CVText:         cvText,
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, report, utils.E(utils.CodeInternal, op, "failed to create seeker profile", err)
	}

	return user, report, nil
}

func (s *registrationService) RegisterEmployer(ctx context.Context, email, password, contactName, companyName string, certificate []byte, certMimeType string) (*models.User, *models.VerificationReport, error) {
	const op = "RegistrationService.RegisterEmployer"

	if email == "" || password == "" || companyName == "" {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "email, password, and company_name are required", nil)
	}

	report, _, err := s.verification.VerifyCertificate(ctx, certificate, certMimeType, companyName)
	if err != nil {
		return nil, nil, err
	}
	if !report.Passed {
		return nil, report, utils.E(utils.CodeInvalidArgument, op, "certificate verification failed", nil)
	}

	user, err := s.createUser(ctx, op, email, password, models.RoleEmployer, contactName, companyName)
	if err != nil {
		return nil, report, err
	}
	return user, report, nil
}

func (s *registrationService) createUser(ctx context.Context, op, email, password string, role models.UserRole, fullName, companyName string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	user := &models.User{
		ID:               uuid.NewString(),
		Email:            email,
		PasswordHash:     hash,
		Role:             role,
		FullName:         fullName,
		CompanyName:      companyName,
		DocumentVerified: true,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.E(utils.CodeConflict, op, "email already registered", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return user, nil
}

func (s *registrationService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	const op = "RegistrationService.Login"

	if email == "" || password == "" {
		return "", nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return "", nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	if err := utils.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", nil, utils.E(utils.CodeInternal, op, "JWT_SECRET is not set", nil)
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return token, user, nil
}
