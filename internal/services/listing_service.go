package services

import (
	"context"
	"errors"
	"time"

	"github.com/jobport/jobport/internal/cache"
	"github.com/jobport/jobport/internal/match"
	"github.com/jobport/jobport/internal/models"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/utils"
)

const (
	catalogCacheKey = "jobs:catalog"
	catalogCacheTTL = 30 * time.Second
)

// ListingService answers "which postings may this seeker see": the catalog
// minus postings already applied to, minus postings the seeker's education
// rank does not satisfy. Catalog reads go through a short-lived cache.
type ListingService interface {
	ListForSeeker(ctx context.Context, applicantID string) ([]models.JobPosting, error)
}

type listingService struct {
	jobs     pgrepo.JobRepository
	history  pgrepo.HistoryRepository
	profiles pgrepo.ProfileRepository
	cache    cache.Cache // optional
}

func NewListingService(jobs pgrepo.JobRepository, history pgrepo.HistoryRepository, profiles pgrepo.ProfileRepository, c cache.Cache) ListingService {
	return &listingService{jobs: jobs, history: history, profiles: profiles, cache: c}
}

func (s *listingService) ListForSeeker(ctx context.Context, applicantID string) ([]models.JobPosting, error) {
	const op = "ListingService.ListForSeeker"

	if applicantID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "applicant_id is required", nil)
	}

	// An absent profile means an empty education label, which ranks lowest;
	// it does not block listing.
	level := ""
	p, err := s.profiles.GetByUserID(ctx, applicantID)
	switch {
	case err == nil:
		level = p.EducationLevel
	case errors.Is(err, utils.ErrNotFound):
	default:
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load job catalog", err)
	}

	appliedIDs, err := s.history.ListAppliedJobIDs(ctx, applicantID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load prior applications", err)
	}

	return match.FilterCatalog(catalog, level, appliedIDs), nil
}

func (s *listingService) loadCatalog(ctx context.Context) ([]models.JobPosting, error) {
	if s.cache != nil {
		var cached []models.JobPosting
		if hit, err := s.cache.GetJSON(ctx, catalogCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	catalog, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, catalogCacheKey, catalog, catalogCacheTTL)
	}
	return catalog, nil
}
