package services

import (
	"context"
	"sync"
	"time"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

// In-memory fakes mirroring the store contracts, including the unique
// constraint on (job_id, applicant_id) that arbitrates racing applies.

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs []models.JobPosting
}

func (r *fakeJobRepo) Insert(ctx context.Context, j *models.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, *j)
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id string) (*models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			j := r.jobs[i]
			return &j, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeJobRepo) List(ctx context.Context) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.JobPosting(nil), r.jobs...), nil
}

func (r *fakeJobRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobPosting
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			out = append(out, j)
		}
	}
	return out, nil
}

type fakeEmployerAppRepo struct {
	mu   sync.Mutex
	rows map[string]*models.EmployerApplication // natural key job|applicant
}

func newFakeEmployerAppRepo() *fakeEmployerAppRepo {
	return &fakeEmployerAppRepo{rows: make(map[string]*models.EmployerApplication)}
}

func naturalKey(jobID, applicantID string) string { return jobID + "|" + applicantID }

func (r *fakeEmployerAppRepo) Insert(ctx context.Context, a *models.EmployerApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := naturalKey(a.JobID, a.ApplicantID)
	if _, exists := r.rows[key]; exists {
		return utils.ErrConflict
	}
	cp := *a
	r.rows[key] = &cp
	return nil
}

func (r *fakeEmployerAppRepo) GetByApplicationID(ctx context.Context, applicationID string) (*models.EmployerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ApplicationID == applicationID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeEmployerAppRepo) GetByJobApplicant(ctx context.Context, jobID, applicantID string) (*models.EmployerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[naturalKey(jobID, applicantID)]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, utils.ErrNotFound
}

func (r *fakeEmployerAppRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.EmployerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.EmployerApplication
	for _, row := range r.rows {
		if row.EmployerID == employerID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeEmployerAppRepo) SetStatus(ctx context.Context, applicationID string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ApplicationID == applicationID {
			row.Status = status
			return nil
		}
	}
	return nil
}

func (r *fakeEmployerAppRepo) DeleteByApplicationID(ctx context.Context, applicationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, row := range r.rows {
		if row.ApplicationID == applicationID {
			delete(r.rows, key)
			return true, nil
		}
	}
	return false, nil
}

type fakeHistoryRepo struct {
	mu   sync.Mutex
	rows map[string]*models.ApplicationHistory // natural key job|applicant
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{rows: make(map[string]*models.ApplicationHistory)}
}

func (r *fakeHistoryRepo) Insert(ctx context.Context, h *models.ApplicationHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := naturalKey(h.JobID, h.ApplicantID)
	if _, exists := r.rows[key]; exists {
		return utils.ErrConflict
	}
	cp := *h
	r.rows[key] = &cp
	return nil
}

func (r *fakeHistoryRepo) GetByID(ctx context.Context, id string) (*models.ApplicationHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeHistoryRepo) GetByJobApplicant(ctx context.Context, jobID, applicantID string) (*models.ApplicationHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[naturalKey(jobID, applicantID)]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, utils.ErrNotFound
}

func (r *fakeHistoryRepo) ListByApplicant(ctx context.Context, applicantID string) ([]models.ApplicationHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ApplicationHistory
	for _, row := range r.rows {
		if row.ApplicantID == applicantID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) ListAppliedJobIDs(ctx context.Context, applicantID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, row := range r.rows {
		if row.ApplicantID == applicantID {
			ids = append(ids, row.JobID)
		}
	}
	return ids, nil
}

func (r *fakeHistoryRepo) UpdateStatusByJobApplicant(ctx context.Context, jobID, applicantID string, status models.ApplicationStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[naturalKey(jobID, applicantID)]; ok {
		row.Status = status
		return true, nil
	}
	return false, nil
}

func (r *fakeHistoryRepo) DeleteByIDAndApplicant(ctx context.Context, id, applicantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, row := range r.rows {
		if row.ID == id && row.ApplicantID == applicantID {
			delete(r.rows, key)
			return true, nil
		}
	}
	return false, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.SeekerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.SeekerProfile)}
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.SeekerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, utils.ErrNotFound
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, p *models.SeekerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) SetCVText(ctx context.Context, userID, cvText string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok {
		p.CVText = cvText
		p.UpdatedAt = time.Now().UTC()
	}
	return nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (e *fakeExtractor) ExtractText(ctx context.Context, document []byte, mimeType string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if e.text != "" {
		return e.text, nil
	}
	return string(document), nil
}

func (e *fakeExtractor) Close() error { return nil }
