package match

import "github.com/jobport/jobport/internal/models"

// IsEligible reports whether an applicant at applicantLabel may see a posting
// listing required qualification labels. The applicant qualifies when their
// rank meets or exceeds the MINIMUM rank among the listed labels: the labels
// are alternatives an employer accepts, not a stack of prerequisites. A
// posting with no labels accepts everyone.
func IsEligible(applicantLabel string, required []string) bool {
	if len(required) == 0 {
		return true
	}

	min := Rank(required[0])
	for _, label := range required[1:] {
		if r := Rank(label); r < min {
			min = r
		}
	}
	return Rank(applicantLabel) >= min
}

// FilterCatalog returns the postings an applicant is allowed to see: postings
// already applied to are removed first, then postings failing IsEligible.
// Relative order of survivors is preserved from the input.
func FilterCatalog(catalog []models.JobPosting, applicantLabel string, appliedJobIDs []string) []models.JobPosting {
	applied := make(map[string]struct{}, len(appliedJobIDs))
	for _, id := range appliedJobIDs {
		applied[id] = struct{}{}
	}

	out := make([]models.JobPosting, 0, len(catalog))
	for _, job := range catalog {
		if _, ok := applied[job.ID]; ok {
			continue
		}
		if !IsEligible(applicantLabel, job.EducationRequirements) {
			continue
		}
		out = append(out, job)
	}
	return out
}
