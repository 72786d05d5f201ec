package match_test

import (
	"testing"

	"github.com/jobport/jobport/internal/match"
	"github.com/jobport/jobport/internal/models"
)

func posting(id string, required ...string) models.JobPosting {
	return models.JobPosting{ID: id, Title: "job " + id, EducationRequirements: required}
}

func TestIsEligible_SingleLevelMatchesRankOrder(t *testing.T) {
	levels := []string{"Matriculation", "Higher Secondary", "Graduation", "Post Graduation"}
	for _, applicant := range levels {
		for _, required := range levels {
			want := match.Rank(applicant) >= match.Rank(required)
			if got := match.IsEligible(applicant, []string{required}); got != want {
				t.Errorf("IsEligible(%q, {%q}) = %v, want %v", applicant, required, got, want)
			}
		}
	}
}

func TestIsEligible_MinOfRequirements(t *testing.T) {
	// Listed labels are acceptable alternatives: meeting the least demanding
	// one qualifies.
	if !match.IsEligible("Graduation", []string{"Graduation", "Post Graduation"}) {
		t.Error("Graduation applicant should satisfy {Graduation, Post Graduation}")
	}
	if !match.IsEligible("Matriculation", []string{"Post Graduation", "Matriculation"}) {
		t.Error("Matriculation applicant should satisfy a posting listing Matriculation as an option")
	}
	if match.IsEligible("Higher Secondary", []string{"Graduation", "Post Graduation"}) {
		t.Error("Higher Secondary applicant should not satisfy {Graduation, Post Graduation}")
	}
}

func TestIsEligible_EmptyRequirements(t *testing.T) {
	if !match.IsEligible("Matriculation", nil) {
		t.Error("a posting with no requirements accepts everyone")
	}
}

func TestIsEligible_UnknownLabelsRankLowest(t *testing.T) {
	// Unknown applicant label ranks 0: matches only rank-0 requirements.
	if !match.IsEligible("", []string{"Matriculation"}) {
		t.Error("empty applicant label should satisfy a Matriculation requirement")
	}
	if match.IsEligible("", []string{"Graduation"}) {
		t.Error("empty applicant label should not satisfy a Graduation requirement")
	}
	// Unknown requirement label ranks 0: everyone qualifies.
	if !match.IsEligible("Matriculation", []string{"garbage-label"}) {
		t.Error("unknown requirement label ranks lowest and admits everyone")
	}
}

func TestFilterCatalog_Scenario(t *testing.T) {
	catalog := []models.JobPosting{
		posting("A", "Post Graduation"),
		posting("B", "Matriculation"),
	}

	got := match.FilterCatalog(catalog, "Graduation", nil)
	if len(got) != 1 || got[0].ID != "B" {
		t.Fatalf("FilterCatalog = %v, want only job B", ids(got))
	}
}

func TestFilterCatalog_RemovesAppliedThenIneligible(t *testing.T) {
	catalog := []models.JobPosting{
		posting("1", "Matriculation"),
		posting("2", "Graduation"),
		posting("3", "Post Graduation"),
		posting("4", "Higher Secondary"),
	}

	got := match.FilterCatalog(catalog, "Graduation", []string{"2"})
	want := []string{"1", "4"}
	if len(got) != len(want) {
		t.Fatalf("FilterCatalog = %v, want %v", ids(got), want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q (stable order required)", i, got[i].ID, id)
		}
	}
}

func TestFilterCatalog_PreservesInputOrder(t *testing.T) {
	catalog := []models.JobPosting{
		posting("z", "Matriculation"),
		posting("a", "Matriculation"),
		posting("m", "Matriculation"),
	}

	got := match.FilterCatalog(catalog, "Matriculation", nil)
	for i, id := range []string{"z", "a", "m"} {
		if got[i].ID != id {
			t.Fatalf("order changed: got %v", ids(got))
		}
	}
}

func TestFilterCatalog_EmptyCatalog(t *testing.T) {
	if got := match.FilterCatalog(nil, "Graduation", []string{"x"}); len(got) != 0 {
		t.Errorf("expected empty result, got %v", ids(got))
	}
}

func ids(jobs []models.JobPosting) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}
