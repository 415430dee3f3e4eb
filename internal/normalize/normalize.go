// Package normalize turns raw provider listings into canonical job records.
package normalize

import (
	"strings"

	"github.com/jobquestapp/jobquest-backend/internal/models"
	"github.com/jobquestapp/jobquest-backend/internal/provider"
)

const (
	DefaultLocation    = "Remote"
	DefaultJobType     = "Full-time"
	DefaultDescription = "No description provided."
)

// Jobs maps raw listings to canonical Job records, stamping the provider tag
// and owning user and substituting defaults for every optional field.
// Listings missing a title or company are dropped so persisted jobs always
// carry both. The transform is pure; persistence happens in the orchestrator.
func Jobs(listings []provider.Listing, source, userID string) []models.Job {
	jobs := make([]models.Job, 0, len(listings))
	for _, l := range listings {
		title := strings.TrimSpace(l.Title)
		company := strings.TrimSpace(l.Company)
		if title == "" || company == "" {
			continue
		}

		job := models.Job{
			Title:       title,
			Company:     company,
			Location:    strings.TrimSpace(l.Location),
			Description: strings.TrimSpace(l.Description),
			JobType:     strings.TrimSpace(l.JobType),
			Source:      source,
			UserID:      userID,
		}
		if job.Location == "" {
			job.Location = DefaultLocation
		}
		if job.Description == "" {
			job.Description = DefaultDescription
		}
		if job.JobType == "" {
			job.JobType = DefaultJobType
		}
		if s := strings.TrimSpace(l.SalaryRange); s != "" {
			job.SalaryRange = &s
		}
		if u := strings.TrimSpace(l.URL); u != "" {
			job.URL = &u
		}
		jobs = append(jobs, job)
	}
	return jobs
}
