package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jobquestapp/jobquest-backend/internal/models"
)

// JobStore persists canonical job records.
type JobStore interface {
	SaveJobs(ctx context.Context, jobs []models.Job) ([]models.Job, error)
}

// JobService is the gorm-backed JobStore.
type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// SaveJobs inserts the batch in a single write and returns the stored rows
// with IDs and timestamps populated. The batch either fully succeeds or the
// whole request fails; there is no per-record retry. The result is never nil
// so the response always serializes jobs as an array.
func (s *JobService) SaveJobs(ctx context.Context, jobs []models.Job) ([]models.Job, error) {
	if len(jobs) == 0 {
		return []models.Job{}, nil
	}
	if err := s.db.WithContext(ctx).Create(&jobs).Error; err != nil {
		return nil, fmt.Errorf("insert jobs: %w", err)
	}
	return jobs, nil
}
