package srs

import (
	"errors"
	"time"

	"github.com/hifzapp/hifz-api/internal/domain"
)

// Common errors
var (
	ErrNilRecord = errors.New("progress record cannot be nil")
)

// Service defines the interface for review scheduling operations.
type Service interface {
	// NextReviewDate computes when the chapter should next be reviewed.
	// It returns (zero, false) when the record has no memorized verses yet:
	// a chapter with nothing memorized has no review date.
	NextReviewDate(record *domain.ProgressRecord, now time.Time) (time.Time, bool, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a scheduling service with the standard tiers.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a scheduling service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// NextReviewDate implements the Service interface.
func (s *defaultService) NextReviewDate(
	record *domain.ProgressRecord,
	now time.Time,
) (time.Time, bool, error) {
	if record == nil {
		return time.Time{}, false, ErrNilRecord
	}

	if record.Count() == 0 {
		return time.Time{}, false, nil
	}

	interval := s.params.IntervalFor(record.LastStudied, now)
	return record.LastStudied.Add(interval), true, nil
}
