package ledger

import (
	"fmt"
	"time"

	"github.com/rnakano/pomostudy/internal/models"
)

// Store is the persistence the service needs. *storage.Store satisfies it.
type Store interface {
	InsertEntry(e *models.Entry) error
	FindEntry(username, subject, date string) (*models.Entry, error)
	UpdateEntryMinutes(id uint, minutes int) error
	ListEntries(username string) ([]models.Entry, error)
	SumByDate(username string) ([]models.DailyTotal, error)
}

// Service applies the recording and reporting rules on top of the store.
type Service struct {
	Store Store
	Now   func() time.Time // clock, overridable in tests
	Merge bool             // fold same-day same-subject records into one entry
}

// New returns a Service with the merging policy enabled and the system clock.
func New(store Store) *Service {
	return &Service{
		Store: store,
		Now:   time.Now,
		Merge: true,
	}
}

// Record logs study time for a subject on today's date. With the
// merging policy active, a repeated record for the same user, subject
// and date accumulates into the existing entry; otherwise every call
// appends a new row. Zero minutes is accepted and recorded as-is.
//
// The merge is a separate lookup and update, not a single atomic
// statement, so two concurrent writers can lose an update. Recording is
// a one-person-at-a-time action, so this is not guarded against.
func (s *Service) Record(username, subject string, minutes int) (*models.Entry, error) {
	now := s.Now()
	date := now.Format("2006-01-02")
	dayOfWeek := now.Weekday().String()

	if s.Merge {
		existing, err := s.Store.FindEntry(username, subject, date)
		if err != nil {
			return nil, fmt.Errorf("failed to look up entry: %w", err)
		}
		if existing != nil {
			merged := existing.StudyMinutes + minutes
			if err := s.Store.UpdateEntryMinutes(existing.ID, merged); err != nil {
				return nil, fmt.Errorf("failed to update entry: %w", err)
			}
			existing.StudyMinutes = merged
			return existing, nil
		}
	}

	entry := &models.Entry{
		Username:     username,
		Subject:      subject,
		Date:         date,
		DayOfWeek:    dayOfWeek,
		StudyMinutes: minutes,
	}
	if err := s.Store.InsertEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}
	return entry, nil
}

// Progress returns the user's entries, most recent date first.
func (s *Service) Progress(username string) ([]models.Entry, error) {
	return s.Store.ListEntries(username)
}

// DailyTotals returns total minutes per day across all subjects, most
// recent date first.
func (s *Service) DailyTotals(username string) ([]models.DailyTotal, error) {
	return s.Store.SumByDate(username)
}
