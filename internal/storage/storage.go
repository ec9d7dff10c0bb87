package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rnakano/pomostudy/internal/models"
)

// ErrDuplicateAccount is returned when registering a username that is
// already taken.
var ErrDuplicateAccount = errors.New("username already taken")

// Store wraps the SQLite file holding entries and accounts. It is
// created once per command invocation and injected into the services
// that need it.
type Store struct {
	db *gorm.DB
}

// DefaultPath returns the database file path inside the data directory.
func DefaultPath(base string) string {
	return filepath.Join(base, "pomostudy.db")
}

// Open opens the database at path, creating the file and parent
// directory if needed, and runs migrations. Migration is idempotent, so
// repeated opens against the same file are safe.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Entry{}, &models.Account{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InsertEntry stores a new entry. The id is assigned by the database.
func (s *Store) InsertEntry(e *models.Entry) error {
	return s.db.Create(e).Error
}

// FindEntry returns the entry for (username, subject, date), or nil if
// none exists. Only the merging policy uses this lookup.
func (s *Store) FindEntry(username, subject, date string) (*models.Entry, error) {
	var e models.Entry
	err := s.db.Where("username = ? AND subject = ? AND date = ?", username, subject, date).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEntryMinutes replaces the stored minutes value for the entry.
func (s *Store) UpdateEntryMinutes(id uint, minutes int) error {
	return s.db.Model(&models.Entry{}).Where("id = ?", id).Update("study_minutes", minutes).Error
}

// ListEntries returns all entries for a user, most recent date first.
// An empty username selects the anonymously recorded entries.
func (s *Store) ListEntries(username string) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.Where("username = ?", username).
		Order("date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// SumByDate returns total minutes per distinct date across all
// subjects, most recent date first.
func (s *Store) SumByDate(username string) ([]models.DailyTotal, error) {
	var totals []models.DailyTotal
	err := s.db.Model(&models.Entry{}).
		Select("date, SUM(study_minutes) AS total_minutes").
		Where("username = ?", username).
		Group("date").
		Order("date DESC").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// InsertAccount creates an account, failing with ErrDuplicateAccount if
// the username is already registered.
func (s *Store) InsertAccount(username, passwordHash string) (*models.Account, error) {
	var count int64
	if err := s.db.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateAccount
	}

	account := models.Account{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.db.Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindAccount returns the account for username, or nil if none exists.
func (s *Store) FindAccount(username string) (*models.Account, error) {
	var account models.Account
	err := s.db.Where("username = ?", username).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
