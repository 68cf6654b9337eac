package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"digitex_go/internal/domain"
	"digitex_go/internal/message"
)

// Journal is the SQLite-backed diagnostic trace of inbound envelopes.
// It satisfies engine.Journal.
type Journal struct {
	db *gorm.DB
}

// NewJournal opens (or creates) the journal database at path.
func NewJournal(path string) (*Journal, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	// Pure Go SQLite driver, no cgo.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	if err := db.AutoMigrate(&domain.JournalRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal database: %w", err)
	}

	return &Journal{db: db}, nil
}

// Append writes one envelope's trace record.
func (j *Journal) Append(msg *message.Inbound) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}

	rec := &domain.JournalRecord{
		Kind:       msg.Kind.String(),
		MarketID:   msg.MarketID,
		ErrorCode:  msg.ErrorCode,
		Payload:    string(payload),
		ReceivedAt: time.Now(),
	}
	return j.db.Create(rec).Error
}

// Recent returns up to limit most recent records, newest first.
func (j *Journal) Recent(limit int) ([]domain.JournalRecord, error) {
	var recs []domain.JournalRecord
	err := j.db.Order("id desc").Limit(limit).Find(&recs).Error
	return recs, err
}

// PruneBefore deletes records received before the cutoff.
func (j *Journal) PruneBefore(cutoff time.Time) (int64, error) {
	res := j.db.Where("received_at < ?", cutoff).Delete(&domain.JournalRecord{})
	return res.RowsAffected, res.Error
}
