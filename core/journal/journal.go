// Package journal keeps an audit trail of mutating storage operations in the
// optional database.
package journal

import (
	"context"
	"fmt"
	"time"

	"object-gateway/core/objectstore"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// writeTimeout bounds a single journal insert.
const writeTimeout = 3 * time.Second

// Entry is one journaled operation.
type Entry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Operation  string    `gorm:"size:16;index" json:"operation"`
	Bucket     string    `gorm:"size:255" json:"bucket"`
	ObjectKey  string    `gorm:"size:1024" json:"key"`
	Size       int64     `json:"size"`
	Attempts   int       `json:"attempts"`
	Success    bool      `json:"success"`
	Error      string    `gorm:"size:1024" json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides the GORM default.
func (Entry) TableName() string {
	return "object_journal"
}

// Journal records mutating store operations. It implements objectstore.Observer.
type Journal struct {
	db     *gorm.DB
	logger *zap.Logger
}

// New migrates the journal table and returns the journal.
func New(db *gorm.DB, logger *zap.Logger) (*Journal, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal table: %w", err)
	}
	return newJournal(db, logger), nil
}

func newJournal(db *gorm.DB, logger *zap.Logger) *Journal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Journal{db: db, logger: logger.Named("journal")}
}

// OperationDone records put, remove and health operations. Reads are skipped.
func (j *Journal) OperationDone(ev objectstore.Event) {
	if !ev.Operation.Mutating() {
		return
	}

	entry := Entry{
		Operation:  string(ev.Operation),
		Bucket:     ev.Bucket,
		ObjectKey:  ev.Key,
		Size:       ev.Size,
		Attempts:   ev.Attempts,
		Success:    ev.Err == nil,
		DurationMs: ev.Duration.Milliseconds(),
		CreatedAt:  ev.Started,
	}
	if ev.Err != nil {
		entry.Error = truncate(ev.Err.Error(), 1024)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := j.db.WithContext(ctx).Create(&entry).Error; err != nil {
		j.logger.Warn("Failed to write journal entry",
			zap.String("operation", entry.Operation),
			zap.String("key", entry.ObjectKey),
			zap.Error(err))
	}
}

// ClientReopened implements objectstore.Observer. Reopens are not journaled.
func (j *Journal) ClientReopened(error) {}

// Recent returns the newest entries first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	var entries []Entry
	err := j.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
