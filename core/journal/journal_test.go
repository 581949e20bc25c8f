package journal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"object-gateway/core/database"
	"object-gateway/core/objectstore"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupJournal(t *testing.T) *Journal {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	j, err := New(db, zap.NewNop())
	require.NoError(t, err)
	return j
}

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestJournal_RecordsMutatingOperations(t *testing.T) {
	j := setupJournal(t)
	now := time.Now()

	j.OperationDone(objectstore.Event{Operation: objectstore.OpPut, Bucket: "docs", Key: "a.txt", Size: 3, Attempts: 1, Started: now})
	j.OperationDone(objectstore.Event{Operation: objectstore.OpGet, Bucket: "docs", Key: "a.txt", Attempts: 1, Started: now})
	j.OperationDone(objectstore.Event{Operation: objectstore.OpRemove, Bucket: "docs", Key: "a.txt", Attempts: 1, Started: now, Err: errors.New("denied")})

	entries, err := j.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2, "reads are not journaled")

	assert.Equal(t, "remove", entries[0].Operation)
	assert.False(t, entries[0].Success)
	assert.Equal(t, "denied", entries[0].Error)

	assert.Equal(t, "put", entries[1].Operation)
	assert.True(t, entries[1].Success)
	assert.Equal(t, int64(3), entries[1].Size)
	assert.Equal(t, "a.txt", entries[1].ObjectKey)
}

func TestJournal_RecentLimit(t *testing.T) {
	j := setupJournal(t)
	for i := 0; i < 5; i++ {
		j.OperationDone(objectstore.Event{Operation: objectstore.OpHealth, Bucket: "docs", Key: objectstore.HealthKey, Started: time.Now()})
	}

	entries, err := j.Recent(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = j.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestJournal_WriteFailureIsLogged(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	j := newJournal(db, zap.NewNop())

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `object_journal`").WillReturnError(assert.AnError)
	sqlMock.ExpectRollback()

	assert.NotPanics(t, func() {
		j.OperationDone(objectstore.Event{Operation: objectstore.OpPut, Bucket: "docs", Key: "a.txt", Started: time.Now()})
	})
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestJournal_RecentQueryError(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	j := newJournal(db, zap.NewNop())

	sqlMock.ExpectQuery("SELECT \\* FROM `object_journal`").WillReturnError(assert.AnError)

	entries, err := j.Recent(context.Background(), 10)
	assert.Error(t, err)
	assert.Nil(t, entries)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, strings.Repeat("x", 4), truncate(strings.Repeat("x", 10), 4))
}
