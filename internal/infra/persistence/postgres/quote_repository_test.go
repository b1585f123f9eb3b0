package postgres

import (
	"context"
	"testing"
	"time"

	"seatech/internal/domain/entity"
	"seatech/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, dbMock
}

func TestQuoteRepository_CreateDraft_LosingRaceReadsWinningRow(t *testing.T) {
	// The partial unique index rejects the second insert; both error shapes
	// the driver can hand back must trigger the re-read.
	uniqueViolations := map[string]error{
		"translated sentinel": gorm.ErrDuplicatedKey,
		"raw postgres code": &pgconn.PgError{
			Code:    "23505",
			Message: `duplicate key value violates unique constraint "idx_quotes_one_draft"`,
		},
	}

	for name, insertErr := range uniqueViolations {
		t.Run(name, func(t *testing.T) {
			db, dbMock := newTestDB(t)
			repo := NewQuoteRepository(db)

			userID := uuid.New()
			winnerID := uuid.New()
			now := time.Now()

			dbMock.ExpectQuery(`INSERT INTO "quotes"`).WillReturnError(insertErr)
			dbMock.ExpectQuery(`SELECT \* FROM "quotes"`).
				WillReturnRows(sqlmock.NewRows([]string{
					"id", "user_id", "status", "total_items", "additional_remarks", "created_at", "updated_at",
				}).AddRow(winnerID.String(), userID.String(), "draft", 0, "", now, now))

			quote, err := repo.CreateDraft(context.Background(), userID)

			require.NoError(t, err)
			assert.Equal(t, winnerID, quote.ID)
			assert.Equal(t, userID, quote.UserID)
			assert.Equal(t, entity.QuoteStatusDraft, quote.Status)
			require.NoError(t, dbMock.ExpectationsWereMet())
		})
	}
}

func TestQuoteRepository_FindDraftByUser_NoRows(t *testing.T) {
	db, dbMock := newTestDB(t)
	repo := NewQuoteRepository(db)

	dbMock.ExpectQuery(`SELECT \* FROM "quotes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}))

	_, err := repo.FindDraftByUser(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrNoDraftQuote)
}
