package repository

import (
	"context"
	"testing"

	"coachbook/internal/database"
	"coachbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, AutoMigrate(db))
	return db
}

func app(userID int64) (*int64, domain.BookingType) {
	return &userID, domain.BookingApp
}

func mkBooking(date, start, end string) *domain.Booking {
	userID, typ := app(42)
	return &domain.Booking{
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: 90,
		BookingType:     typ,
		BranchID:        1,
		BranchName:      "Downtown",
		UserID:          userID,
		UserName:        "Alex",
	}
}

func TestCreateIfFree_InsertsAndRoundTrips(t *testing.T) {
	repo := NewBookingRepository(testDB(t))
	ctx := context.Background()

	b := mkBooking("2026-01-05", "09:00", "10:30")
	require.NoError(t, repo.CreateIfFree(ctx, b))
	assert.NotZero(t, b.ID)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", got.StartTime)
	assert.Equal(t, "10:30", got.EndTime)
	assert.Equal(t, domain.BookingApp, got.BookingType)
}

func TestCreateIfFree_RejectsOverlap(t *testing.T) {
	repo := NewBookingRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateIfFree(ctx, mkBooking("2026-01-05", "09:00", "10:30")))

	// Identical interval
	err := repo.CreateIfFree(ctx, mkBooking("2026-01-05", "09:00", "10:30"))
	assert.ErrorIs(t, err, ErrOverlap)

	// One-minute overlap at the tail
	err = repo.CreateIfFree(ctx, mkBooking("2026-01-05", "10:29", "11:59"))
	assert.ErrorIs(t, err, ErrOverlap)

	// Exactly one row landed for the interval
	rows, err := repo.ListByDate(ctx, "2026-01-05")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCreateIfFree_OverlapIsBranchIndependent(t *testing.T) {
	repo := NewBookingRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateIfFree(ctx, mkBooking("2026-01-05", "09:00", "10:30")))

	second := mkBooking("2026-01-05", "09:30", "11:00")
	second.BranchID = 2
	second.BranchName = "Riverside"

	assert.ErrorIs(t, repo.CreateIfFree(ctx, second), ErrOverlap)
}

func TestCreateIfFree_TouchingEndpointsAllowed(t *testing.T) {
	repo := NewBookingRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateIfFree(ctx, mkBooking("2026-01-05", "09:00", "10:30")))
	// [10:30, 12:00) starts exactly where the first ends
	require.NoError(t, repo.CreateIfFree(ctx, mkBooking("2026-01-05", "10:30", "12:00")))
	// Same clock interval on another date never collides
	require.NoError(t, repo.CreateIfFree(ctx, mkBooking("2026-01-06", "09:00", "10:30")))

	rows, err := repo.ListByDate(ctx, "2026-01-05")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestDelete_FreesInterval(t *testing.T) {
	repo := NewBookingRepository(testDB(t))
	ctx := context.Background()

	b := mkBooking("2026-01-05", "09:00", "10:30")
	require.NoError(t, repo.CreateIfFree(ctx, b))
	require.NoError(t, repo.Delete(ctx, b.ID))

	// The exact interval is bookable again after cancellation.
	require.NoError(t, repo.CreateIfFree(ctx, mkBooking("2026-01-05", "09:00", "10:30")))
}

func TestDelete_MissingRow(t *testing.T) {
	repo := NewBookingRepository(testDB(t))

	assert.ErrorIs(t, repo.Delete(context.Background(), 12345), gorm.ErrRecordNotFound)
}

func TestCountOverlapping_ExcludeID(t *testing.T) {
	repo := NewBookingRepository(testDB(t))
	ctx := context.Background()

	b := mkBooking("2026-01-05", "09:00", "10:30")
	require.NoError(t, repo.CreateIfFree(ctx, b))

	cnt, err := repo.CountOverlapping(ctx, "2026-01-05", 540, 630, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)

	// Excluding the booking itself clears the conflict (update/replace flow).
	cnt, err = repo.CountOverlapping(ctx, "2026-01-05", 540, 630, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

func TestList_Filters(t *testing.T) {
	repo := NewBookingRepository(testDB(t))
	ctx := context.Background()

	first := mkBooking("2026-01-05", "11:00", "12:30")
	require.NoError(t, repo.CreateIfFree(ctx, first))
	second := mkBooking("2026-01-05", "09:00", "10:30")
	otherUser := int64(7)
	second.UserID = &otherUser
	require.NoError(t, repo.CreateIfFree(ctx, second))

	date := "2026-01-05"
	all, err := repo.List(ctx, &date, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by start time within the date
	assert.Equal(t, "09:00", all[0].StartTime)

	mine, err := repo.List(ctx, &date, first.UserID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
}

func TestStatsForDate_GroupsByBranchAndType(t *testing.T) {
	repo := NewBookingRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateIfFree(ctx, mkBooking("2026-01-05", "09:00", "10:30")))
	manual := mkBooking("2026-01-05", "11:00", "12:30")
	manual.UserID = nil
	manual.UserName = ""
	manual.BookingType = domain.BookingManual
	manual.ManualClientName = "Walk-in Pete"
	require.NoError(t, repo.CreateIfFree(ctx, manual))

	rows, err := repo.StatsForDate(ctx, "2026-01-05")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "app", rows[0].BookingType)
	assert.Equal(t, int64(1), rows[0].Count)
	assert.Equal(t, "manual", rows[1].BookingType)
}
