package reservation_test

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/agendaja/agenda-api/models"
	"github.com/agendaja/agenda-api/reservation"
)

// testDB connects to the database named by TEST_DATABASE_URL. The claim
// tests need a real conditional update, so they are skipped when no test
// database is configured.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Variation{},
		&models.ScheduleSlot{},
		&models.Hiring{},
	))
	return gdb
}

func createSlot(t *testing.T, gdb *gorm.DB) models.ScheduleSlot {
	t.Helper()

	slot := models.ScheduleSlot{Available: true}
	require.NoError(t, gdb.Create(&slot).Error)
	t.Cleanup(func() {
		gdb.Where("slot_id = ?", slot.ID).Delete(&models.Hiring{})
		gdb.Delete(&models.ScheduleSlot{}, slot.ID)
	})
	return slot
}

func TestGormRepositoryReserveSlot_ClaimsSlotOnce(t *testing.T) {
	gdb := testDB(t)
	repo := reservation.NewGormRepository(gdb)
	slot := createSlot(t, gdb)

	req := reservation.Request{ClientID: 1, VariationID: 2, SlotID: slot.ID}
	hiring, err := repo.ReserveSlot(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, hiring.Status)
	assert.Equal(t, slot.ID, hiring.SlotID)
	assert.NotEmpty(t, hiring.Code)

	var reloaded models.ScheduleSlot
	require.NoError(t, gdb.First(&reloaded, slot.ID).Error)
	assert.False(t, reloaded.Available)

	// second reservation of the same slot must fail and write nothing
	_, err = repo.ReserveSlot(context.Background(), reservation.Request{ClientID: 3, VariationID: 5, SlotID: slot.ID})
	assert.ErrorIs(t, err, reservation.ErrSlotUnavailable)

	var count int64
	require.NoError(t, gdb.Model(&models.Hiring{}).Where("slot_id = ?", slot.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGormRepositoryReserveSlot_UnavailableSlotWritesNothing(t *testing.T) {
	gdb := testDB(t)
	repo := reservation.NewGormRepository(gdb)
	slot := createSlot(t, gdb)
	require.NoError(t, gdb.Model(&models.ScheduleSlot{}).
		Where("id = ?", slot.ID).
		Update("available", false).Error)

	_, err := repo.ReserveSlot(context.Background(), reservation.Request{ClientID: 1, VariationID: 2, SlotID: slot.ID})
	assert.ErrorIs(t, err, reservation.ErrSlotUnavailable)

	var count int64
	require.NoError(t, gdb.Model(&models.Hiring{}).Where("slot_id = ?", slot.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var reloaded models.ScheduleSlot
	require.NoError(t, gdb.First(&reloaded, slot.ID).Error)
	assert.False(t, reloaded.Available)
}

func TestGormRepositoryReserveSlot_MissingSlot(t *testing.T) {
	gdb := testDB(t)
	repo := reservation.NewGormRepository(gdb)

	_, err := repo.ReserveSlot(context.Background(), reservation.Request{ClientID: 1, VariationID: 2, SlotID: 0})
	assert.ErrorIs(t, err, reservation.ErrSlotUnavailable)
}

// Concurrent reservations of the same slot: exactly one must win.
func TestGormRepositoryReserveSlot_ConcurrentSingleWinner(t *testing.T) {
	gdb := testDB(t)
	repo := reservation.NewGormRepository(gdb)
	slot := createSlot(t, gdb)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.ReserveSlot(context.Background(), reservation.Request{
				ClientID:    uint(i + 1),
				VariationID: 2,
				SlotID:      slot.ID,
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, reservation.ErrSlotUnavailable)
		}
	}
	assert.Equal(t, 1, winners)

	var count int64
	require.NoError(t, gdb.Model(&models.Hiring{}).Where("slot_id = ?", slot.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGormRepositoryCancelHiring_ReleasesSlot(t *testing.T) {
	gdb := testDB(t)
	repo := reservation.NewGormRepository(gdb)
	slot := createSlot(t, gdb)

	hiring, err := repo.ReserveSlot(context.Background(), reservation.Request{ClientID: 1, VariationID: 2, SlotID: slot.ID})
	require.NoError(t, err)

	canceled, err := repo.CancelHiring(context.Background(), hiring.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, canceled.Status)

	var reloaded models.ScheduleSlot
	require.NoError(t, gdb.First(&reloaded, slot.ID).Error)
	assert.True(t, reloaded.Available)

	// a second cancel is an invalid transition, not a storage fault
	_, err = repo.CancelHiring(context.Background(), hiring.ID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestGormRepositoryListByClient_EmptyIsNotNull(t *testing.T) {
	gdb := testDB(t)
	repo := reservation.NewGormRepository(gdb)

	hirings, err := repo.ListByClient(context.Background(), 987654321)
	require.NoError(t, err)
	assert.NotNil(t, hirings)

	payload, err := json.Marshal(hirings)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(payload))
}
