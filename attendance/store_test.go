package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return Day(t)
}

func TestParseDay(t *testing.T) {
	afternoon, err := ParseDay("2024-11-20T15:04:05Z")
	require.NoError(t, err)
	midnight, err := ParseDay("2024-11-20")
	require.NoError(t, err)

	assert.True(t, afternoon.Equal(midnight), "time of day must be discarded")
	assert.Equal(t, time.UTC, midnight.Location())

	// timestamp ไม่ระบุ zone (เหมือนที่ FE ส่ง) → ตีความเป็น UTC วันเดียวกัน
	zoneless, err := ParseDay("2024-11-20T15:00:00")
	require.NoError(t, err)
	assert.True(t, zoneless.Equal(midnight))

	_, err = ParseDay("20/11/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = ParseDay("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMemoryStoreUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.Upsert(ctx, 1, day("2024-11-20"), models.StatusPresent, 9)
	require.NoError(t, err)

	second, err := store.Upsert(ctx, 1, day("2024-11-20"), models.StatusLate, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Len(), "re-mark must not create a second row")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.StatusLate, second.Status)
	assert.Equal(t, uint(10), second.MarkedBy)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt), "created_at is set once")
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestMemoryStoreRejectsInvalidStatus(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Upsert(ctx, 1, day("2024-11-20"), "sleeping", 9)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = store.Query(ctx, Filter{Status: "sleeping"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestMemoryStoreQueryOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// จงใจ insert ไม่เรียงวัน
	for _, d := range []string{"2024-11-10", "2024-11-20", "2024-11-15"} {
		_, err := store.Upsert(ctx, 1, day(d), models.StatusPresent, 9)
		require.NoError(t, err)
	}

	rows, err := store.Query(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Date.Equal(day("2024-11-20")))
	assert.True(t, rows[1].Date.Equal(day("2024-11-15")))
	assert.True(t, rows[2].Date.Equal(day("2024-11-10")))
}

func TestMemoryStoreQueryFilters(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Upsert(ctx, 1, day("2024-11-19"), models.StatusAbsent, 9)
	require.NoError(t, err)
	_, err = store.Upsert(ctx, 2, day("2024-11-20"), models.StatusPresent, 9)
	require.NoError(t, err)

	rows, err := store.Query(ctx, Filter{StudentID: 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(1), rows[0].StudentID)

	from := day("2024-11-20")
	rows, err = store.Query(ctx, Filter{From: &from})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Date.Equal(from), "range bounds are inclusive")

	to := day("2024-11-19")
	rows, err = store.Query(ctx, Filter{To: &to})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusAbsent, rows[0].Status)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec, err := store.Upsert(ctx, 1, day("2024-11-20"), models.StatusPresent, 9)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, rec.ID))
	assert.Equal(t, 0, store.Len())

	// ลบซ้ำ = ไม่พบ ไม่ใช่ no-op
	assert.ErrorIs(t, store.Delete(ctx, rec.ID), ErrNotFound)
}
