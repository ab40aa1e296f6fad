package submission

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

func TestMemoryRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	sub := &domain.Submission{
		ID:     uuid.New(),
		Status: domain.SubmissionPending,
		Items: []domain.SubmissionItem{
			{Seq: 0, Status: domain.ItemPending},
			{Seq: 1, Status: domain.ItemPending},
		},
	}
	require.NoError(t, repo.Create(ctx, sub))

	// Изменения исходного объекта не попадают в журнал без UpdateItem
	sub.Items[0].MarkCreated("apt-1", at)
	stored, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemPending, stored.Items[0].Status)

	require.NoError(t, repo.UpdateItem(ctx, sub.ID, &sub.Items[0]))
	require.NoError(t, repo.UpdateStatus(ctx, sub.ID, domain.SubmissionPartial, at))

	stored, err = repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionPartial, stored.Status)
	assert.Equal(t, domain.ItemCreated, stored.Items[0].Status)
	assert.Equal(t, "apt-1", *stored.Items[0].AppointmentID)
	assert.Equal(t, at, stored.UpdatedAt)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSubmissionNotFound)

	err = repo.UpdateStatus(ctx, uuid.New(), domain.SubmissionFailed, time.Now())
	assert.ErrorIs(t, err, ErrSubmissionNotFound)

	sub := &domain.Submission{ID: uuid.New(), Items: []domain.SubmissionItem{{Seq: 0}}}
	require.NoError(t, repo.Create(ctx, sub))
	err = repo.UpdateItem(ctx, sub.ID, &domain.SubmissionItem{Seq: 5})
	assert.ErrorIs(t, err, ErrItemNotFound)
}
