package submission

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// MemoryRepository журнал отправок в памяти процесса
// Используется терминальным клиентом, где нет базы данных
type MemoryRepository struct {
	mu          sync.RWMutex
	submissions map[uuid.UUID]*domain.Submission
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{submissions: make(map[uuid.UUID]*domain.Submission)}
}

func (r *MemoryRepository) Create(_ context.Context, sub *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.submissions[sub.ID] = cloneSubmission(sub)
	return nil
}

func (r *MemoryRepository) UpdateItem(_ context.Context, submissionID uuid.UUID, item *domain.SubmissionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.submissions[submissionID]
	if !ok {
		return ErrSubmissionNotFound
	}
	for i := range sub.Items {
		if sub.Items[i].Seq == item.Seq {
			sub.Items[i] = *item
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, id uuid.UUID, status domain.SubmissionStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.submissions[id]
	if !ok {
		return ErrSubmissionNotFound
	}
	sub.Status = status
	sub.UpdatedAt = updatedAt
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.submissions[id]
	if !ok {
		return nil, ErrSubmissionNotFound
	}
	return cloneSubmission(sub), nil
}

func cloneSubmission(sub *domain.Submission) *domain.Submission {
	clone := *sub
	clone.Items = make([]domain.SubmissionItem, len(sub.Items))
	copy(clone.Items, sub.Items)
	return &clone
}
