package submission

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

const (
	submissionsTable = "series_submissions"
	itemsTable       = "series_submission_items"
)

// Repository репозиторий журнала отправок серий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отправок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отправку вместе со всеми заявками
// Делает два запроса, поэтому вызывается внутри транзакции (txmanager.Do)
func (r *Repository) Create(ctx context.Context, sub *domain.Submission) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var (
		interval, occurrences sql.NullInt64
		unit                  sql.NullString
	)
	if rule := sub.Draft.Recurrence; rule != nil {
		interval = sql.NullInt64{Int64: int64(rule.Interval), Valid: true}
		occurrences = sql.NullInt64{Int64: int64(rule.Occurrences), Valid: true}
		unit = sql.NullString{String: string(rule.Unit), Valid: true}
	}

	query, args, err := psqlbuilder.Insert(submissionsTable).
		Columns(
			"id",
			"service_type",
			"barber_id",
			"base_date",
			"start_time",
			"people_count",
			"notes",
			"recurrence_interval",
			"recurrence_unit",
			"recurrence_occurrences",
			"multi_slot",
			"service_duration_minutes",
			"unit_price",
			"status",
			"created_at",
			"updated_at",
		).
		Values(
			sub.ID,
			sub.Draft.ServiceType,
			sub.Draft.BarberID,
			sub.Draft.Date.Format(domain.DateFormat),
			sub.Draft.Time,
			sub.Draft.PeopleCount,
			sub.Draft.Notes,
			interval,
			unit,
			occurrences,
			sub.Draft.MultiSlot,
			sub.Draft.ServiceDurationMinutes,
			sub.Draft.UnitPrice,
			sub.Status,
			sub.CreatedAt,
			sub.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if len(sub.Items) == 0 {
		return nil
	}

	itemsInsert := psqlbuilder.Insert(itemsTable).
		Columns(
			"submission_id",
			"seq",
			"item_date",
			"item_time",
			"people_count",
			"person_index",
			"status",
			"appointment_id",
			"error",
			"attempted_at",
		)
	for _, item := range sub.Items {
		itemsInsert = itemsInsert.Values(
			sub.ID,
			item.Seq,
			item.Date.Format(domain.DateFormat),
			item.Time,
			item.PeopleCount,
			item.PersonIndex,
			item.Status,
			item.AppointmentID,
			item.Error,
			item.AttemptedAt,
		)
	}

	query, args, err = itemsInsert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build items insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute items insert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateItem сохраняет результат отправки одной заявки
func (r *Repository) UpdateItem(ctx context.Context, submissionID uuid.UUID, item *domain.SubmissionItem) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(itemsTable).
		Set("status", item.Status).
		Set("appointment_id", item.AppointmentID).
		Set("error", item.Error).
		Set("attempted_at", item.AttemptedAt).
		Where(squirrel.Eq{"submission_id": submissionID, "seq": item.Seq}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateItem - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateItem - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateItem - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// UpdateStatus обновляет итоговый статус отправки
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, updatedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(submissionsTable).
		Set("status", status).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

// GetByID получает отправку с заявками, упорядоченными по seq
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"service_type",
		"barber_id",
		"base_date",
		"start_time",
		"people_count",
		"notes",
		"recurrence_interval",
		"recurrence_unit",
		"recurrence_occurrences",
		"multi_slot",
		"service_duration_minutes",
		"unit_price",
		"status",
		"created_at",
		"updated_at",
	).
		From(submissionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		sub                   domain.Submission
		barberID, notes, unit sql.NullString
		interval, occurrences sql.NullInt64
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sub.ID,
		&sub.Draft.ServiceType,
		&barberID,
		&sub.Draft.Date,
		&sub.Draft.Time,
		&sub.Draft.PeopleCount,
		&notes,
		&interval,
		&unit,
		&occurrences,
		&sub.Draft.MultiSlot,
		&sub.Draft.ServiceDurationMinutes,
		&sub.Draft.UnitPrice,
		&sub.Status,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan submission: %v", ErrScanRow, err)
	}

	if barberID.Valid {
		sub.Draft.BarberID = &barberID.String
	}
	if notes.Valid {
		sub.Draft.Notes = &notes.String
	}
	if interval.Valid && unit.Valid && occurrences.Valid {
		sub.Draft.Recurrence = &domain.RecurrenceRule{
			Interval:    int(interval.Int64),
			Unit:        domain.RecurrenceUnit(unit.String),
			Occurrences: int(occurrences.Int64),
		}
	}

	items, err := r.getItems(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	sub.Items = items

	return &sub, nil
}

func (r *Repository) getItems(ctx context.Context, executor DBExecutor, submissionID uuid.UUID) ([]domain.SubmissionItem, error) {
	query, args, err := psqlbuilder.Select(
		"seq",
		"item_date",
		"item_time",
		"people_count",
		"person_index",
		"status",
		"appointment_id",
		"error",
		"attempted_at",
	).
		From(itemsTable).
		Where(squirrel.Eq{"submission_id": submissionID}).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.SubmissionItem, 0)
	for rows.Next() {
		var (
			item                 domain.SubmissionItem
			appointmentID, cause sql.NullString
			attemptedAt          sql.NullTime
		)
		if err := rows.Scan(
			&item.Seq,
			&item.Date,
			&item.Time,
			&item.PeopleCount,
			&item.PersonIndex,
			&item.Status,
			&appointmentID,
			&cause,
			&attemptedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: getItems - scan item: %v", ErrScanRow, err)
		}

		if appointmentID.Valid {
			item.AppointmentID = &appointmentID.String
		}
		if cause.Valid {
			item.Error = &cause.String
		}
		if attemptedAt.Valid {
			item.AttemptedAt = &attemptedAt.Time
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
