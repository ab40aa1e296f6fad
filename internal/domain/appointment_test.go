package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

func validDraft() AppointmentDraft {
	return AppointmentDraft{
		ServiceType:            "haircut",
		Date:                   date(2025, 6, 2),
		Time:                   "10:00",
		PeopleCount:            1,
		ServiceDurationMinutes: 30,
		UnitPrice:              25,
	}
}

func TestAppointmentDraft_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *AppointmentDraft)
		wantErr error
	}{
		{name: "valid", mutate: func(*AppointmentDraft) {}},
		{name: "missing service", mutate: func(d *AppointmentDraft) { d.ServiceType = " " }, wantErr: ErrInvalidDraft},
		{name: "missing date", mutate: func(d *AppointmentDraft) { d.Date = time.Time{} }, wantErr: ErrInvalidDraft},
		{name: "bad time", mutate: func(d *AppointmentDraft) { d.Time = "25:00" }, wantErr: ErrInvalidDraft},
		{name: "no people", mutate: func(d *AppointmentDraft) { d.PeopleCount = 0 }, wantErr: ErrInvalidDraft},
		{name: "too many people", mutate: func(d *AppointmentDraft) { d.PeopleCount = MaxPeopleCount + 1 }, wantErr: ErrInvalidDraft},
		{name: "no duration", mutate: func(d *AppointmentDraft) { d.ServiceDurationMinutes = 0 }, wantErr: ErrInvalidDraft},
		{name: "negative price", mutate: func(d *AppointmentDraft) { d.UnitPrice = -1 }, wantErr: ErrInvalidDraft},
		{name: "long notes", mutate: func(d *AppointmentDraft) { d.Notes = ptr.Ptr(strings.Repeat("a", MaxNotesLength+1)) }, wantErr: ErrInvalidDraft},
		{
			name:    "bad recurrence",
			mutate:  func(d *AppointmentDraft) { d.Recurrence = &RecurrenceRule{Interval: 0, Unit: UnitWeek, Occurrences: 3} },
			wantErr: ErrInvalidRecurrence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := d.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAppointmentDraft_ExpandItems_SingleCallPerDate(t *testing.T) {
	d := validDraft()
	d.PeopleCount = 3
	d.Recurrence = &RecurrenceRule{Interval: 1, Unit: UnitWeek, Occurrences: 2}

	dates, err := d.Series()
	require.NoError(t, err)
	items, err := d.ExpandItems(dates)
	require.NoError(t, err)

	require.Len(t, items, 2)
	for i, item := range items {
		assert.Equal(t, i, item.Seq)
		assert.Equal(t, types.TimeString("10:00"), item.Time)
		assert.Equal(t, 3, item.PeopleCount)
		assert.Equal(t, ItemPending, item.Status)
	}
	assert.Equal(t, date(2025, 6, 9), items[1].Date)
}

func TestAppointmentDraft_ExpandItems_MultiSlot(t *testing.T) {
	d := validDraft()
	d.PeopleCount = 3
	d.MultiSlot = true
	d.ServiceDurationMinutes = 45

	items, err := d.ExpandItems([]time.Time{date(2025, 6, 2)})
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, []types.TimeString{"10:00", "10:45", "11:30"},
		[]types.TimeString{items[0].Time, items[1].Time, items[2].Time})
	for k, item := range items {
		assert.Equal(t, 1, item.PeopleCount)
		assert.Equal(t, k, item.PersonIndex)
	}
}

func TestAppointmentDraft_ExpandItems_PastMidnight(t *testing.T) {
	d := validDraft()
	d.Time = "23:30"
	d.PeopleCount = 2
	d.MultiSlot = true
	d.ServiceDurationMinutes = 60

	_, err := d.ExpandItems([]time.Time{date(2025, 6, 2)})

	assert.ErrorIs(t, err, ErrInvalidDraft)
}

func TestSubmission_ResolveStatus(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	newSubmission := func(statuses ...ItemStatus) *Submission {
		s := &Submission{}
		for i, st := range statuses {
			s.Items = append(s.Items, SubmissionItem{Seq: i, Status: st})
		}
		return s
	}

	assert.Equal(t, SubmissionPending, newSubmission().ResolveStatus())
	assert.Equal(t, SubmissionPending, newSubmission(ItemPending, ItemPending).ResolveStatus())
	assert.Equal(t, SubmissionCompleted, newSubmission(ItemCreated, ItemCreated).ResolveStatus())
	assert.Equal(t, SubmissionPartial, newSubmission(ItemCreated, ItemFailed, ItemCreated).ResolveStatus())
	assert.Equal(t, SubmissionPartial, newSubmission(ItemCreated, ItemPending).ResolveStatus())
	assert.Equal(t, SubmissionFailed, newSubmission(ItemFailed, ItemPending).ResolveStatus())

	s := newSubmission(ItemFailed, ItemCreated)
	assert.True(t, s.HasRemainder())
	s.Items[0].MarkCreated("apt-1", at)
	assert.False(t, s.HasRemainder())
	assert.Equal(t, SubmissionCompleted, s.ResolveStatus())
	assert.Nil(t, s.Items[0].Error)
}
