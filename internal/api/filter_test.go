package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tallyhq/tally/internal/model"
)

func datePtr(d model.Date) *model.Date { return &d }
func confirmPtr(v bool) *bool          { return &v }

func TestFilter_Query(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		filter Filter
	}{
		{
			name:   "empty filter produces empty query",
			filter: Filter{},
			want:   "",
		},
		{
			name:   "confirm false is included despite being falsy",
			filter: Filter{Confirm: confirmPtr(false)},
			want:   "confirm=false",
		},
		{
			name:   "confirm true",
			filter: Filter{Confirm: confirmPtr(true)},
			want:   "confirm=true",
		},
		{
			name: "absent confirm with start date includes only start date",
			filter: Filter{
				StartDate: datePtr(model.NewDate(2024, time.January, 1)),
			},
			want: "start_date=2024-01-01",
		},
		{
			name: "all fields present",
			filter: Filter{
				Confirm:   confirmPtr(false),
				StartDate: datePtr(model.NewDate(2024, time.January, 1)),
				EndDate:   datePtr(model.NewDate(2024, time.January, 31)),
			},
			want: "confirm=false&end_date=2024-01-31&start_date=2024-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Query())
		})
	}
}

func TestFilter_Validate(t *testing.T) {
	valid := Filter{
		StartDate: datePtr(model.NewDate(2024, time.January, 1)),
		EndDate:   datePtr(model.NewDate(2024, time.January, 31)),
	}
	assert.NoError(t, valid.Validate())

	inverted := Filter{
		StartDate: datePtr(model.NewDate(2024, time.February, 1)),
		EndDate:   datePtr(model.NewDate(2024, time.January, 1)),
	}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidDateRange)

	// Open-ended ranges are fine.
	assert.NoError(t, Filter{StartDate: datePtr(model.NewDate(2024, time.March, 1))}.Validate())
	assert.NoError(t, Filter{}.Validate())
}

func TestConfirmedOnly_UnconfirmedOnly(t *testing.T) {
	assert.Equal(t, "confirm=true", ConfirmedOnly().Query())
	assert.Equal(t, "confirm=false", UnconfirmedOnly().Query())
}
