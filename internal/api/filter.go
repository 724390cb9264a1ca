package api

import (
	"net/url"
	"strconv"

	"github.com/tallyhq/tally/internal/model"
)

// Filter selects which transactions a list request returns. A nil field is
// absent: it is omitted from the query string entirely. This matters for
// Confirm, where confirm=false ("only unconfirmed") and no confirm filter
// at all ("everything") are different requests.
type Filter struct {
	Confirm   *bool
	StartDate *model.Date
	EndDate   *model.Date
}

// ConfirmedOnly returns a filter for reviewed transactions.
func ConfirmedOnly() Filter {
	confirmed := true
	return Filter{Confirm: &confirmed}
}

// UnconfirmedOnly returns a filter for transactions pending review.
func UnconfirmedOnly() Filter {
	confirmed := false
	return Filter{Confirm: &confirmed}
}

// Query encodes the filter as a URL query string. Present fields are
// always included, whatever their value; absent fields never are. An
// empty filter encodes to an empty string.
func (f Filter) Query() string {
	q := url.Values{}
	if f.Confirm != nil {
		q.Set("confirm", strconv.FormatBool(*f.Confirm))
	}
	if f.StartDate != nil {
		q.Set("start_date", f.StartDate.String())
	}
	if f.EndDate != nil {
		q.Set("end_date", f.EndDate.String())
	}
	return q.Encode()
}

// Validate rejects filters the backend could never satisfy.
func (f Filter) Validate() error {
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(f.EndDate.Time) {
		return ErrInvalidDateRange
	}
	return nil
}
