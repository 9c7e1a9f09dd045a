package models

import (
	"net/url"
	"time"
)

// EventQuery is the dashboard's filter state: a single optional category
// plus independently optional inclusive date bounds. The zero value means
// "no filter", which is the state every dashboard starts from.
type EventQuery struct {
	Categories string     // empty = all categories
	FromDate   *time.Time // nil = unbounded
	EndDate    *time.Time // nil = unbounded
}

// QueryPatch is a partial update to an EventQuery. Nil fields leave the
// current value untouched; this is the only way filter state is mutated.
type QueryPatch struct {
	Categories *string
	FromDate   **time.Time
	EndDate    **time.Time
}

// Apply merges the patch into q and returns the result.
func (q EventQuery) Apply(patch QueryPatch) EventQuery {
	if patch.Categories != nil {
		q.Categories = *patch.Categories
	}
	if patch.FromDate != nil {
		q.FromDate = *patch.FromDate
	}
	if patch.EndDate != nil {
		q.EndDate = *patch.EndDate
	}
	return q
}

// Encode builds the query string for GET /api/events. Empty fields are
// omitted entirely; dates are serialized as full ISO-8601 timestamps even
// though the pickers only carry date precision.
func (q EventQuery) Encode() string {
	params := url.Values{}

	if q.Categories != "" {
		params.Set("categories", q.Categories)
	}
	if q.FromDate != nil {
		params.Set("fromDate", q.FromDate.Format(time.RFC3339))
	}
	if q.EndDate != nil {
		params.Set("endDate", q.EndDate.Format(time.RFC3339))
	}

	return params.Encode()
}

// WithCategory is a convenience constructor for the common single-field patch.
func WithCategory(category string) QueryPatch {
	return QueryPatch{Categories: &category}
}

// WithFromDate patches the lower date bound; pass nil to clear it.
func WithFromDate(t *time.Time) QueryPatch {
	return QueryPatch{FromDate: &t}
}

// WithEndDate patches the upper date bound; pass nil to clear it.
func WithEndDate(t *time.Time) QueryPatch {
	return QueryPatch{EndDate: &t}
}
