package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxTextLength bounds the text field of an item.
const MaxTextLength = 500

// Item is a todo entry held by the store.
type Item struct {
	ID        uuid.UUID  `json:"id"`
	Text      string     `json:"text"`
	IsDone    bool       `json:"is_done"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// CreateItemRequest represents data needed to create a new item.
type CreateItemRequest struct {
	Text   string
	IsDone bool
}

// UpdateItemRequest represents a partial update. Nil fields are left
// untouched on the stored item.
type UpdateItemRequest struct {
	Text   *string
	IsDone *bool
}

// Empty reports whether the update carries no fields at all.
func (r *UpdateItemRequest) Empty() bool {
	return r.Text == nil && r.IsDone == nil
}

// ListFilter narrows and pages a listing. Limit and Skip are assumed to
// be range-checked by the caller-facing layer.
type ListFilter struct {
	Limit  int
	Skip   int
	IsDone *bool
	Search string
}

// Matches reports whether the item passes the filter's is_done equality
// and case-insensitive substring checks. Pagination is not applied here.
func (f *ListFilter) Matches(item *Item) bool {
	if f.IsDone != nil && item.IsDone != *f.IsDone {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(item.Text), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Stats aggregates completion counts across the store.
type Stats struct {
	TotalItems     int     `json:"total_items"`
	CompletedItems int     `json:"completed_items"`
	PendingItems   int     `json:"pending_items"`
	CompletionRate float64 `json:"completion_rate"`
}

// ValidateText checks the text constraints shared by create and update.
func ValidateText(text string) error {
	if text == "" {
		return &ValidationError{Field: "text", Message: "text must not be empty"}
	}
	if len([]rune(text)) > MaxTextLength {
		return &ValidationError{Field: "text", Message: "text must not exceed 500 characters"}
	}
	return nil
}
