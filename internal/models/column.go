package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ColumnDB represents a user's named column with its entries
type ColumnDB struct {
	ColumnID   uuid.UUID       `json:"column_id" db:"column_id"`     // Primary key
	UserID     uuid.UUID       `json:"user_id" db:"user_id"`         // Owner
	ColumnName string          `json:"column_name" db:"column_name"` // Unique per owner
	Unit       *string         `json:"unit" db:"unit"`               // Optional unit label
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`   // Last update timestamp
	Entries    []ColumnEntryDB `json:"entries" db:"-"`               // Entries in insertion order
}

// ColumnEntryDB represents one value recorded in a column
type ColumnEntryDB struct {
	EntryID     string          `json:"id" db:"entry_id"`         // ULID
	ColumnID    uuid.UUID       `json:"column_id" db:"column_id"` // Parent column
	ValueNumber sql.NullFloat64 `json:"-" db:"value_number"`      // Set for numeric values
	ValueText   sql.NullString  `json:"-" db:"value_text"`        // Set for text values
	RecordedAt  time.Time       `json:"date" db:"recorded_at"`    // Date the value belongs to
}

// Value assembles the stored columns back into an EntryValue.
func (e ColumnEntryDB) Value() EntryValue {
	if e.ValueNumber.Valid {
		return NumberValue(e.ValueNumber.Float64)
	}
	if e.ValueText.Valid {
		return TextValue(e.ValueText.String)
	}
	return EntryValue{}
}

// SetValue splits an EntryValue into the stored columns.
func (e *ColumnEntryDB) SetValue(v EntryValue) {
	e.ValueNumber = sql.NullFloat64{}
	e.ValueText = sql.NullString{}
	if n, ok := v.Number(); ok {
		e.ValueNumber = sql.NullFloat64{Float64: n, Valid: true}
	}
	if s, ok := v.Text(); ok {
		e.ValueText = sql.NullString{String: s, Valid: true}
	}
}

// MarshalJSON renders the entry as {id, value, date}.
func (e ColumnEntryDB) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    string     `json:"id"`
		Value EntryValue `json:"value"`
		Date  time.Time  `json:"date"`
	}{e.EntryID, e.Value(), e.RecordedAt})
}
