package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WeeklyProfitDB represents the profit record of one Monday–Sunday week
type WeeklyProfitDB struct {
	WeeklyProfitID uuid.UUID       `json:"weekly_profit_id" db:"weekly_profit_id"` // Primary key
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`                   // Owner
	WeekStart      time.Time       `json:"week_start" db:"week_start"`             // Monday 00:00:00 UTC
	WeekEnd        time.Time       `json:"week_end" db:"week_end"`                 // Sunday 23:59:59.999 UTC
	TotalProfit    decimal.Decimal `json:"total_profit" db:"total_profit"`         // Sum of entry amounts
	Notes          string          `json:"notes" db:"notes"`                       // Free-form notes
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`             // Last update timestamp
	Entries        []ProfitEntryDB `json:"entries" db:"-"`                         // Entries in insertion order
}

// ProfitEntryDB represents a single profit amount booked on a date
type ProfitEntryDB struct {
	EntryID        string          `json:"id" db:"entry_id"`                       // ULID
	WeeklyProfitID uuid.UUID       `json:"weekly_profit_id" db:"weekly_profit_id"` // Parent week
	EntryDate      time.Time       `json:"date" db:"entry_date"`                   // Date of the profit
	Amount         decimal.Decimal `json:"amount" db:"amount"`                     // Profit amount
	Description    string          `json:"description" db:"description"`           // Optional description
}
