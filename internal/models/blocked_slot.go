package models

type BlockedSlot struct {
	ID string `json:"id"`

	// Date no formato YYYY-MM-DD.
	Date string `json:"date"`

	// Time no formato HH:mm. Vazio bloqueia o dia inteiro.
	Time string `json:"time,omitempty"`
}

// BlocksWholeDay reports whether the slot marks the entire day as closed.
func (b BlockedSlot) BlocksWholeDay() bool {
	return b.Time == ""
}

// Matches compares date and optional time, treating empty time as
// "whole day".
func (b BlockedSlot) Matches(date, slot string) bool {
	return b.Date == date && b.Time == slot
}
