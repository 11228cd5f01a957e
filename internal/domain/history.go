package domain

import "time"

// HistoryRecord is a persisted snapshot of one successful, valid lookup.
type HistoryRecord struct {
	ID              string    `json:"id"`
	Phone           string    `json:"phone"`
	Carrier         string    `json:"carrier"`
	CountryOfOrigin string    `json:"country_of_origin"`
	PhoneType       string    `json:"phone_type"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewHistoryRecord snapshots a lookup result for the given number.
func NewHistoryRecord(phone string, result LookupResult, at time.Time) HistoryRecord {
	return HistoryRecord{
		Phone:           phone,
		Carrier:         result.Carrier,
		CountryOfOrigin: result.CountryOfOrigin,
		PhoneType:       result.PhoneType,
		Timestamp:       at,
	}
}

// HistoryFilter narrows a history listing. Limit <= 0 returns every record.
type HistoryFilter struct {
	Limit  int
	Search string
}
