package model

import "time"

type FastingSession struct {
	ID            int64
	StartTime     time.Time
	EndTime       *time.Time
	DurationHours *float64
	PresetType    string
	IsCompleted   bool
	CreatedAt     time.Time
}

type WeightEntry struct {
	ID        int64
	Weight    float64
	Date      string
	CreatedAt time.Time
}

type HydrationEntry struct {
	ID        int64
	Amount    float64
	Date      string
	CreatedAt time.Time
}

type Achievement struct {
	ID          int64
	Type        string
	Title       string
	Description string
	UnlockedAt  *time.Time
	IsUnlocked  bool
}

type UserProfile struct {
	ID        int64
	Name      string
	Age       int
	Height    float64
	Gender    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SessionStats struct {
	TotalSessions    int
	AvgDurationHours float64
	TotalHours       float64
}

// DayTotal is a per-calendar-day aggregate keyed by a YYYY-MM-DD date string.
type DayTotal struct {
	Date  string
	Total float64
}
