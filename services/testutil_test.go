package services

import (
	"time"

	"kai-ticket-watcher/config"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func dayTimePtr(hour, minute int) *config.DayTime {
	return &config.DayTime{Hour: hour, Minute: minute}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
