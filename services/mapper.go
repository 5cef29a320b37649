package services

import (
	"fmt"
	"strings"

	"kai-ticket-watcher/config"
	"kai-ticket-watcher/models"
	"kai-ticket-watcher/utils"
)

// Field-level fallbacks; a bad sub-field never discards an otherwise-valid row
const (
	defaultTrainName  = "Unknown Train"
	missingTimeLabel  = "--:--"
	defaultStatusText = "Status tidak diketahui"
)

// RowMapper converts raw scraped rows into TrainResult records
type RowMapper struct {
	logger *utils.Logger
}

// NewRowMapper creates a new RowMapper
func NewRowMapper(logger *utils.Logger) *RowMapper {
	return &RowMapper{logger: logger}
}

// MapRows maps every row it can. Malformed rows are skipped and logged;
// one bad row never aborts the rest of the result set.
func (m *RowMapper) MapRows(rows []models.RawTrainRow, cfg *config.Config, route config.RoutePreference) []*models.TrainResult {
	var trains []*models.TrainResult
	for i, row := range rows {
		train, err := m.MapRow(row, cfg, route)
		if err != nil {
			m.logger.Debug("Skipping row %d: %v", i, err)
			continue
		}
		trains = append(trains, train)
	}
	return trains
}

// MapRow assembles one row's text fields into a TrainResult. Every sub-field
// falls back to a documented default when missing or unparsable.
func (m *RowMapper) MapRow(row models.RawTrainRow, cfg *config.Config, route config.RoutePreference) (*models.TrainResult, error) {
	if rowIsEmpty(row) {
		return nil, fmt.Errorf("row has no scraped fields")
	}

	travelClass, subclass := SplitClassLabel(row.ClassText)
	departTime, arriveTime := SplitTimeRange(row.TimeRangeText)
	status := TextOrDefault(row.AvailabilityText, defaultStatusText)

	train := &models.TrainResult{
		Name:             TextOrDefault(row.NameText, defaultTrainName),
		DepartureStation: route.Origin,
		DepartureTime:    TextOrDefault(departTime, missingTimeLabel),
		ArrivalStation:   route.Destination,
		ArrivalTime:      TextOrDefault(arriveTime, missingTimeLabel),
		Duration:         NormalizeDuration(row.DurationText),
		TravelClass:      travelClass,
		Subclass:         subclass,
		Price:            ParsePrice(row.PriceText),
		Currency:         cfg.Currency,
		Status:           status,
		IsAvailable:      IsStatusAvailable(status),
		SeatsRemaining:   ExtractFirstInt(status),
	}
	if timeLabel := CleanLabel(row.TimeRangeText); timeLabel != "" {
		train.DepartureLabel = &timeLabel
	}
	return train, nil
}

func rowIsEmpty(row models.RawTrainRow) bool {
	fields := []string{
		row.NameText,
		row.ClassText,
		row.TimeRangeText,
		row.DurationText,
		row.PriceText,
		row.AvailabilityText,
	}
	for _, field := range fields {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
