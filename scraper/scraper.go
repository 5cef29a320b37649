package scraper

import (
	"context"

	"kai-ticket-watcher/config"
	"kai-ticket-watcher/models"
)

// Source produces raw result rows for one route search. Implementations own
// how the rows are obtained; the engine only ever sees the extracted text
// fields and the display labels.
type Source interface {
	Fetch(ctx context.Context, route config.RoutePreference) (models.SearchSummary, []models.RawTrainRow, error)
}

// FallbackSummary builds display labels from the route itself when the source
// could not provide any
func FallbackSummary(route config.RoutePreference) models.SearchSummary {
	return models.SearchSummary{
		OriginLabel:      route.Origin,
		DestinationLabel: route.Destination,
		DateLabel:        route.DepartureDate.Format("02 Jan 2006"),
	}
}
