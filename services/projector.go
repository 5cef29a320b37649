package services

import (
	"fmt"
	"strings"
	"time"

	"kai-ticket-watcher/config"
	"kai-ticket-watcher/models"
)

// ProjectTickets derives a TicketOption for every available train. One
// TrainResult yields at most one ticket; unavailable rows yield none.
func ProjectTickets(trains []*models.TrainResult, cfg *config.Config, route config.RoutePreference) []*models.TicketOption {
	var tickets []*models.TicketOption
	for _, train := range trains {
		if ticket := ProjectTicket(train, cfg, route); ticket != nil {
			tickets = append(tickets, ticket)
		}
	}
	return tickets
}

// ProjectTicket combines the route's calendar date with the row's time-of-day
// labels. At this stage the ticket is already a candidate for the filter, so
// a missing price becomes 0 and missing seats become the configured minimum
// rather than the mapper's "unknown" markers.
func ProjectTicket(train *models.TrainResult, cfg *config.Config, route config.RoutePreference) *models.TicketOption {
	if !train.IsAvailable {
		return nil
	}

	departAt := combineDateAndTime(route.DepartureDate, train.DepartureTime)
	arriveAt := combineDateAndTime(route.DepartureDate, train.ArrivalTime)
	// Trains crossing midnight arrive on the next calendar day
	if arriveAt.Before(departAt) {
		arriveAt = arriveAt.AddDate(0, 0, 1)
	}

	price := 0
	if train.Price != nil {
		price = *train.Price
	}
	seats := cfg.MinSeatsAvailable
	if train.SeatsRemaining != nil {
		seats = *train.SeatsRemaining
	}

	className := "Unknown Class"
	if train.TravelClass != nil {
		className = *train.TravelClass
	}
	if train.Subclass != nil {
		className = fmt.Sprintf("%s - %s", className, *train.Subclass)
	}

	currency := train.Currency
	if currency == "" {
		currency = cfg.Currency
	}

	rawData := map[string]string{"status": train.Status}
	if train.Duration != nil {
		rawData["duration"] = *train.Duration
	}

	return &models.TicketOption{
		TrainName:         train.Name,
		TrainNumber:       train.Number,
		ClassName:         className,
		Origin:            train.DepartureStation,
		Destination:       train.ArrivalStation,
		DepartureDatetime: departAt,
		ArrivalDatetime:   arriveAt,
		Price:             price,
		Currency:          currency,
		SeatsAvailable:    seats,
		RawData:           rawData,
		DepartureLabel:    train.DepartureLabel,
	}
}

// combineDateAndTime parses a "15:04" label onto the given calendar date.
// Missing or unparsable labels resolve to midnight.
func combineDateAndTime(day time.Time, label string) time.Time {
	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	parsed, err := time.Parse("15:04", strings.TrimSpace(label))
	if err != nil {
		return base
	}
	return base.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute)
}
