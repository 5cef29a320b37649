package services

import (
	"time"

	"kai-ticket-watcher/config"
	"kai-ticket-watcher/models"
)

// FilterTickets narrows tickets to those matching the route criteria.
// Per-route overrides win over global settings for max price, min seats, and
// the preferred time window. Output preserves input order; no ticket is
// synthesized or duplicated.
func FilterTickets(tickets []*models.TicketOption, cfg *config.Config, route config.RoutePreference) []*models.TicketOption {
	maxPrice := cfg.MaxPrice
	if route.MaxPrice != nil {
		maxPrice = route.MaxPrice
	}
	minSeats := cfg.MinSeatsAvailable
	if route.MinSeats != nil {
		minSeats = *route.MinSeats
	}
	start := cfg.PreferredStart
	if route.PreferredStart != nil {
		start = route.PreferredStart
	}
	end := cfg.PreferredEnd
	if route.PreferredEnd != nil {
		end = route.PreferredEnd
	}

	// The seat floor is the larger of the explicit minimum and the number of
	// passengers traveling
	seatFloor := minSeats
	if cfg.PassengerCount > seatFloor {
		seatFloor = cfg.PassengerCount
	}

	var filtered []*models.TicketOption
	for _, ticket := range tickets {
		if !sameDate(ticket.DepartureDatetime, route.DepartureDate) {
			continue
		}
		departMinutes := ticket.DepartureDatetime.Hour()*60 + ticket.DepartureDatetime.Minute()
		if start != nil && departMinutes < start.Minutes() {
			continue
		}
		if end != nil && departMinutes > end.Minutes() {
			continue
		}
		if maxPrice != nil && ticket.Price > *maxPrice {
			continue
		}
		if ticket.SeatsAvailable < seatFloor {
			continue
		}
		filtered = append(filtered, ticket)
	}
	return filtered
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
