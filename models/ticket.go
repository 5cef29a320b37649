package models

import (
	"fmt"
	"time"
)

// RawTrainRow holds the unprocessed text fields extracted from a single
// result row on the search page
type RawTrainRow struct {
	NameText         string
	ClassText        string // e.g. "Eksekutif - AA"
	TimeRangeText    string // e.g. "08:00-12:30 (4j 30m)"
	DurationText     string
	PriceText        string // e.g. "Rp 350.000"
	AvailabilityText string // e.g. "Tersedia 12 kursi"
}

// TrainResult represents one normalized row, available or not. A record is
// never mutated after construction.
type TrainResult struct {
	Name             string
	Number           *string
	DepartureStation string
	DepartureTime    string // "15:04" label, "--:--" when missing
	ArrivalStation   string
	ArrivalTime      string
	Duration         *string
	TravelClass      *string
	Subclass         *string
	Price            *int // nil when the price text held no digits
	Currency         string
	Status           string
	IsAvailable      bool
	SeatsRemaining   *int // nil when not reported; 0 is a real scraped value
	DepartureLabel   *string
}

// TicketOption is a bookable candidate derived from an available TrainResult
type TicketOption struct {
	TrainName         string
	TrainNumber       *string
	ClassName         string
	Origin            string
	Destination       string
	DepartureDatetime time.Time
	ArrivalDatetime   time.Time
	Price             int
	Currency          string
	SeatsAvailable    int
	RawData           map[string]string
	DepartureLabel    *string
}

// ShortLabel returns "Name (Number)" with N/A for missing train numbers
func (t *TicketOption) ShortLabel() string {
	number := "N/A"
	if t.TrainNumber != nil {
		number = *t.TrainNumber
	}
	return fmt.Sprintf("%s (%s)", t.TrainName, number)
}

// SummaryLine returns a one-line description used by the email notifier
func (t *TicketOption) SummaryLine() string {
	return fmt.Sprintf("%s | %s | %s->%s | %s - %s | %d %s | seats: %d",
		t.ShortLabel(),
		t.ClassName,
		t.Origin,
		t.Destination,
		t.DepartureDatetime.Format("2006-01-02 15:04"),
		t.ArrivalDatetime.Format("2006-01-02 15:04"),
		t.Price,
		t.Currency,
		t.SeatsAvailable,
	)
}

// SearchSummary holds the route/date labels as displayed by the site for the
// active search; used for rendering only
type SearchSummary struct {
	OriginLabel      string
	DestinationLabel string
	DateLabel        string
}

// TrainSearchResults bundles every scraped row with the derived tickets
type TrainSearchResults struct {
	Summary SearchSummary
	Trains  []*TrainResult
	Tickets []*TicketOption
}
