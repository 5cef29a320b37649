package services

import (
	"testing"
	"time"

	"kai-ticket-watcher/models"
)

func availableTrain() *models.TrainResult {
	return &models.TrainResult{
		Name:             "Taksaka",
		DepartureStation: "PSE",
		DepartureTime:    "08:00",
		ArrivalStation:   "LPN",
		ArrivalTime:      "12:30",
		TravelClass:      strPtr("Eksekutif"),
		Price:            intPtr(350000),
		Currency:         "IDR",
		Status:           "Tersedia 12 kursi",
		IsAvailable:      true,
		SeatsRemaining:   intPtr(12),
	}
}

func TestProjectTicket_CombinesDateAndTime(t *testing.T) {
	ticket := ProjectTicket(availableTrain(), testConfig(), testRoute())
	if ticket == nil {
		t.Fatal("expected a ticket for an available train")
	}

	expectedDepart := at(2025, time.December, 24, 8, 0)
	expectedArrive := at(2025, time.December, 24, 12, 30)
	if !ticket.DepartureDatetime.Equal(expectedDepart) {
		t.Errorf("expected departure %v, got %v", expectedDepart, ticket.DepartureDatetime)
	}
	if !ticket.ArrivalDatetime.Equal(expectedArrive) {
		t.Errorf("expected arrival %v, got %v", expectedArrive, ticket.ArrivalDatetime)
	}
	if ticket.Price != 350000 || ticket.SeatsAvailable != 12 {
		t.Errorf("unexpected price/seats: %d/%d", ticket.Price, ticket.SeatsAvailable)
	}
	if ticket.ClassName != "Eksekutif" {
		t.Errorf("expected class Eksekutif, got %q", ticket.ClassName)
	}
	if ticket.RawData["status"] != "Tersedia 12 kursi" {
		t.Errorf("raw data should carry the status, got %v", ticket.RawData)
	}
}

func TestProjectTicket_OvernightRollover(t *testing.T) {
	train := availableTrain()
	train.DepartureTime = "22:00"
	train.ArrivalTime = "05:30"

	ticket := ProjectTicket(train, testConfig(), testRoute())
	if ticket == nil {
		t.Fatal("expected a ticket")
	}

	expectedDepart := at(2025, time.December, 24, 22, 0)
	expectedArrive := at(2025, time.December, 25, 5, 30)
	if !ticket.DepartureDatetime.Equal(expectedDepart) {
		t.Errorf("expected departure %v, got %v", expectedDepart, ticket.DepartureDatetime)
	}
	if !ticket.ArrivalDatetime.Equal(expectedArrive) {
		t.Errorf("arrival must roll to the next day, expected %v, got %v", expectedArrive, ticket.ArrivalDatetime)
	}
	if ticket.ArrivalDatetime.Before(ticket.DepartureDatetime) {
		t.Error("arrival must never precede departure")
	}
}

func TestProjectTicket_MissingTimeLabelsFallBackToMidnight(t *testing.T) {
	train := availableTrain()
	train.DepartureTime = "--:--"
	train.ArrivalTime = "--:--"

	ticket := ProjectTicket(train, testConfig(), testRoute())
	if ticket == nil {
		t.Fatal("expected a ticket")
	}
	midnight := at(2025, time.December, 24, 0, 0)
	if !ticket.DepartureDatetime.Equal(midnight) || !ticket.ArrivalDatetime.Equal(midnight) {
		t.Errorf("expected midnight timestamps, got %v / %v", ticket.DepartureDatetime, ticket.ArrivalDatetime)
	}
}

func TestProjectTicket_FailOpenDefaults(t *testing.T) {
	train := availableTrain()
	train.Price = nil
	train.SeatsRemaining = nil
	cfg := testConfig()
	cfg.MinSeatsAvailable = 2

	ticket := ProjectTicket(train, cfg, testRoute())
	if ticket == nil {
		t.Fatal("expected a ticket")
	}
	if ticket.Price != 0 {
		t.Errorf("missing price must project as 0, got %d", ticket.Price)
	}
	if ticket.SeatsAvailable != 2 {
		t.Errorf("missing seats must project as the configured minimum, got %d", ticket.SeatsAvailable)
	}
}

func TestProjectTicket_ClassLabelJoinsSubclass(t *testing.T) {
	train := availableTrain()
	train.Subclass = strPtr("AA")

	ticket := ProjectTicket(train, testConfig(), testRoute())
	if ticket == nil {
		t.Fatal("expected a ticket")
	}
	if ticket.ClassName != "Eksekutif - AA" {
		t.Errorf("expected joined class label, got %q", ticket.ClassName)
	}
}

func TestProjectTicket_UnavailableYieldsNil(t *testing.T) {
	train := availableTrain()
	train.IsAvailable = false

	if ticket := ProjectTicket(train, testConfig(), testRoute()); ticket != nil {
		t.Errorf("unavailable train must not project, got %+v", ticket)
	}
}

func TestProjectTickets_AvailableOnly(t *testing.T) {
	unavailable := availableTrain()
	unavailable.IsAvailable = false
	trains := []*models.TrainResult{availableTrain(), unavailable, availableTrain()}

	tickets := ProjectTickets(trains, testConfig(), testRoute())
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}
}
