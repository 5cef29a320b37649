package services

import "testing"

func TestIsStatusAvailable(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{name: "positive marker", status: "Tersedia", expected: true},
		{name: "positive with seat count", status: "Tersedia 12 kursi", expected: true},
		{name: "english positive", status: "Available", expected: true},
		{name: "negative wins over positive", status: "Tidak Tersedia", expected: false},
		{name: "sold out", status: "Habis", expected: false},
		{name: "full", status: "Penuh", expected: false},
		{name: "waiting list", status: "Waiting list", expected: false},
		{name: "closed", status: "Tutup", expected: false},
		{name: "neither set matches", status: "Status tidak diketahui", expected: false},
		{name: "empty", status: "", expected: false},
		{name: "case insensitive", status: "TERSEDIA", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStatusAvailable(tt.status); got != tt.expected {
				t.Errorf("IsStatusAvailable(%q): expected %v, got %v", tt.status, tt.expected, got)
			}
		})
	}
}
