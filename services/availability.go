package services

import "strings"

// Marker lists are data so new status phrasings can be added without touching
// the classification logic. Negative markers are checked first and always win:
// "Tidak Tersedia" contains "tersedia" but must classify as unavailable.
var (
	negativeStatusMarkers = []string{"habis", "penuh", "waiting", "tutup", "tidak tersedia"}
	positiveStatusMarkers = []string{"tersedia", "available", "ready", "open"}
)

// IsStatusAvailable classifies a free-text availability status. A status
// matching neither marker set is treated as unavailable.
func IsStatusAvailable(status string) bool {
	lowered := strings.ToLower(status)
	for _, marker := range negativeStatusMarkers {
		if strings.Contains(lowered, marker) {
			return false
		}
	}
	for _, marker := range positiveStatusMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
