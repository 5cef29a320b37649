package services

import (
	"fmt"
	"strconv"
	"strings"

	"kai-ticket-watcher/models"
)

// SectionDivider separates row blocks in the multi-line report
const SectionDivider = "────────────────────"

// FormatTicketTable returns a fixed-width text table of bookable tickets.
// Column widths grow to fit the widest cell; output is deterministic.
func FormatTicketTable(tickets []*models.TicketOption) string {
	if len(tickets) == 0 {
		return "No tickets to display."
	}

	headers := []string{"Train", "Class", "Depart", "Arrive", "Price", "Seats"}
	rows := make([][]string, 0, len(tickets))
	for _, ticket := range tickets {
		rows = append(rows, []string{
			ticket.ShortLabel(),
			ticket.ClassName,
			ticket.DepartureDatetime.Format("2006-01-02 15:04"),
			ticket.ArrivalDatetime.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d %s", ticket.Price, ticket.Currency),
			strconv.Itoa(ticket.SeatsAvailable),
		})
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, joinTableRow(headers, widths))
	dividerCells := make([]string, len(widths))
	for i, width := range widths {
		dividerCells[i] = strings.Repeat("-", width)
	}
	lines = append(lines, strings.Join(dividerCells, "-+-"))
	for _, row := range rows {
		lines = append(lines, joinTableRow(row, widths))
	}
	return strings.Join(lines, "\n")
}

func joinTableRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
	}
	return strings.Join(padded, " | ")
}

// FormatTrainResultsMessage renders every scraped row, available or not,
// under a route/date banner with summary counts
func FormatTrainResultsMessage(summary models.SearchSummary, trains []*models.TrainResult) string {
	total := len(trains)
	available := 0
	for _, train := range trains {
		if train.IsAvailable {
			available++
		}
	}

	lines := []string{
		"🚆 Train Ticket Alert",
		"",
		fmt.Sprintf("📍 Rute   : %s -> %s", labelOrDash(summary.OriginLabel), labelOrDash(summary.DestinationLabel)),
		fmt.Sprintf("📅 Tanggal: %s", labelOrDash(summary.DateLabel)),
		"",
	}

	if total == 0 {
		lines = append(lines, "Tidak ada kereta ditemukan.")
		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		fmt.Sprintf("Total kereta   : %d", total),
		fmt.Sprintf("Tersedia       : %d", available),
		fmt.Sprintf("Tidak tersedia : %d", total-available),
		SectionDivider,
	)
	for i, train := range trains {
		lines = append(lines, formatTrainBlock(train, i+1)...)
		lines = append(lines, SectionDivider)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func formatTrainBlock(train *models.TrainResult, index int) []string {
	statusIcon, statusText := "✅", "Tersedia"
	if !train.IsAvailable {
		statusIcon, statusText = "❌", "Tidak tersedia"
	}

	nameLine := train.Name
	if train.Number != nil {
		nameLine = fmt.Sprintf("%s (%s)", train.Name, *train.Number)
	}

	durationLine := "-"
	if train.Duration != nil {
		durationLine = *train.Duration
	}

	classLabel := "-"
	if train.TravelClass != nil {
		classLabel = *train.TravelClass
	}
	if train.Subclass != nil {
		if classLabel != "-" {
			classLabel = fmt.Sprintf("%s (%s)", classLabel, *train.Subclass)
		} else {
			classLabel = *train.Subclass
		}
	}

	block := []string{
		fmt.Sprintf("#%d %s %s", index, statusIcon, statusText),
		nameLine,
		fmt.Sprintf("%s %s -> %s %s", train.DepartureStation, train.DepartureTime, train.ArrivalStation, train.ArrivalTime),
		fmt.Sprintf("Durasi : %s", durationLine),
		fmt.Sprintf("Kelas  : %s", classLabel),
		fmt.Sprintf("Harga  : %s", formatPriceValue(train.Price)),
	}
	// The raw status text only matters when the row is not bookable
	if !train.IsAvailable {
		status := train.Status
		if status == "" {
			status = "Tidak tersedia"
		}
		block = append(block, fmt.Sprintf("Status : %s", status))
	}
	return block
}

// FormatRupiah renders a price with dotted thousands, e.g. 350000 -> "Rp 350.000"
func FormatRupiah(value int) string {
	digits := strconv.Itoa(value)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	groups := []string{}
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	formatted := strings.Join(groups, ".")
	if negative {
		formatted = "-" + formatted
	}
	return "Rp " + formatted
}

func formatPriceValue(price *int) string {
	if price == nil {
		return "-"
	}
	return FormatRupiah(*price)
}

func labelOrDash(label string) string {
	if strings.TrimSpace(label) == "" {
		return "-"
	}
	return label
}
