package output

import (
	"fmt"
	"strings"

	"github.com/lirantal/railil/pkg/models"
)

type MarkdownFormatter struct{}

func (MarkdownFormatter) Format(travels []models.Itinerary, from, to *models.Station) string {
	var prefix string
	if from != nil && to != nil {
		prefix = fmt.Sprintf("From: **%s** - To: **%s**\n\n", from.Name.EN, to.Name.EN)
	}

	if len(travels) == 0 {
		return prefix + noTrainsMessage
	}

	lines := []string{
		"| Departure | Arrival | Duration | Platform | Train # | Route |",
		"|---|---|---|---|---|---|",
	}
	for _, t := range travels {
		lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s | %s | %s |",
			departureDisplay(t.DepartureTime),
			arrivalDisplay(t.ArrivalTime),
			durationDisplay(t.DepartureTime, t.ArrivalTime),
			platformColumn(t.Trains),
			trainColumn(t.Trains),
			routeColumn(t.Trains)))
	}

	out := prefix + strings.Join(lines, "\n")
	if notes := collectNotes(travels); len(notes) > 0 {
		out += "\n\n**Notes:**"
		for _, n := range notes {
			out += "\n- " + n
		}
	}
	return out
}
