package output

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/lirantal/railil/pkg/models"
)

type TableFormatter struct{}

func (TableFormatter) Format(travels []models.Itinerary, from, to *models.Station) string {
	var b strings.Builder
	if from != nil && to != nil {
		fmt.Fprintf(&b, "From: %s - To: %s\n", from.Name.EN, to.Name.EN)
	}

	if len(travels) == 0 {
		b.WriteString(noTrainsMessage)
		return b.String()
	}

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Departure", "Arrival", "Duration", "Platform", "Train #", "Route"})
	table.SetAutoFormatHeaders(false)
	for _, t := range travels {
		table.Append([]string{
			departureDisplay(t.DepartureTime),
			arrivalDisplay(t.ArrivalTime),
			durationDisplay(t.DepartureTime, t.ArrivalTime),
			platformColumn(t.Trains),
			trainColumn(t.Trains),
			routeColumn(t.Trains),
		})
	}
	table.Render()

	if notes := collectNotes(travels); len(notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, n := range notes {
			b.WriteString("- " + n + "\n")
		}
	}
	return b.String()
}
