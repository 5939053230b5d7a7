package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lirantal/railil/pkg/models"
	"github.com/lirantal/railil/pkg/stations"
)

// legSeparator joins per-leg values in the platform and train columns.
const legSeparator = " ➔ "

const noTrainsMessage = "No trains found."

const timestampLayout = "2006-01-02T15:04:05"

// departureDisplay renders an ISO timestamp as "YYYY-MM-DD HH:MM".
func departureDisplay(ts string) string {
	s := strings.Replace(ts, "T", " ", 1)
	if len(s) > 16 {
		s = s[:16]
	}
	return s
}

// arrivalDisplay renders just the HH:MM time-of-day of an ISO timestamp.
func arrivalDisplay(ts string) string {
	if i := strings.Index(ts, "T"); i >= 0 && len(ts) >= i+6 {
		return ts[i+1 : i+6]
	}
	return "N/A"
}

// durationDisplay is the wall-clock difference in whole minutes,
// floored. Both timestamps are local times with no timezone component.
func durationDisplay(departure, arrival string) string {
	dep, errDep := parseTimestamp(departure)
	arr, errArr := parseTimestamp(arrival)
	if errDep != nil || errArr != nil {
		return "N/A"
	}
	return fmt.Sprintf("%d min", int(arr.Sub(dep)/time.Minute))
}

func parseTimestamp(ts string) (time.Time, error) {
	if len(ts) > len(timestampLayout) {
		ts = ts[:len(timestampLayout)]
	}
	return time.Parse(timestampLayout, ts)
}

// platformColumn joins each leg's origin platform.
func platformColumn(legs []models.TrainLeg) string {
	parts := make([]string, len(legs))
	for i, leg := range legs {
		parts[i] = strconv.Itoa(leg.OriginPlatform)
	}
	return strings.Join(parts, legSeparator)
}

// trainColumn joins each leg's train number, annotated with the Hebrew
// name of the leg's final route stop when the gazetteer knows it.
func trainColumn(legs []models.TrainLeg) string {
	parts := make([]string, len(legs))
	for i, leg := range legs {
		part := strconv.Itoa(leg.TrainNumber)
		if n := len(leg.RouteStations); n > 0 {
			if s, ok := stations.ByID(strconv.Itoa(leg.RouteStations[n-1].StationID)); ok {
				part = fmt.Sprintf("%s (%s)", part, s.Name.HE)
			}
		}
		parts[i] = part
	}
	return strings.Join(parts, legSeparator)
}

// routeColumn summarizes transfers: "Direct" for a single leg,
// otherwise the English names of the transfer stations, annotated when
// the connecting train leaves from the same platform island.
func routeColumn(legs []models.TrainLeg) string {
	if len(legs) <= 1 {
		return "Direct"
	}
	stops := make([]string, 0, len(legs)-1)
	for i := 0; i < len(legs)-1; i++ {
		name := strconv.Itoa(legs[i].DestinationStation)
		if s, ok := stations.ByID(name); ok {
			name = s.Name.EN
		}
		if legs[i+1].IsSamePlatformIsland == "Yes" {
			name += " (Same platform)"
		}
		stops = append(stops, name)
	}
	return "Via " + strings.Join(stops, ", ")
}

// collectNotes gathers every travel message across the batch, each
// distinct message once, in first-seen order.
func collectNotes(travels []models.Itinerary) []string {
	var notes []string
	seen := make(map[string]bool)
	for _, t := range travels {
		for _, m := range t.TravelMessages {
			if !seen[m] {
				seen[m] = true
				notes = append(notes, m)
			}
		}
	}
	return notes
}
