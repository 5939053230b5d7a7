// Package output renders itinerary batches as markdown, a boxed text
// table, or machine-readable JSON.
package output

import "github.com/lirantal/railil/pkg/models"

// Formatter turns an itinerary batch into a display string. Both
// stations must be non-nil for the From/To header line to appear.
type Formatter interface {
	Format(travels []models.Itinerary, from, to *models.Station) string
}
