package output

import (
	"encoding/json"

	"github.com/lirantal/railil/pkg/models"
	"github.com/lirantal/railil/pkg/utils"
)

type JSONFormatter struct{}

// Format serializes the batch losslessly. With both stations present
// the travels are wrapped alongside from/to; otherwise the bare
// itinerary array is emitted, matching the legacy output.
func (JSONFormatter) Format(travels []models.Itinerary, from, to *models.Station) string {
	if travels == nil {
		travels = []models.Itinerary{}
	}

	var v interface{} = travels
	if from != nil && to != nil {
		v = models.SearchResult{Travels: travels, From: *from, To: *to}
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		utils.DebugLog("json marshal failed: %v", err)
		return ""
	}
	return string(out)
}
