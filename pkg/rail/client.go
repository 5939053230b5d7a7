// Package rail talks to the Israel Railways timetable API.
package rail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lirantal/railil/pkg/config"
	"github.com/lirantal/railil/pkg/models"
	"github.com/lirantal/railil/pkg/stations"
	"github.com/lirantal/railil/pkg/utils"
)

type Client struct {
	cfg  *config.Config
	http *http.Client
}

func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// Search runs one timetable search between two station ids. Empty date
// or hour default to now in the railway's home timezone. Itineraries
// come back in upstream order, already filtered for departures that
// have not passed.
func (c *Client) Search(fromID, toID, date, hour string) (*models.SearchResult, error) {
	now := time.Now().In(utils.HomeLocation())
	if date == "" {
		date = now.Format("2006-01-02")
	}
	if hour == "" {
		hour = now.Format("15:04")
	}

	payload := models.SearchRequest{
		MethodName:   "searchTrainLuzForDateTime",
		FromStation:  fromID,
		ToStation:    toID,
		Date:         date,
		Hour:         hour,
		SystemType:   "2",
		ScheduleType: "ByDeparture",
		LanguageID:   "Hebrew",
	}
	utils.DebugLog("Fetching schedule with payload: %+v", payload)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, c.cfg.API.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ocp-apim-subscription-key", c.cfg.API.Key)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rail api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rail api error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var data models.RailResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("rail api response is not valid JSON: %w", err)
	}
	if data.StatusCode != 200 {
		if len(data.ErrorMessages) > 0 {
			return nil, fmt.Errorf("rail api returned error status %d: %s", data.StatusCode, strings.Join(data.ErrorMessages, "; "))
		}
		return nil, fmt.Errorf("rail api returned error status: %d", data.StatusCode)
	}

	from, ok := stations.ByID(fromID)
	if !ok {
		return nil, fmt.Errorf("station id %q is not in the station table", fromID)
	}
	to, ok := stations.ByID(toID)
	if !ok {
		return nil, fmt.Errorf("station id %q is not in the station table", toID)
	}

	return &models.SearchResult{
		Travels: data.Result.Travels,
		From:    from,
		To:      to,
	}, nil
}
