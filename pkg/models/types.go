package models

// StationName holds the display name of a station in every language the
// railway publishes.
type StationName struct {
	HE string `json:"he"`
	EN string `json:"en"`
	RU string `json:"ru"`
	AR string `json:"ar"`
}

type Station struct {
	ID   string      `json:"id"`
	Name StationName `json:"name"`
}

// StopInfo is one scheduled stop on a train's route.
type StopInfo struct {
	StationID     int    `json:"stationId"`
	ArrivalTime   string `json:"arrivalTime"`
	DepartureTime string `json:"departureTime"`
	Platform      int    `json:"platform"`
	PredictedLoad *int   `json:"predictedPctLoad,omitempty"`
}

// TrainLeg is one physical train segment of a journey.
type TrainLeg struct {
	TrainNumber        int `json:"trainNumber"`
	OriginStation      int `json:"orignStation"` // the upstream API misspells this field
	DestinationStation int `json:"destinationStation"`
	OriginPlatform     int `json:"originPlatform"`
	DestPlatform       int `json:"destPlatform"`

	ArrivalTime   string `json:"arrivalTime"`
	DepartureTime string `json:"departureTime"`

	StopStations  []StopInfo `json:"stopStations"`
	RouteStations []StopInfo `json:"routeStations"`

	Handicap             int    `json:"handicap"`
	IsSamePlatformIsland string `json:"isSamePlatformIsland"` // "Yes" or "No"
}

// Itinerary is a complete journey; more than one leg means transfers,
// where leg i's destination is leg i+1's origin.
type Itinerary struct {
	DepartureTime  string     `json:"departureTime"`
	ArrivalTime    string     `json:"arrivalTime"`
	FreeSeats      *int       `json:"freeSeats,omitempty"`
	TravelMessages []string   `json:"travelMessages,omitempty"`
	Trains         []TrainLeg `json:"trains"`
}

// SearchResult is the resolved bundle handed to the formatters.
type SearchResult struct {
	Travels []Itinerary `json:"travels"`
	From    Station     `json:"from"`
	To      Station     `json:"to"`
}

// SearchRequest is the POST body of the timetable search endpoint.
type SearchRequest struct {
	MethodName   string `json:"methodName"`
	FromStation  string `json:"fromStation"`
	ToStation    string `json:"toStation"`
	Date         string `json:"date"` // YYYY-MM-DD
	Hour         string `json:"hour"` // HH:MM
	SystemType   string `json:"systemType"`
	ScheduleType string `json:"scheduleType"` // ByDeparture or ByArrival
	LanguageID   string `json:"languageId"`
}

type RailResult struct {
	NumOfResultsToShow int         `json:"numOfResultsToShow"`
	StartFromIndex     int         `json:"startFromIndex"`
	Travels            []Itinerary `json:"travels"`
}

type RailResponse struct {
	CreationDate  string     `json:"creationDate"`
	Version       string     `json:"version"`
	SuccessStatus int        `json:"successStatus"`
	StatusCode    int        `json:"statusCode"`
	ErrorMessages []string   `json:"errorMessages"`
	Result        RailResult `json:"result"`
}
