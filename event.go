package vlrgg

import (
	"context"
	"strings"
	"time"
)

// EventType selects which column of the events listing to read.
type EventType string

// EventType values.
const (
	EventTypeUpcoming  EventType = "upcoming"
	EventTypeCompleted EventType = "completed"
)

// Region narrows the events listing to one of the site's region tabs.
// The value doubles as the URL path segment.
type Region string

// Region values.
const (
	RegionAll          Region = "all"
	RegionNorthAmerica Region = "north-america"
	RegionEurope       Region = "europe"
	RegionBrazil       Region = "brazil"
	RegionAsiaPacific  Region = "asia-pacific"
	RegionKorea        Region = "korea"
	RegionJapan        Region = "japan"
	RegionLatinAmerica Region = "latin-america"
	RegionOceania      Region = "oceania"
	RegionMENA         Region = "middle-east-north-africa"
	RegionGameChangers Region = "game-changers"
	RegionCollegiate   Region = "collegiate"
)

// EventStatus is the lifecycle badge shown on an event row.
type EventStatus string

// EventStatus values. EventStatusUnknown covers badge text the site has
// not used before.
const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusUnknown   EventStatus = "unknown"
)

// ParseEventStatus maps an event row's badge text to an EventStatus.
func ParseEventStatus(s string) EventStatus {
	switch EventStatus(strings.ToLower(strings.TrimSpace(s))) {
	case EventStatusUpcoming:
		return EventStatusUpcoming
	case EventStatusOngoing:
		return EventStatusOngoing
	case EventStatusCompleted:
		return EventStatusCompleted
	}
	return EventStatusUnknown
}

// Event is one row of the events listing.
type Event struct {
	ID      int         `json:"id"`
	Slug    string      `json:"slug"`
	Title   string      `json:"title"`
	Status  EventStatus `json:"status"`
	Region  string      `json:"region"` // location tag from the row's flag icon, e.g. "eu"
	Prize   string      `json:"prize"`
	Dates   string      `json:"dates"`
	Href    string      `json:"href"`
	IconURL string      `json:"iconUrl"`
}

// EventMatchItem summarizes one match row on an event's match list page.
type EventMatchItem struct {
	ID     int              `json:"id"`
	Slug   string           `json:"slug"`
	Href   string           `json:"href"`
	Time   *time.Time       `json:"time"`
	Teams  []EventMatchTeam `json:"teams"` // exactly two
	Tags   []string         `json:"tags"`
	Event  string           `json:"event"`
	Series string           `json:"series"`
}

// EventMatchTeam is one side of an event match row.
type EventMatchTeam struct {
	Name   string `json:"name"`
	Score  *int   `json:"score"`
	Winner bool   `json:"winner"`
}

// EventService retrieves event listings and per-event match lists.
type EventService interface {
	// Events retrieves one page of the events listing, filtered by type
	// and region. Returns EINVALID if page < 1. Requesting a page past
	// the last yields an empty result, not an error.
	Events(ctx context.Context, typ EventType, region Region, page int) (Paginated[Event], error)

	// EventMatches retrieves every match listed for an event, in page
	// order with duplicate rows removed.
	EventMatches(ctx context.Context, eventID int) ([]EventMatchItem, error)
}
