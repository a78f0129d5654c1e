package vlrgg

// Social is a social media link from a profile header. Platform is
// inferred from the link host, e.g. "twitter" or "twitch".
type Social struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label"`
}

// EventPlacement records an entity's results at a single event, as
// listed on team and player profile pages.
type EventPlacement struct {
	EventID   int              `json:"eventId"`
	EventSlug string           `json:"eventSlug"`
	EventHref string           `json:"eventHref"`
	EventName string           `json:"eventName"`
	Year      string           `json:"year"`
	Entries   []PlacementEntry `json:"entries"`
}

// PlacementEntry is a single stage result within an event placement.
// TeamName is set on player pages, naming the team the result was
// earned with.
type PlacementEntry struct {
	Stage    string `json:"stage"`
	Place    string `json:"place"`
	Prize    string `json:"prize"`
	TeamName string `json:"teamName"`
}
