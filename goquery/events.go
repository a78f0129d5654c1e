package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/govlr/vlrgg"
)

// Selectors for the events listing page. Upcoming and completed events
// render in the first and last column of the same page.
const (
	selUpcomingPages  = "div#wrapper div.action-container div.action-container-pages:first-child"
	selCompletedPages = "div#wrapper div.action-container div.action-container-pages:last-child"
	selUpcomingRows   = "div#wrapper div.events-container div.events-container-col:first-child a.event-item"
	selCompletedRows  = "div#wrapper div.events-container div.events-container-col:last-child a.event-item"

	selEventIcon   = "div.event-item-thumb img"
	selEventTitle  = "div.event-item-inner div.event-item-title"
	selEventStatus = "div.event-item-inner div.event-item-desc-item span.event-item-desc-item-status"
	selEventPrize  = "div.event-item-inner div.event-item-desc-item.mod-prize"
	selEventDates  = "div.event-item-inner div.event-item-desc-item.mod-dates"
	selEventFlag   = "div.event-item-inner div.event-item-desc-item.mod-location i"
)

// ParseEvents extracts one column of the events listing page. The page
// number is echoed into the result; the total page count comes from the
// column's pagination block and defaults to one when the block is absent.
func ParseEvents(html, url string, typ vlrgg.EventType, page int) (vlrgg.Paginated[vlrgg.Event], error) {
	events, err := parseEvents(html, typ, page)
	if err != nil {
		return vlrgg.Paginated[vlrgg.Event]{}, vlrgg.WrapError(err, url, "")
	}
	return events, nil
}

func parseEvents(html string, typ vlrgg.EventType, page int) (vlrgg.Paginated[vlrgg.Event], error) {
	var zero vlrgg.Paginated[vlrgg.Event]

	doc, err := document(html)
	if err != nil {
		return zero, err
	}

	rowsSel, pagesSel := selCompletedRows, selCompletedPages
	if typ == vlrgg.EventTypeUpcoming {
		rowsSel, pagesSel = selUpcomingRows, selUpcomingPages
	}

	rows, err := findAll(doc.Selection, rowsSel)
	if err != nil {
		return zero, err
	}

	events := make([]vlrgg.Event, 0, rows.Length())
	for i := range rows.Nodes {
		ev, err := parseEventRow(rows.Eq(i))
		if err != nil {
			return zero, err
		}
		if ev == nil {
			continue
		}
		events = append(events, *ev)
	}

	totalPages, err := lastPageNumber(doc.Selection, pagesSel)
	if err != nil {
		return zero, err
	}

	return vlrgg.Paginated[vlrgg.Event]{
		Items:      events,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// parseEventRow extracts a single event card. Rows whose href does not
// point at an event page are reported as nil and skipped by the caller; a
// proper event link with an unparsable id is an error.
func parseEventRow(row *goquery.Selection) (*vlrgg.Event, error) {
	href := strings.TrimSpace(row.AttrOr("href", ""))
	if !strings.HasPrefix(href, "/event/") {
		return nil, nil
	}
	id, slug, err := idFromHref(href, "event")
	if err != nil {
		if vlrgg.ErrorCode(err) == vlrgg.ENOTFOUND {
			return nil, nil
		}
		return nil, vlrgg.WrapError(err, "", "event id")
	}

	icon, err := find(row, selEventIcon)
	if err != nil {
		return nil, err
	}
	title, err := findText(row, selEventTitle)
	if err != nil {
		return nil, err
	}
	status, err := findText(row, selEventStatus)
	if err != nil {
		return nil, err
	}
	prize, err := findText(row, selEventPrize)
	if err != nil {
		return nil, err
	}
	dates, err := findText(row, selEventDates)
	if err != nil {
		return nil, err
	}
	flag, err := find(row, selEventFlag)
	if err != nil {
		return nil, err
	}

	return &vlrgg.Event{
		ID:      id,
		Slug:    slug,
		Title:   title,
		Status:  vlrgg.ParseEventStatus(status),
		Region:  modClass(flag),
		Prize:   prize,
		Dates:   dates,
		Href:    vlrgg.BaseURL + href,
		IconURL: absURL(icon.AttrOr("src", "")),
	}, nil
}
