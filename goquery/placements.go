package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/govlr/vlrgg"
)

// Selectors for event placement summary cards, shared between team and
// player profile pages.
const (
	selPlacementItems  = "a.team-event-item"
	selPlacementName   = "div.text-of"
	selPlacementSeries = "span.team-event-item-series"
	selPlacementPrize  = "span[style]"
)

// parsePlacementItems extracts placement summary cards under root. Player
// pages carry the represented team on each card; teamSelector names that
// element and is empty on team pages. Cards without an event link are
// dropped.
func parsePlacementItems(root *goquery.Selection, teamSelector string) ([]vlrgg.EventPlacement, error) {
	items, err := findAll(root, selPlacementItems)
	if err != nil {
		return nil, err
	}

	var placements []vlrgg.EventPlacement
	for i := range items.Nodes {
		a := items.Eq(i)
		href := strings.TrimSpace(a.AttrOr("href", ""))
		id, slug, err := idFromHref(href, "event")
		if err != nil {
			if vlrgg.ErrorCode(err) == vlrgg.ESELECTOR {
				return nil, err
			}
			continue
		}

		name, err := findText(a, selPlacementName)
		if err != nil {
			return nil, err
		}
		series, err := find(a, selPlacementSeries)
		if err != nil {
			return nil, err
		}
		stage, place := splitPlacement(text(series))
		prize, err := placementPrize(a)
		if err != nil {
			return nil, err
		}

		entry := vlrgg.PlacementEntry{Stage: stage, Place: place, Prize: prize}
		if teamSelector != "" {
			team, err := find(a, teamSelector)
			if err != nil {
				return nil, err
			}
			entry.TeamName = text(team)
		}

		placements = append(placements, vlrgg.EventPlacement{
			EventID:   id,
			EventSlug: slug,
			EventHref: absURL(href),
			EventName: name,
			Year:      text(a.Children().Last()),
			Entries:   []vlrgg.PlacementEntry{entry},
		})
	}
	return placements, nil
}

// splitPlacement separates "Playoffs – 1st" style text on the site's
// en dash into the stage and the placement.
func splitPlacement(s string) (stage, place string) {
	if st, pl, ok := strings.Cut(s, "–"); ok {
		return strings.TrimSpace(st), strings.TrimSpace(pl)
	}
	return s, ""
}

// placementPrize reads the prize amount, which the site renders as the
// only bold-styled span of the placement card.
func placementPrize(a *goquery.Selection) (string, error) {
	spans, err := findAll(a, selPlacementPrize)
	if err != nil {
		return "", err
	}
	for i := range spans.Nodes {
		span := spans.Eq(i)
		if strings.Contains(span.AttrOr("style", ""), "font-weight") {
			return text(span), nil
		}
	}
	return "", nil
}
