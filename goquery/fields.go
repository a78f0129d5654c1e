package goquery

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/govlr/vlrgg"
)

// Date and time layouts used across vlr.gg pages.
const (
	layoutLongDate  = "Mon, January 2, 2006" // match list day labels
	layoutShortDate = "Mon, Jan 2, 2006"     // abbreviated day labels
	layoutSlashDate = "2006/01/02"           // match items, transactions
	layoutClock     = "3:04 PM"
	layoutUTCStamp  = "2006-01-02 15:04:05" // data-utc-ts attributes
)

// text returns the full text content of the selection with runs of
// whitespace collapsed to single spaces.
func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// findText returns the cleaned first text node of the first element
// matching selector under root, or "" when nothing matches.
func findText(root *goquery.Selection, selector string) (string, error) {
	s, err := find(root, selector)
	if err != nil {
		return "", err
	}
	return firstText(s), nil
}

// firstText returns the first non-empty text node in the selection,
// cleaned. Useful where an element carries its own label before nested
// children, such as match header notes.
func firstText(s *goquery.Selection) string {
	for _, n := range s.Nodes {
		if t := firstTextNode(n); t != "" {
			return t
		}
	}
	return ""
}

// lastText returns the last non-empty text node in the selection, cleaned.
// vlr.gg frequently renders a label element followed by a bare text node,
// so the trailing text node holds the interesting value.
func lastText(s *goquery.Selection) string {
	for i := len(s.Nodes) - 1; i >= 0; i-- {
		if t := lastTextNode(s.Nodes[i]); t != "" {
			return t
		}
	}
	return ""
}

func firstTextNode(n *html.Node) string {
	if n.Type == html.TextNode {
		return clean(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := firstTextNode(c); t != "" {
			return t
		}
	}
	return ""
}

func lastTextNode(n *html.Node) string {
	if n.Type == html.TextNode {
		return clean(n.Data)
	}
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		if t := lastTextNode(c); t != "" {
			return t
		}
	}
	return ""
}

// clean trims text and strips embedded newlines and tabs left over from
// markup indentation.
func clean(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\t", "")
	return strings.TrimSpace(s)
}

// modClass returns the suffix of the first class with a "mod-" prefix on
// the selection's first element. The site encodes country and region codes
// this way, e.g. <i class="flag mod-eu">.
func modClass(s *goquery.Selection) string {
	for _, c := range strings.Fields(s.AttrOr("class", "")) {
		if v, ok := strings.CutPrefix(c, "mod-"); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// parseInt converts a display value to an integer. A lone dash or an empty
// string is the site's marker for a value that does not exist, reported as
// (nil, nil). Thousands separators are accepted. Anything else that fails
// to parse is a vlrgg.EINTPARSE error.
func parseInt(s string) (*int, error) {
	v := strings.TrimSpace(s)
	switch v {
	case "", "-", "–", "—":
		return nil, nil
	}
	v = strings.ReplaceAll(v, ",", "")
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, vlrgg.Errorf(vlrgg.EINTPARSE, "cannot parse %q as integer", s)
	}
	return &n, nil
}

// optInt converts a display value to an integer, treating anything
// unparsable as absent. Used for fields the site renders inconsistently,
// like scores of live matches.
func optInt(s string) *int {
	n, err := parseInt(s)
	if err != nil {
		return nil
	}
	return n
}

// intOrZero converts a display value to an integer, treating absent or
// unparsable values as zero. Used for counters the page renders blank
// when they are zero.
func intOrZero(s string) int {
	if n := optInt(s); n != nil {
		return *n
	}
	return 0
}

// optFloat converts a display value to a float, treating anything
// unparsable as absent.
func optFloat(s string) *float64 {
	v := strings.TrimSpace(s)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// optPercent converts a "62%" style display value to a fraction in [0, 1],
// treating anything unparsable as absent.
func optPercent(s string) *float64 {
	v := strings.TrimSuffix(strings.TrimSpace(s), "%")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	frac := f / 100
	return &frac
}

// parseDate parses a date rendered in any of the site's date formats.
func parseDate(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, layout := range []string{layoutLongDate, layoutShortDate, layoutSlashDate} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, vlrgg.Errorf(vlrgg.EDATEPARSE, "cannot parse %q as date", s)
}

// combineClock merges a clock display value like "4:30 PM" into the given
// date. It returns nil when the clock text does not parse, since listing
// rows for unscheduled matches carry placeholder text there.
func combineClock(date time.Time, clock string) *time.Time {
	c, err := time.Parse(layoutClock, strings.TrimSpace(clock))
	if err != nil {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC)
	return &t
}

// idFromHref splits an href of the form /{prefix}/{id}/{slug} into its id
// and slug. An empty prefix matches match page hrefs of the form
// /{id}/{slug}.
func idFromHref(href, prefix string) (int, string, error) {
	rest := strings.TrimPrefix(strings.TrimSpace(href), "/")
	if prefix != "" {
		var ok bool
		rest, ok = strings.CutPrefix(rest, prefix+"/")
		if !ok {
			return 0, "", vlrgg.Errorf(vlrgg.ENOTFOUND, "element not found: %s link in %q", prefix, href)
		}
	}
	parts := strings.SplitN(rest, "/", 3)
	if len(parts) < 2 || parts[0] == "" {
		return 0, "", vlrgg.Errorf(vlrgg.ENOTFOUND, "element not found: id and slug in href %q", href)
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", vlrgg.Errorf(vlrgg.EINTPARSE, "cannot parse id from href %q", href)
	}
	return id, parts[1], nil
}

// absURL resolves the site's protocol-relative and root-relative URLs, as
// used for team logos and event icons, to absolute ones.
func absURL(src string) string {
	switch {
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "/"):
		return vlrgg.BaseURL + src
	}
	return src
}

// inferPlatform names the social platform behind a profile link by its
// host. Links to anything unrecognized count as a plain website.
func inferPlatform(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return "website"
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch {
	case host == "x.com" || strings.HasSuffix(host, "twitter.com"):
		return "twitter"
	case strings.HasSuffix(host, "instagram.com"):
		return "instagram"
	case strings.HasSuffix(host, "twitch.tv"):
		return "twitch"
	case strings.HasSuffix(host, "youtube.com") || host == "youtu.be":
		return "youtube"
	case strings.HasSuffix(host, "tiktok.com"):
		return "tiktok"
	case strings.HasSuffix(host, "discord.gg") || strings.HasSuffix(host, "discord.com"):
		return "discord"
	case strings.HasSuffix(host, "vk.com"):
		return "vk"
	case strings.HasSuffix(host, "facebook.com"):
		return "facebook"
	case strings.HasSuffix(host, "weibo.com"):
		return "weibo"
	}
	return "website"
}
