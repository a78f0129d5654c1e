// Package goquery implements the vlr.gg page parsers on top of goquery
// document traversal with explicitly compiled cascadia selectors.
//
// Every parser in this package is pure: it takes raw HTML plus the URL it
// was fetched from (used only for error context) and returns domain values
// from the root vlrgg package. Fetching is the caller's concern.
package goquery

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/govlr/vlrgg"
)

var (
	selectorsMu sync.Mutex
	selectors   = map[string]cascadia.Selector{}
)

// compile returns the cascadia selector for s, caching compiled selectors
// across calls. An invalid selector is a programming error and reported as
// vlrgg.ESELECTOR rather than being silently treated as a non-match.
func compile(s string) (cascadia.Selector, error) {
	selectorsMu.Lock()
	defer selectorsMu.Unlock()
	if sel, ok := selectors[s]; ok {
		return sel, nil
	}
	sel, err := cascadia.Compile(s)
	if err != nil {
		return nil, vlrgg.Errorf(vlrgg.ESELECTOR, "invalid selector %q: %v", s, err)
	}
	selectors[s] = sel
	return sel, nil
}

// document parses raw HTML into a goquery document.
func document(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vlrgg.Errorf(vlrgg.EINTERNAL, "parse html: %v", err)
	}
	return doc, nil
}

// find returns the first element matching selector under root. The result
// is empty (Length zero) when nothing matches.
func find(root *goquery.Selection, selector string) (*goquery.Selection, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return root.FindMatcher(sel).First(), nil
}

// findAll returns every element matching selector under root, in document
// order.
func findAll(root *goquery.Selection, selector string) (*goquery.Selection, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return root.FindMatcher(sel), nil
}

// required returns the first element matching selector under root, or a
// vlrgg.ENOTFOUND error describing the missing element.
func required(root *goquery.Selection, selector, desc string) (*goquery.Selection, error) {
	s, err := find(root, selector)
	if err != nil {
		return nil, err
	}
	if s.Length() == 0 {
		return nil, vlrgg.Errorf(vlrgg.ENOTFOUND, "element not found: %s", desc)
	}
	return s, nil
}

// lastPageNumber reads the trailing page link of a pagination block and
// returns it as the total page count. Pages without a pagination block
// report a single page.
func lastPageNumber(root *goquery.Selection, blockSelector string) (int, error) {
	block, err := find(root, blockSelector)
	if err != nil {
		return 0, err
	}
	links, err := findAll(block, "span, a")
	if err != nil {
		return 0, err
	}
	if links.Length() == 0 {
		return 1, nil
	}
	if n := optInt(firstText(links.Last())); n != nil {
		return *n, nil
	}
	return 1, nil
}
