package crawler

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/net/html"

	"bridge-deals-service/internal/timeutil"
)

// Tournament is one row of the archive listing page, newest first.
type Tournament struct {
	ID       string
	Type     string
	URL      string
	StartsAt time.Time
}

// Traveller is one traveller page linked from a tournament's boards page.
type Traveller struct {
	ID  string
	URL string
}

// RecordLink points at a single downloadable board record.
type RecordLink struct {
	ID  string
	URL string
}

// parseTournamentListing extracts tournament rows from the archive
// listing page. Listing times omit the year, so the caller supplies it.
func parseTournamentListing(r io.Reader, year int) ([]Tournament, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse listing page: %w", err)
	}

	var tournaments []Tournament
	for _, row := range elementsByTag(doc, "tr") {
		cells := elementsByTag(row, "td")
		// Header and filler rows carry fewer cells.
		if len(cells) < 6 {
			continue
		}
		anchor := firstElementByTag(cells[5], "a")
		if anchor == nil {
			continue
		}
		href := attrValue(anchor, "href")
		if href == "" {
			continue
		}

		rawTime := strings.TrimSpace(strings.ReplaceAll(nodeText(cells[0]), "\u00a0", " "))
		startsAt, err := timeutil.ParseListing(rawTime, year)
		if err != nil {
			return nil, fmt.Errorf("parse listing time %q: %w", rawTime, err)
		}

		tournaments = append(tournaments, Tournament{
			ID:       tournamentID(href),
			Type:     strings.TrimSpace(nodeText(cells[3])),
			URL:      href,
			StartsAt: startsAt,
		})
	}
	return tournaments, nil
}

// parseTravellerRows extracts traveller links from a tournament's
// boards page.
func parseTravellerRows(r io.Reader) ([]Traveller, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse boards page: %w", err)
	}

	var travellers []Traveller
	for _, row := range elementsByTag(doc, "tr") {
		cells := elementsByTag(row, "td")
		if len(cells) == 0 {
			continue
		}
		anchor := firstElementByTag(cells[0], "a")
		if anchor == nil {
			continue
		}
		href := attrValue(anchor, "href")
		if href == "" {
			continue
		}
		travellers = append(travellers, Traveller{ID: travellerID(href), URL: href})
	}
	return travellers, nil
}

// parseRecordLinks extracts board record download links from a
// traveller page.
func parseRecordLinks(r io.Reader) ([]RecordLink, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse traveller page: %w", err)
	}

	var links []RecordLink
	for _, anchor := range elementsByTag(doc, "a") {
		href := attrValue(anchor, "href")
		if !strings.Contains(href, "fetchlin") {
			continue
		}
		id := recordID(href)
		if id == "" {
			continue
		}
		links = append(links, RecordLink{ID: id, URL: href})
	}
	return links, nil
}

// tournamentID extracts the id from a listing link, which carries it
// as the final query value with an encoded trailing pipe.
func tournamentID(href string) string {
	id := href[strings.LastIndex(href, "=")+1:]
	id = strings.TrimSuffix(id, "%7C")
	return strings.TrimSuffix(id, "|")
}

// travellerID extracts the id from a traveller link, which ends with
// a dash-separated id segment.
func travellerID(href string) string {
	return href[strings.LastIndex(href, "-")+1:]
}

// recordID extracts the id query value from a fetchlin link.
func recordID(href string) string {
	_, rest, ok := strings.Cut(href, "id=")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "&")
	return id
}

func elementsByTag(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func firstElementByTag(n *html.Node, tag string) *html.Node {
	nodes := elementsByTag(n, tag)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
