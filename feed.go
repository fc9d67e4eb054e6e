package main

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

type Feed struct {
	XMLName xml.Name  `xml:"feed"`
	ID      string    `xml:"id"`
	Title   string    `xml:"title"`
	Updated time.Time `xml:"updated"`
	Entry   []struct {
		ID      string    `xml:"id"`
		Title   string    `xml:"title"`
		Updated time.Time `xml:"updated"`
	} `xml:"entry"`
}

func fetchFeed(ctx context.Context, client *http.Client, url string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed %q: %s", url, resp.Status)
	}

	f := &Feed{}
	if err := xml.NewDecoder(resp.Body).Decode(f); err != nil {
		return nil, fmt.Errorf("decode feed %q: %w", url, err)
	}
	return f, nil
}

// Chips returns one chip per entry, labelled with the entry title as plain
// text. Entries whose title is empty after stripping markup are skipped.
func (f *Feed) Chips() ([]Chip, error) {
	var chips []Chip
	for _, e := range f.Entry {
		label, err := plainText(e.Title)
		if err != nil {
			return nil, err
		}
		if label == "" {
			continue
		}
		chips = append(chips, newChip("feed", len(chips), label))
	}
	return chips, nil
}

// plainText strips HTML markup and collapses whitespace.
func plainText(s string) (string, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var h func(*html.Node)
	h = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			h(child)
		}
	}
	h(doc)

	return strings.Join(strings.Fields(sb.String()), " "), nil
}
