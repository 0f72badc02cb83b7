// Package content extracts the daily cipher and combo-card publications from
// the upstream pages. Both extractors fetch live on every call and mirror the
// pages' current textual layout; there is no caching, retry, or fallback when
// the markup moves.
package content

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/net/html"
)

// ErrContentNotFound means the requested date has no published content, or
// the page layout did not match.
var ErrContentNotFound = errors.New("content not found for date")

// fetchDocument GETs the page and parses it into an HTML tree.
func fetchDocument(client *http.Client, req *http.Request) (*html.Node, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetching %s: unexpected status %s", req.URL, resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", req.URL, err)
	}
	return doc, nil
}

// visit walks the tree in document order. The walk stops early when fn
// returns false.
func visit(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !visit(c, fn) {
			return false
		}
	}
	return true
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
