package content

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/Galkurta/HamsterKombat/internal/calendar"
)

// ComboFetcher retrieves the combo-cards page and extracts the card image
// published for a given date.
type ComboFetcher struct {
	client *http.Client
	url    string
}

// NewComboFetcher builds a fetcher for the combo-cards page.
func NewComboFetcher(client *http.Client, url string) *ComboFetcher {
	return &ComboFetcher{client: client, url: url}
}

// Fetch downloads the page, locates the first text node containing the date
// formatted "March 14, 2025", and returns the src of the first image that
// follows it in document order. A miss at either stage is ErrContentNotFound.
func (f *ComboFetcher) Fetch(ctx context.Context, date calendar.Date) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("building combo request: %w", err)
	}

	doc, err := fetchDocument(f.client, req)
	if err != nil {
		return "", err
	}

	url := findCardImage(doc, date.Full())
	if url == "" {
		return "", fmt.Errorf("combo card for %q: %w", date.Full(), ErrContentNotFound)
	}
	return url, nil
}

// findCardImage returns the src of the first <img> appearing after the first
// text node that contains marker, or "" when either is missing.
func findCardImage(doc *html.Node, marker string) string {
	var src string
	seen := false
	visit(doc, func(n *html.Node) bool {
		if !seen {
			if n.Type == html.TextNode && strings.Contains(n.Data, marker) {
				seen = true
			}
			return true
		}
		if n.Type == html.ElementNode && n.Data == "img" {
			if v, ok := attrValue(n, "src"); ok {
				src = v
				return false
			}
		}
		return true
	})
	return src
}
