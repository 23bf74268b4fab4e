// Package extract turns fetched HTML pages into readable text for word counting.
// Paragraphs in the result are separated by blank lines.
package extract

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// ToText extracts the readable text of an HTML document.
//
// Parameters:
//   - content: io.Reader containing HTML content
//   - selector: optional CSS selector; when set, only matching elements are kept
//   - includeAll: if true, skips readability extraction and converts the whole page
//   - baseURL: optional page URL for readability (can be nil)
func ToText(content io.Reader, selector string, includeAll bool, baseURL *url.URL) (string, error) {
	switch {
	case selector != "":
		return extractWithSelector(content, selector)
	case includeAll:
		return convertAllHTML(content)
	default:
		return extractMainContent(content, baseURL)
	}
}

// extractMainContent uses go-readability to keep only the article body
func extractMainContent(content io.Reader, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	slog.Debug("Readability extraction done", "title", article.Title, "contentLength", len(article.Content))
	return convertToText(article.Content)
}

// extractWithSelector keeps the elements matching a CSS selector
func extractWithSelector(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var htmlParts []string
	selection.Each(func(i int, s *goquery.Selection) {
		html, err := goquery.OuterHtml(s)
		if err == nil {
			htmlParts = append(htmlParts, html)
		}
	})

	if len(htmlParts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}

	slog.Debug("Selector matched", "selector", selector, "elements", len(htmlParts))
	return convertToText(strings.Join(htmlParts, "\n"))
}

// convertAllHTML converts the whole page without filtering
func convertAllHTML(content io.Reader) (string, error) {
	htmlBytes, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML content: %w", err)
	}
	return convertToText(string(htmlBytes))
}

// plainRules drop markdown decoration so it does not show up as words.
var plainRules = []md.Rule{
	{
		Filter: []string{"a", "strong", "b", "em", "i", "del", "s", "code", "span"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return md.String(content)
		},
	},
	{
		Filter: []string{"h1", "h2", "h3", "h4", "h5", "h6"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return md.String("\n\n" + strings.TrimSpace(content) + "\n\n")
		},
	},
	{
		Filter: []string{"li"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return md.String(strings.TrimSpace(content) + "\n")
		},
	},
	{
		Filter: []string{"blockquote"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return md.String("\n\n" + strings.TrimSpace(content) + "\n\n")
		},
	},
	{
		// code blocks keep their raw text without fences
		Filter: []string{"pre"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return md.String("\n\n" + strings.TrimSpace(selec.Text()) + "\n\n")
		},
	},
	{
		Filter: []string{"hr", "table"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return md.String("\n\n" + content + "\n\n")
		},
	},
	{
		// cells are padded so adjacent cells never merge into one word
		Filter: []string{"th", "td"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return md.String(" " + strings.TrimSpace(content) + " ")
		},
	},
	{
		Filter: []string{"tr"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return md.String(strings.TrimSpace(content) + "\n")
		},
	},
	{
		Filter: []string{"img", "script", "style", "noscript"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return md.String("")
		},
	},
}

// convertToText converts an HTML string to text with blank-line paragraph breaks
func convertToText(htmlString string) (string, error) {
	converter := md.NewConverter("", true, &md.Options{EscapeMode: "disabled"})
	converter.AddRules(plainRules...)

	text, err := converter.ConvertString(htmlString)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to text: %w", err)
	}

	cleaned := strings.TrimSpace(text)
	for strings.Contains(cleaned, "\n\n\n") {
		cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
	}

	return cleaned, nil
}
