// Package htmltext reduces upstream recipe HTML fragments to plain text
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text returns the visible text of an HTML fragment with whitespace collapsed
func Text(fragment string) string {
	doc, err := parse(fragment)
	if err != nil {
		return collapse(fragment)
	}
	return collapse(doc.Text())
}

// Paragraphs splits an HTML fragment into its text blocks. Fragments without
// block elements yield one paragraph.
func Paragraphs(fragment string) []string {
	doc, err := parse(fragment)
	if err != nil {
		return nonEmpty([]string{collapse(fragment)})
	}

	var out []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		out = append(out, collapse(s.Text()))
	})
	if len(out) > 0 {
		return nonEmpty(out)
	}
	return nonEmpty([]string{collapse(doc.Text())})
}

// Steps extracts cooking steps. List items are used when present; otherwise
// the text is split on line breaks.
func Steps(fragment string) []string {
	doc, err := parse(fragment)
	if err != nil {
		return nonEmpty(strings.Split(fragment, "\n"))
	}

	var out []string
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		out = append(out, collapse(s.Text()))
	})
	if len(out) > 0 {
		return nonEmpty(out)
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		lines = append(lines, collapse(line))
	}
	return nonEmpty(lines)
}

func parse(fragment string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(fragment))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
