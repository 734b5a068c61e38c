package model

import "sort"

// PostMeta is the metadata derived from a post's filename and content.
type PostMeta struct {
	// Date is an ISO-8601 "YYYY-MM-DD" string, or empty when the filename carries none.
	Date  string
	Title string
}

// Link represents a single post on the index page.
type Link struct {
	Href  string
	Title string
	Date  string
}

// SortLinks returns links ordered newest first. Links without a date go
// last; links with equal dates keep the reverse of their input order.
func SortLinks(links []Link) []Link {
	sorted := make([]Link, len(links))
	for i, l := range links {
		sorted[len(links)-1-i] = l
	}

	// ISO dates compare lexically.
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Date, sorted[j].Date
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a > b
	})
	return sorted
}
