package listing

import (
	"fmt"
	"strings"

	"homescout-listings/internal/models"
)

// MaxSuggestions caps the number of location suggestions per query.
const MaxSuggestions = 5

// MinSuggestionQueryLen is the minimum query length before any matching
// runs; shorter queries return an empty list without scanning.
const MinSuggestionQueryLen = 2

// Suggestions produces up to MaxSuggestions unique display strings
// ("City, ST" or a bare zip code) drawn from properties whose location
// matches the query under the same substring rule as the filter engine.
func Suggestions(properties []models.Property, query string) []string {
	q := strings.TrimSpace(query)
	if len([]rune(q)) < MinSuggestionQueryLen {
		return []string{}
	}

	seen := make(map[string]struct{})
	suggestions := []string{}
	add := func(s string) {
		if len(suggestions) >= MaxSuggestions {
			return
		}
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		suggestions = append(suggestions, s)
	}

	for _, p := range properties {
		if len(suggestions) >= MaxSuggestions {
			break
		}
		if !MatchesLocation(&p, q) {
			continue
		}
		if p.Address.City != "" && p.Address.State != "" {
			add(fmt.Sprintf("%s, %s", p.Address.City, p.Address.State))
		}
		add(p.Address.ZipCode)
	}
	return suggestions
}
