package skips

import (
	"sort"
	"strings"

	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
)

// Preferences maps a parent category to the minimum severity the viewer
// wants skipped, or "off". Any value outside {off, low, medium, high} is
// treated as off, as is an absent category.
type Preferences map[string]string

// Threshold returns the severity rank a segment of the given category must
// reach to be skipped, or 0 when the category is off.
func (p Preferences) Threshold(category string) int {
	if p == nil {
		return 0
	}
	return models.SeverityRank(p[category])
}

// Fingerprint returns a stable cache key component for the active entries:
// sorted "category=threshold" pairs joined with "&". Inactive entries do
// not participate, so {violence: medium, drugs: off} and {violence: medium}
// fingerprint identically. An all-off map fingerprints as "off".
func (p Preferences) Fingerprint() string {
	active := make([]string, 0, len(p))
	for category, threshold := range p {
		if models.SeverityRank(threshold) == 0 {
			continue
		}
		active = append(active, category+"="+threshold)
	}
	if len(active) == 0 {
		return "off"
	}
	sort.Strings(active)
	return strings.Join(active, "&")
}

// AllCategories builds a preference map that applies one threshold to
// every parent category. Used by the addon surface and the convert
// command when no explicit preferences are given.
func AllCategories(threshold string) Preferences {
	prefs := make(Preferences)
	if models.SeverityRank(threshold) == 0 {
		return prefs
	}
	for _, category := range categoryOrder {
		prefs[category] = threshold
	}
	return prefs
}
