package skips

import "github.com/ameen-roayan/stremio-cleanstream/pkg/mcf"

var categoryOrder = mcf.ParentCategories()

// labels holds the fixed human description per parent category, used when
// a segment carries no contributor comment.
var labels = map[string]string{
	mcf.CategoryNudity:         "Nudity",
	mcf.CategorySex:            "Sexual content",
	mcf.CategoryViolence:       "Violence",
	mcf.CategoryLanguage:       "Strong language",
	mcf.CategoryDrugs:          "Drug and alcohol use",
	mcf.CategoryFear:           "Frightening scene",
	mcf.CategoryDiscrimination: "Discriminatory content",
	mcf.CategoryDispensable:    "Dispensable scene",
	mcf.CategoryCommercial:     "Commercial content",
}

// Label returns the display label for a parent category. Unknown
// categories fall back to the raw string.
func Label(category string) string {
	if label, ok := labels[category]; ok {
		return label
	}
	return category
}
