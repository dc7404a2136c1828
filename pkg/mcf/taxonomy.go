package mcf

// The nine parent categories of the MovieContentFilter taxonomy.
const (
	CategoryNudity         = "nudity"
	CategorySex            = "sex"
	CategoryViolence       = "violence"
	CategoryLanguage       = "language"
	CategoryDrugs          = "drugs"
	CategoryFear           = "fear"
	CategoryDiscrimination = "discrimination"
	CategoryDispensable    = "dispensable"
	CategoryCommercial     = "commercial"
)

var parentCategories = map[string]bool{
	CategoryNudity:         true,
	CategorySex:            true,
	CategoryViolence:       true,
	CategoryLanguage:       true,
	CategoryDrugs:          true,
	CategoryFear:           true,
	CategoryDiscrimination: true,
	CategoryDispensable:    true,
	CategoryCommercial:     true,
}

// parents maps fine-grained flags, as they appear in community files, to
// their parent category. The table is fixed at startup and never mutated.
var parents = map[string]string{
	// nudity
	"bareButtocks":     CategoryNudity,
	"bareBreasts":      CategoryNudity,
	"exposedGenitalia": CategoryNudity,
	"fullNudity":       CategoryNudity,
	"partialNudity":    CategoryNudity,
	"sheerClothing":    CategoryNudity,
	"stripping":        CategoryNudity,
	"skinnyDipping":    CategoryNudity,

	// sex
	"kissing":           CategorySex,
	"passionateKissing": CategorySex,
	"sexualIntercourse": CategorySex,
	"impliedSex":        CategorySex,
	"sexualTouching":    CategorySex,
	"sexualDialogue":    CategorySex,
	"masturbation":      CategorySex,
	"pornography":       CategorySex,

	// violence
	"punching":         CategoryViolence,
	"kicking":          CategoryViolence,
	"shooting":         CategoryViolence,
	"stabbing":         CategoryViolence,
	"gore":             CategoryViolence,
	"blood":            CategoryViolence,
	"torture":          CategoryViolence,
	"fighting":         CategoryViolence,
	"murder":           CategoryViolence,
	"domesticViolence": CategoryViolence,
	"animalCruelty":    CategoryViolence,
	"warfare":          CategoryViolence,

	// language
	"swearing":       CategoryLanguage,
	"blasphemy":      CategoryLanguage,
	"crudeHumor":     CategoryLanguage,
	"slurs":          CategoryLanguage,
	"sexualLanguage": CategoryLanguage,
	"nameCalling":    CategoryLanguage,

	// drugs
	"alcoholUse":  CategoryDrugs,
	"drunkenness": CategoryDrugs,
	"smoking":     CategoryDrugs,
	"drugUse":     CategoryDrugs,
	"drugDealing": CategoryDrugs,
	"needles":     CategoryDrugs,

	// fear
	"jumpScare": CategoryFear,
	"monsters":  CategoryFear,
	"ghosts":    CategoryFear,
	"spiders":   CategoryFear,
	"snakes":    CategoryFear,
	"clowns":    CategoryFear,
	"darkness":  CategoryFear,
	"suspense":  CategoryFear,
	"corpses":   CategoryFear,

	// dispensable
	"openingCredits": CategoryDispensable,
	"endCredits":     CategoryDispensable,
	"recap":          CategoryDispensable,
	"intro":          CategoryDispensable,
	"outro":          CategoryDispensable,
	"flashback":      CategoryDispensable,
	"slowScene":      CategoryDispensable,

	// commercial
	"productPlacement": CategoryCommercial,
	"brandLogos":       CategoryCommercial,
	"advertisement":    CategoryCommercial,
	"sponsorMessage":   CategoryCommercial,
}

// ResolveParent maps a fine-grained flag to its parent category. Flags
// that already are a parent category, and unknown flags, pass through
// unchanged so that files using future categories still import.
func ResolveParent(flag string) string {
	if parentCategories[flag] {
		return flag
	}
	if parent, ok := parents[flag]; ok {
		return parent
	}
	return flag
}

// IsParentCategory reports whether name is one of the nine parent
// categories.
func IsParentCategory(name string) bool {
	return parentCategories[name]
}

// ParentCategories returns the nine parent categories in display order.
func ParentCategories() []string {
	return []string{
		CategoryNudity,
		CategorySex,
		CategoryViolence,
		CategoryLanguage,
		CategoryDrugs,
		CategoryFear,
		CategoryDiscrimination,
		CategoryDispensable,
		CategoryCommercial,
	}
}
