package beach

import "strings"

// Spoken-form shortcuts that do not reduce to a slug or display name by
// normalisation alone. Keys are normalised spoken text.
var aliases = map[string]string{
	"whistling-sands":  "porth-oer",
	"coney-beach":      "porthcawl",
	"dunraven-bay":     "southerndown",
	"gyllyngvase":      "falmouth-gyllyngvase",
	"st-ives":          "porthmeor",
	"summerleaze":      "bude",
	"readymoney-cove":  "fowey",
	"meadfoot":         "torquay",
	"great-western":    "newquay-great-western",
	"avon-beach":       "christchurch",
	"barry":            "barry-island",
	"tenby":            "tenby-north",
	"newquay":          "fistral",
	"rhossili-bay":     "rhossili",
	"woolacombe-sands": "woolacombe",
}

// Resolve maps a spoken or typed location to a beach. It tries the
// hyphenated slug form, then the display name, then the alias table with
// common trailing words stripped.
func (r *Registry) Resolve(spoken string) (Beach, error) {
	spoken = strings.TrimSpace(spoken)
	if spoken == "" {
		return Beach{}, ErrNotFound
	}

	norm := normalizeSpoken(spoken)
	if b, ok := r.bySlug[norm]; ok {
		return b, nil
	}
	if b, ok := r.byName[strings.ToLower(spoken)]; ok {
		return b, nil
	}
	if slug, ok := aliases[norm]; ok {
		return r.Get(slug)
	}

	// "porthcawl beach", "oxwich bay" and similar spoken forms.
	for _, suffix := range []string{"-beach", "-bay", "-sands", "-cove", "-haven", "-island"} {
		trimmed := strings.TrimSuffix(norm, suffix)
		if trimmed == norm {
			continue
		}
		if b, ok := r.bySlug[trimmed]; ok {
			return b, nil
		}
		if slug, ok := aliases[trimmed]; ok {
			return r.Get(slug)
		}
	}
	return Beach{}, ErrNotFound
}

func normalizeSpoken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "!", "")
	return strings.Join(strings.Fields(s), "-")
}
