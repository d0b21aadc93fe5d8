package numo

import "strings"

// languages maps ISO 639-1 codes to English language names for the
// translate runner. Resolution accepts either an exact code or an exact
// name, never a partial match, so unit tokens like "m" or "min" are not
// mistaken for languages.
var languages = map[string]string{
	"ar": "arabic",
	"bg": "bulgarian",
	"bn": "bengali",
	"cs": "czech",
	"da": "danish",
	"de": "german",
	"el": "greek",
	"en": "english",
	"es": "spanish",
	"et": "estonian",
	"fa": "persian",
	"fi": "finnish",
	"fr": "french",
	"he": "hebrew",
	"hi": "hindi",
	"hr": "croatian",
	"hu": "hungarian",
	"id": "indonesian",
	"it": "italian",
	"ja": "japanese",
	"ko": "korean",
	"lt": "lithuanian",
	"lv": "latvian",
	"ms": "malay",
	"nl": "dutch",
	"no": "norwegian",
	"pl": "polish",
	"pt": "portuguese",
	"ro": "romanian",
	"ru": "russian",
	"sk": "slovak",
	"sl": "slovenian",
	"sr": "serbian",
	"sv": "swedish",
	"sw": "swahili",
	"th": "thai",
	"tr": "turkish",
	"uk": "ukrainian",
	"ur": "urdu",
	"vi": "vietnamese",
	"zh": "chinese",
}

// resolveLanguage returns the ISO code for a language code or name.
func resolveLanguage(token string) (string, bool) {
	lower := strings.ToLower(token)
	if _, ok := languages[lower]; ok {
		return lower, true
	}
	for code, name := range languages {
		if name == lower {
			return code, true
		}
	}
	return "", false
}
