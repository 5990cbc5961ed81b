// ABOUTME: Supported OCR languages for document extraction
// ABOUTME: Provides the language catalog exposed by the API and used for request validation

package languages

import "sort"

// Language is one supported OCR language
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var supported = map[string]string{
	// Major languages
	"en":    "English",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"pt":    "Portuguese",
	"ru":    "Russian",
	"zh":    "Chinese (Simplified)",
	"zh-tw": "Chinese (Traditional)",
	"ja":    "Japanese",
	"ko":    "Korean",
	"ar":    "Arabic",
	"hi":    "Hindi",
	"th":    "Thai",
	"vi":    "Vietnamese",
	"id":    "Indonesian",
	"ms":    "Malay",
	"tl":    "Filipino/Tagalog",

	// European
	"nl": "Dutch",
	"pl": "Polish",
	"uk": "Ukrainian",
	"cs": "Czech",
	"el": "Greek",
	"hu": "Hungarian",
	"ro": "Romanian",
	"sv": "Swedish",
	"da": "Danish",
	"fi": "Finnish",
	"no": "Norwegian",
	"tr": "Turkish",
	"he": "Hebrew",

	// South Asian
	"bn": "Bengali",
	"ta": "Tamil",
	"te": "Telugu",
	"mr": "Marathi",
	"gu": "Gujarati",
	"kn": "Kannada",
	"ml": "Malayalam",
	"pa": "Punjabi",
	"ur": "Urdu",

	// Others
	"fa": "Persian/Farsi",
	"sw": "Swahili",
	"am": "Amharic",
	"my": "Burmese",
	"km": "Khmer",
	"lo": "Lao",
	"ne": "Nepali",
	"si": "Sinhala",
}

// Supported returns the supported languages sorted by display name.
func Supported() []Language {
	list := make([]Language, 0, len(supported))
	for code, name := range supported {
		list = append(list, Language{Code: code, Name: name})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

// IsSupported reports whether a language code is in the catalog.
// The empty code is accepted and means "use the default".
func IsSupported(code string) bool {
	if code == "" {
		return true
	}
	_, ok := supported[code]
	return ok
}
