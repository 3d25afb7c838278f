// Package i18n resolves display texts in the shopper's language, falling back to English.
package i18n

const FallbackLanguage = "en"

var SupportedLanguages = []string{"en", "si", "ta"}

// Strings maps language code to message key to text.
type Strings map[string]map[string]string

// LocalizedText maps language code to text, as stored in the hosted content.
type LocalizedText map[string]string

// Translate resolves key in lang, then in English; an unknown key is returned as is.
func (s Strings) Translate(lang string, key string) string {
	if text := s[lang][key]; text != "" {
		return text
	}
	if text := s[FallbackLanguage][key]; text != "" {
		return text
	}
	return key
}

// Dictionary returns every key known for lang, English filling the gaps.
func (s Strings) Dictionary(lang string) map[string]string {
	dict := map[string]string{}
	for key, text := range s[FallbackLanguage] {
		dict[key] = text
	}
	for key, text := range s[lang] {
		if text != "" {
			dict[key] = text
		}
	}
	return dict
}

// merge returns a copy of base with every non-empty text of overlay on top.
func merge(base Strings, overlay Strings) Strings {
	merged := Strings{}
	for _, source := range []Strings{base, overlay} {
		for lang, texts := range source {
			if merged[lang] == nil {
				merged[lang] = map[string]string{}
			}
			for key, text := range texts {
				if text != "" {
					merged[lang][key] = text
				}
			}
		}
	}
	return merged
}

// Localize picks the text for lang, then English, else "".
func Localize(text LocalizedText, lang string) string {
	if value := text[lang]; value != "" {
		return value
	}
	return text[FallbackLanguage]
}

func IsSupported(lang string) bool {
	for _, supported := range SupportedLanguages {
		if supported == lang {
			return true
		}
	}
	return false
}

func DefaultStrings() Strings {
	return merge(Strings{}, defaultStrings)
}
