package i18n

// Text is a string in both display languages.
type Text struct {
	EN string `json:"en" yaml:"en"`
	AR string `json:"ar" yaml:"ar"`
}

// T builds a Text.
func T(en, ar string) Text {
	return Text{EN: en, AR: ar}
}

// Get returns the string for lang, falling back to English when the Arabic
// text is missing.
func (t Text) Get(lang Lang) string {
	if lang == AR && t.AR != "" {
		return t.AR
	}
	return t.EN
}

func (t Text) IsZero() bool {
	return t.EN == "" && t.AR == ""
}
