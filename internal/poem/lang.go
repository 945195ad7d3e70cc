package poem

// languageNames maps language codes used in .poem files to their native
// display names.
var languageNames = map[string]string{
	"bg":      "Български",
	"en":      "English",
	"fa":      "فارسی",
	"fr":      "Français",
	"ja":      "日本語",
	"lzh":     "文言",
	"ru":      "Русский",
	"zh-Hans": "简体中文",
}

// LanguageName returns the native display name for a language code, or the
// code itself when unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
