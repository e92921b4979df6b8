package wordreference

import (
	"unicode/utf8"

	"github.com/at-ishikawa/translate/internal/dictionary"
	"github.com/at-ishikawa/translate/internal/dom"
)

// ExtractDictionaries returns the bilingual dictionaries listed in the option elements of the home page.
// Conjugation and synonym options have ids of other lengths, definition dictionaries
// have the same language on both sides; both are skipped.
func ExtractDictionaries(root dom.Node) []dictionary.Entry {
	var entries []dictionary.Entry
	for _, option := range root.FindAll("option") {
		id, ok := option.Attr("id")
		if !ok || utf8.RuneCountInString(id) != 4 {
			continue
		}
		label := option.Text()
		if label == "" {
			continue
		}

		code := dictionary.Code(id)
		if code.IsDefinition() {
			continue
		}
		entries = append(entries, dictionary.Entry{
			Code:  code,
			Label: label,
		})
	}
	return entries
}
