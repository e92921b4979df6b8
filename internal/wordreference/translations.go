package wordreference

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/translate/internal/dictionary"
	"github.com/at-ishikawa/translate/internal/dom"
)

const translationTableClass = "WRD"

// ExtractTranslations reads the first translation table of a word page.
//
// Rows are made of a term cell, a part of speech cell and a translation cell.
// A row with an empty term cell continues the translation of the previous row.
// Rows whose term cell has no term, like a language header, are skipped along with their continuations.
func ExtractTranslations(ctx context.Context, root dom.Node, logger *slog.Logger) ([]dictionary.Translation, error) {
	tables := root.FindByClass("table", translationTableClass)
	if len(tables) == 0 {
		return nil, dictionary.ErrNoTranslationFound
	}

	var translations []dictionary.Translation
	var skipping bool
	for i, row := range tables[0].FindAll("tr") {
		cells := row.FindAll("td")
		if len(cells) != 3 {
			continue
		}

		termCell, translationCell := cells[0], cells[2]
		// usage notes and examples
		translationCell.Remove("em")
		text := translationCell.Text()

		if termCell.Text() == "" {
			if skipping {
				continue
			}
			if len(translations) == 0 {
				return nil, fmt.Errorf("%w: row %d continues a translation but no term precedes it", dictionary.ErrMalformedResponse, i)
			}
			last := &translations[len(translations)-1]
			last.Text += "\n" + text
			continue
		}

		terms := termCell.FindAll("strong")
		if len(terms) == 0 {
			logger.DebugContext(ctx, fmt.Sprintf("Skipping row %d without a term: %q", i, termCell.Text()))
			skipping = true
			continue
		}
		skipping = false
		translations = append(translations, dictionary.Translation{
			Term: terms[0].Text(),
			Text: text,
		})
	}

	if len(translations) == 0 {
		return nil, dictionary.ErrNoTranslationFound
	}
	return translations, nil
}
