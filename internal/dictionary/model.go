package dictionary

// Entry is a dictionary offered by the provider.
type Entry struct {
	Code  Code   `yaml:"key"`
	Label string `yaml:"dictionary"`
}

// Translation is one term of a translation table.
// Text holds several lines when the provider split the translations over continuation rows.
type Translation struct {
	Term string `yaml:"original"`
	Text string `yaml:"translation"`
}

var (
	entryHeader       = []string{"Key", "Dictionary"}
	translationHeader = []string{"Original Language", "Translation"}
)

// EntryRows returns the entries as table rows, header first.
func EntryRows(entries []Entry) [][]string {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, append([]string(nil), entryHeader...))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Code.String(), entry.Label})
	}
	return rows
}

// TranslationRows returns the translations as table rows, header first.
func TranslationRows(translations []Translation) [][]string {
	rows := make([][]string, 0, len(translations)+1)
	rows = append(rows, append([]string(nil), translationHeader...))
	for _, translation := range translations {
		rows = append(rows, []string{translation.Term, translation.Text})
	}
	return rows
}
