package wordreference

import (
	"strings"

	"github.com/at-ishikawa/translate/internal/dictionary"
)

const DefaultBaseURL = "http://www.wordreference.com"

// URLBuilder builds the page URLs of the website.
type URLBuilder struct {
	baseURL string
}

func NewURLBuilder(baseURL string) URLBuilder {
	return URLBuilder{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// HomePage lists the available dictionaries.
func (b URLBuilder) HomePage() string {
	return b.baseURL + "/"
}

// Translation is the page of a word in a dictionary.
// Only spaces are escaped, the rest of the word is kept as is.
func (b URLBuilder) Translation(code dictionary.Code, word string) string {
	return b.baseURL + "/" + code.String() + "/" + strings.ReplaceAll(word, " ", "%20")
}
