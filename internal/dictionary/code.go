package dictionary

import (
	"fmt"
	"unicode/utf8"
)

// Code identifies a dictionary by its source and target language acronyms, e.g. "enfr".
type Code string

// ParseCode validates the length of a dictionary code.
// Same-language codes such as "enen" are accepted because they are valid definition pages.
func ParseCode(s string) (Code, error) {
	if utf8.RuneCountInString(s) != 4 {
		return "", fmt.Errorf(
			"%w: the dictionary must be 4 letters long, the first two being the acronym of the original language and the last two the acronym of the language to translate to (got %q)",
			ErrInvalidArgument, s,
		)
	}
	return Code(s), nil
}

func (c Code) Source() string {
	return string([]rune(c)[:2])
}

func (c Code) Target() string {
	return string([]rune(c)[2:4])
}

// IsDefinition reports whether the code points to a monolingual definition dictionary.
func (c Code) IsDefinition() bool {
	return c.Source() == c.Target()
}

func (c Code) String() string {
	return string(c)
}
