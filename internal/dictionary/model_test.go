package dictionary

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryRows(t *testing.T) {
	entries := []Entry{
		{Code: "enfr", Label: "English-French"},
		{Code: "fren", Label: "French-English"},
	}

	got := EntryRows(entries)
	assert.Equal(t, [][]string{
		{"Key", "Dictionary"},
		{"enfr", "English-French"},
		{"fren", "French-English"},
	}, got)
}

func TestTranslationRows(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		assert.Equal(t, [][]string{{"Original Language", "Translation"}}, TranslationRows(nil))
	})

	t.Run("header is not shared between calls", func(t *testing.T) {
		rows := TranslationRows(nil)
		rows[0][0] = "changed"
		assert.Equal(t, "Original Language", TranslationRows(nil)[0][0])
	})

	t.Run("multi-line translation", func(t *testing.T) {
		got := TranslationRows([]Translation{{Term: "hello", Text: "bonjour\nsalut"}})
		assert.Equal(t, [][]string{
			{"Original Language", "Translation"},
			{"hello", "bonjour\nsalut"},
		}, got)
	})
}

func TestTransportError(t *testing.T) {
	tests := []struct {
		name        string
		err         *TransportError
		wantMessage string
	}{
		{
			name:        "status code",
			err:         &TransportError{URL: "http://example.com/enfr/cat", StatusCode: 404},
			wantMessage: "request to http://example.com/enfr/cat failed with status 404",
		},
		{
			name:        "network error",
			err:         &TransportError{URL: "http://example.com/", Err: errors.New("connection refused")},
			wantMessage: "request to http://example.com/ failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("fetch > %w", tt.err)
			assert.EqualError(t, tt.err, tt.wantMessage)
			assert.ErrorIs(t, wrapped, ErrTransport)
			assert.NotErrorIs(t, wrapped, ErrNoTranslationFound)

			var transportErr *TransportError
			assert.ErrorAs(t, wrapped, &transportErr)
			assert.Equal(t, tt.err.StatusCode, transportErr.StatusCode)
		})
	}
}
