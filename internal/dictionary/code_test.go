package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Code
		wantErr bool
	}{
		{
			name:  "english to french",
			input: "enfr",
			want:  Code("enfr"),
		},
		{
			name:  "definition dictionary is accepted",
			input: "enen",
			want:  Code("enen"),
		},
		{
			name:    "too short",
			input:   "en",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "enfrverbs",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCode_Languages(t *testing.T) {
	tests := []struct {
		code           Code
		wantSource     string
		wantTarget     string
		wantDefinition bool
	}{
		{code: "enfr", wantSource: "en", wantTarget: "fr"},
		{code: "iten", wantSource: "it", wantTarget: "en"},
		{code: "frfr", wantSource: "fr", wantTarget: "fr", wantDefinition: true},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.wantSource, tt.code.Source())
			assert.Equal(t, tt.wantTarget, tt.code.Target())
			assert.Equal(t, tt.wantDefinition, tt.code.IsDefinition())
		})
	}
}
