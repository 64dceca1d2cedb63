package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain json untouched", `{"a":1}`, `{"a":1}`},
		{"json fence stripped", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence stripped", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace trimmed", "  {\"a\":1}  \n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSON(tt.input))
		})
	}
}

func TestParseUnitScore(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		want   float64
		wantOK bool
	}{
		{"bare number", "0.85", 0.85, true},
		{"labelled number", "Score: 0.7", 0.7, true},
		{"number with trailing text", "0.9 - strong match", 0.9, true},
		{"one", "1", 1, true},
		{"zero", "0", 0, true},
		{"out of range rejected", "85", 0, false},
		{"negative rejected", "-0.5", 0, false},
		{"prose without number", "a very good match indeed", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseUnitScore(tt.reply)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
