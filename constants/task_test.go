package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTask(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Task
		wantOK bool
	}{
		{"canonical", "invoice", TaskInvoice, true},
		{"upper case", "HSCODE", TaskHSCode, true},
		{"surrounding whitespace", "  summary ", TaskSummary, true},
		{"unknown", "receipts", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTask(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsStringSlice(t *testing.T) {
	assert.Equal(t,
		[]string{"classification", "hscode", "invoice", "parser", "summary"},
		AsStringSlice())
}
