package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	doc := map[string]any{
		"seller_name": "Acme",
		"fields": map[string]any{
			"field_10": map[string]any{
				"subfield_a": "x",
				"subfield_b": nil,
			},
		},
	}

	tests := []struct {
		name     string
		path     string
		want     any
		wantOK   bool
	}{
		{"top-level", "seller_name", "Acme", true},
		{"nested leaf", "fields.field_10.subfield_a", "x", true},
		{"null leaf still present", "fields.field_10.subfield_b", nil, true},
		{"missing segment", "fields.field_99", nil, false},
		{"missing deep segment", "fields.field_10.subfield_c", nil, false},
		{"walk through scalar", "seller_name.oops", nil, false},
		{"missing root", "nope.deep", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(doc, tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
