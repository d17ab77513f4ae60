package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"iso passthrough", "2025-03-05", "2025-03-05", true},
		{"month name", "March 5, 2025", "2025-03-05", true},
		{"day first", "5 March 2025", "2025-03-05", true},
		{"slash month first", "03/15/2025", "2025-03-15", true},
		{"embedded in prose", "no later than March 5, 2025 at the Purchasing Office", "2025-03-05", true},
		{"extra whitespace", "  March   5,  2025 ", "2025-03-05", true},
		{"unparseable", "TBD", "", false},
		{"prose only", "as soon as possible", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
