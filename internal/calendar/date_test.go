package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateValidation(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		wantErr          bool
	}{
		{"regular day", 2025, 3, 14, false},
		{"last day of month", 2025, 1, 31, false},
		{"feb 29 leap year", 2024, 2, 29, false},
		{"feb 29 non-leap year", 2025, 2, 29, true},
		{"feb 30", 2024, 2, 30, true},
		{"day zero", 2025, 3, 0, true},
		{"day 31 of april", 2025, 4, 31, true},
		{"month zero", 2025, 0, 1, true},
		{"month 13", 2025, 13, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDateFormats(t *testing.T) {
	d, err := NewDate(2025, 3, 14)
	require.NoError(t, err)

	assert.Equal(t, "March 14", d.Key())
	assert.Equal(t, "March 14, 2025", d.Full())
}
