package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	actions := []Action{
		{Kind: KindIgnore},
		{Kind: KindPickDay, Day: 14, Month: 3, Year: 2025},
		{Kind: KindPageMonth, Dir: -1, Month: 1, Year: 2025},
		{Kind: KindPageMonth, Dir: +1, Month: 12, Year: 2025},
		{Kind: KindPickLanguage, Lang: "ua"},
		{Kind: KindOpenMenu},
		{Kind: KindOpenCalendar, Mode: ModeCombo},
		{Kind: KindOpenCalendar, Mode: ModeCipher},
		{Kind: KindBackToLanguages},
		{Kind: KindCheckUsers},
		{Kind: KindCancel},
	}
	for _, action := range actions {
		t.Run(action.Encode(), func(t *testing.T) {
			decoded, err := Decode(action.Encode())
			require.NoError(t, err)
			assert.Equal(t, action, decoded)
		})
	}
}

func TestDecodeWirePayloads(t *testing.T) {
	tests := []struct {
		data string
		want Action
	}{
		{"day:14:3:2025", Action{Kind: KindPickDay, Day: 14, Month: 3, Year: 2025}},
		{"prev-month:3:2025", Action{Kind: KindPageMonth, Dir: -1, Month: 3, Year: 2025}},
		{"next-month:3:2025", Action{Kind: KindPageMonth, Dir: +1, Month: 3, Year: 2025}},
		{"lang_en", Action{Kind: KindPickLanguage, Lang: "en"}},
		{"hamster_kombat", Action{Kind: KindOpenMenu}},
		{"daily_combo_cards", Action{Kind: KindOpenCalendar, Mode: ModeCombo}},
		{"daily_morse_code", Action{Kind: KindOpenCalendar, Mode: ModeCipher}},
		{"back_to_language_selection", Action{Kind: KindBackToLanguages}},
		{"check_users", Action{Kind: KindCheckUsers}},
		{"cancel", Action{Kind: KindCancel}},
		{"ignore", Action{Kind: KindIgnore}},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := Decode(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, data := range []string{
		"",
		"day:14:3",
		"day:14:3:2025:9",
		"day:x:3:2025",
		"prev-month:3",
		"next-month:a:b",
		"lang_",
		"something_else",
	} {
		t.Run(data, func(t *testing.T) {
			_, err := Decode(data)
			assert.Error(t, err)
		})
	}
}
