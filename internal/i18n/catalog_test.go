package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	got := Lookup("en", KeyWelcome, map[string]string{"user": "Alice"})
	assert.Equal(t, "Welcome, Alice! Press the button below to see the options:", got)
}

func TestLookupTranslatedBundle(t *testing.T) {
	got := Lookup("id", KeyChooseLanguage, nil)
	assert.Equal(t, "Silakan pilih bahasa Anda", got)
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	// ua and pl are selectable but have no bundle of their own.
	for _, lang := range []string{"ua", "pl", "xx"} {
		got := Lookup(lang, KeyMorseError, nil)
		assert.Equal(t, Lookup("en", KeyMorseError, nil), got, "lang %s", lang)
	}
}

func TestLookupUnknownKeyIsVisible(t *testing.T) {
	assert.Equal(t, "no_such_key", Lookup("en", "no_such_key", nil))
}

func TestLookupSubstitutesParams(t *testing.T) {
	got := Lookup("ua", KeyComboSuccess, map[string]string{"url": "https://x/card.png"})
	assert.Equal(t, "Here is the combo card for the selected date: https://x/card.png", got)
}
