// Package i18n is the localized message catalog. Selectable languages are
// en, ua and pl, but full message bundles exist only for en and id; any
// language (or key) without a translation falls back to English, so language
// selection can never fail.
package i18n

import "strings"

// DefaultLang is the fallback for languages without a bundle.
const DefaultLang = "en"

// Message keys.
const (
	KeyMorseError     = "morse_error"
	KeyComboError     = "combo_error"
	KeyComboSuccess   = "combo_success"
	KeyStayTuned      = "stay_tuned"
	KeyWelcome        = "welcome"
	KeyChooseLanguage = "choose_language"
	KeyCheckUsers     = "check_users"
	KeyChooseDate     = "choose_date"
	KeyNoPermission   = "no_permission"
	KeyUsersHeader    = "users_header"
)

var bundles = map[string]map[string]string{
	"en": {
		KeyMorseError:     "Failed to find Morse code for the selected date. Please try again later!",
		KeyComboError:     "Failed to find combo cards for the selected date. Please try again later!",
		KeyComboSuccess:   "Here is the combo card for the selected date: {url}",
		KeyStayTuned:      "Stay Tuned Clickers",
		KeyWelcome:        "Welcome, {user}! Press the button below to see the options:",
		KeyChooseLanguage: "Please choose your language:",
		KeyCheckUsers:     "Check Users",
		KeyChooseDate:     "Please choose a date:",
		KeyNoPermission:   "You don't have permission to use this command.",
		KeyUsersHeader:    "Users:",
	},
	"id": {
		KeyMorseError:     "Gagal menemukan kode Morse untuk tanggal yang dipilih. Silakan coba lagi nanti!",
		KeyComboError:     "Gagal menemukan kartu kombo untuk tanggal yang dipilih. Silakan coba lagi nanti!",
		KeyComboSuccess:   "Ini adalah kartu kombo untuk tanggal yang dipilih: {url}",
		KeyStayTuned:      "Stay Tuned Clickers",
		KeyWelcome:        "Selamat datang, {user}! Tekan tombol di bawah untuk melihat opsi:",
		KeyChooseLanguage: "Silakan pilih bahasa Anda",
		KeyCheckUsers:     "Periksa Pengguna",
		KeyChooseDate:     "Silakan pilih tanggal:",
		KeyNoPermission:   "Anda tidak memiliki izin untuk menggunakan perintah ini.",
		KeyUsersHeader:    "Pengguna:",
	},
}

// Lookup resolves a message template for the language and substitutes
// {name} placeholders from params. Unknown languages and keys without a
// translation resolve through the English bundle; a key missing there too
// comes back verbatim so the gap is visible.
func Lookup(lang, key string, params map[string]string) string {
	msg, ok := bundles[lang][key]
	if !ok {
		msg, ok = bundles[DefaultLang][key]
	}
	if !ok {
		return key
	}
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}
