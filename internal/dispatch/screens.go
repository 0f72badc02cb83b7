package dispatch

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/Galkurta/HamsterKombat/internal/calendar"
	"github.com/Galkurta/HamsterKombat/internal/callback"
	"github.com/Galkurta/HamsterKombat/internal/i18n"
	"github.com/Galkurta/HamsterKombat/internal/registry"
)

func button(label string, action callback.Action) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: label, CallbackData: action.Encode()}
}

// languageKeyboard is the /start screen: one row per selectable language.
func languageKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{button("🇬🇧 English", callback.Action{Kind: callback.KindPickLanguage, Lang: "en"})},
		{button("🇺🇦 Українська", callback.Action{Kind: callback.KindPickLanguage, Lang: "ua"})},
		{button("🇵🇱 Polski", callback.Action{Kind: callback.KindPickLanguage, Lang: "pl"})},
	}}
}

// menuKeyboard is the welcome screen keyboard. The check-users row appears
// only for the owner.
func menuKeyboard(lang string, isOwner bool) *models.InlineKeyboardMarkup {
	rows := [][]models.InlineKeyboardButton{
		{button("Hamster Kombat 🐹", callback.Action{Kind: callback.KindOpenMenu})},
	}
	if isOwner {
		rows = append(rows, []models.InlineKeyboardButton{
			button(i18n.Lookup(lang, i18n.KeyCheckUsers, nil), callback.Action{Kind: callback.KindCheckUsers}),
		})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// submenuKeyboard is the content-type picker under the Hamster Kombat entry.
func submenuKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{
			button("Daily Combo Cards 🃏", callback.Action{Kind: callback.KindOpenCalendar, Mode: callback.ModeCombo}),
			button("Daily Morse Code 📡", callback.Action{Kind: callback.KindOpenCalendar, Mode: callback.ModeCipher}),
		},
		{button("🔙 Back", callback.Action{Kind: callback.KindBackToLanguages})},
		{button("Cancel ❌", callback.Action{Kind: callback.KindCancel})},
	}}
}

// backKeyboard is the lone back row shown under a fetched result.
func backKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{button("🔙 Back", callback.Action{Kind: callback.KindOpenMenu})},
	}}
}

// calendarMarkup converts a rendered month grid into an inline keyboard.
func calendarMarkup(screen calendar.Screen) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(screen.Rows))
	for _, row := range screen.Rows {
		buttons := make([]models.InlineKeyboardButton, 0, len(row))
		for _, cell := range row {
			buttons = append(buttons, button(cell.Label, cell.Action))
		}
		rows = append(rows, buttons)
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// formatUserList renders registry records as the owner sees them.
func formatUserList(lang string, records []registry.Record) string {
	var sb strings.Builder
	sb.WriteString(i18n.Lookup(lang, i18n.KeyUsersHeader, nil))
	for _, rec := range records {
		sb.WriteString(fmt.Sprintf("\nID: %d\nUsername: %s\nFirst name: %s\nLast name: %s\nLanguage: %s\n",
			rec.ID, rec.Username, rec.FirstName, rec.LastName, rec.LanguageCode))
	}
	return sb.String()
}
