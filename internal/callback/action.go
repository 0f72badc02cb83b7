// Package callback defines the typed callback actions carried by inline
// keyboard buttons and their colon-delimited wire encoding. Payloads are
// decoded once at the transport boundary; handlers only ever see Action
// values.
package callback

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the Action variants.
type Kind int

const (
	KindIgnore Kind = iota
	KindPickDay
	KindPageMonth
	KindPickLanguage
	KindOpenMenu
	KindOpenCalendar
	KindBackToLanguages
	KindCheckUsers
	KindCancel
)

// Mode is the content type a calendar was opened for.
type Mode string

const (
	ModeCipher Mode = "cipher"
	ModeCombo  Mode = "combo"
)

// Action is a decoded callback payload. Exactly the fields for its Kind are
// meaningful.
type Action struct {
	Kind Kind

	// KindPickDay, KindPageMonth
	Day   int
	Month int
	Year  int
	// KindPageMonth: -1 for prev, +1 for next
	Dir int

	// KindPickLanguage
	Lang string

	// KindOpenCalendar
	Mode Mode
}

// Fixed literal payloads.
const (
	payloadIgnore        = "ignore"
	payloadOpenMenu      = "hamster_kombat"
	payloadComboCalendar = "daily_combo_cards"
	payloadMorseCalendar = "daily_morse_code"
	payloadBackToLangs   = "back_to_language_selection"
	payloadCheckUsers    = "check_users"
	payloadCancel        = "cancel"
	langPrefix           = "lang_"
)

// Encode renders an Action as its wire payload.
func (a Action) Encode() string {
	switch a.Kind {
	case KindPickDay:
		return fmt.Sprintf("day:%d:%d:%d", a.Day, a.Month, a.Year)
	case KindPageMonth:
		if a.Dir < 0 {
			return fmt.Sprintf("prev-month:%d:%d", a.Month, a.Year)
		}
		return fmt.Sprintf("next-month:%d:%d", a.Month, a.Year)
	case KindPickLanguage:
		return langPrefix + a.Lang
	case KindOpenMenu:
		return payloadOpenMenu
	case KindOpenCalendar:
		if a.Mode == ModeCipher {
			return payloadMorseCalendar
		}
		return payloadComboCalendar
	case KindBackToLanguages:
		return payloadBackToLangs
	case KindCheckUsers:
		return payloadCheckUsers
	case KindCancel:
		return payloadCancel
	default:
		return payloadIgnore
	}
}

// Decode parses a wire payload into an Action.
func Decode(data string) (Action, error) {
	switch data {
	case payloadIgnore:
		return Action{Kind: KindIgnore}, nil
	case payloadOpenMenu:
		return Action{Kind: KindOpenMenu}, nil
	case payloadComboCalendar:
		return Action{Kind: KindOpenCalendar, Mode: ModeCombo}, nil
	case payloadMorseCalendar:
		return Action{Kind: KindOpenCalendar, Mode: ModeCipher}, nil
	case payloadBackToLangs:
		return Action{Kind: KindBackToLanguages}, nil
	case payloadCheckUsers:
		return Action{Kind: KindCheckUsers}, nil
	case payloadCancel:
		return Action{Kind: KindCancel}, nil
	}

	if lang, ok := strings.CutPrefix(data, langPrefix); ok {
		if lang == "" {
			return Action{}, fmt.Errorf("callback: empty language code")
		}
		return Action{Kind: KindPickLanguage, Lang: lang}, nil
	}

	parts := strings.Split(data, ":")
	switch parts[0] {
	case "day":
		if len(parts) != 4 {
			return Action{}, fmt.Errorf("callback: malformed day payload %q", data)
		}
		day, month, year, err := parseInts(parts[1], parts[2], parts[3])
		if err != nil {
			return Action{}, fmt.Errorf("callback: %q: %w", data, err)
		}
		return Action{Kind: KindPickDay, Day: day, Month: month, Year: year}, nil
	case "prev-month", "next-month":
		if len(parts) != 3 {
			return Action{}, fmt.Errorf("callback: malformed paging payload %q", data)
		}
		month, err := strconv.Atoi(parts[1])
		if err != nil {
			return Action{}, fmt.Errorf("callback: %q: %w", data, err)
		}
		year, err := strconv.Atoi(parts[2])
		if err != nil {
			return Action{}, fmt.Errorf("callback: %q: %w", data, err)
		}
		dir := 1
		if parts[0] == "prev-month" {
			dir = -1
		}
		return Action{Kind: KindPageMonth, Dir: dir, Month: month, Year: year}, nil
	}

	return Action{}, fmt.Errorf("callback: unknown payload %q", data)
}

func parseInts(a, b, c string) (int, int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, 0, err
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, 0, err
	}
	z, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}
