// Package dispatch maps inbound Telegram actions to session updates, content
// fetches and screen renders. Screens are edited in place; only the /start
// reply is a new message.
package dispatch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Galkurta/HamsterKombat/internal/calendar"
	"github.com/Galkurta/HamsterKombat/internal/callback"
	"github.com/Galkurta/HamsterKombat/internal/content"
	"github.com/Galkurta/HamsterKombat/internal/i18n"
	"github.com/Galkurta/HamsterKombat/internal/registry"
	"github.com/Galkurta/HamsterKombat/internal/session"
)

// Messenger is the slice of the Telegram API the dispatcher sends through.
// *bot.Bot satisfies it.
type Messenger interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	EditMessageReplyMarkup(ctx context.Context, params *bot.EditMessageReplyMarkupParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

// CipherFetcher fetches the cipher block for a "Month Day" date key.
type CipherFetcher interface {
	Fetch(ctx context.Context, dateKey string) (string, error)
}

// ComboFetcher fetches the combo-card image URL for a date.
type ComboFetcher interface {
	Fetch(ctx context.Context, date calendar.Date) (string, error)
}

// Dispatcher is the interaction state machine.
type Dispatcher struct {
	api      Messenger
	sessions *session.Store
	users    *registry.Registry
	cipher   CipherFetcher
	combo    ComboFetcher
	ownerID  int64
	log      *slog.Logger
}

// New wires a dispatcher. All collaborators are passed in explicitly so tests
// can substitute fakes.
func New(api Messenger, sessions *session.Store, users *registry.Registry, cipher CipherFetcher, combo ComboFetcher, ownerID int64, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		api:      api,
		sessions: sessions,
		users:    users,
		cipher:   cipher,
		combo:    combo,
		ownerID:  ownerID,
		log:      log,
	}
}

// Register attaches the dispatcher's handlers to the bot.
func (d *Dispatcher) Register(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "start", bot.MatchTypeCommand, d.HandleStart)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, d.HandleCallback)
}

// HandleStart answers /start with the language-selection screen. This is the
// only transition that sends a new message.
func (d *Dispatcher) HandleStart(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	d.upsertUser(ctx, *update.Message.From)

	_, err := d.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        i18n.Lookup(i18n.DefaultLang, i18n.KeyChooseLanguage, nil),
		ReplyMarkup: languageKeyboard(),
	})
	if err != nil {
		d.log.Error("sending language screen", "chat", update.Message.Chat.ID, "err", err)
	}
}

// HandleCallback decodes the payload once and routes on the action kind.
func (d *Dispatcher) HandleCallback(ctx context.Context, _ *bot.Bot, update *models.Update) {
	cq := update.CallbackQuery
	if cq == nil {
		return
	}
	// Screens live in regular chat messages; an inaccessible one cannot be
	// edited, so there is nothing to do beyond acknowledging.
	if cq.Message.Message == nil {
		d.answer(ctx, cq.ID, "", false)
		return
	}

	action, err := callback.Decode(cq.Data)
	if err != nil {
		d.log.Error("decoding callback", "data", cq.Data, "err", err)
		d.answer(ctx, cq.ID, "", false)
		return
	}

	d.log.Debug("callback", "user", cq.From.ID, "data", cq.Data)

	switch action.Kind {
	case callback.KindIgnore:
		d.answer(ctx, cq.ID, "", false)
	case callback.KindPickLanguage:
		d.handlePickLanguage(ctx, cq, action.Lang)
	case callback.KindOpenMenu:
		d.handleOpenMenu(ctx, cq)
	case callback.KindBackToLanguages:
		d.handleBackToMenu(ctx, cq)
	case callback.KindOpenCalendar:
		d.handleOpenCalendar(ctx, cq, action.Mode)
	case callback.KindPageMonth:
		d.handlePageMonth(ctx, cq, action)
	case callback.KindPickDay:
		d.handlePickDay(ctx, cq, action)
	case callback.KindCheckUsers:
		d.handleCheckUsers(ctx, cq)
	case callback.KindCancel:
		d.handleCancel(ctx, cq)
	}
}

func (d *Dispatcher) handlePickLanguage(ctx context.Context, cq *models.CallbackQuery, lang string) {
	if err := d.sessions.SetLanguage(cq.From.ID, lang); err != nil {
		d.log.Error("storing language", "user", cq.From.ID, "err", err)
	}
	d.editMenu(ctx, cq, lang)
	d.answer(ctx, cq.ID, "", false)
}

// handleBackToMenu serves the submenu's back button, returning to the
// welcome screen with the stored language.
func (d *Dispatcher) handleBackToMenu(ctx context.Context, cq *models.CallbackQuery) {
	d.editMenu(ctx, cq, d.lang(cq.From.ID))
	d.answer(ctx, cq.ID, "", false)
}

func (d *Dispatcher) editMenu(ctx context.Context, cq *models.CallbackQuery, lang string) {
	welcome := i18n.Lookup(lang, i18n.KeyWelcome, map[string]string{"user": cq.From.FirstName})
	d.edit(ctx, cq, welcome, menuKeyboard(lang, cq.From.ID == d.ownerID))
}

func (d *Dispatcher) handleOpenMenu(ctx context.Context, cq *models.CallbackQuery) {
	d.upsertUser(ctx, cq.From)
	d.edit(ctx, cq, i18n.Lookup(d.lang(cq.From.ID), i18n.KeyStayTuned, nil), submenuKeyboard())
	d.answer(ctx, cq.ID, "", false)
}

func (d *Dispatcher) handleOpenCalendar(ctx context.Context, cq *models.CallbackQuery, mode callback.Mode) {
	d.upsertUser(ctx, cq.From)

	pending := session.ModeCombo
	if mode == callback.ModeCipher {
		pending = session.ModeCipher
	}
	if err := d.sessions.SetMode(cq.From.ID, pending); err != nil {
		d.log.Error("storing pending mode", "user", cq.From.ID, "err", err)
	}

	d.edit(ctx, cq, i18n.Lookup(d.lang(cq.From.ID), i18n.KeyChooseDate, nil), calendarMarkup(calendar.Render(0, 0)))
	d.answer(ctx, cq.ID, "", false)
}

func (d *Dispatcher) handlePageMonth(ctx context.Context, cq *models.CallbackQuery, action callback.Action) {
	month, year := calendar.Advance(action.Dir, action.Month, action.Year)
	_, err := d.api.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      cq.Message.Message.Chat.ID,
		MessageID:   cq.Message.Message.ID,
		ReplyMarkup: calendarMarkup(calendar.Render(year, month)),
	})
	if err != nil {
		d.log.Error("paging calendar", "user", cq.From.ID, "err", err)
	}
	d.answer(ctx, cq.ID, "", false)
}

func (d *Dispatcher) handlePickDay(ctx context.Context, cq *models.CallbackQuery, action callback.Action) {
	date, err := calendar.NewDate(action.Year, action.Month, action.Day)
	if err != nil {
		d.log.Error("picked invalid date", "user", cq.From.ID, "err", err)
		d.answer(ctx, cq.ID, "", false)
		return
	}

	state, err := d.sessions.Get(cq.From.ID)
	if err != nil {
		d.log.Error("reading session", "user", cq.From.ID, "err", err)
		state = session.Default
	}

	var text string
	errKey := i18n.KeyComboError
	if state.Mode == session.ModeCipher {
		errKey = i18n.KeyMorseError
		text, err = d.cipher.Fetch(ctx, date.Key())
	} else {
		var url string
		url, err = d.combo.Fetch(ctx, date)
		text = i18n.Lookup(state.Lang, i18n.KeyComboSuccess, map[string]string{"url": url})
	}
	if err != nil {
		if !errors.Is(err, content.ErrContentNotFound) {
			d.log.Error("fetching content", "user", cq.From.ID, "date", date.Full(), "err", err)
		} else {
			d.log.Info("no content for date", "user", cq.From.ID, "date", date.Full())
		}
		// The screen stays as it is; the user only sees a transient alert.
		d.answer(ctx, cq.ID, i18n.Lookup(state.Lang, errKey, nil), true)
		return
	}

	d.edit(ctx, cq, text, backKeyboard())
	d.upsertUser(ctx, cq.From)
	d.answer(ctx, cq.ID, "", false)
}

func (d *Dispatcher) handleCheckUsers(ctx context.Context, cq *models.CallbackQuery) {
	lang := d.lang(cq.From.ID)
	chatID := cq.Message.Message.Chat.ID

	if cq.From.ID != d.ownerID {
		d.send(ctx, chatID, i18n.Lookup(lang, i18n.KeyNoPermission, nil))
		d.answer(ctx, cq.ID, "", false)
		return
	}

	records, err := d.users.ListAll(ctx)
	if err != nil {
		d.log.Error("listing users", "err", err)
		d.answer(ctx, cq.ID, "", false)
		return
	}
	d.send(ctx, chatID, formatUserList(lang, records))
	d.answer(ctx, cq.ID, "", false)
}

// handleCancel dismisses the submenu: the keyboard is removed and the
// message text stays.
func (d *Dispatcher) handleCancel(ctx context.Context, cq *models.CallbackQuery) {
	_, err := d.api.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:    cq.Message.Message.Chat.ID,
		MessageID: cq.Message.Message.ID,
	})
	if err != nil {
		d.log.Error("removing keyboard", "user", cq.From.ID, "err", err)
	}
	d.answer(ctx, cq.ID, "", false)
}

func (d *Dispatcher) lang(userID int64) string {
	state, err := d.sessions.Get(userID)
	if err != nil {
		d.log.Error("reading session", "user", userID, "err", err)
		return i18n.DefaultLang
	}
	return state.Lang
}

func (d *Dispatcher) upsertUser(ctx context.Context, user models.User) {
	err := d.users.Upsert(ctx, registry.Record{
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		LanguageCode: user.LanguageCode,
	})
	if err != nil {
		d.log.Error("upserting user", "user", user.ID, "err", err)
	}
}

func (d *Dispatcher) edit(ctx context.Context, cq *models.CallbackQuery, text string, markup *models.InlineKeyboardMarkup) {
	_, err := d.api.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      cq.Message.Message.Chat.ID,
		MessageID:   cq.Message.Message.ID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		d.log.Error("editing screen", "user", cq.From.ID, "err", err)
	}
}

func (d *Dispatcher) send(ctx context.Context, chatID int64, text string) {
	_, err := d.api.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		d.log.Error("sending message", "chat", chatID, "err", err)
	}
}

func (d *Dispatcher) answer(ctx context.Context, callbackID, text string, alert bool) {
	_, err := d.api.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
	if err != nil {
		d.log.Error("answering callback", "err", err)
	}
}
