package bot

import (
	"LogoBot/ai"
	"LogoBot/core"
	"LogoBot/holder"
	"LogoBot/lib/sl"
	"LogoBot/storage"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

const (
	historySize    = 5
	captionLimit   = 900
	journalExcerpt = 100
)

// BotAPI is the part of *tgbotapi.BotAPI used by the bot.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	DeleteMessage(config tgbotapi.DeleteMessageConfig) (tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) (tgbotapi.UpdatesChannel, error)
	StopReceivingUpdates()
}

type TgBot struct {
	api            BotAPI
	log            *slog.Logger
	generator      core.ImageGenerator
	state          *holder.UserState
	catalog        *core.Catalog
	messages       core.Messages
	actionInterval time.Duration
	wg             sync.WaitGroup
}

func NewTgBot(api BotAPI, log *slog.Logger) *TgBot {
	catalog := core.NewCatalog(nil)
	return &TgBot{
		api:            api,
		log:            log.With(sl.Module("tgbot")),
		catalog:        catalog,
		messages:       core.NewMessages(core.Messages{}, catalog),
		actionInterval: 5 * time.Second,
	}
}

// SetGenerator set image generation backend
func (t *TgBot) SetGenerator(generator core.ImageGenerator) {
	t.generator = generator
}

func (t *TgBot) SetUserState(state *holder.UserState) {
	t.state = state
}

// SetTexts replaces the style catalog and reply templates
func (t *TgBot) SetTexts(catalog *core.Catalog, messages core.Messages) {
	t.catalog = catalog
	t.messages = messages
}

// Start reads updates until ctx is done or the update channel closes, then
// waits for generations still in flight.
func (t *TgBot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates, err := t.api.GetUpdatesChan(u)
	if err != nil {
		return fmt.Errorf("getting updates: %w", err)
	}

	defer t.wg.Wait()
	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			t.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate answers commands in place and runs generation requests on
// their own goroutine.
func (t *TgBot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	incoming := update.Message
	if incoming == nil || incoming.From == nil || incoming.Chat == nil {
		return
	}

	if incoming.IsCommand() {
		t.handleCommand(incoming)
		return
	}
	if strings.TrimSpace(incoming.Text) == "" {
		return
	}

	// the style in effect when the message arrives, not when generation starts
	style := t.state.Style(int64(incoming.From.ID))

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.generate(context.WithoutCancel(ctx), incoming, style)
	}()
}

func (t *TgBot) handleCommand(incoming *tgbotapi.Message) {
	chatId := incoming.Chat.ID
	userId := int64(incoming.From.ID)
	command := incoming.Command()

	switch command {
	case "start":
		t.markdownResponse(chatId, t.messages.Start)
	case "help":
		t.markdownResponse(chatId, t.messages.Help)
	case "style":
		t.markdownResponse(chatId, t.messages.StyleMenu)
	case "history":
		t.plainResponse(chatId, t.history(userId))
	default:
		style, ok := t.catalog.Lookup(command)
		if !ok {
			t.log.With(
				slog.Int64("user", userId),
				slog.String("command", command),
			).Debug("unknown command")
			return
		}
		t.state.SetStyle(userId, style.Key)
		t.log.With(
			slog.Int64("user", userId),
			slog.String("style", style.Key),
		).Info("style selected")
		t.markdownResponse(chatId, fmt.Sprintf(t.messages.StyleSelected, core.EscapeMarkdown(style.Name)))
	}
}

func (t *TgBot) history(userId int64) string {
	generations := t.state.History(userId, historySize)
	if len(generations) == 0 {
		return t.messages.HistoryEmpty
	}
	var b strings.Builder
	b.WriteString(t.messages.HistoryHeader)
	for i, gen := range generations {
		mark := "✅"
		if !gen.Success {
			mark = "❌"
		}
		b.WriteString(fmt.Sprintf("\n%d. %s %s", i+1, mark, gen.Prompt))
		if gen.Style != "" {
			b.WriteString(fmt.Sprintf(" [%s]", gen.Style))
		}
	}
	return b.String()
}

func (t *TgBot) generate(ctx context.Context, incoming *tgbotapi.Message, style string) {
	chatId := incoming.Chat.ID
	userId := int64(incoming.From.ID)
	userPrompt := incoming.Text

	prompt := ai.BuildLogoPrompt(userPrompt, style, t.catalog)

	log := t.log.With(
		slog.Int64("user", userId),
		sl.Excerpt(userPrompt),
	)

	status, err := t.api.Send(tgbotapi.NewMessage(chatId, t.messages.Generating))
	if err != nil {
		log.Error("sending status message", sl.Err(err))
	}

	log.With(slog.String("style", style)).Info("generating logo")
	stopAction := t.startChatAction(chatId, tgbotapi.ChatUploadPhoto)
	image, err := t.generator.Generate(ctx, prompt)
	stopAction()

	gen := storage.Generation{
		UserId:    userId,
		Prompt:    sl.Truncate(userPrompt, journalExcerpt),
		Style:     style,
		CreatedAt: time.Now(),
	}

	if err == nil {
		photo := tgbotapi.NewPhotoUpload(chatId, tgbotapi.FileBytes{Name: "logo.png", Bytes: image})
		photo.Caption = fmt.Sprintf(t.messages.Caption, sl.Truncate(userPrompt, captionLimit))
		photo.ReplyToMessageID = incoming.MessageID
		if _, err = t.api.Send(photo); err != nil {
			err = fmt.Errorf("sending photo: %w", err)
		}
	}

	if err != nil {
		gen.Reason = failureReason(err)
		t.state.Record(gen)
		log.With(slog.String("reason", gen.Reason)).Error("failed to generate logo", sl.Err(err))
		t.replaceStatus(chatId, status.MessageID, t.messages.Error)
		return
	}

	gen.Success = true
	t.state.Record(gen)
	t.deleteMessage(chatId, status.MessageID)
	log.With(slog.Int("bytes", len(image))).Info("logo generated")
}

func failureReason(err error) string {
	var statusErr *ai.StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("status %d", statusErr.Code)
	case errors.Is(err, ai.ErrTimeout):
		return "timeout"
	default:
		return "transport"
	}
}

// startChatAction sends action right away and then every actionInterval
// until the returned function is called.
func (t *TgBot) startChatAction(chatId int64, action string) func() {
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(t.actionInterval)
		defer ticker.Stop()

		for {
			if _, err := t.api.Send(tgbotapi.NewChatAction(chatId, action)); err != nil {
				t.log.Debug("sending chat action", sl.Err(err))
			}
			select {
			case <-ticker.C:
			case <-stop:
				return
			}
		}
	}()

	return func() {
		close(stop)
		<-done
	}
}

// replaceStatus edits the status message, or sends text anew when there is
// no status message to edit.
func (t *TgBot) replaceStatus(chatId int64, messageId int, text string) {
	if messageId == 0 {
		t.plainResponse(chatId, text)
		return
	}
	if _, err := t.api.Send(tgbotapi.NewEditMessageText(chatId, messageId, text)); err != nil {
		t.log.Error("editing message", sl.Err(err))
	}
}

func (t *TgBot) deleteMessage(chatId int64, messageId int) {
	if messageId == 0 {
		return
	}
	_, err := t.api.DeleteMessage(tgbotapi.DeleteMessageConfig{ChatID: chatId, MessageID: messageId})
	if err != nil {
		t.log.Error("deleting message", sl.Err(err))
	}
}

func (t *TgBot) plainResponse(chatId int64, text string) {
	msg := tgbotapi.NewMessage(chatId, text)
	if _, err := t.api.Send(msg); err != nil {
		t.log.Error("sending message", sl.Err(err))
	}
}

func (t *TgBot) markdownResponse(chatId int64, text string) {
	msg := tgbotapi.NewMessage(chatId, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.api.Send(msg); err != nil {
		t.log.Error("sending message", sl.Err(err))
	}
}
