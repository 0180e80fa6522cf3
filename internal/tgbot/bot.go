package tgbot

import (
	"context"
	"fmt"
	"strings"

	"teambalancer/internal/config"
	"teambalancer/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	bot *tgbotapi.BotAPI

	playerService *service.PlayerService
	log           *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	commands map[string]Command
}

func New(ps *service.PlayerService, cfg config.Config, log *logrus.Logger) (Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return Bot{}, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return Bot{}, err
	}

	b := Bot{
		bot:           bot,
		playerService: ps,
		log:           log.WithField("name", "tg_bot"),
	}
	b.commands = newCommands(ps, cfg.Server.TopN)
	return b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	})

	name, args := splitCommand(update.Message.Text)
	command, ok := b.commands[name]
	if !ok {
		command = b.commands["help"]
	}
	text, err := command.Run(ctx, args)
	if err != nil {
		log.WithError(err).Error("command failed")
		text = err.Error()
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, text)
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("unable to send reply")
	}
}

func splitCommand(text string) (name string, args string) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "/")
	name, args, _ = strings.Cut(text, " ")
	return name, strings.TrimSpace(args)
}
