package handlers

import (
	"time"

	"github.com/gpng/thursday-bot/services/telegram"
	"go.uber.org/zap"
)

// Handlers struct
type Handlers struct {
	logger   *zap.Logger
	bot      *telegram.Bot
	botToken string
	now      func() time.Time
}

// New service. botToken is handed to the bot on every call and never logged.
func New(
	logger *zap.Logger,
	bot *telegram.Bot,
	botToken string,
) *Handlers {
	return &Handlers{logger, bot, botToken, time.Now}
}
