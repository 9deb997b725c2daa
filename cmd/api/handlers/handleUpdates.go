package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gpng/thursday-bot/models"
	"go.uber.org/zap"
)

type updateKind int

const (
	updateIgnored updateKind = iota
	updateStart
	updateInlineQuery
)

var errInvalidUpdate = errors.New("update has neither message nor inline_query")

type classifiedUpdate struct {
	kind    updateKind
	chatID  string
	text    string
	queryID string
}

// classifyUpdate decides what, if anything, the update should be answered with.
// Messages and inline queries missing the fields needed for a reply are ignored.
func classifyUpdate(update models.TelegramUpdate) (classifiedUpdate, error) {
	switch {
	case update.Has("message"):
		chatID, ok := update.GetString("message", "chat", "id")
		if !ok {
			return classifiedUpdate{kind: updateIgnored}, nil
		}
		text, ok := update.Get("message", "text")
		if !ok {
			return classifiedUpdate{kind: updateIgnored}, nil
		}
		s, _ := text.(string)
		if s != CommandStart {
			return classifiedUpdate{kind: updateIgnored, chatID: chatID, text: s}, nil
		}
		return classifiedUpdate{kind: updateStart, chatID: chatID, text: s}, nil

	case update.Has("inline_query"):
		queryID, ok := update.GetString("inline_query", "id")
		if !ok {
			return classifiedUpdate{kind: updateIgnored}, nil
		}
		return classifiedUpdate{kind: updateInlineQuery, queryID: queryID}, nil
	}

	return classifiedUpdate{}, errInvalidUpdate
}

func (h *Handlers) handleUpdates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := h.logger.With(zap.String("method", r.Method), zap.String("path", r.URL.Path))
		l.Info("received request")

		if r.Method != http.MethodPost {
			respond(w, http.StatusOK, RespPostOnly)
			return
		}

		update, err := models.DecodeUpdate(r.Body)
		if errors.Is(err, models.ErrNotObject) {
			l.Error("update does not contain expected structure", zap.Error(err))
			respond(w, http.StatusBadRequest, RespInvalidUpdate)
			return
		}
		if err != nil {
			l.Error("failed to decode update", zap.Error(err))
			respond(w, http.StatusInternalServerError, RespError)
			return
		}
		l.Debug("received update", zap.Any("update", update))

		classified, err := classifyUpdate(update)
		if err != nil {
			l.Error("update does not contain expected structure", zap.Error(err))
			respond(w, http.StatusBadRequest, RespInvalidUpdate)
			return
		}

		if classified.chatID != "" {
			l.Info("received message", zap.String("chat_id", classified.chatID), zap.String("text", classified.text))
		}

		switch classified.kind {
		case updateStart:
			h.handleStart(r.Context(), l, classified.chatID)
		case updateInlineQuery:
			h.handleInlineQuery(r.Context(), l, classified.queryID)
		}

		respond(w, http.StatusOK, RespOK)
	}
}

// handleStart replies to /start. Delivery failures are logged, the webhook
// caller is only told the update was received.
func (h *Handlers) handleStart(ctx context.Context, l *zap.Logger, chatID string) {
	l = l.With(zap.String("chat_id", chatID), zap.String("command", CommandStart))

	resp, err := h.bot.SendMessage(ctx, h.botToken, chatID, MsgDayOfWeek(h.now()))
	if err != nil {
		l.Error("failed to send message", zap.Error(err))
		return
	}
	l.Info("message sent", zap.ByteString("result", resp.Result))
}

func (h *Handlers) handleInlineQuery(ctx context.Context, l *zap.Logger, queryID string) {
	l = l.With(zap.String("inline_query_id", queryID))

	article := dayArticle(MsgDayOfWeek(h.now()))
	_, err := h.bot.AnswerInlineQuery(ctx, h.botToken, queryID, InlineCacheTime, article)
	if err != nil {
		l.Error("failed to answer inline query", zap.Error(err))
		return
	}
	l.Info("inline query answered")
}
