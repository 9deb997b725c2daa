package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot API methods
const (
	MethodSendMessage       = "sendMessage"
	MethodAnswerInlineQuery = "answerInlineQuery"
)

// StatusError is returned when the Bot API answers with a non 2xx status
type StatusError struct {
	Method     string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Method, e.StatusCode, e.Body)
}

// Bot talks to the Bot API. The token is passed on every call and is never
// kept on the Bot.
type Bot struct {
	client   *http.Client
	endpoint string
	validate *validator.Validate
}

// New bot api client. An empty apiURL targets the public Bot API server, a
// zero timeout leaves requests bounded only by their context.
func New(apiURL string, timeout time.Duration) *Bot {
	endpoint := tgbotapi.APIEndpoint
	if apiURL != "" {
		endpoint = strings.ReplaceAll(strings.TrimRight(apiURL, "/"), "%", "%%") + "/bot%s/%s"
	}
	return &Bot{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		validate: validator.New(),
	}
}

type sendMessageParams struct {
	ChatID string `json:"chat_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

type answerInlineQueryParams struct {
	InlineQueryID string `json:"inline_query_id" validate:"required"`
	Results       string `json:"results" validate:"required"`
	CacheTime     int    `json:"cache_time" validate:"min=0"`
}

// SendMessage text to a chat
func (bot *Bot) SendMessage(ctx context.Context, token, chatID, text string) (*tgbotapi.APIResponse, error) {
	return bot.call(ctx, token, MethodSendMessage, sendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

// AnswerInlineQuery with results. The results are sent json encoded inside
// the payload, as a string field.
func (bot *Bot) AnswerInlineQuery(ctx context.Context, token, queryID string, cacheTime int, results ...interface{}) (*tgbotapi.APIResponse, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("%s: no results", MethodAnswerInlineQuery)
	}
	encoded, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("%s: encode results: %w", MethodAnswerInlineQuery, err)
	}
	return bot.call(ctx, token, MethodAnswerInlineQuery, answerInlineQueryParams{
		InlineQueryID: queryID,
		Results:       string(encoded),
		CacheTime:     cacheTime,
	})
}

func (bot *Bot) call(ctx context.Context, token, method string, params interface{}) (*tgbotapi.APIResponse, error) {
	if err := bot.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%s: invalid params: %w", method, err)
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("%s: encode params: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf(bot.endpoint, token, method), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", method, redact(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := bot.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, redact(err))
	}
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", method, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Method: method, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	apiResp := &tgbotapi.APIResponse{}
	if err := json.Unmarshal(raw, apiResp); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", method, err)
	}
	if !apiResp.Ok {
		tgErr := tgbotapi.Error{Code: apiResp.ErrorCode, Message: apiResp.Description}
		if apiResp.Parameters != nil {
			tgErr.ResponseParameters = *apiResp.Parameters
		}
		return apiResp, fmt.Errorf("%s: %w", method, tgErr)
	}

	return apiResp, nil
}

// redact drops the request url, which carries the bot token, from transport errors
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
