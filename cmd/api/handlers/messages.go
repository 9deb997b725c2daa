package handlers

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// commands
const (
	CommandStart = "/start"
)

// webhook responses
const (
	RespOK            = "OK"
	RespPostOnly      = "Please send a POST request"
	RespInvalidUpdate = "Invalid update format"
	RespError         = "Error"
)

// messages
const (
	MsgThursday    = "Wow, it's Thursday! 🍺"
	MsgNotThursday = "It's not Thursday 😢 It's %s."
)

// inline query answer
const (
	ArticleID          = "1"
	ArticleTitle       = "What is day today?"
	ArticleDescription = "Is it Thursday?"
	ArticleThumbURL    = "https://cdn-icons-png.freepik.com/256/5726/5726532.png"
	ArticleThumbSize   = 150
	InlineCacheTime    = 1
)

// MsgDayOfWeek message for the weekday of now, in now's location
func MsgDayOfWeek(now time.Time) string {
	day := now.Weekday()
	if day == time.Thursday {
		return MsgThursday
	}
	return fmt.Sprintf(MsgNotThursday, day)
}

// dayArticle is the single result offered for every inline query
func dayArticle(message string) tgbotapi.InlineQueryResultArticle {
	article := tgbotapi.NewInlineQueryResultArticle(ArticleID, ArticleTitle, message)
	article.Description = ArticleDescription
	article.ThumbURL = ArticleThumbURL
	article.ThumbWidth = ArticleThumbSize
	article.ThumbHeight = ArticleThumbSize
	return article
}
