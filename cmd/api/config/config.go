package config

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	// auto loads .env
	_ "github.com/joho/godotenv/autoload"
)

// Config for app
type Config struct {
	BotToken        string        `env:"BOT_TOKEN,required" validate:"required" json:"-"`
	Port            string        `env:"PORT" envDefault:"4000" validate:"required,numeric"`
	TelegramAPIURL  string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org" validate:"required,url"`
	TelegramTimeout time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"0s" validate:"min=0"`
	Debug           bool          `env:"DEBUG" envDefault:"false"`
}

// New app config
func New() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, validate(cfg)
}

// validate checks the parsed config and returns english messages for every failing field
func validate(cfg Config) error {
	v := validator.New()
	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return err
	}

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, msg := range verrs.Translate(trans) {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return errors.New(strings.Join(msgs, "; "))
}
