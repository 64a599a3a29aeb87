package internal

import (
	"chat-directory/services"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	LogLevel             string `env:"LOG_LEVEL,required=true"`
	MaxNameLength        int    `env:"MAX_NAME_LENGTH,default=64"`
	MaxContentLength     int    `env:"MAX_CONTENT_LENGTH,default=1024"`
	TimeLayout           string `env:"TIME_LAYOUT,default=2006-01-02T15:04:05Z07:00"`
	ScriptPath           string `env:"SCRIPT_PATH"`
	CensoredWords        string `env:"CENSORED_WORDS"`
	CharacterReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`
}

func (c Config) Limits() services.Limits {
	return services.Limits{
		MaxNameLength:    c.MaxNameLength,
		MaxContentLength: c.MaxContentLength,
	}
}

// Blocklist splits CENSORED_WORDS on commas and drops blank entries.
func (c Config) Blocklist() []string {
	return lo.Compact(lo.Map(strings.Split(c.CensoredWords, ","), func(word string, _ int) string {
		return strings.TrimSpace(word)
	}))
}

// Validate checks the values go-env cannot check by itself.
func (c Config) Validate() error {
	if c.MaxNameLength < 0 || c.MaxContentLength < 0 {
		return fmt.Errorf("MAX_NAME_LENGTH and MAX_CONTENT_LENGTH must not be negative")
	}
	if _, err := CharacterRune(c.CharacterReplacement); err != nil {
		return err
	}
	reference := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	if _, err := time.Parse(c.TimeLayout, reference.Format(c.TimeLayout)); err != nil {
		return fmt.Errorf("TIME_LAYOUT %q is not usable: %w", c.TimeLayout, err)
	}
	return nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
