package internal

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{"LOG_LEVEL": "DEBUG"}, &config)
	req.NoError(err)

	req.Equal("DEBUG", config.LogLevel)
	req.Equal(64, config.MaxNameLength)
	req.Equal(1024, config.MaxContentLength)
	req.Equal("2006-01-02T15:04:05Z07:00", config.TimeLayout)
	req.Equal("*", config.CharacterReplacement)
	req.Empty(config.Blocklist())
	req.NoError(config.Validate())
}

func TestConfig_Missing_Log_Level(t *testing.T) {
	var config Config
	err := env.Unmarshal(env.EnvSet{}, &config)
	require.Error(t, err)
}

func TestConfig_Blocklist(t *testing.T) {
	config := Config{CensoredWords: " spam, ,scam,phishing "}
	require.Equal(t, []string{"spam", "scam", "phishing"}, config.Blocklist())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{LogLevel: "INFO", TimeLayout: "2006-01-02T15:04:05Z07:00", CharacterReplacement: "#"}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "negative content length", mutate: func(c *Config) { c.MaxContentLength = -1 }},
		{name: "negative name length", mutate: func(c *Config) { c.MaxNameLength = -1 }},
		{name: "replacement with two characters", mutate: func(c *Config) { c.CharacterReplacement = "##" }},
		{name: "empty replacement", mutate: func(c *Config) { c.CharacterReplacement = "" }},
	}
	require.NoError(t, valid.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			require.Error(t, config.Validate())
		})
	}
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("€")
	req.NoError(err)
	req.Equal('€', r)

	_, err = CharacterRune("ab")
	req.Error(err)
}
