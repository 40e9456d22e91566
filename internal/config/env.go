// Package config loads the bot configuration from the environment, an optional
// .env file and an optional config file.
package config

import (
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	KeyToken          = "DISCORD_TOKEN"
	KeyGuildID        = "GUILD_ID"
	KeyRolePrefix     = "ROLE_PREFIX"
	KeyDescriptions   = "COLOR_DESCRIPTIONS"
	KeyEphemeral      = "EPHEMERAL_REPLIES"
	KeyCooldown       = "COMMAND_COOLDOWN"
	KeyCommandTimeout = "COMMAND_TIMEOUT"
	KeyLogLevel       = "LOG_LEVEL"
	KeyEnv            = "ENV"
)

// Config is the loaded bot configuration.
type Config struct {
	Token string
	// GuildID, if valid, registers commands in that guild only, which applies
	// instantly. Otherwise commands are registered globally.
	GuildID          discord.GuildID
	RolePrefix       string
	Descriptions     bool
	EphemeralReplies bool
	// Cooldown is the minimum time between two commands of one member. Zero
	// disables it.
	Cooldown       time.Duration
	CommandTimeout time.Duration
	LogLevel       string
	Env            string

	reg *registry
}

// Dev returns true if running in the development environment.
func (c Config) Dev() bool { return c.Env == "dev" }

// Values returns every key with its effective value. Secrets are masked.
func (c Config) Values() (map[string]string, error) {
	if c.reg == nil {
		return nil, errors.New("config was not loaded")
	}
	return c.reg.Values()
}

func newRegistry() *registry {
	return &registry{
		entries: []entry{
			{Name: KeyToken, Value: &secret{}, Required: true},
			{Name: KeyGuildID, Value: &snowflake{}},
			{Name: KeyRolePrefix, Value: ""},
			{Name: KeyDescriptions, Value: true},
			{Name: KeyEphemeral, Value: true},
			{Name: KeyCooldown, Value: &duration{3 * time.Second}},
			{Name: KeyCommandTimeout, Value: &duration{15 * time.Second}},
			{Name: KeyLogLevel, Value: "info"},
			{Name: KeyEnv, Value: "prod"},
		},
	}
}

// NewViper creates a viper instance reading from the environment and, if file
// is not empty, from that config file. A .env file in the working directory is
// loaded into the environment first; existing variables win.
func NewViper(file string) (*viper.Viper, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	return v, nil
}

// Load reads the configuration from v.
func Load(v *viper.Viper) (Config, error) {
	reg := newRegistry()

	err := reg.Unmarshal(func(key string) (string, bool) {
		if !v.IsSet(key) {
			return "", false
		}
		return v.GetString(key), true
	})
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Token:            reg.get(KeyToken).(*secret).value,
		GuildID:          discord.GuildID(reg.get(KeyGuildID).(*snowflake).value),
		RolePrefix:       reg.get(KeyRolePrefix).(string),
		Descriptions:     reg.get(KeyDescriptions).(bool),
		EphemeralReplies: reg.get(KeyEphemeral).(bool),
		Cooldown:         reg.get(KeyCooldown).(*duration).value,
		CommandTimeout:   reg.get(KeyCommandTimeout).(*duration).value,
		LogLevel:         reg.get(KeyLogLevel).(string),
		Env:              reg.get(KeyEnv).(string),
		reg:              reg,
	}

	if cfg.CommandTimeout <= 0 {
		return Config{}, ErrInvalidField{
			Key: KeyCommandTimeout,
			Err: errors.New("must be positive"),
		}
	}

	return cfg, nil
}

// LoadOffline is Load for commands that never connect, where the token may be
// absent.
func LoadOffline(v *viper.Viper) (Config, error) {
	cfg, err := Load(v)

	var fieldErr ErrInvalidField
	if errors.As(err, &fieldErr) && fieldErr.Key == KeyToken {
		v.Set(KeyToken, "offline")
		cfg, err = Load(v)
		cfg.Token = ""
	}

	return cfg, err
}

// Watch reloads the config file whenever it changes and calls fn with the
// result. Changes that fail to load are logged and skipped. v must have been
// created with a config file.
func Watch(v *viper.Viper, fn func(Config)) {
	v.OnConfigChange(func(ev fsnotify.Event) {
		cfg, err := Load(v)
		if err != nil {
			zap.L().Warn("ignoring invalid config change",
				zap.String("file", ev.Name),
				zap.Error(err))
			return
		}

		fn(cfg)
	})

	v.WatchConfig()
}
