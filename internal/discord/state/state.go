// Package state provides the shared Discord state instance of the bot.
package state

import (
	"context"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/httputil/httpdriver"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Intents are the gateway intents the bot needs. Interactions arrive
// regardless; guilds keep the role cache warm for logging.
const Intents = gateway.IntentGuilds

type Instance struct {
	*state.State
	AppID  discord.AppID
	Logger *zap.Logger
}

// ErrNoToken is returned if NewFromToken is given an empty token.
var ErrNoToken = errors.New("no bot token")

func NewFromToken(token string, logger *zap.Logger) (*Instance, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	return New(state.New("Bot "+token), logger)
}

// New wraps s. The current application is fetched right away, which also
// validates the token.
func New(s *state.State, logger *zap.Logger) (*Instance, error) {
	app, err := s.CurrentApplication()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current application")
	}

	s.Client.OnRequest = append(s.Client.OnRequest, func(r httpdriver.Request) error {
		logger.Debug("discord request", zap.String("path", r.GetPath()))
		return nil
	})

	s.AddIntents(Intents)

	return &Instance{
		State:  s,
		AppID:  app.ID,
		Logger: logger,
	}, nil
}

// REST returns an uncached REST client bound to ctx.
func (s *Instance) REST(ctx context.Context) *api.Client {
	return s.State.Client.WithContext(ctx)
}

// RegisterCommands overwrites the application commands, either globally or in
// the given guild if it is valid.
func (s *Instance) RegisterCommands(guildID discord.GuildID, cmds []api.CreateCommandData) error {
	var err error
	if guildID.IsValid() {
		_, err = s.BulkOverwriteGuildCommands(s.AppID, guildID, cmds)
	} else {
		_, err = s.BulkOverwriteCommands(s.AppID, cmds)
	}

	if err != nil {
		return errors.Wrap(err, "failed to register commands")
	}

	s.Logger.Info("registered commands",
		zap.Int("count", len(cmds)),
		zap.Stringer("guild_id", guildID))

	return nil
}
