// Package colorpick is a Discord bot that lets members pick their name color
// with /pick.
package colorpick

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/colorpick/internal/color"
	"github.com/diamondburned/colorpick/internal/config"
	"github.com/diamondburned/colorpick/internal/discord/commands"
	"github.com/diamondburned/colorpick/internal/discord/pick"
	"github.com/diamondburned/colorpick/internal/discord/state"
	"github.com/diamondburned/colorpick/internal/funcutil"
	"github.com/diamondburned/colorpick/internal/role"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// OptionCommand is the name of the /help option.
const OptionCommand = "command"

// maxCommandLength is the longest command name Discord allows.
const maxCommandLength = 32

type Bot struct {
	*state.Instance
	Config   config.Config
	Commands commands.Commands
	Logger   *zap.Logger

	picker *pick.Handler
}

// New connects the REST client with the configured token and builds the bot.
// The gateway is not opened until Run.
func New(cfg config.Config, logger *zap.Logger) (*Bot, error) {
	inst, err := state.NewFromToken(cfg.Token, logger)
	if err != nil {
		return nil, err
	}

	return newBot(cfg, inst, func(ctx context.Context) role.Client {
		return inst.REST(ctx)
	}, logger), nil
}

func newBot(cfg config.Config, inst *state.Instance, client func(context.Context) role.Client, logger *zap.Logger) *Bot {
	b := &Bot{
		Instance: inst,
		Config:   cfg,
		Logger:   logger,
		picker: &pick.Handler{
			Resolver: NewResolver(cfg),
			Namer:    NewNamer(cfg),
			Client:   client,
			Cooldown: pick.NewCooldown(cfg.Cooldown),
			Timeout:  cfg.CommandTimeout,
			Logger:   logger,
		},
	}

	b.Commands = commands.Commands{
		b.picker.Command(),
		{
			Name: "help",
			Args: commands.Arguments{
				{Name: OptionCommand, Desc: "Show a single command", Optional: true, MaxLength: maxCommandLength},
			},
			Desc:    "Show how to pick a color",
			RunFunc: b.help,
		},
	}

	return b
}

// NewResolver creates the color resolver described by cfg.
func NewResolver(cfg config.Config) *color.Resolver {
	return color.NewResolver(color.CSS, color.WithDescriptions(cfg.Descriptions))
}

// NewNamer creates the role naming convention described by cfg.
func NewNamer(cfg config.Config) role.Namer {
	return role.Namer{Prefix: cfg.RolePrefix, Table: color.CSS}
}

func (b *Bot) help(ctx context.Context, inv commands.Invocation) api.InteractionResponseData {
	cmds := b.Commands

	if name := inv.Options[OptionCommand]; name != "" {
		if cmds = cmds.Find(name); len(cmds) == 0 {
			return pick.Message(fmt.Sprintf("Unknown command `%s`.", name))
		}
	}

	return pick.HelpReply(cmds.Help(), b.picker.Resolver.Table(), b.picker.Resolver.Descriptions())
}

// Register overwrites the application commands, in the configured guild if
// any.
func (b *Bot) Register() error {
	return b.RegisterCommands(b.Config.GuildID, b.Commands.CreateData())
}

// Run registers the commands, opens the gateway and serves interactions until
// ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	detach := funcutil.JoinCancels(
		b.AddHandler(func(ev *gateway.ReadyEvent) {
			b.Logger.Info("connected",
				zap.String("user", ev.User.Tag()),
				zap.Int("guilds", len(ev.Guilds)))
		}),
		b.AddHandler(func(ev *gateway.InteractionCreateEvent) {
			b.handle(ctx, &ev.InteractionEvent)
		}),
	)
	defer detach()

	if err := b.Register(); err != nil {
		return err
	}

	if err := b.Open(ctx); err != nil {
		return errors.Wrap(err, "failed to open gateway")
	}

	<-ctx.Done()

	b.Logger.Info("shutting down")

	if err := b.Close(); err != nil {
		return errors.Wrap(err, "failed to close gateway")
	}

	return nil
}

func (b *Bot) flags() discord.MessageFlags {
	if b.Config.EphemeralReplies {
		return discord.EphemeralMessage
	}
	return 0
}

// handle answers a single interaction. A panic is logged and, for commands,
// reported to the user.
func (b *Bot) handle(ctx context.Context, ev *discord.InteractionEvent) {
	var deferred bool

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		b.Logger.Error("interaction handler panicked",
			zap.Any("panic", r),
			zap.Stringer("interaction_id", ev.ID),
			zap.Stack("stack"))

		if deferred {
			b.followUp(ctx, ev, pick.Message("Something went wrong. Please try again."))
		}
	}()

	switch data := ev.Data.(type) {
	case *discord.CommandInteraction:
		err := b.REST(ctx).RespondInteraction(ev.ID, ev.Token, api.InteractionResponse{
			Type: api.DeferredMessageInteractionWithSource,
			Data: &api.InteractionResponseData{Flags: b.flags()},
		})
		if err != nil {
			b.Logger.Error("failed to defer interaction",
				zap.Error(err),
				zap.String("command", data.Name))
			return
		}
		deferred = true

		reply, err := b.Commands.Run(ctx, data.Name, commands.NewInvocation(ev, data))
		if err != nil {
			b.Logger.Warn("failed to run command", zap.Error(err))
			reply = pick.Message("Unknown command.")
		}

		b.followUp(ctx, ev, reply)

	case *discord.AutocompleteInteraction:
		inv, focused := commands.NewCompletion(ev, data)

		choices, err := b.Commands.Complete(data.Name, inv, focused)
		if err != nil {
			b.Logger.Warn("failed to complete command", zap.Error(err))
		}

		err = b.REST(ctx).RespondInteraction(ev.ID, ev.Token, api.InteractionResponse{
			Type: api.AutocompleteResult,
			Data: &api.InteractionResponseData{
				Choices: api.AutocompleteStringChoices(choices),
			},
		})
		if err != nil {
			b.Logger.Debug("failed to send autocomplete choices", zap.Error(err))
		}
	}
}

func (b *Bot) followUp(ctx context.Context, ev *discord.InteractionEvent, reply api.InteractionResponseData) {
	reply.Flags = b.flags()

	if _, err := b.REST(ctx).FollowUpInteraction(b.AppID, ev.Token, reply); err != nil {
		b.Logger.Error("failed to send reply",
			zap.Error(err),
			zap.Stringer("interaction_id", ev.ID))
	}
}
