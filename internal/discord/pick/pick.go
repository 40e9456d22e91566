// Package pick implements the /pick and /help commands.
package pick

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/colorpick/internal/color"
	"github.com/diamondburned/colorpick/internal/discord/commands"
	"github.com/diamondburned/colorpick/internal/role"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// OptionColor is the name of the /pick option.
const OptionColor = "color"

// maxSuggestions is how many names an unknown-color reply suggests.
const maxSuggestions = 3

// MaxInputLength is the longest color Discord lets members type.
const MaxInputLength = 100

// maxChoiceLength is the longest autocomplete choice name or value Discord
// accepts.
const maxChoiceLength = 100

type Handler struct {
	Resolver *color.Resolver
	Namer    role.Namer
	// Client returns the REST client used by one invocation.
	Client   func(ctx context.Context) role.Client
	Cooldown *Cooldown
	// Timeout bounds the REST calls of one invocation. Zero means no limit.
	Timeout time.Duration
	Logger  *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Command returns the /pick command.
func (h *Handler) Command() commands.Command {
	desc := "A hex code or color name (e.g., #FF5733, coral)"
	if h.descriptions() {
		desc = "A hex code, color name, or description (e.g., #FF5733, coral, dark red, pastel pink)"
	}

	return commands.Command{
		Name: "pick",
		Args: commands.Arguments{
			{Name: OptionColor, Desc: desc, Autocomplete: true, MaxLength: MaxInputLength},
		},
		Desc:         "Pick a color for your name!",
		RunFunc:      h.Run,
		CompleteFunc: h.Complete,
	}
}

func (h *Handler) descriptions() bool {
	return h.Resolver.Descriptions()
}

// Run handles /pick.
func (h *Handler) Run(ctx context.Context, inv commands.Invocation) api.InteractionResponseData {
	ev := inv.Event
	input := inv.Options[OptionColor]

	if !ev.GuildID.IsValid() {
		return Message("This command can only be used in a server.")
	}
	if ev.Member == nil {
		return Message("Could not retrieve your member information.")
	}

	userID := inv.User().ID
	log := h.logger().With(
		zap.Stringer("guild_id", ev.GuildID),
		zap.Stringer("user_id", userID),
		zap.String("input", input))

	c, err := h.Resolver.Resolve(input)
	if err != nil {
		log.Debug("invalid color", zap.Error(err))

		var suggestions []string
		if errors.Is(err, color.ErrUnknownName) {
			suggestions = h.Resolver.Table().Suggest(input, maxSuggestions)
		}

		return Message(validationMessage(input, err, suggestions, h.descriptions()))
	}

	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	reconciler := role.NewReconciler(h.Client(ctx), h.Namer)
	reconciler.Logger = log

	release, wait := h.Cooldown.Allow(userID)
	if release == nil {
		// Picking the color already worn changes nothing, so it is answered
		// during the cooldown too.
		if result, err := reconciler.Check(ev.GuildID, userID, c); err == nil && result.Unchanged() {
			return successReply(ev.Member, input, c, result, h.now())
		}

		return Message(fmt.Sprintf(
			"Slow down! You can pick another color in %s.", wait.Round(time.Second)))
	}

	result, err := reconciler.Apply(ev.GuildID, userID, c)
	if err != nil {
		log.Warn("failed to update color role",
			zap.Error(err),
			zap.String("color", c.Hex),
			zap.Bool("created", result.Created),
			zap.Bool("added", result.Added),
			zap.Int("removed", len(result.Removed)),
			zap.Int("failures", len(result.Failures)))

		// The member may retry right away.
		release()
		return Message(platformMessage(err))
	}

	if result.Unchanged() {
		release()
	}

	log.Info("color picked",
		zap.String("color", c.Hex),
		zap.Stringer("source", c.Source),
		zap.Bool("unchanged", result.Unchanged()))

	return successReply(ev.Member, input, c, result, h.now())
}

// Complete suggests colors for the partially typed value.
func (h *Handler) Complete(inv commands.Invocation, focused string) []discord.StringChoice {
	focused = strings.TrimSpace(focused)

	var choices []discord.StringChoice

	// Offer non-name inputs as typed, so the choice shows what they resolve to.
	if focused != "" && len(focused) <= maxChoiceLength {
		c, err := h.Resolver.Resolve(focused)
		if err == nil && c.Source != color.FromName {
			choices = append(choices, discord.StringChoice{
				Name:  truncate(c.String(), maxChoiceLength),
				Value: focused,
			})
		}
	}

	table := h.Resolver.Table()
	for _, name := range table.Suggest(focused, commands.MaxChoices-len(choices)) {
		c, _ := table.Lookup(name)
		choices = append(choices, discord.StringChoice{Name: c.String(), Value: name})
	}

	return choices
}

func (h *Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.L()
	}
	return h.Logger
}

func (h *Handler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}
