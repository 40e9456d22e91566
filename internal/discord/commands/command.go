package commands

import (
	"bytes"
	"context"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
)

// Invocation is a single use of a command.
type Invocation struct {
	Event *discord.InteractionEvent
	// Options maps option names to their string values.
	Options map[string]string
}

// NewInvocation reads the options of a slash command interaction.
func NewInvocation(ev *discord.InteractionEvent, data *discord.CommandInteraction) Invocation {
	opts := make(map[string]string, len(data.Options))
	for _, opt := range data.Options {
		opts[opt.Name] = opt.String()
	}

	return Invocation{Event: ev, Options: opts}
}

// NewCompletion reads the options of an autocomplete interaction. focused is
// the value being typed.
func NewCompletion(ev *discord.InteractionEvent, data *discord.AutocompleteInteraction) (inv Invocation, focused string) {
	opts := make(map[string]string, len(data.Options))
	for _, opt := range data.Options {
		opts[opt.Name] = opt.String()
		if opt.Focused {
			focused = opts[opt.Name]
		}
	}

	return Invocation{Event: ev, Options: opts}, focused
}

// User returns the invoking user, or nil if the event carries none.
func (inv Invocation) User() *discord.User {
	switch {
	case inv.Event.Member != nil:
		return &inv.Event.Member.User
	case inv.Event.User != nil:
		return inv.Event.User
	default:
		return nil
	}
}

type Command struct {
	Name string
	Args Arguments
	Desc string
	// RunFunc handles an invocation. The returned message is sent as the
	// follow-up of a deferred response.
	RunFunc func(ctx context.Context, inv Invocation) api.InteractionResponseData
	// CompleteFunc answers autocomplete requests. It may be nil.
	CompleteFunc func(inv Invocation, focused string) []discord.StringChoice
}

func (cmd Command) writeHelp(builder *bytes.Buffer) {
	builder.WriteByte('/')
	builder.WriteString(cmd.Name)
	cmd.Args.writeHelp(builder)

	if cmd.Desc != "" {
		builder.WriteString("\n\t")
		builder.WriteString(cmd.Desc)
	}
}

// CreateData returns the command's registration payload.
func (cmd Command) CreateData() api.CreateCommandData {
	return api.CreateCommandData{
		Name:        cmd.Name,
		Description: cmd.Desc,
		Options:     cmd.Args.options(),
	}
}
