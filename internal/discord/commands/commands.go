// Package commands holds the slash command registry.
package commands

import (
	"bytes"
	"context"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"
)

// MaxChoices is the most autocomplete choices Discord accepts.
const MaxChoices = 25

// ErrUnknownCommand is returned for commands that are not registered.
var ErrUnknownCommand = errors.New("unknown command")

type Commands []Command

// Help renders the help text.
func (cmds Commands) Help() []byte {
	var builder bytes.Buffer
	for i, cmd := range cmds {
		if i > 0 {
			builder.WriteString("\n")
		}
		cmd.writeHelp(&builder)
	}

	return builder.Bytes()
}

// Run runs the named command. It errors out if the command is not found.
func (cmds Commands) Run(ctx context.Context, name string, inv Invocation) (api.InteractionResponseData, error) {
	cmd := cmds.FindExact(name)
	if cmd == nil || cmd.RunFunc == nil {
		return api.InteractionResponseData{}, errors.Wrapf(ErrUnknownCommand, "%q", name)
	}

	return cmd.RunFunc(ctx, inv), nil
}

// Complete asks the named command for autocomplete choices. At most
// MaxChoices are returned.
func (cmds Commands) Complete(name string, inv Invocation, focused string) ([]discord.StringChoice, error) {
	cmd := cmds.FindExact(name)
	if cmd == nil {
		return nil, errors.Wrapf(ErrUnknownCommand, "%q", name)
	}
	if cmd.CompleteFunc == nil {
		return nil, nil
	}

	choices := cmd.CompleteFunc(inv, focused)
	if len(choices) > MaxChoices {
		choices = choices[:MaxChoices]
	}

	return choices, nil
}

// FindExact finds the exact command. It returns a pointer to the command
// directly in the slice if found. If not, nil is returned.
func (cmds Commands) FindExact(name string) *Command {
	for i, cmd := range cmds {
		if cmd.Name == name {
			return &cmds[i]
		}
	}
	return nil
}

// Find finds commands starting with the given name. The searching is case
// insensitive.
func (cmds Commands) Find(name string) Commands {
	name = strings.ToLower(name)

	var found Commands

	for _, cmd := range cmds {
		if strings.HasPrefix(strings.ToLower(cmd.Name), name) {
			found = append(found, cmd)
		}
	}

	return found
}

// CreateData returns the registration payload of every command.
func (cmds Commands) CreateData() []api.CreateCommandData {
	data := make([]api.CreateCommandData, len(cmds))
	for i, cmd := range cmds {
		data[i] = cmd.CreateData()
	}
	return data
}
