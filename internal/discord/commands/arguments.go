package commands

import (
	"bytes"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
)

// Argument is a string option of a command.
type Argument struct {
	Name     string
	Desc     string
	Optional bool
	// Autocomplete makes Discord ask the command's CompleteFunc for choices.
	Autocomplete bool
	// MaxLength is the longest value Discord lets through. Zero means no limit.
	MaxLength int
}

type Arguments []Argument

func (args Arguments) writeHelp(builder *bytes.Buffer) {
	for _, arg := range args {
		builder.WriteByte(' ')

		if arg.Optional {
			builder.WriteByte('[')
			builder.WriteString(arg.Name)
			builder.WriteByte(']')
		} else {
			builder.WriteByte('<')
			builder.WriteString(arg.Name)
			builder.WriteByte('>')
		}
	}
}

func (args Arguments) options() discord.CommandOptions {
	if len(args) == 0 {
		return nil
	}

	options := make(discord.CommandOptions, len(args))
	for i, arg := range args {
		opt := &discord.StringOption{
			OptionName:   arg.Name,
			Description:  arg.Desc,
			Required:     !arg.Optional,
			Autocomplete: arg.Autocomplete,
		}
		if arg.MaxLength > 0 {
			opt.MaxLength = option.NewInt(arg.MaxLength)
		}

		options[i] = opt
	}

	return options
}
