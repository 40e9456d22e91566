package pick

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/colorpick/internal/color"
	"github.com/diamondburned/colorpick/internal/swatch"
)

// HelpReply renders the help embed. usage is the rendered command list.
func HelpReply(usage []byte, table color.Table, descriptions bool) api.InteractionResponseData {
	embed := discord.Embed{
		Title: "Color Picker Help",
		Description: "Change your name color with `/pick <color>`!\n\n" +
			"You can specify colors in several ways:",
		Color: swatch.Blurple,
		Fields: []discord.EmbedField{
			{
				Name: "Hex Codes",
				Value: "Use any 6-digit or 3-digit hex code:\n" +
					"`#FF5733` · `#F00` · `A1B2C3`",
			},
			{
				Name: "Color Names",
				Value: fmt.Sprintf(
					"Any of the %d CSS color names, like `coral`, `salmon` or `teal`.",
					table.Len()),
			},
		},
		Footer: &discord.EmbedFooter{
			Text: "Tip: start typing a color and pick one of the suggestions.",
		},
	}

	if descriptions {
		embed.Fields = append(embed.Fields,
			discord.EmbedField{
				Name:  "Base Colors",
				Value: codes(color.BaseColors()),
			},
			discord.EmbedField{
				Name:  "Modifiers",
				Value: "Combine these with a base color:\n" + codes(color.Modifiers()),
			},
		)
	}

	examples := "`/pick #FF5733`: hex code\n`/pick coral`: named color"
	if descriptions {
		examples += "\n`/pick dark red`: base + modifier\n`/pick neon green`: bright green"
	}

	embed.Fields = append(embed.Fields, discord.EmbedField{
		Name:  "Examples",
		Value: examples,
	})

	if len(usage) > 0 {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:  "Commands",
			Value: "```\n" + string(usage) + "\n```",
		})
	}

	return api.InteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}
}
