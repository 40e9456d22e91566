package pick

import (
	"bytes"
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/sendpart"
	"github.com/diamondburned/colorpick/internal/color"
	"github.com/diamondburned/colorpick/internal/role"
	"github.com/diamondburned/colorpick/internal/swatch"
	"github.com/diamondburned/colorpick/internal/urlutils"
	"github.com/dustin/go-humanize"
)

// successReply renders the embed confirming the color, with a swatch
// thumbnail attached.
func successReply(member *discord.Member, input string, c color.Color, result role.Result, now time.Time) api.InteractionResponseData {
	embed := discord.Embed{
		Color: role.DiscordColor(c.RGB),
		Fields: []discord.EmbedField{
			{Name: "Input", Value: code(input), Inline: true},
			{Name: "Hex Code", Value: "#" + c.Hex, Inline: true},
			{Name: "Role", Value: code(result.Role.Name), Inline: true},
			{
				Name:   "Role created",
				Value:  humanize.RelTime(result.Role.ID.Time(), now, "ago", "from now"),
				Inline: true,
			},
		},
	}

	if result.Unchanged() {
		embed.Title = "Already Set"
		embed.Description = fmt.Sprintf("Your name color is already **%s**.", truncate(c.String(), maxEchoLength))
	} else {
		embed.Title = "Color Applied!"
		embed.Description = fmt.Sprintf("Your name color has been set to **%s**.", truncate(c.String(), maxEchoLength))
	}

	if member != nil {
		embed.Author = &discord.EmbedAuthor{
			Name: displayName(member),
			Icon: urlutils.AvatarURL(member.User.AvatarURL()),
		}
	}

	data := api.InteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}

	png, err := swatch.PNG(c.RGB, swatch.DefaultSize)
	if err == nil {
		(*data.Embeds)[0].Thumbnail = &discord.EmbedThumbnail{URL: swatch.AttachmentURL}
		data.Files = []sendpart.File{{Name: swatch.Filename, Reader: bytes.NewReader(png)}}
	}

	return data
}

func displayName(member *discord.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	return member.User.Username
}
