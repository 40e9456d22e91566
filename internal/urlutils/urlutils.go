package urlutils

import (
	"net/url"
	"strconv"

	"github.com/diamondburned/arikawa/v3/discord"
)

// AvatarURL wraps the URL with URL queries for a small avatar.
func AvatarURL(URL string) string {
	return Sized(URL, 64)
}

// Sized wraps the URL with the size query.
func Sized(URL string, size int) string {
	if URL == "" {
		return ""
	}

	u, err := url.Parse(URL)
	if err != nil {
		return URL
	}

	q := u.Query()
	q.Set("size", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	return u.String()
}

// InvitePermissions are the permissions the bot asks for when invited.
const InvitePermissions = discord.PermissionManageRoles

// InviteURL generates the OAuth2 URL that adds the application to a guild
// with slash commands and the given permissions.
func InviteURL(appID discord.AppID, perms discord.Permissions) string {
	q := url.Values{}
	q.Set("client_id", appID.String())
	q.Set("scope", "bot applications.commands")
	q.Set("permissions", strconv.FormatUint(uint64(perms), 10))

	return "https://discord.com/oauth2/authorize?" + q.Encode()
}
