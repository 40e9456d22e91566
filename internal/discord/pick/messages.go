package pick

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/diamondburned/colorpick/internal/color"
	"github.com/diamondburned/colorpick/internal/role"
	"github.com/pkg/errors"
)

// Message is a plain text reply.
func Message(content string) api.InteractionResponseData {
	return api.InteractionResponseData{
		Content: option.NewNullableString(content),
	}
}

// maxEchoLength is the most characters of user input repeated in a reply.
const maxEchoLength = 100

// truncate cuts s to at most n characters, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

// code formats s as inline code, truncated to maxEchoLength. Backticks would
// break out of it.
func code(s string) string {
	return "`" + strings.ReplaceAll(truncate(s, maxEchoLength), "`", "'") + "`"
}

func codes(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = code(w)
	}
	return strings.Join(quoted, ", ")
}

func examples(descriptions bool) string {
	if descriptions {
		return "Try a hex code like `#FF5733`, a color name like `coral`, " +
			"or a description like `dark red`, `pastel pink`, `light blue`."
	}
	return "Try a hex code like `#FF5733` or a color name like `coral`."
}

// validationMessage explains why input is not a color. suggestions are shown
// for unknown names.
func validationMessage(input string, err error, suggestions []string, descriptions bool) string {
	switch {
	case errors.Is(err, color.ErrEmptyInput):
		return "Please give me a color. " + examples(descriptions)

	case errors.Is(err, color.ErrInvalidHex):
		return fmt.Sprintf(
			"%s is not a valid hex code. Use 3 or 6 hex digits, like `#F00` or `#FF5733`.",
			code(strings.TrimSpace(input)))

	default:
		msg := fmt.Sprintf("Could not recognize %s as a valid color.", code(strings.TrimSpace(input)))
		if len(suggestions) > 0 {
			msg += " Did you mean " + codes(suggestions) + "?"
		}
		return msg + " " + examples(descriptions)
	}
}

// platformMessage explains a failed role update without the raw API error.
func platformMessage(err error) string {
	const prefix = "Couldn't update your color role"

	switch role.Kind(err) {
	case role.PermissionDenied:
		return prefix + ": I'm missing permissions. Please make sure I have " +
			"the **Manage Roles** permission and that my role is above the color roles."
	case role.RateLimited:
		return prefix + ": Discord is rate limiting me. Please try again in a moment."
	default:
		return prefix + ". Please try again in a moment."
	}
}
