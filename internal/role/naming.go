// Package role reconciles a member's color role with a resolved color.
package role

import (
	"strings"

	"github.com/diamondburned/colorpick/internal/color"
)

// Namer owns the color role naming convention. Role names are the only marker
// of which roles belong to this bot, so both creation and removal go through
// the same Namer.
type Namer struct {
	// Prefix is prepended to the hex code, e.g. "color-".
	Prefix string
	// Table holds the names that also count as color roles. It may be empty.
	Table color.Table
}

// RoleName returns the role name for c. Every color is named after its hex
// code, so "coral", "#FF7F50" and "ff7f50" share one role.
func (n Namer) RoleName(c color.Color) string {
	return n.Prefix + c.Hex
}

// IsColorRoleName returns true if name follows the naming convention: the
// prefix followed by six uppercase hex digits or by a lowercase color name.
func (n Namer) IsColorRoleName(name string) bool {
	if !strings.HasPrefix(name, n.Prefix) {
		return false
	}

	name = name[len(n.Prefix):]
	return isUpperHex6(name) || n.Table.Has(name)
}

func isUpperHex6(s string) bool {
	if len(s) != 6 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if c := s[i]; !('0' <= c && c <= '9' || 'A' <= c && c <= 'F') {
			return false
		}
	}

	return true
}
