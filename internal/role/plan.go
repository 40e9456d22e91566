package role

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/colorpick/internal/color"
)

// Plan is what has to happen for a member to wear exactly one color role.
type Plan struct {
	// Name is the target role name.
	Name string
	// Target is the existing target role. It is nil if Create is true.
	Target *discord.Role
	// Create is true if no role is named Name yet.
	Create bool
	// Add is true if the member does not hold the target role.
	Add bool
	// Remove holds the member's other color roles.
	Remove []discord.Role
}

// Unchanged returns true if the member already wears only the target color.
func (p Plan) Unchanged() bool {
	return !p.Create && !p.Add && len(p.Remove) == 0
}

// Plan computes the changes from fresh snapshots of the guild's roles and the
// member's role IDs. Role names are matched exactly.
func (n Namer) Plan(guildRoles []discord.Role, memberRoles []discord.RoleID, c color.Color) Plan {
	plan := Plan{Name: n.RoleName(c)}

	for i, role := range guildRoles {
		if role.Name == plan.Name {
			plan.Target = &guildRoles[i]
			break
		}
	}

	plan.Create = plan.Target == nil
	plan.Add = plan.Create || !hasRole(memberRoles, plan.Target.ID)

	byID := make(map[discord.RoleID]discord.Role, len(guildRoles))
	for _, role := range guildRoles {
		byID[role.ID] = role
	}

	for _, id := range memberRoles {
		role, ok := byID[id]
		if !ok || !n.IsColorRoleName(role.Name) {
			continue
		}
		if plan.Target != nil && role.ID == plan.Target.ID {
			continue
		}
		plan.Remove = append(plan.Remove, role)
	}

	return plan
}

func hasRole(ids []discord.RoleID, id discord.RoleID) bool {
	for _, roleID := range ids {
		if roleID == id {
			return true
		}
	}
	return false
}
