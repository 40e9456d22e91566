package role

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/colorpick/internal/color"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client is the part of the Discord REST API that the Reconciler needs.
// *api.Client implements it; its Roles and Member are never cached.
type Client interface {
	Roles(guildID discord.GuildID) ([]discord.Role, error)
	Member(guildID discord.GuildID, userID discord.UserID) (*discord.Member, error)
	CreateRole(guildID discord.GuildID, data api.CreateRoleData) (*discord.Role, error)
	AddRole(guildID discord.GuildID, userID discord.UserID, roleID discord.RoleID, data api.AddRoleData) error
	RemoveRole(guildID discord.GuildID, userID discord.UserID, roleID discord.RoleID, reason api.AuditLogReason) error
}

var _ Client = (*api.Client)(nil)

// DiscordColor converts c for Discord, where zero means "no color". Black
// becomes the closest non-zero color.
func DiscordColor(c color.RGB) discord.Color {
	if v := c.Uint32(); v != 0 {
		return discord.Color(v)
	}
	return 0x000001
}

// Reconciler applies Plans through a Client. A Reconciler is meant to live for
// a single command invocation.
type Reconciler struct {
	Client Client
	Namer  Namer
	Logger *zap.Logger
}

// NewReconciler creates a Reconciler logging to the global zap logger.
func NewReconciler(client Client, namer Namer) *Reconciler {
	return &Reconciler{
		Client: client,
		Namer:  namer,
		Logger: zap.L(),
	}
}

// Result is the outcome of Apply. Completed calls stay completed even if
// others failed.
type Result struct {
	Plan Plan
	// Role is the target role. It is zero if it could not be created.
	Role     discord.Role
	Created  bool
	Added    bool
	Removed  []discord.Role
	Failures []*PlatformError
}

// Unchanged returns true if the member already wore only the requested color.
func (r Result) Unchanged() bool {
	return r.Plan.Unchanged()
}

// Err returns nil if every call succeeded. Otherwise, the first failure is
// returned, annotated with the failure count if there are more.
func (r Result) Err() error {
	switch len(r.Failures) {
	case 0:
		return nil
	case 1:
		return r.Failures[0]
	default:
		return errors.Wrapf(r.Failures[0], "%d role updates failed, first", len(r.Failures))
	}
}

// Check plans the change for c from freshly fetched roles without making it.
func (r *Reconciler) Check(guildID discord.GuildID, userID discord.UserID, c color.Color) (Result, error) {
	roles, err := r.Client.Roles(guildID)
	if err != nil {
		return Result{}, newPlatformError("list guild roles", err)
	}

	member, err := r.Client.Member(guildID, userID)
	if err != nil {
		return Result{}, newPlatformError("get member", err)
	}

	result := Result{Plan: r.Namer.Plan(roles, member.RoleIDs, c)}
	if result.Plan.Target != nil {
		result.Role = *result.Plan.Target
	}

	return result, nil
}

// Apply makes the member wear exactly one color role, the one for c. The
// guild's roles and the member are fetched fresh. If the role has to be
// created and that fails, nothing else is attempted; adding and removing are
// independent of each other.
func (r *Reconciler) Apply(guildID discord.GuildID, userID discord.UserID, c color.Color) (Result, error) {
	result, err := r.Check(guildID, userID, c)
	if err != nil {
		return result, err
	}

	plan := result.Plan

	if plan.Create {
		role, err := r.Client.CreateRole(guildID, api.CreateRoleData{
			Name:  plan.Name,
			Color: DiscordColor(c.RGB),
			AddRoleData: api.AddRoleData{
				AuditLogReason: api.AuditLogReason("Color role requested by " + userID.String()),
			},
		})
		if err != nil {
			result.Failures = append(result.Failures, newPlatformError("create role "+plan.Name, err))
			return result, result.Err()
		}

		r.logger().Info("created color role",
			zap.String("role", role.Name),
			zap.Stringer("role_id", role.ID),
			zap.Stringer("guild_id", guildID))

		result.Role = *role
		result.Created = true
	}

	if plan.Add {
		err := r.Client.AddRole(guildID, userID, result.Role.ID, api.AddRoleData{
			AuditLogReason: "Color picked by user",
		})
		if err != nil {
			result.Failures = append(result.Failures, newPlatformError("add role "+plan.Name, err))
		} else {
			result.Added = true
		}
	}

	for _, old := range plan.Remove {
		if err := r.Client.RemoveRole(guildID, userID, old.ID, "Switching color"); err != nil {
			result.Failures = append(result.Failures, newPlatformError("remove role "+old.Name, err))
			continue
		}
		result.Removed = append(result.Removed, old)
	}

	return result, result.Err()
}

func (r *Reconciler) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.L()
	}
	return r.Logger
}
