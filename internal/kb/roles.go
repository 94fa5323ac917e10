package kb

import "github.com/wrenlabs/knowhub/internal/api"

// Capabilities are the listing affordances derived from a group role.
type Capabilities struct {
	CanCreate bool
	CanEdit   bool
	CanDelete bool
}

// FullCapabilities applies to the personal scope, where the user owns
// everything.
func FullCapabilities() Capabilities {
	return Capabilities{CanCreate: true, CanEdit: true, CanDelete: true}
}

// CapabilitiesFor maps a group role to capabilities. Unknown roles get
// nothing: the backend rejects unauthorized writes anyway, so the UI fails
// closed rather than offering actions that cannot succeed.
func CapabilitiesFor(role api.Role) Capabilities {
	switch role {
	case api.RoleOwner, api.RoleMaintainer:
		return Capabilities{CanCreate: true, CanEdit: true, CanDelete: true}
	case api.RoleDeveloper:
		return Capabilities{CanCreate: true, CanEdit: true}
	default:
		return Capabilities{}
	}
}
