package demo

// Signup is the form state the demo binds to its controls. TOML tags
// let the persistent flavors round-trip it through a store backend.
type Signup struct {
	Name           string `toml:"name"`
	Email          string `toml:"email"`
	Role           string `toml:"role"`
	Newsletter     bool   `toml:"newsletter"`
	Attachment     string `toml:"attachment"`
	AttachmentSize int64  `toml:"attachment_size"`
}

// Roles the role selector cycles through.
var roles = []string{"developer", "designer", "manager"}

func defaultSignup() Signup {
	return Signup{Role: roles[0]}
}

func roleIndex(role string) int {
	for i, r := range roles {
		if r == role {
			return i
		}
	}
	return 0
}

func nextRole(role string, delta int) string {
	n := len(roles)
	idx := (roleIndex(role) + delta%n + n) % n
	return roles[idx]
}
