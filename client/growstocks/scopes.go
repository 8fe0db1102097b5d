package growstocks

import "strings"

// Scopes selects which optional user fields the api should return.
//
// The api implies scopes: balance or discord requires profile, and email
// supersedes profile. The implication is applied when building the
// transmitted form, the struct itself is left as written.
type Scopes struct {
	Profile bool
	Email   bool
	Balance bool
	Discord bool
}

// DefaultScopes returns the scopes used when none are configured,
// profile only.
func DefaultScopes() *Scopes {
	return &Scopes{Profile: true}
}

func (s *Scopes) normalized() Scopes {
	out := *s
	if out.Balance || out.Discord {
		out.Profile = true
	}
	if out.Email {
		out.Profile = false
	}
	return out
}

// List returns the enabled scope names after implication, in the order the
// api expects.
func (s *Scopes) List() []string {
	n := s.normalized()
	var list []string
	if n.Profile {
		list = append(list, "profile")
	}
	if n.Email {
		list = append(list, "email")
	}
	if n.Balance {
		list = append(list, "balance")
	}
	if n.Discord {
		list = append(list, "discord")
	}
	return list
}

// String returns the comma-joined form transmitted to the api.
func (s *Scopes) String() string {
	return strings.Join(s.List(), ",")
}
