// Package profile defines the stored Git identity profile and the
// collection persisted in the profiles file.
package profile

// Profile represents one Git identity
type Profile struct {
	Username string `json:"git_username"` // user.name
	Email    string `json:"git_email"`    // user.email
	Alias    string `json:"user_alias"`   // Short name for switching (e.g., work, personal)
}

// Collection is the ordered list of stored profiles, insertion order.
type Collection []Profile

// FindByAlias returns the profile with the given alias.
func (c Collection) FindByAlias(alias string) (Profile, bool) {
	for _, p := range c {
		if p.Alias == alias {
			return p, true
		}
	}
	return Profile{}, false
}

// HasAlias reports whether any profile uses the given alias.
func (c Collection) HasAlias(alias string) bool {
	_, ok := c.FindByAlias(alias)
	return ok
}

// HasUsername reports whether any profile uses the given username.
func (c Collection) HasUsername(username string) bool {
	for _, p := range c {
		if p.Username == username {
			return true
		}
	}
	return false
}

// HasEmail reports whether any profile uses the given email.
func (c Collection) HasEmail(email string) bool {
	for _, p := range c {
		if p.Email == email {
			return true
		}
	}
	return false
}

// RemoveByAlias returns the collection without the profile matching
// alias, and whether a profile was removed.
func (c Collection) RemoveByAlias(alias string) (Collection, bool) {
	kept := make(Collection, 0, len(c))
	removed := false
	for _, p := range c {
		if p.Alias == alias {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	return kept, removed
}

// Aliases returns the aliases of all profiles, in insertion order.
func (c Collection) Aliases() []string {
	aliases := make([]string, 0, len(c))
	for _, p := range c {
		aliases = append(aliases, p.Alias)
	}
	return aliases
}
