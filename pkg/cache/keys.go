package cache

import "strings"

// Keyer produces cache keys for each facade operation.
// Every operation has its own prefix so keys never collide across
// operations that share an argument.
type Keyer interface {
	UserKey(login string) string
	ReposKey(login string) string
	SearchKey(query string) string
	EventsKey(login string) string
	LanguagesKey(login string) string
}

// DefaultKeyer implements the plain "<operation>-<argument>" key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// UserKey returns the key for a user profile.
func (DefaultKeyer) UserKey(login string) string { return "user-" + login }

// ReposKey returns the key for a user's recent repositories.
func (DefaultKeyer) ReposKey(login string) string { return "repos-" + login }

// SearchKey returns the key for a user search. Queries are case-insensitive.
func (DefaultKeyer) SearchKey(query string) string { return "search-" + strings.ToLower(query) }

// EventsKey returns the key for a user's public event stream.
func (DefaultKeyer) EventsKey(login string) string { return "events-" + login }

// LanguagesKey returns the key for a user's per-repo language breakdown.
func (DefaultKeyer) LanguagesKey(login string) string { return "repos-languages-" + login }

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = DefaultKeyer{}
