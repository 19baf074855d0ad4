package cache

// ScopedKeyer wraps a Keyer with a prefix for credential isolation.
// GitHub returns extra fields to an authenticated caller looking at its
// own account, so responses fetched with a token must not be served to
// callers without one.
//
// Example usage:
//
//	// Keys for requests made with a personal access token
//	authKeyer := NewScopedKeyer(NewDefaultKeyer(), TokenScope(token))
//
//	// Keys for anonymous requests
//	anonKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TokenScope returns the key prefix for requests made with token.
// Only a short hash of the token ends up in the key.
func TokenScope(token string) string {
	return "auth:" + Hash([]byte(token))[:12] + ":"
}

// UserKey generates a prefixed user key.
func (k *ScopedKeyer) UserKey(login string) string { return k.prefix + k.inner.UserKey(login) }

// ReposKey generates a prefixed repos key.
func (k *ScopedKeyer) ReposKey(login string) string { return k.prefix + k.inner.ReposKey(login) }

// SearchKey generates a prefixed search key.
func (k *ScopedKeyer) SearchKey(query string) string { return k.prefix + k.inner.SearchKey(query) }

// EventsKey generates a prefixed events key.
func (k *ScopedKeyer) EventsKey(login string) string { return k.prefix + k.inner.EventsKey(login) }

// LanguagesKey generates a prefixed language breakdown key.
func (k *ScopedKeyer) LanguagesKey(login string) string {
	return k.prefix + k.inner.LanguagesKey(login)
}
