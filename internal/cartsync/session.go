package cartsync

// Session is the caller's authentication capability. The zero value is an
// anonymous session.
type Session struct {
	Token  string
	UserID string
}

// Authenticated reports whether a token is present.
func (s Session) Authenticated() bool { return s.Token != "" }

// Identity is the stable key that decides whether a session change needs a
// fresh bootstrap. All anonymous sessions share the empty identity.
func (s Session) Identity() string {
	if !s.Authenticated() {
		return ""
	}
	if s.UserID != "" {
		return s.UserID
	}
	return s.Token
}
