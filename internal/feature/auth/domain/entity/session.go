package entity

// Session is the authenticated state of this device.
// At most one session exists per process; it holds a copy of the user and no token.
type Session struct {
	// Loading is true until the persisted session has been restored at startup.
	Loading bool
	// User is nil when nobody is signed in.
	User *User
}

// IsAuthenticated returns true if a user is signed in.
func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// Email returns the signed-in user's email, or an empty string.
func (s Session) Email() string {
	if s.User == nil {
		return ""
	}
	return s.User.Email
}
