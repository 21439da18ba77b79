package session

// Identifiable is the capability the session manager needs from an account:
// a stable numeric identity it can park in the token store and resolve later.
type Identifiable interface {
	SessionIdentity() uint
}
