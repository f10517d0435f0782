package adapter

// MissingTokenPolicy decides what an authenticated operation does when the
// session holds no token. Both policies clear the session first and never
// touch the network.
type MissingTokenPolicy int

const (
	// FailOnMissingToken fails the call with [ErrAuthRequired]. Used by
	// create, update and detach.
	FailOnMissingToken MissingTokenPolicy = iota

	// SucceedOnMissingToken treats the absent token as "already logged out"
	// and reports success. Used by delete and attach.
	SucceedOnMissingToken
)

func (p MissingTokenPolicy) String() string {
	switch p {
	case FailOnMissingToken:
		return "fail"
	case SucceedOnMissingToken:
		return "succeed"
	default:
		return "unknown"
	}
}
