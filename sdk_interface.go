package kahuna

// Credentials is the set of identity fields Kahuna links a device to on
// login.
type Credentials map[string]string

func (c Credentials) Add(key string, value string) {
	c[key] = value
}

// IsEmpty reports whether the credentials carry no identifying value at all.
func (c Credentials) IsEmpty() bool {
	for _, value := range c {
		if value != "" {
			return false
		}
	}
	return true
}

// Kahuna is the call contract of the downstream marketing SDK. Client is the
// production implementation; tests substitute a recording fake.
type Kahuna interface {
	// Init prepares the SDK with the project API key and the push sender ID.
	// It must be called before any other method.
	Init(apiKey string, pushSenderID string)
	// SetWrapperVersion tags outgoing traffic with the name and version of
	// the SDK wrapping this one.
	SetWrapperVersion(name string, version string)
	SetDebugMode(enabled bool)

	Start()
	Stop()
	Logout()

	NewCredentials() Credentials
	// Login may fail with ErrEmptyCredentials; no network call is made in
	// that case.
	Login(credentials Credentials) error

	// UserAttributes returns a copy of the current attribute snapshot.
	UserAttributes() map[string]string
	// SetUserAttributes replaces the attribute snapshot whole.
	SetUserAttributes(attributes map[string]string)

	TrackEvent(name string)
	TrackEventWithCount(name string, quantity int, revenueCents int)

	// Shutdown flushes any buffered events and stops background work.
	Shutdown()
}
