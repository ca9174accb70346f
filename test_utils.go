package kahuna

// fakeKahuna records every downstream call for assertions. It mirrors the
// Client's observable behavior: attribute snapshots are copied both ways and
// Login rejects empty credentials without recording them.
type fakeKahuna struct {
	initAPIKey       string
	initPushSenderID string
	wrapperName      string
	wrapperVersion   string
	debug            bool

	starts  int
	stops   int
	logouts int

	logins          []Credentials
	attributes      map[string]string
	attributeWrites []map[string]string
	events          []fakeEvent
	shutdowns       int
}

type fakeEvent struct {
	name         string
	quantity     int
	revenueCents int
	counted      bool
}

func newFakeKahuna() *fakeKahuna {
	return &fakeKahuna{attributes: make(map[string]string)}
}

func (f *fakeKahuna) Init(apiKey string, pushSenderID string) {
	f.initAPIKey = apiKey
	f.initPushSenderID = pushSenderID
}

func (f *fakeKahuna) SetWrapperVersion(name string, version string) {
	f.wrapperName = name
	f.wrapperVersion = version
}

func (f *fakeKahuna) SetDebugMode(enabled bool) {
	f.debug = enabled
}

func (f *fakeKahuna) Start() { f.starts++ }

func (f *fakeKahuna) Stop() { f.stops++ }

func (f *fakeKahuna) Logout() {
	f.logouts++
	f.attributes = make(map[string]string)
}

func (f *fakeKahuna) NewCredentials() Credentials {
	return Credentials{}
}

func (f *fakeKahuna) Login(credentials Credentials) error {
	if credentials.IsEmpty() {
		return ErrEmptyCredentials
	}
	f.logins = append(f.logins, credentials)
	return nil
}

func (f *fakeKahuna) UserAttributes() map[string]string {
	snapshot := make(map[string]string, len(f.attributes))
	for key, value := range f.attributes {
		snapshot[key] = value
	}
	return snapshot
}

func (f *fakeKahuna) SetUserAttributes(attributes map[string]string) {
	snapshot := make(map[string]string, len(attributes))
	for key, value := range attributes {
		snapshot[key] = value
	}
	f.attributes = snapshot
	f.attributeWrites = append(f.attributeWrites, snapshot)
}

func (f *fakeKahuna) TrackEvent(name string) {
	f.events = append(f.events, fakeEvent{name: name})
}

func (f *fakeKahuna) TrackEventWithCount(name string, quantity int, revenueCents int) {
	f.events = append(f.events, fakeEvent{
		name:         name,
		quantity:     quantity,
		revenueCents: revenueCents,
		counted:      true,
	})
}

func (f *fakeKahuna) Shutdown() { f.shutdowns++ }
