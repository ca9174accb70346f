package kahuna

import (
	"fmt"
	"sync"
)

// Client talks to the Kahuna API over HTTP. It holds the logged-in
// credentials and the user attribute snapshot for the current session, and
// ships tracked events through a buffered event logger. All calls are
// best-effort: request failures are logged, never surfaced.
type Client struct {
	options   *Options
	transport *transport
	logger    *eventLogger
	lookup    *deviceLookup

	mu          sync.RWMutex
	credentials Credentials
	attributes  map[string]string
	started     bool
	debug       bool
}

func NewClient(options *Options) *Client {
	if options == nil {
		options = &Options{}
	}
	return &Client{
		options:    options,
		attributes: make(map[string]string),
	}
}

func (c *Client) Init(apiKey string, pushSenderID string) {
	if c.transport != nil {
		Logger().Log("Kahuna is already initialized.", nil)
		return
	}

	c.lookup = newDeviceLookup(c.options.IPCountryOptions, c.options.UAParserOptions)
	c.lookup.init()

	metadata := getKahunaMetadata()
	metadata.PushSenderID = pushSenderID
	if country, ok := c.lookup.lookupIP(c.options.IPAddress); ok {
		metadata.Country = country
	}
	if device := c.lookup.parseUserAgent(c.options.UserAgent); device != nil {
		metadata.DeviceFamily = device.Device.Family
		metadata.DeviceOS = device.Os.Family
	}

	c.transport = newTransport(apiKey, metadata, c.options)
	c.logger = newEventLogger(c.transport, c.options)
}

// SetWrapperVersion tags outgoing traffic with the wrapping SDK's identity.
// Call between Init and the first request.
func (c *Client) SetWrapperVersion(name string, version string) {
	if c.transport == nil {
		return
	}
	c.transport.metadata.WrapperName = name
	c.transport.metadata.WrapperVersion = version
}

func (c *Client) SetDebugMode(enabled bool) {
	c.mu.Lock()
	c.debug = enabled
	c.mu.Unlock()
}

func (c *Client) Start() {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	c.post("/session/start", c.sessionInput())
}

func (c *Client) Stop() {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return
	}
	c.started = false
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.flush(false)
	}
	c.post("/session/stop", c.sessionInput())
}

func (c *Client) NewCredentials() Credentials {
	return Credentials{}
}

func (c *Client) Login(credentials Credentials) error {
	if credentials.IsEmpty() {
		return ErrEmptyCredentials
	}

	c.mu.Lock()
	c.credentials = credentials
	c.mu.Unlock()

	if c.debugEnabled() {
		Logger().Log(fmt.Sprintf("login with %d credential fields", len(credentials)), nil)
	}
	c.post("/login", loginInput{
		Credentials: credentials,
		Metadata:    c.metadata(),
	})
	return nil
}

func (c *Client) Logout() {
	c.mu.Lock()
	c.credentials = nil
	c.attributes = make(map[string]string)
	c.mu.Unlock()

	c.post("/logout", c.sessionInput())
}

// UserAttributes returns a copy of the current snapshot; callers mutate the
// copy and hand it back through SetUserAttributes.
func (c *Client) UserAttributes() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(map[string]string, len(c.attributes))
	for key, value := range c.attributes {
		snapshot[key] = value
	}
	return snapshot
}

func (c *Client) SetUserAttributes(attributes map[string]string) {
	snapshot := make(map[string]string, len(attributes))
	for key, value := range attributes {
		snapshot[key] = value
	}

	c.mu.Lock()
	c.attributes = snapshot
	c.mu.Unlock()

	c.post("/user_attributes", userAttributesInput{
		Attributes: snapshot,
		Metadata:   c.metadata(),
	})
}

func (c *Client) TrackEvent(name string) {
	if name == "" {
		return
	}
	c.logEvent(trackedEvent{EventName: name})
}

func (c *Client) TrackEventWithCount(name string, quantity int, revenueCents int) {
	if name == "" {
		return
	}
	c.logEvent(trackedEvent{
		EventName:    name,
		Count:        quantity,
		RevenueCents: revenueCents,
	})
}

// Shutdown flushes buffered events and stops the background flusher. Using
// the client is undefined after Shutdown has been called.
func (c *Client) Shutdown() {
	if c.logger != nil {
		c.logger.flush(true)
	}
}

func (c *Client) logEvent(evt trackedEvent) {
	if c.logger == nil {
		return
	}
	if c.debugEnabled() {
		Logger().Debug(evt)
	}
	c.logger.logEvent(evt)
}

func (c *Client) post(endpoint string, input interface{}) {
	if c.transport == nil {
		Logger().Log("Kahuna must be initialized before use.", nil)
		return
	}
	var res struct{}
	if err := c.transport.postRequest(endpoint, input, &res); err != nil {
		Logger().LogError(err)
	}
}

func (c *Client) metadata() kahunaMetadata {
	if c.transport == nil {
		return getKahunaMetadata()
	}
	return c.transport.metadata
}

func (c *Client) debugEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.debug
}

func (c *Client) sessionInput() sessionInput {
	return sessionInput{Metadata: c.metadata()}
}

type sessionInput struct {
	Metadata kahunaMetadata `json:"metadata"`
}

type loginInput struct {
	Credentials Credentials    `json:"credentials"`
	Metadata    kahunaMetadata `json:"metadata"`
}

type userAttributesInput struct {
	Attributes map[string]string `json:"attributes"`
	Metadata   kahunaMetadata    `json:"metadata"`
}
