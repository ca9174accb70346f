// Package kahuna maps Segment analytics callbacks onto the Kahuna
// marketing API
package kahuna

import (
	"fmt"
	"strings"
)

// Kahuna user attribute keys owned by this integration.
const (
	categoriesViewedKey               = "Categories Viewed"
	lastViewedCategoryKey             = "Last Viewed Category"
	lastProductViewedNameKey          = "Last Product Viewed Name"
	lastProductAddedToCartNameKey     = "Last Product Added To Cart Name"
	lastProductAddedToCartCategoryKey = "Last Product Added To Cart Category"
	lastPurchaseDiscountKey           = "Last Purchase Discount"
)

const (
	maxCategoriesViewedEntries = 50
	noneValue                  = "None"
)

// Credential keys recognized by Kahuna. Traits under any other key become
// plain user attributes.
const (
	UserIDKey       = "user_id"
	UsernameKey     = "username"
	EmailKey        = "email"
	FacebookKey     = "fbid"
	TwitterKey      = "twtr"
	LinkedInKey     = "lnk"
	InstallTokenKey = "install_token"
	GooglePlusKey   = "gplus_id"
)

// The host analytics SDK sends the external user ID under this trait key.
const segmentUserIDKey = "userId"

const wrapperName = "segment"

var credentialKeys = map[string]struct{}{
	UsernameKey:     {},
	EmailKey:        {},
	FacebookKey:     {},
	TwitterKey:      {},
	LinkedInKey:     {},
	InstallTokenKey: {},
	GooglePlusKey:   {},
}

// Integration translates host analytics events into Kahuna calls. It keeps
// no state of its own between callbacks; the host runtime is expected to
// serialize calls into a single instance.
type Integration struct {
	kahuna        Kahuna
	trackAllPages bool
}

// NewIntegration builds an Integration backed by a live Client. Settings
// carry the destination configuration handed down by the host: "apiKey" and
// "pushSenderId" strings and the "trackAllPages" bool.
func NewIntegration(settings ValueMap, options *Options) *Integration {
	if options == nil {
		options = &Options{}
	}
	return newIntegration(NewClient(options), settings, options)
}

// NewIntegrationWithClient is NewIntegration with an injected downstream
// implementation.
func NewIntegrationWithClient(kahuna Kahuna, settings ValueMap, options *Options) *Integration {
	if options == nil {
		options = &Options{}
	}
	return newIntegration(kahuna, settings, options)
}

func newIntegration(kahuna Kahuna, settings ValueMap, options *Options) *Integration {
	InitializeGlobalOutputLogger(options.OutputLoggerOptions)
	InitializeGlobalSessionID()

	integration := &Integration{
		kahuna:        kahuna,
		trackAllPages: settings.GetBool("trackAllPages", false),
	}

	kahuna.Init(settings.GetString("apiKey", ""), settings.GetString("pushSenderId", ""))
	kahuna.SetWrapperVersion(wrapperName, sdkVersion)
	kahuna.SetDebugMode(options.LogLevel >= LogLevelDebug)

	return integration
}

// Dispatch routes one host event to its handler. A panic in a handler is
// recovered and logged so that it never escapes back into the host runtime.
func (i *Integration) Dispatch(event HostEvent) {
	defer func() {
		if r := recover(); r != nil {
			Logger().LogError(toError(r))
		}
	}()

	switch event.Kind {
	case EventIdentify:
		if event.Identify != nil {
			i.Identify(event.Identify.UserID, event.Identify.Traits)
		}
	case EventTrack:
		if event.Track != nil {
			i.Track(event.Track.Event, event.Track.Properties)
		}
	case EventScreen:
		if event.Screen != nil {
			i.Screen(event.Screen.Name)
		}
	case EventReset:
		i.Reset()
	case EventSessionStart:
		i.SessionStarted()
	case EventSessionStop:
		i.SessionStopped()
	}
}

// Identify routes recognized credential traits into a Kahuna login and
// everything else into the user attribute snapshot.
func (i *Integration) Identify(userID string, traits ValueMap) {
	credentials := i.kahuna.NewCredentials()
	attributes := i.kahuna.UserAttributes()

	for key, value := range traits {
		if _, recognized := credentialKeys[key]; recognized {
			credentials.Add(key, stringify(value))
		} else if key == segmentUserIDKey {
			credentials.Add(UserIDKey, userID)
		} else {
			attributes[key] = stringify(value)
		}
	}

	if err := i.kahuna.Login(credentials); err != nil {
		Logger().Log("Use Reset() instead of passing empty/null values to Identify().", err)
	}
	i.kahuna.SetUserAttributes(attributes)
}

// Track updates the derived user attributes for the recognized e-commerce
// events and then forwards the raw event unconditionally.
func (i *Integration) Track(event string, properties ValueMap) {
	switch strings.ToLower(event) {
	case "viewed product category":
		i.updateAttributes(viewedCategoryPatch(properties.Category()))
	case "viewed product":
		i.updateAttributes(viewedProductPatch(properties.ProductName()))
		i.updateAttributes(viewedCategoryPatch(properties.Category()))
	case "added product":
		i.updateAttributes(addedProductPatch(properties.ProductName()))
		i.updateAttributes(addedProductCategoryPatch(properties.Category()))
	case "completed order":
		i.updateAttributes(completedOrderPatch(properties.Discount()))
	}

	quantity := properties.Quantity()
	revenue := properties.Revenue()
	if quantity == -1 && revenue == 0 {
		i.kahuna.TrackEvent(event)
	} else {
		// Kahuna requires revenue in cents.
		i.kahuna.TrackEventWithCount(event, quantity, toCents(revenue))
	}
}

// Screen forwards a synthesized screen event when trackAllPages is set.
func (i *Integration) Screen(name string) {
	if !i.trackAllPages {
		return
	}
	i.kahuna.TrackEvent(fmt.Sprintf("Viewed %s Screen", name))
}

// Reset logs the current user out of Kahuna, clearing its session and
// credentials.
func (i *Integration) Reset() {
	i.kahuna.Logout()
}

func (i *Integration) SessionStarted() {
	i.kahuna.Start()
}

func (i *Integration) SessionStopped() {
	i.kahuna.Stop()
}
