package kahuna

// EventKind enumerates the host callbacks this integration consumes.
type EventKind int

const (
	EventIdentify EventKind = iota
	EventTrack
	EventScreen
	EventReset
	EventSessionStart
	EventSessionStop
)

// HostEvent is the tagged union handed to Integration.Dispatch. The payload
// pointer matching Kind is set; the others are nil.
type HostEvent struct {
	Kind     EventKind
	Identify *IdentifyPayload
	Track    *TrackPayload
	Screen   *ScreenPayload
}

type IdentifyPayload struct {
	UserID string   `json:"userId"`
	Traits ValueMap `json:"traits"`
}

type TrackPayload struct {
	Event      string   `json:"event"`
	Properties ValueMap `json:"properties"`
}

type ScreenPayload struct {
	Name string `json:"name"`
}

// ValueMap is a loosely typed bag of settings or event properties.
type ValueMap map[string]interface{}

// Gets the string value at the given key in the ValueMap
// Returns the fallback string if the item at the given key is not found or not of type string
func (v ValueMap) GetString(key string, fallback string) string {
	if val, ok := v[key]; ok {
		switch s := val.(type) {
		case string:
			return s
		}
	}
	return fallback
}

// Gets the boolean value at the given key in the ValueMap
// Returns the fallback boolean if the item at the given key is not found or not of type boolean
func (v ValueMap) GetBool(key string, fallback bool) bool {
	if val, ok := v[key]; ok {
		switch b := val.(type) {
		case bool:
			return b
		}
	}
	return fallback
}

// Gets the numeric value at the given key in the ValueMap
// Returns the fallback if the item at the given key is not found or not numeric
func (v ValueMap) GetNumber(key string, fallback float64) float64 {
	if val, ok := v[key]; ok {
		if num, ok := getNumericValue(val); ok {
			return num
		}
	}
	return fallback
}

// Gets the integer value at the given key in the ValueMap
// Returns the fallback if the item at the given key is not found or not numeric
func (v ValueMap) GetInt(key string, fallback int) int {
	if val, ok := v[key]; ok {
		if num, ok := getNumericValue(val); ok {
			return int(num)
		}
	}
	return fallback
}

// Segment e-commerce property accessors.

func (v ValueMap) Category() string {
	return v.GetString("category", "")
}

func (v ValueMap) ProductName() string {
	return v.GetString("name", "")
}

// Quantity returns -1 when the property is absent, matching the "no
// quantity" sentinel the track forwarding logic keys off.
func (v ValueMap) Quantity() int {
	return v.GetInt("quantity", -1)
}

func (v ValueMap) Revenue() float64 {
	return v.GetNumber("revenue", 0)
}

func (v ValueMap) Discount() float64 {
	return v.GetNumber("discount", 0)
}
