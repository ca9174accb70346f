package kahuna

import "runtime"

const (
	sdkType    = "go-kahuna"
	sdkVersion = "1.2.0"
)

// kahunaMetadata rides along with every outgoing request so the Kahuna
// backend can attribute traffic to an SDK build, wrapper, session, and
// device.
type kahunaMetadata struct {
	SDKType         string `json:"sdkType"`
	SDKVersion      string `json:"sdkVersion"`
	LanguageVersion string `json:"languageVersion"`
	SessionID       string `json:"sessionID"`
	PushSenderID    string `json:"pushSenderId,omitempty"`
	WrapperName     string `json:"wrapperName,omitempty"`
	WrapperVersion  string `json:"wrapperVersion,omitempty"`
	Country         string `json:"country,omitempty"`
	DeviceFamily    string `json:"deviceFamily,omitempty"`
	DeviceOS        string `json:"deviceOS,omitempty"`
}

func getKahunaMetadata() kahunaMetadata {
	return kahunaMetadata{
		SDKType:         sdkType,
		SDKVersion:      sdkVersion,
		LanguageVersion: runtime.Version()[2:],
		SessionID:       SessionID(),
	}
}
