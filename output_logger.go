package kahuna

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"time"
)

// OutputLogger carries the SDK's own diagnostics to the host application,
// either through the configured callback or to stdout/stderr.
type OutputLogger struct {
	options OutputLoggerOptions
}

func (o *OutputLogger) Log(msg string, err error) {
	if o.isInitialized() && o.options.LogCallback != nil {
		o.options.LogCallback(sanitize(msg), err)
	} else if o.isInitialized() {
		timestamp := time.Now().Format(time.RFC3339)

		formatted := fmt.Sprintf("[%s][Kahuna] %s", timestamp, msg)

		if err != nil {
			formatted += err.Error()
			fmt.Fprintln(os.Stderr, sanitize(formatted))
		} else if msg != "" {
			fmt.Println(sanitize(formatted))
		}
	}
}

func (o *OutputLogger) Debug(any interface{}) {
	if !o.isInitialized() || !o.options.EnableDebug {
		return
	}
	bytes, _ := json.MarshalIndent(any, "", "	")
	o.Log(fmt.Sprintf("%+v\n", string(bytes)), nil)
}

func (o *OutputLogger) LogError(err interface{}) {
	errMsg := toError(err)
	stack := make([]byte, 1024)
	n := runtime.Stack(stack, false)
	o.Log(fmt.Sprintf("Error: %s\nStack Trace:\n%s", errMsg.Error(), string(stack[:n])), errMsg)
}

func (o *OutputLogger) isInitialized() bool {
	return o != nil
}

// API keys are secrets; scrub anything that looks like one before it reaches
// the host's logs.
func sanitize(s string) string {
	keyPattern := regexp.MustCompile(`(?i)(apiKey["'=: ]+)[a-zA-Z0-9_-]+`)
	return keyPattern.ReplaceAllString(s, "${1}****")
}
