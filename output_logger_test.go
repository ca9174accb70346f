package kahuna

import (
	"errors"
	"strings"
	"testing"
)

func TestLogSanitizesAPIKeys(t *testing.T) {
	messages := make([]string, 0)
	logger := &OutputLogger{options: OutputLoggerOptions{
		LogCallback: func(message string, err error) {
			messages = append(messages, message)
		},
	}}

	logger.Log(`failed with apiKey=abc123DEF`, nil)

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if strings.Contains(messages[0], "abc123DEF") {
		t.Errorf("API key leaked into log output: %q", messages[0])
	}
	if !strings.Contains(messages[0], "****") {
		t.Errorf("Expected the key to be masked: %q", messages[0])
	}
}

func TestLogErrorIncludesStack(t *testing.T) {
	var gotMessage string
	var gotErr error
	logger := &OutputLogger{options: OutputLoggerOptions{
		LogCallback: func(message string, err error) {
			gotMessage = message
			gotErr = err
		},
	}}

	logger.LogError(errors.New("boom"))

	if gotErr == nil || gotErr.Error() != "boom" {
		t.Errorf("Expected the error to be forwarded, got %v", gotErr)
	}
	if !strings.Contains(gotMessage, "Stack Trace") {
		t.Errorf("Expected a stack trace in the message")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *OutputLogger
	logger.Log("message", nil)
	logger.LogError("error")
	logger.Debug(struct{}{})
}

func TestDebugRequiresFlag(t *testing.T) {
	messages := make([]string, 0)
	logger := &OutputLogger{options: OutputLoggerOptions{
		LogCallback: func(message string, err error) {
			messages = append(messages, message)
		},
	}}

	logger.Debug(map[string]string{"k": "v"})
	if len(messages) != 0 {
		t.Errorf("Debug should be silent without EnableDebug")
	}

	logger.options.EnableDebug = true
	logger.Debug(map[string]string{"k": "v"})
	if len(messages) != 1 {
		t.Errorf("Debug should log with EnableDebug set")
	}
}
