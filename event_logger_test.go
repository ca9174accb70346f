package kahuna

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestEventLoggerBuffersUntilFlush(t *testing.T) {
	batches := make([][]trackedEvent, 0)
	var mu sync.Mutex
	testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		var input logEventInput
		_ = json.NewDecoder(req.Body).Decode(&input)
		mu.Lock()
		batches = append(batches, input.Events)
		mu.Unlock()
		res.WriteHeader(http.StatusOK)
	}))
	defer testServer.Close()

	opt := &Options{
		API:             testServer.URL,
		LoggingInterval: time.Hour,
	}
	logger := newEventLogger(newTransport("test-key", getKahunaMetadata(), opt), opt)

	logger.logEvent(trackedEvent{EventName: "one"})
	logger.logEvent(trackedEvent{EventName: "two"})

	mu.Lock()
	buffered := len(batches)
	mu.Unlock()
	if buffered != 0 {
		t.Errorf("Expected events to buffer, got %d batches", buffered)
	}

	logger.flush(true)

	mu.Lock()
	defer mu.Unlock()
	if len(batches) != 1 || len(batches[0]) != 2 {
		t.Fatalf("Expected one batch of 2 events, got %+v", batches)
	}
	if batches[0][0].EventName != "one" || batches[0][1].EventName != "two" {
		t.Errorf("Events sent out of order: %+v", batches[0])
	}
	if batches[0][0].Time == 0 {
		t.Errorf("Expected event time to be stamped")
	}
}

func TestEventLoggerFlushesWhenBufferFills(t *testing.T) {
	received := make(chan int, 1)
	testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		var input logEventInput
		_ = json.NewDecoder(req.Body).Decode(&input)
		received <- len(input.Events)
		res.WriteHeader(http.StatusOK)
	}))
	defer testServer.Close()

	opt := &Options{
		API:                  testServer.URL,
		LoggingInterval:      time.Hour,
		LoggingMaxBufferSize: 3,
	}
	logger := newEventLogger(newTransport("test-key", getKahunaMetadata(), opt), opt)

	logger.logEvent(trackedEvent{EventName: "one"})
	logger.logEvent(trackedEvent{EventName: "two"})
	logger.logEvent(trackedEvent{EventName: "three"})

	select {
	case n := <-received:
		if n != 3 {
			t.Errorf("Expected a batch of 3 events, got %d", n)
		}
	case <-time.After(time.Second):
		t.Errorf("Expected a flush when the buffer filled")
	}
}

func TestEventLoggerReportsSendFailures(t *testing.T) {
	errs := make([]error, 0)
	InitializeGlobalOutputLogger(OutputLoggerOptions{
		LogCallback: func(message string, err error) {
			if err != nil {
				errs = append(errs, err)
			}
		},
	})
	testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		res.WriteHeader(http.StatusBadRequest)
	}))
	defer testServer.Close()

	opt := &Options{
		API:             testServer.URL,
		LoggingInterval: time.Hour,
	}
	logger := newEventLogger(newTransport("test-key", getKahunaMetadata(), opt), opt)

	logger.logEvent(trackedEvent{EventName: "one"})
	logger.flush(true)

	if len(errs) != 1 {
		t.Fatalf("Expected the send failure to be logged, got %d errors", len(errs))
	}
	var logEventErr *LogEventError
	if !errors.As(errs[0], &logEventErr) || logEventErr.Events != 1 {
		t.Errorf("Expected a LogEventError for 1 event, got %v", errs[0])
	}
}
