package kahuna

import (
	"sync"
	"time"
)

// trackedEvent is one entry in the Kahuna event feed. Count and RevenueCents
// are only set for e-commerce events carrying a quantity or revenue.
type trackedEvent struct {
	EventName    string `json:"eventName"`
	Count        int    `json:"count,omitempty"`
	RevenueCents int    `json:"revenueCents,omitempty"`
	Time         int64  `json:"time"`
}

type logEventInput struct {
	Events   []trackedEvent `json:"events"`
	Metadata kahunaMetadata `json:"metadata"`
}

type logEventResponse struct{}

// eventLogger buffers tracked events and ships them in batches, on a timer
// and whenever the buffer fills up.
type eventLogger struct {
	events    []trackedEvent
	transport *transport
	tick      *time.Ticker
	mu        sync.Mutex
	maxEvents int
}

func newEventLogger(transport *transport, options *Options) *eventLogger {
	loggingInterval := time.Minute
	maxEvents := 500
	if options.LoggingInterval > 0 {
		loggingInterval = options.LoggingInterval
	}
	if options.LoggingMaxBufferSize > 0 {
		maxEvents = options.LoggingMaxBufferSize
	}
	log := &eventLogger{
		events:    make([]trackedEvent, 0),
		transport: transport,
		tick:      time.NewTicker(loggingInterval),
		maxEvents: maxEvents,
	}

	go log.backgroundFlush()

	return log
}

func (l *eventLogger) backgroundFlush() {
	for range l.tick.C {
		l.flush(false)
	}
}

func (l *eventLogger) logEvent(evt trackedEvent) {
	if evt.Time == 0 {
		evt.Time = getUnixMilli()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, evt)
	if len(l.events) >= l.maxEvents {
		l.flushInternal(false)
	}
}

func (l *eventLogger) flush(closing bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.flushInternal(closing)
}

func (l *eventLogger) flushInternal(closing bool) {
	if closing {
		l.tick.Stop()
	}
	if len(l.events) == 0 {
		return
	}

	if closing {
		l.sendEvents(l.events)
	} else {
		go l.sendEvents(l.events)
	}

	l.events = make([]trackedEvent, 0)
}

func (l *eventLogger) sendEvents(events []trackedEvent) {
	input := logEventInput{
		Events:   events,
		Metadata: l.transport.metadata,
	}
	var res logEventResponse
	err := l.transport.retryablePostRequest("/events", input, &res, maxRetries)
	if err != nil {
		Logger().LogError(&LogEventError{Err: err, Events: len(events)})
	}
}
