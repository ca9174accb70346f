package kahuna

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const DefaultEndpoint = "https://api.usekahuna.com/v2"

const (
	maxRetries        = 5
	backoffMultiplier = 10
)

type transport struct {
	api      string
	apiKey   string
	metadata kahunaMetadata
	client   *http.Client
	options  *Options
}

func newTransport(apiKey string, metadata kahunaMetadata, options *Options) *transport {
	api := defaultString(options.API, DefaultEndpoint)
	api = strings.TrimSuffix(api, "/")

	return &transport{
		api:      api,
		apiKey:   apiKey,
		metadata: metadata,
		client:   &http.Client{},
		options:  options,
	}
}

func (transport *transport) postRequest(
	endpoint string,
	in interface{},
	out interface{},
) error {
	return transport.postRequestInternal(endpoint, in, out, 0, 0)
}

func (transport *transport) retryablePostRequest(
	endpoint string,
	in interface{},
	out interface{},
	retries int,
) error {
	return transport.postRequestInternal(endpoint, in, out, retries, time.Second)
}

func (transport *transport) postRequestInternal(
	endpoint string,
	in interface{},
	out interface{},
	retries int,
	backoff time.Duration,
) error {
	if transport.options.LocalMode {
		return nil
	}
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	statusCode := 0
	err = retry(retries, backoff, func() (bool, error) {
		response, err := transport.doRequest(endpoint, body)
		if err != nil {
			return response != nil, err
		}
		defer response.Body.Close()
		statusCode = response.StatusCode

		if response.StatusCode >= 200 && response.StatusCode < 300 {
			// The API acks most writes with an empty body.
			decodeErr := json.NewDecoder(response.Body).Decode(&out)
			if decodeErr == io.EOF {
				decodeErr = nil
			}
			return false, decodeErr
		}

		return shouldRetry(response.StatusCode), fmt.Errorf("http response error code: %d", response.StatusCode)
	})
	if err != nil {
		return &TransportError{
			RequestMetadata: &RequestMetadata{
				StatusCode: statusCode,
				Endpoint:   endpoint,
				Retries:    retries,
			},
			Err: err,
		}
	}
	return nil
}

func (transport *transport) doRequest(endpoint string, body []byte) (*http.Response, error) {
	req, err := http.NewRequest("POST", transport.api+endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Add("KAHUNA-API-KEY", transport.apiKey)
	req.Header.Add("KAHUNA-CLIENT-TIME", strconv.FormatInt(getUnixMilli(), 10))
	req.Header.Add("KAHUNA-SDK-TYPE", transport.metadata.SDKType)
	req.Header.Add("KAHUNA-SDK-VERSION", transport.metadata.SDKVersion)
	req.Header.Add("KAHUNA-SESSION-ID", transport.metadata.SessionID)

	return transport.client.Do(req)
}

func retry(retries int, backoff time.Duration, fn func() (bool, error)) error {
	for {
		if retry, err := fn(); retry {
			if retries <= 0 {
				return err
			}

			retries--
			time.Sleep(backoff)
			backoff = backoff * backoffMultiplier
		} else {
			return err
		}
	}
}

func shouldRetry(code int) bool {
	switch code {
	case 408, 500, 502, 503, 504, 522, 524, 599:
		return true
	default:
		return false
	}
}
