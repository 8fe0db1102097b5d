package growstocks

import "errors"

// ErrNoRedirectUri is returned when an operation needs a redirect uri and
// neither the argument nor the configured default provides one.
var ErrNoRedirectUri = errors.New("growstocks: redirect uri is not set")

// RequestError reports a failed api call: an HTTP error status, an
// undecodable body, or an envelope with success=false. Body holds the raw
// response body.
type RequestError struct {
	Body string
}

func (e *RequestError) Error() string {
	return "growstocks: request to api was unsuccessful: " + e.Body
}
