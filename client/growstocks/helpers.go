package growstocks

import "encoding/base64"

// The api expects redirect uris base64-encoded in query parameters.
func encodeRedirect(uri string) string {
	return base64.StdEncoding.EncodeToString([]byte(uri))
}
