package api

import "encoding/base64"

// BasicAuth derives the Authorization header value for a credential pair.
// The pair is joined with a colon and base64-encoded per RFC 7617.
//
// Inputs are not validated or normalized: empty or malformed credentials are
// encoded as given and surface as an authentication failure from the service
// rather than a local error.
func BasicAuth(user, token string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+token))
}
