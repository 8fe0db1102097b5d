package growstocks

import (
	"net/url"
	"strconv"
)

// Auth issues requests against the authorization endpoints. Not meant to be
// used outside a Client, reach it through Client.Auth.
type Auth struct {
	client *Client
}

// AuthorizationUrl builds the url to send a user to for authorization. An
// empty redirectUri falls back to the configured default redirect; nil
// scopes fall back to the client default.
func (a *Auth) AuthorizationUrl(redirectUri string, scopes *Scopes) (string, error) {
	redirectUri, err := a.client.resolveRedirect(redirectUri, a.client.config.Redirects.Auth)
	if err != nil {
		return "", err
	}
	if scopes == nil {
		scopes = a.client.config.Scopes
	}
	params := url.Values{}
	params.Set("client", strconv.Itoa(a.client.config.ClientId))
	params.Set("scopes", scopes.String())
	params.Set("redirect_uri", encodeRedirect(redirectUri))
	return authorizeUrl + "?" + params.Encode(), nil
}

// FetchUser exchanges the authorization token granted after the user passed
// through the AuthorizationUrl flow for the user it belongs to.
func (a *Auth) FetchUser(token string, scopes *Scopes) (*User, error) {
	if scopes == nil {
		scopes = a.client.config.Scopes
	}
	form := url.Values{}
	form.Set("secret", a.client.config.Secret)
	form.Set("token", token)
	form.Set("scopes", scopes.String())
	var rsp userResponse
	if err := a.client.postForm(userEndpoint, form, &rsp); err != nil {
		return nil, err
	}
	return rsp.User.toUser()
}
