package growstocks

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/mime"
)

const formMime = "application/x-www-form-urlencoded"

// DefaultRedirects configures fallback redirect uris for operations that
// send a user back to the caller's site. Auth and Pay may embed Site with
// a %s verb, e.g. Site "https://example.com" and Pay "%s/thanks".
type DefaultRedirects struct {
	Site string
	Auth string
	Pay  string
}

type Config struct {
	ClientId  int
	Secret    string
	Scopes    *Scopes // default for endpoints taking scopes, profile-only when nil
	Redirects DefaultRedirects
	ApiUrl    string // overrides the production api url when set
}

// Client talks to the growstocks api. All state is read-only after
// NewClient, so a single Client is safe for concurrent use.
type Client struct {
	config     *Config
	httpClient fastshot.ClientHttpMethods

	Auth *Auth
	Pay  *Pay
}

func NewClient(config *Config) *Client {
	cfg := *config
	if cfg.Scopes == nil {
		cfg.Scopes = DefaultScopes()
	}
	if cfg.ApiUrl == "" {
		cfg.ApiUrl = defaultApiUrl
	}
	c := &Client{
		config:     &cfg,
		httpClient: setupHttpClient(cfg.ApiUrl),
	}
	c.Auth = &Auth{client: c}
	c.Pay = &Pay{client: c}
	return c
}

// ClientId returns the application id given to NewClient.
func (c *Client) ClientId() int {
	return c.config.ClientId
}

// Secret returns the application secret given to NewClient.
func (c *Client) Secret() string {
	return c.config.Secret
}

// postForm sends a form-encoded request and decodes the response envelope.
// Every failure mode of the round trip surfaces as a *RequestError carrying
// the response body.
func (c *Client) postForm(path string, form url.Values, data envelope) error {
	fastResp, err := c.httpClient.
		POST(path).
		Header().Add("Content-Type", formMime).
		Body().AsString(form.Encode()).
		Send()
	if err != nil {
		return err
	}
	body, _ := fastResp.Body().AsString()
	if fastResp.Status().IsError() {
		return &RequestError{Body: body}
	}
	if err := json.Unmarshal([]byte(body), data); err != nil {
		return &RequestError{Body: body}
	}
	if !data.ok() {
		return &RequestError{Body: body}
	}
	return nil
}

// resolveRedirect picks the redirect uri for an operation: the explicit
// argument wins, otherwise the configured fallback with the site expanded
// into it.
func (c *Client) resolveRedirect(uri string, fallback string) (string, error) {
	if uri != "" {
		return uri, nil
	}
	if fallback == "" {
		return "", ErrNoRedirectUri
	}
	if strings.Contains(fallback, "%s") {
		fallback = fmt.Sprintf(fallback, c.config.Redirects.Site)
	}
	return fallback, nil
}

func setupHttpClient(apiUrl string) fastshot.ClientHttpMethods {
	return fastshot.NewClient(apiUrl).
		Header().AddAccept(mime.JSON).
		Build()
}
