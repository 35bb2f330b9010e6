package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the SDK entry point. Tokens and the response cache live on the
// client rather than in package globals so independent sessions do not bleed
// into each other.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	cache   *responseCache

	Organizations *OrganizationService
	Files         *FileService

	Instruments     *ResourceService[Instrument]
	Calibrations    *ResourceService[Calibration]
	Consumables     *ResourceService[Consumable]
	SOPDocuments    *ResourceService[SOPDocument]
	Audits          *ResourceService[Audit]
	NonConformances *ResourceService[NonConformance]
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

func WithTokenStore(store TokenStore) Option {
	return func(c *Client) { c.tokens = store }
}

func New(opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  NewMemoryTokenStore(),
		cache:   newResponseCache(cacheTTL),
	}
	if c.baseURL == "" {
		c.baseURL = "http://localhost:8000"
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Organizations = &OrganizationService{c: c}
	c.Files = &FileService{c: c}
	c.Instruments = &ResourceService[Instrument]{c: c, resource: "instruments"}
	c.Calibrations = &ResourceService[Calibration]{c: c, resource: "calibrations"}
	c.Consumables = &ResourceService[Consumable]{c: c, resource: "consumables"}
	c.SOPDocuments = &ResourceService[SOPDocument]{c: c, resource: "sop-documents"}
	c.Audits = &ResourceService[Audit]{c: c, resource: "audits"}
	c.NonConformances = &ResourceService[NonConformance]{c: c, resource: "non-conformances"}
	return c
}

// Tokens exposes the underlying store, mainly so callers can seed
// credentials obtained outside the SDK.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

// do issues one JSON request. On a 401 it refreshes the access token and
// replays the request exactly once; a second 401 propagates as an APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	resp, respBody, err := c.send(ctx, method, path, query, payload)
	if err != nil {
		return err
	}

	// Auth endpoints report their own 401s (bad credentials, revoked
	// refresh token); only application calls go through the refresh flow.
	if resp.StatusCode == http.StatusUnauthorized && !strings.HasPrefix(path, "/api/v1/auth/") {
		if err := c.refreshTokens(ctx); err != nil {
			return err
		}
		resp, respBody, err = c.send(ctx, method, path, query, payload)
		if err != nil {
			return err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		return json.Unmarshal(respBody, out)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Response, []byte, error) {

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Get(AccessTokenKey); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, respBody, nil
}

// refreshTokens exchanges the stored refresh token for a new pair. On any
// failure both tokens are cleared and ErrSessionExpired is returned.
func (c *Client) refreshTokens(ctx context.Context) error {

	refreshToken := c.tokens.Get(RefreshTokenKey)
	if refreshToken == "" {
		c.clearTokens()
		return ErrSessionExpired
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.clearTokens()
		return ErrSessionExpired
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.clearTokens()
		return ErrSessionExpired
	}

	var pair TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		c.clearTokens()
		return ErrSessionExpired
	}

	c.tokens.Set(AccessTokenKey, pair.AccessToken)
	c.tokens.Set(RefreshTokenKey, pair.RefreshToken)
	return nil
}

func (c *Client) clearTokens() {
	c.tokens.Delete(AccessTokenKey)
	c.tokens.Delete(RefreshTokenKey)
}

// Login authenticates and stores the returned token pair on the client.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {

	payload := map[string]string{"username": username, "password": password}
	var result LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, payload, &result)
	if err != nil {
		return nil, err
	}

	c.tokens.Set(AccessTokenKey, result.AccessToken)
	c.tokens.Set(RefreshTokenKey, result.RefreshToken)
	return &result, nil
}

// Logout revokes the server-side session and clears local state.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil, nil)
	c.clearTokens()
	c.ClearCacheAll()
	return err
}
