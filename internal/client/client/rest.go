package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/logging"
)

const (
	usersPath       = "/Users"
	requestIDHeader = "X-Request-Id"
	maxBodySize     = 4 << 20
)

var ErrInvalidBaseURL = errors.New("invalid base url")

// RESTClient implements Client over HTTP+JSON.
type RESTClient struct {
	baseURL      string
	http         *http.Client
	log          logging.Logger
	newRequestID func() string
}

// NewRESTClient builds a client for baseURL (scheme and host required, any
// trailing slash is dropped). A zero timeout leaves the http.Client default.
func NewRESTClient(baseURL string, timeout time.Duration, log logging.Logger) (*RESTClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	return &RESTClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		log:          log,
		newRequestID: uuid.NewString,
	}, nil
}

func (c *RESTClient) List(ctx context.Context) ([]models.User, error) {
	body, err := c.do(ctx, "list users", http.MethodGet, usersPath, nil)
	if err != nil {
		return nil, err
	}

	users, err := models.DecodeUsers(body)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (c *RESTClient) Create(ctx context.Context, name string) (models.User, error) {
	body, err := c.do(ctx, "create user", http.MethodPost, usersPath, models.NameInput{Name: name})
	if err != nil {
		return models.User{}, err
	}

	u, err := models.DecodeUser(body)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (c *RESTClient) Update(ctx context.Context, id string, name string) (models.User, error) {
	body, err := c.do(ctx, "update user", http.MethodPut, userPath(id), models.NameInput{Name: name})
	if err != nil {
		return models.User{}, err
	}

	u, err := models.DecodeUser(body)
	if err != nil {
		return models.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// Delete ignores the response body. A 404 counts as success.
func (c *RESTClient) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, "delete user", http.MethodDelete, userPath(id), nil)

	var te *TransportError
	if errors.As(err, &te) && te.Status == http.StatusNotFound {
		c.log.Debug(ctx, "user already absent on server", "id", id, "request_id", te.RequestID)
		return nil
	}
	return err
}

func userPath(id string) string {
	return usersPath + "/" + url.PathEscape(id)
}

func (c *RESTClient) do(ctx context.Context, op, method, path string, in any) ([]byte, error) {
	requestID := c.newRequestID()
	fail := func(status int, err error) error {
		return &TransportError{Op: op, Method: method, Path: path, Status: status, RequestID: requestID, Err: err}
	}

	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fail(0, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fail(0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fail(0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fail(resp.StatusCode, err)
	}

	c.log.Debug(ctx, "round trip",
		"op", op,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fail(resp.StatusCode, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status))
	}

	return body, nil
}
