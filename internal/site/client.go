// Package site renders the public storefront and the inline admin editor on top of the content API.
package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// APIError is any other non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Client talks JSON to the content API. Admin calls send the token as the raw Authorization header.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient expects baseURL to include the /api prefix, e.g. http://localhost:5000/api.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	if err := c.do(ctx, http.MethodGet, "/servicios", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, http.MethodGet, "/resenas", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", "", map[string]string{"password": password}, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &APIError{Status: http.StatusOK, Message: "empty token"}
	}
	return out.Token, nil
}

func (c *Client) CreateService(ctx context.Context, token string, svc domain.Service) (*domain.Service, error) {
	var out domain.Service
	if err := c.do(ctx, http.MethodPost, "/servicios", token, svc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, token, id string, svc domain.Service) (*domain.Service, error) {
	var out domain.Service
	if err := c.do(ctx, http.MethodPut, "/servicios/"+id, token, svc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, token, id string) (bool, error) {
	return c.delete(ctx, "/servicios/"+id, token)
}

func (c *Client) CreateReview(ctx context.Context, r domain.Review) (*domain.Review, error) {
	var out domain.Review
	if err := c.do(ctx, http.MethodPost, "/resenas", "", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReview(ctx context.Context, token, id string) (bool, error) {
	return c.delete(ctx, "/resenas/"+id, token)
}

func (c *Client) SubmitContact(ctx context.Context, sub domain.ContactSubmission) error {
	var out struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/contacto", "", sub, &out); err != nil {
		return err
	}
	if !out.Success {
		return &APIError{Status: http.StatusOK, Message: "contact not confirmed"}
	}
	return nil
}

func (c *Client) delete(ctx context.Context, path, token string) (bool, error) {
	var out struct {
		OK      bool `json:"ok"`
		Deleted bool `json:"deleted"`
	}
	if err := c.do(ctx, http.MethodDelete, path, token, nil, &out); err != nil {
		return false, err
	}
	return out.Deleted, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(raw))
}
