package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"ledgerdesk/internal/modules/gateway/domain"
	gatewayout "ledgerdesk/internal/modules/gateway/port/out"
	"ledgerdesk/internal/platform/clock"
	apperrors "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/id"
)

const requestIDHeader = "X-Request-ID"

// Client is the single chokepoint for API calls. Every call is one attempt;
// retry policy belongs to the caller.
type Client struct {
	baseURL string
	http    gatewayout.HTTPDoer
	tokens  gatewayout.TokenSource
	ids     id.Generator
	clock   clock.Clock
	logger  zerolog.Logger
}

func NewClient(baseURL string, httpDoer gatewayout.HTTPDoer, tokens gatewayout.TokenSource, ids id.Generator, clk clock.Clock, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpDoer,
		tokens:  tokens,
		ids:     ids,
		clock:   clk,
		logger:  logger.With().Str("component", "gateway").Logger(),
	}
}

func (c *Client) Do(ctx context.Context, method domain.Method, endpoint string, body any) (json.RawMessage, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: encode request body: %v", apperrors.ErrInvalidInput, err)
		}
		reader = bytes.NewReader(payload)
	}
	op := string(method) + " " + endpoint

	req, err := http.NewRequestWithContext(ctx, string(method), c.baseURL+endpoint, reader)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	requestID := c.ids.New()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	authenticated := false
	if c.tokens != nil {
		if token, ok := c.tokens.AccessToken(); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	started := c.clock.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("request_id", requestID).Str("method", string(method)).Str("path", endpoint).Msg("api request failed")
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", string(method)).
		Str("path", endpoint).
		Int("status", resp.StatusCode).
		Bool("authenticated", authenticated).
		Dur("elapsed", clock.Since(c.clock, started)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewGatewayError(resp.StatusCode, raw)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("%w: body is not json", apperrors.ErrInvalidResponse)}
	}
	return json.RawMessage(trimmed), nil
}
