package reservationapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"frv-web/internal/domain/auth"
	"frv-web/internal/domain/reservation"
	"frv-web/internal/pkg/config"
	"frv-web/internal/pkg/errs"
	"frv-web/internal/pkg/reqid"
)

// maxErrorBody bounds how much of a body is read when only a message, or nothing, is wanted from it.
const maxErrorBody = 64 << 10

// Client talks to the Reservation API over HTTP/JSON. It never retries:
// every failure is reported to the caller, who decides what the user sees.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(cfg config.APIConfig, logger *slog.Logger) *Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return NewClientWithHTTP(cfg.BaseURL, &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}, logger)
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.With(slog.String("component", "reservation-api")),
	}
}

// CheckAvailability asks for the remaining slots of date (YYYY-MM-DD).
func (c *Client) CheckAvailability(ctx context.Context, date string) (reservation.Availability, error) {
	q := url.Values{}
	q.Set("date", date)

	var out reservation.Availability
	if err := c.do(ctx, http.MethodGet, "/reservations/availability?"+q.Encode(), "", nil, &out); err != nil {
		return reservation.Availability{}, errs.Wrapf(err, "check availability for %s", date)
	}
	return out, nil
}

// CreateReservation posts a validated draft and returns the identifier the API assigned,
// or reservation.CreatedIDFallback when the response carries none.
func (c *Client) CreateReservation(ctx context.Context, draft reservation.Draft) (string, error) {
	var raw map[string]any
	if err := c.do(ctx, http.MethodPost, "/reservations", "", draft.ToPayload(), &raw); err != nil {
		// the API accepted the reservation, it just did not answer with JSON
		if errs.Is(err, errs.ErrInvalidResponse) {
			c.logger.WarnContext(ctx, "reservation created with an unreadable response",
				slog.String("error", err.Error()))
			return reservation.CreatedIDFallback, nil
		}
		return "", errs.Wrap(err, "create reservation")
	}
	return reservation.CreatedID(raw), nil
}

func (c *Client) Login(ctx context.Context, credentials auth.Credentials) (string, error) {
	body := loginRequest{
		Username: credentials.Username(),
		Password: credentials.Password(),
	}

	var out loginResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", "", body, &out); err != nil {
		// a wrong password is a rejection of the login, not an expired session
		if errs.Is(err, errs.ErrUnauthorized) {
			return "", errs.Wrap(&errs.RejectedError{StatusCode: http.StatusUnauthorized}, "admin login")
		}
		return "", errs.Wrap(err, "admin login")
	}
	if out.Token == "" {
		return "", errs.Wrap(&errs.RejectedError{StatusCode: http.StatusOK, Message: "missing token"}, "admin login")
	}
	return out.Token, nil
}

// ListReservations returns all reservations, or only those of date when it is not empty.
func (c *Client) ListReservations(ctx context.Context, token, date string) ([]reservation.Reservation, error) {
	path := "/reservations"
	if date != "" {
		q := url.Values{}
		q.Set("date", date)
		path += "?" + q.Encode()
	}

	var raws []map[string]any
	if err := c.do(ctx, http.MethodGet, path, token, nil, &raws); err != nil {
		return nil, errs.Wrap(err, "list reservations")
	}
	return reservation.NormalizeAll(raws), nil
}

func (c *Client) UpdateStatus(ctx context.Context, token, id string, status reservation.Status) error {
	path := "/reservations/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPut, path, token, statusRequest{Status: status.String()}, nil); err != nil {
		return errs.Wrapf(err, "update status of reservation %s", id)
	}
	return nil
}

func (c *Client) DeleteReservation(ctx context.Context, token, id string) error {
	path := "/reservations/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return errs.Wrapf(err, "delete reservation %s", id)
	}
	return nil
}

// Close releases idle connections
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// do performs one request. A non-empty token is sent as a bearer credential;
// out may be nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "failed to marshal request body")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := reqid.From(ctx); id != "" {
		req.Header.Set(reqid.Header, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Reservation API unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return errs.Mark(errs.Wrap(err, "request failed"), errs.ErrTransport)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Reservation API call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status_code", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return errs.Wrapf(errs.ErrUnauthorized, "%s %s", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return rejection(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			// 2xx with an empty body: leave out at its zero value
			return nil
		}
		return errs.Mark(errs.Wrap(err, "failed to decode response"), errs.ErrInvalidResponse)
	}
	return nil
}

func rejection(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload errorResponse
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &payload)
	}

	return &errs.RejectedError{
		StatusCode: resp.StatusCode,
		Message:    payload.text(),
	}
}
