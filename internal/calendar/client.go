package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lumeabeauty/studio-scheduler/internal/config"
	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
)

// Event mirrors the fields the provider needs to show a confirmed
// booking in the staff member's calendar.
type Event struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// Client is the narrow contract this system has with the external
// calendar provider. All calls are best-effort from the caller's point
// of view; this package just reports errors.
type Client interface {
	FreeBusy(ctx context.Context, calendarID string, dayStart, dayEnd time.Time) ([]domain.Interval, error)
	CreateEvent(ctx context.Context, calendarID string, ev Event) (string, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// ------------------------------------------------------------------
// HTTP implementation
// ------------------------------------------------------------------

type HTTPClient struct {
	baseURL    string
	tokens     *TokenCache
	httpClient *http.Client
}

func NewHTTPClient(cfg *config.Config) *HTTPClient {
	hc := &http.Client{Timeout: 10 * time.Second}
	return &HTTPClient{
		baseURL:    cfg.CalendarBaseURL,
		tokens:     NewTokenCache(cfg.CalendarTokenURL, cfg.CalendarClientID, cfg.CalendarClientSecret, hc),
		httpClient: hc,
	}
}

func (c *HTTPClient) FreeBusy(
	ctx context.Context,
	calendarID string,
	dayStart, dayEnd time.Time,
) ([]domain.Interval, error) {

	payload := map[string]string{
		"timeMin": dayStart.Format(time.RFC3339),
		"timeMax": dayEnd.Format(time.RFC3339),
	}

	var body struct {
		Busy []struct {
			Start time.Time `json:"start"`
			End   time.Time `json:"end"`
		} `json:"busy"`
	}

	path := fmt.Sprintf("/calendars/%s/freebusy", url.PathEscape(calendarID))
	if err := c.do(ctx, http.MethodPost, path, payload, &body); err != nil {
		return nil, err
	}

	intervals := make([]domain.Interval, 0, len(body.Busy))
	for _, b := range body.Busy {
		intervals = append(intervals, domain.Interval{Start: b.Start, End: b.End})
	}
	return intervals, nil
}

func (c *HTTPClient) CreateEvent(
	ctx context.Context,
	calendarID string,
	ev Event,
) (string, error) {

	var body struct {
		ID string `json:"id"`
	}

	path := fmt.Sprintf("/calendars/%s/events", url.PathEscape(calendarID))
	if err := c.do(ctx, http.MethodPost, path, ev, &body); err != nil {
		return "", err
	}
	if body.ID == "" {
		return "", fmt.Errorf("calendar returned event without id")
	}
	return body.ID, nil
}

func (c *HTTPClient) DeleteEvent(
	ctx context.Context,
	calendarID, eventID string,
) error {

	path := fmt.Sprintf(
		"/calendars/%s/events/%s",
		url.PathEscape(calendarID),
		url.PathEscape(eventID),
	)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("calendar token: %w", err)
	}

	var reqBody *bytes.Buffer
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// an already-gone event is fine on delete
	if method == http.MethodDelete && resp.StatusCode == http.StatusNotFound {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("calendar %s %s returned %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// ------------------------------------------------------------------
// Disabled implementation (no CALENDAR_BASE_URL configured)
// ------------------------------------------------------------------

type Disabled struct{}

func (Disabled) FreeBusy(context.Context, string, time.Time, time.Time) ([]domain.Interval, error) {
	return nil, nil
}

func (Disabled) CreateEvent(context.Context, string, Event) (string, error) {
	return "", fmt.Errorf("calendar sync disabled")
}

func (Disabled) DeleteEvent(context.Context, string, string) error {
	return nil
}

var (
	_ Client = (*HTTPClient)(nil)
	_ Client = Disabled{}
)
