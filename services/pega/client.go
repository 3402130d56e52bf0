// File: services/pega/client.go
package pega

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripdesk/utils"

	"go.uber.org/zap"
)

// caseIDPrefix is the work-class qualifier Pega expects in front of the
// business identifier on case lookups, separated by a space.
const caseIDPrefix = "MYORG-BOOKTICK-WORK"

// Package-level HTTP client for Pega calls.
var pegaHTTPClient = &http.Client{Timeout: 15 * time.Second}

// Client issues case-management calls against the Pega REST API. It is
// stateless aside from reading the active credential on every call.
type Client struct {
	baseURL    string
	caseTypeID string
	creds      *CredentialStore
}

func NewClient(baseURL, caseTypeID string, creds *CredentialStore) *Client {
	return &Client{
		baseURL:    trimBaseURL(baseURL),
		caseTypeID: caseTypeID,
		creds:      creds,
	}
}

func trimBaseURL(base string) string {
	return strings.TrimSuffix(base, "/")
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.creds.Token())
	return req, nil
}

// CreateBooking opens a new booking case for the given customer and returns a
// human-readable confirmation embedding the case's business identifier.
func (c *Client) CreateBooking(ctx context.Context, name, phone, email string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"content": map[string]any{
			"pyLabel":       "Booking Booking",
			"CustomerEmail": email,
			"CustomerPhone": phone,
			"CustomerName":  name,
		},
		"caseTypeID": c.caseTypeID,
	})
	if err != nil {
		return "", fmt.Errorf("marshal booking payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/cases", payload)
	if err != nil {
		return "", fmt.Errorf("build booking request: %w", err)
	}
	resp, err := pegaHTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("create booking case: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("create booking case: Pega returned status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			CaseInfo struct {
				BusinessID string `json:"businessID"`
			} `json:"caseInfo"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode booking response: %w", err)
	}
	if body.Data.CaseInfo.BusinessID == "" {
		return "", fmt.Errorf("booking response missing data.caseInfo.businessID")
	}

	return fmt.Sprintf("Booking request created successfully with ID: %s", body.Data.CaseInfo.BusinessID), nil
}

// ListDestinations fetches the travel-locations data view and returns the
// City of every entry that has one. Failures are swallowed: an empty list is
// a safe fallback the assistant can still converse about.
func (c *Client) ListDestinations(ctx context.Context) []string {
	logger := utils.GetLogger()

	req, err := c.newRequest(ctx, http.MethodPost, "/data_views/D_TravelLocationsList", []byte("{}"))
	if err != nil {
		logger.Error("Failed to build destinations request", zap.Error(err))
		return []string{}
	}
	resp, err := pegaHTTPClient.Do(req)
	if err != nil {
		logger.Warn("Failed to fetch travel destinations", zap.Error(err))
		return []string{}
	}
	defer resp.Body.Close()

	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Warn("Failed to decode travel destinations", zap.Error(err))
		return []string{}
	}

	cities := []string{}
	for _, entry := range body.Data {
		if city, ok := entry["City"].(string); ok {
			cities = append(cities, city)
		}
	}
	return cities
}

// GetBookingDetails fetches a case's content record by business identifier,
// e.g. "B-2005". It never returns an outward error: any failure becomes an
// explicit {"status": "error", "message": ...} record for the assistant to
// phrase an apology from.
func (c *Client) GetBookingDetails(ctx context.Context, bookingID string) map[string]any {
	path := "/cases/" + url.PathEscape(caseIDPrefix+" "+bookingID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return errorRecord(fmt.Sprintf("failed to build request: %v", err))
	}
	resp, err := pegaHTTPClient.Do(req)
	if err != nil {
		return errorRecord(fmt.Sprintf("failed to reach Pega: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorRecord(fmt.Sprintf("Pega returned status %d for booking %s", resp.StatusCode, bookingID))
	}

	var body struct {
		Data struct {
			CaseInfo struct {
				Content map[string]any `json:"content"`
			} `json:"caseInfo"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errorRecord(fmt.Sprintf("failed to decode booking details: %v", err))
	}
	if body.Data.CaseInfo.Content == nil {
		return errorRecord("booking details missing data.caseInfo.content")
	}
	return body.Data.CaseInfo.Content
}

func errorRecord(message string) map[string]any {
	return map[string]any{"status": "error", "message": message}
}
