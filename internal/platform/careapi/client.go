// Package careapi is the typed HTTP client for the care platform endpoints
// the dashboard consumes: the three collection listings, the multipart
// consultation upload, and the consultation status transition. It performs no
// retries; callers decide what a failure means for their state.
package careapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient is optional; when set, Timeout is ignored.
	HTTPClient *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: hc,
	}
}

// ListPatients fetches the patient roster.
func (c *Client) ListPatients(ctx context.Context) ([]Patient, error) {
	var out []Patient
	if err := c.getJSON(ctx, "/doctor/patients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListConsultations fetches all consultation records.
func (c *Client) ListConsultations(ctx context.Context) ([]Consultation, error) {
	var out []Consultation
	if err := c.getJSON(ctx, "/doctor/consultations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCallLogs fetches the voice-agent call logs.
func (c *Client) ListCallLogs(ctx context.Context) ([]CallLog, error) {
	var out []CallLog
	if err := c.getJSON(ctx, "/doctor/call-logs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upload is the single multipart submission for a new consultation.
type Upload struct {
	PatientID    string
	DoctorID     string
	FollowUpDate time.Time
	Filename     string
	File         io.Reader
}

// UploadConsultation POSTs the upload as one multipart request. A non-2xx
// response is returned as an *APIError carrying the platform's JSON payload;
// any other failure is a connectivity error.
func (c *Client) UploadConsultation(ctx context.Context, u Upload) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("patient_id", u.PatientID); err != nil {
		return fmt.Errorf("write patient_id field: %w", err)
	}
	if err := writer.WriteField("doctor_id", u.DoctorID); err != nil {
		return fmt.Errorf("write doctor_id field: %w", err)
	}
	if err := writer.WriteField("follow_up_date", u.FollowUpDate.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write follow_up_date field: %w", err)
	}

	part, err := writer.CreateFormFile("file", u.Filename)
	if err != nil {
		return fmt.Errorf("create multipart file: %w", err)
	}
	if _, err := io.Copy(part, u.File); err != nil {
		return fmt.Errorf("copy report data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/consultation", body)
	if err != nil {
		return fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload consultation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return decodeAPIError(resp)
}

// SetConsultationStatus PUTs a status transition for one consultation.
// Success is purely HTTP-status based; the response body carries no
// guarantees and is discarded.
func (c *Client) SetConsultationStatus(ctx context.Context, id, status string) error {
	payload, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return fmt.Errorf("encode status payload: %w", err)
	}

	url := fmt.Sprintf("%s/doctor/consultations/%s/status", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create status request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("set consultation status: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("set consultation status: unexpected status %d", resp.StatusCode)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	if json.Valid(raw) {
		apiErr.Payload = json.RawMessage(raw)
	}
	return apiErr
}
