package careapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(ts *httptest.Server) *Client {
	return NewClient(ClientConfig{BaseURL: ts.URL, Timeout: 5 * time.Second})
}

func TestListPatients(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/doctor/patients" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"p1","name":"Jane Roe"},{"id":"p2","name":"John Doe"}]`)
	}))
	defer ts.Close()

	patients, err := newTestClient(ts).ListPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("expected 2 patients, got %d", len(patients))
	}
	if patients[0].Name != "Jane Roe" {
		t.Errorf("expected 'Jane Roe', got %s", patients[0].Name)
	}
}

func TestListPatients_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	if _, err := newTestClient(ts).ListPatients(context.Background()); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestListConsultations(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/doctor/consultations" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `[{"id":"c1","patient_id":"p1","follow_up_date":"2026-09-01T00:00:00Z","summary_text":"stable","status":"pending"}]`)
	}))
	defer ts.Close()

	consultations, err := newTestClient(ts).ListConsultations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(consultations) != 1 {
		t.Fatalf("expected 1 consultation, got %d", len(consultations))
	}
	if consultations[0].Status != StatusPending {
		t.Errorf("expected pending, got %s", consultations[0].Status)
	}
}

func TestListCallLogs_NullFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/doctor/call-logs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `[{"id":"l1","consultation_id":"c1","created_at":"2026-08-29T10:00:00Z","urgency_level":null,"ai_summary":null,"transcript":null,"call_duration":null,"call_status":"failed"}]`)
	}))
	defer ts.Close()

	logs, err := newTestClient(ts).ListCallLogs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	if logs[0].UrgencyLevel != nil {
		t.Error("expected nil urgency level")
	}
	if logs[0].CallStatus != "failed" {
		t.Errorf("expected 'failed', got %s", logs[0].CallStatus)
	}
}

func TestUploadConsultation_SendsMultipartFields(t *testing.T) {
	var gotPatient, gotDoctor, gotDate, gotFilename, gotFile string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload/consultation" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotPatient = r.FormValue("patient_id")
		gotDoctor = r.FormValue("doctor_id")
		gotDate = r.FormValue("follow_up_date")
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		gotFilename = hdr.Filename
		b, _ := io.ReadAll(f)
		gotFile = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	err := newTestClient(ts).UploadConsultation(context.Background(), Upload{
		PatientID:    "p1",
		DoctorID:     "dr_123",
		FollowUpDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Filename:     "report.pdf",
		File:         strings.NewReader("%PDF-1.4 test"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPatient != "p1" {
		t.Errorf("expected patient_id p1, got %s", gotPatient)
	}
	if gotDoctor != "dr_123" {
		t.Errorf("expected doctor_id dr_123, got %s", gotDoctor)
	}
	if gotDate != "2026-09-01T00:00:00Z" {
		t.Errorf("expected RFC3339 instant, got %s", gotDate)
	}
	if gotFilename != "report.pdf" {
		t.Errorf("expected filename report.pdf, got %s", gotFilename)
	}
	if gotFile != "%PDF-1.4 test" {
		t.Errorf("file content mismatch: %q", gotFile)
	}
}

func TestUploadConsultation_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"detail": "invalid file"}`)
	}))
	defer ts.Close()

	err := newTestClient(ts).UploadConsultation(context.Background(), Upload{
		PatientID:    "p1",
		DoctorID:     "dr_123",
		FollowUpDate: time.Now(),
		Filename:     "report.pdf",
		File:         strings.NewReader("x"),
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Message(), "invalid file") {
		t.Errorf("expected payload surfaced verbatim, got %s", apiErr.Message())
	}
}

func TestUploadConsultation_Connectivity(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	err := newTestClient(ts).UploadConsultation(context.Background(), Upload{
		PatientID:    "p1",
		DoctorID:     "dr_123",
		FollowUpDate: time.Now(),
		Filename:     "report.pdf",
		File:         strings.NewReader("x"),
	})
	if err == nil {
		t.Fatal("expected connectivity error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("connectivity failure must not be an APIError")
	}
}

func TestSetConsultationStatus(t *testing.T) {
	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/doctor/consultations/c1/status" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	if err := newTestClient(ts).SetConsultationStatus(context.Background(), "c1", "completed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody != `{"status":"completed"}` {
		t.Errorf("unexpected body %s", gotBody)
	}
}

func TestSetConsultationStatus_Failure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	if err := newTestClient(ts).SetConsultationStatus(context.Background(), "missing", "completed"); err == nil {
		t.Error("expected error for 404 response")
	}
}
