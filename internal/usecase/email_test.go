package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"MarketLens/internal/domain/models"
	"MarketLens/pkg/config"
)

type fakeTransport struct {
	err   error
	calls int
	last  *models.MailMessage
}

func (f *fakeTransport) Send(_ context.Context, msg *models.MailMessage) error {
	f.calls++
	f.last = msg
	return f.err
}

func completeMailConfig() config.MailConfig {
	return config.MailConfig{
		SenderEmail:  "noreply@example.com",
		TenantID:     "tenant-1",
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		PublicAppURL: "https://app.example.com",
	}
}

func TestDispatch_IncompleteConfigNeverTouchesTransport(t *testing.T) {
	cfg := completeMailConfig()
	cfg.ClientSecret = ""
	tr := &fakeTransport{}
	svc := NewEmailService(cfg, tr, nopMetrics{}, testLogger(t))

	res := svc.Dispatch(context.Background(), &models.MailMessage{
		To: "user@example.com", Subject: "hi", Body: "<p>hi</p>",
	})

	if res.Success {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(res.Error, "configuration") {
		t.Fatalf("error = %q, want configuration error", res.Error)
	}
	if tr.calls != 0 {
		t.Fatalf("transport must not be invoked, got %d calls", tr.calls)
	}
	if res.Timestamp != nil {
		t.Fatalf("timestamp must be absent on failure")
	}
}

func TestDispatch_InvalidRecipientFailsBeforeIO(t *testing.T) {
	tr := &fakeTransport{}
	svc := NewEmailService(completeMailConfig(), tr, nopMetrics{}, testLogger(t))

	for _, to := range []string{"", "not-an-address"} {
		res := svc.Dispatch(context.Background(), &models.MailMessage{To: to, Subject: "x", Body: "y"})
		if res.Success || tr.calls != 0 {
			t.Fatalf("recipient %q must be rejected before any I/O", to)
		}
	}
}

func TestDispatch_TransportErrorSurfaced(t *testing.T) {
	tr := &fakeTransport{err: errors.New("auth rejected")}
	svc := NewEmailService(completeMailConfig(), tr, nopMetrics{}, testLogger(t))

	res := svc.Dispatch(context.Background(), &models.MailMessage{
		To: "user@example.com", Subject: "hi", Body: "<p>hi</p>",
	})

	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != "auth rejected" {
		t.Fatalf("error = %q, want transport message", res.Error)
	}
	if tr.calls != 1 {
		t.Fatalf("exactly one attempt expected, got %d", tr.calls)
	}
}

func TestDispatch_SuccessStampsTimestamp(t *testing.T) {
	tr := &fakeTransport{}
	svc := NewEmailService(completeMailConfig(), tr, nopMetrics{}, testLogger(t))

	res := svc.Dispatch(context.Background(), &models.MailMessage{
		To: "user@example.com", Subject: "hi", Body: "<p>hi</p>",
	})

	if !res.Success || res.Timestamp == nil {
		t.Fatalf("success must carry a timestamp: %+v", res)
	}
	if res.Error != "" {
		t.Fatalf("error must be absent on success")
	}
}

func TestSendVerification_BuildsTemplatedMessage(t *testing.T) {
	tr := &fakeTransport{}
	svc := NewEmailService(completeMailConfig(), tr, nopMetrics{}, testLogger(t))

	res := svc.SendVerification(context.Background(), "user@example.com", "tok-abc123")
	if !res.Success {
		t.Fatalf("dispatch failed: %v", res.Error)
	}
	if tr.last == nil {
		t.Fatalf("transport saw no message")
	}
	if tr.last.ContentType != "HTML" {
		t.Fatalf("contentType = %q", tr.last.ContentType)
	}
	if !strings.Contains(tr.last.Body, "https://app.example.com/verify-email?token=tok-abc123") {
		t.Fatalf("verification URL missing from body")
	}
	if !strings.Contains(tr.last.Body, "24 hours") {
		t.Fatalf("expiry window missing from body")
	}
}
