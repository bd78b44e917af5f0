package fsm

import (
	"testing"

	"casafront/internal/models"
)

func TestCanResolveReport(t *testing.T) {
	if !CanResolveReport(models.ReportPending, models.ReportResolved) {
		t.Fatal("expected pending -> resolved to be allowed")
	}
	if !CanResolveReport(models.ReportPending, models.ReportRejected) {
		t.Fatal("expected pending -> rejected to be allowed")
	}
	if CanResolveReport(models.ReportResolved, models.ReportPending) {
		t.Fatal("resolved is terminal, transition back to pending allowed")
	}
	if CanResolveReport(models.ReportRejected, models.ReportResolved) {
		t.Fatal("rejected is terminal, transition to resolved allowed")
	}
	if CanResolveReport("BOGUS", models.ReportResolved) {
		t.Fatal("unknown status should not transition")
	}
}

func TestReportStatusFor(t *testing.T) {
	status, err := ReportStatusFor(models.ReportActionApprove)
	if err != nil || status != models.ReportResolved {
		t.Fatalf("APPROVE: got %q, %v", status, err)
	}
	status, err = ReportStatusFor(models.ReportActionDismiss)
	if err != nil || status != models.ReportRejected {
		t.Fatalf("DISMISS: got %q, %v", status, err)
	}
	if _, err := ReportStatusFor("ESCALATE"); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestCanSetPublicationStatus(t *testing.T) {
	if !CanSetPublicationStatus(models.PublicationActive, models.PublicationInactive) {
		t.Fatal("expected active -> inactive to be allowed")
	}
	if !CanSetPublicationStatus(models.PublicationInactive, models.PublicationActive) {
		t.Fatal("expected inactive -> active to be allowed")
	}
	if !CanSetPublicationStatus(models.PublicationReported, models.PublicationInactive) {
		t.Fatal("expected reported -> inactive to be allowed")
	}
	if CanSetPublicationStatus(models.PublicationActive, models.PublicationReported) {
		t.Fatal("REPORTED is server-derived, setting it should not be allowed")
	}
	if !CanSetPublicationStatus(models.PublicationActive, models.PublicationActive) {
		t.Fatal("expected idempotent transition to be allowed")
	}
}
