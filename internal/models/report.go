package models

// Report statuses. PENDING is the only non-terminal state.
const (
	ReportPending  = "PENDING"
	ReportResolved = "RESOLVED"
	ReportRejected = "REJECTED"
)

// Admin actions over a pending report.
const (
	ReportActionApprove = "APPROVE"
	ReportActionDismiss = "DISMISS"
)

// ReportDTO is the backend's wire shape for a user report.
type ReportDTO struct {
	ID            int    `json:"id"`
	PublicationID int    `json:"publicationId"`
	ReporterName  string `json:"reporterName"`
	Reason        string `json:"reason"`
	Description   string `json:"description"`
	ReportDate    string `json:"reportDate"`
	Status        string `json:"status"`
}

// Report is the moderation-panel view model. It references its publication by
// id only; the panel links to it rather than joining.
type Report struct {
	ID            int    `json:"id"`
	PublicationID int    `json:"publicationId"`
	ReporterName  string `json:"reporterName"`
	Reason        string `json:"reason"`
	Description   string `json:"description"`
	ReportDate    string `json:"reportDate"`
	Status        string `json:"status"`
}

// ReportFromDTO maps a backend report into the view model.
func ReportFromDTO(dto ReportDTO) Report {
	status := dto.Status
	if status == "" {
		status = ReportPending
	}
	return Report{
		ID:            dto.ID,
		PublicationID: dto.PublicationID,
		ReporterName:  dto.ReporterName,
		Reason:        dto.Reason,
		Description:   dto.Description,
		ReportDate:    dto.ReportDate,
		Status:        status,
	}
}

// NewReport is the payload a user submits when flagging a publication.
type NewReport struct {
	PublicationID int    `json:"publicationId"`
	Reason        string `json:"reason"`
	Description   string `json:"description"`
}
