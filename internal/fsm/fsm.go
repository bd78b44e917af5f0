package fsm

import (
	"errors"

	"casafront/internal/models"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// reportTransitions: a pending report can be resolved or rejected; both
// outcomes are terminal.
var reportTransitions = map[string]map[string]struct{}{
	models.ReportPending: {
		models.ReportResolved: {},
		models.ReportRejected: {},
	},
	models.ReportResolved: {},
	models.ReportRejected: {},
}

// publicationTransitions: admins flip listings between active and inactive.
// REPORTED is derived by the backend from open reports and is never a target.
var publicationTransitions = map[string]map[string]struct{}{
	models.PublicationActive:   {models.PublicationInactive: {}},
	models.PublicationInactive: {models.PublicationActive: {}},
	models.PublicationReported: {
		models.PublicationActive:   {},
		models.PublicationInactive: {},
	},
}

// CanResolveReport returns whether a report can move from its current status
// to the target status.
func CanResolveReport(from, to string) bool {
	allowed, ok := reportTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// ReportStatusFor maps an admin action onto the resulting report status.
func ReportStatusFor(action string) (string, error) {
	switch action {
	case models.ReportActionApprove:
		return models.ReportResolved, nil
	case models.ReportActionDismiss:
		return models.ReportRejected, nil
	default:
		return "", ErrInvalidTransition
	}
}

// CanSetPublicationStatus returns whether an admin may move a publication from
// its current status to the target status.
func CanSetPublicationStatus(from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := publicationTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}
