package service

import (
	"vialidades/internal/domain/entity"
	"vialidades/pkg/errors"
)

// Decision adalah keputusan moderator terhadap satu laporan
type Decision struct {
	Status      string // "approved" atau "rejected"
	Sanction    bool
	Reason      string
	ModeratorID string
}

func (d Decision) Validate() error {
	if d.Status != entity.ReportStatusApproved && d.Status != entity.ReportStatusRejected {
		return errors.BadRequest("Invalid status", nil)
	}
	return nil
}

func (d Decision) IsApproval() bool {
	return d.Status == entity.ReportStatusApproved
}

func (d Decision) IsSanction() bool {
	return d.Status == entity.ReportStatusRejected && d.Sanction
}

// ModerateReport transitions a pending report according to the decision.
// Reports in a terminal status cannot be moderated again; the same check
// is re-run inside the storage transaction to close the concurrent
// moderation race.
func ModerateReport(report *entity.Report, decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	if report.Status != entity.ReportStatusPending {
		return errors.Conflict("Report has already been moderated")
	}

	report.Status = decision.Status
	report.ModeratorID = decision.ModeratorID

	switch decision.Status {
	case entity.ReportStatusRejected:
		report.RejectionReason = decision.Reason
		report.WasSanctioned = decision.Sanction
	case entity.ReportStatusApproved:
		RedactReportMedia(report)
	}

	return nil
}
