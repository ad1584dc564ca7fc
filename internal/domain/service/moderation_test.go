package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vialidades/internal/domain/entity"
	"vialidades/pkg/errors"
)

func pendingReport() *entity.Report {
	return &entity.Report{
		ID:       "r1",
		AuthorID: "u1",
		Type:     "Accidente",
		Status:   entity.ReportStatusPending,
		Media: []entity.MediaItem{
			{URL: "https://host/upload/v1/x.jpg", Kind: entity.MediaKindImage},
		},
	}
}

func TestModerateReportRejectsInvalidStatus(t *testing.T) {
	report := pendingReport()

	err := ModerateReport(report, Decision{Status: "archived"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Equal(t, entity.ReportStatusPending, report.Status)
}

func TestModerateReportApproval(t *testing.T) {
	report := pendingReport()

	err := ModerateReport(report, Decision{Status: entity.ReportStatusApproved, ModeratorID: "m1"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusApproved, report.Status)
	assert.Equal(t, "m1", report.ModeratorID)
	assert.Equal(t, "https://host/upload/e_blur_faces/v1/x.jpg", report.Media[0].URL)
	assert.False(t, report.WasSanctioned)
}

func TestModerateReportRejection(t *testing.T) {
	report := pendingReport()

	err := ModerateReport(report, Decision{
		Status:   entity.ReportStatusRejected,
		Sanction: true,
		Reason:   "fake report",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusRejected, report.Status)
	assert.Equal(t, "fake report", report.RejectionReason)
	assert.True(t, report.WasSanctioned)
	// No redaction on rejection
	assert.Equal(t, "https://host/upload/v1/x.jpg", report.Media[0].URL)
}

func TestModerateReportRejectionWithoutReason(t *testing.T) {
	report := pendingReport()

	err := ModerateReport(report, Decision{Status: entity.ReportStatusRejected})

	require.NoError(t, err)
	assert.Empty(t, report.RejectionReason)
	assert.False(t, report.WasSanctioned)
}

func TestModerateReportGuardsTerminalStatus(t *testing.T) {
	report := pendingReport()
	report.Status = entity.ReportStatusApproved

	err := ModerateReport(report, Decision{Status: entity.ReportStatusRejected})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
	assert.Equal(t, entity.ReportStatusApproved, report.Status)
}
