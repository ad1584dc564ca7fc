package usecase

import (
	"context"

	"vialidades/internal/domain/entity"
	"vialidades/internal/domain/repository"
	"vialidades/internal/domain/service"
	"vialidades/pkg/errors"
	"vialidades/pkg/logger"
)

// ModerationUseCase runs the review workflow: report transition,
// reputation ledger and outcome notification, committed as one write.
type ModerationUseCase struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
}

func NewModerationUseCase(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
) *ModerationUseCase {
	return &ModerationUseCase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

type ModerateReportInput struct {
	Status          string
	RejectionReason string
	Sanction        bool
	ModeratorID     string
}

func (uc *ModerationUseCase) ModerateReport(ctx context.Context, reportID string, input ModerateReportInput) (*entity.Report, error) {
	decision := service.Decision{
		Status:      input.Status,
		Sanction:    input.Sanction,
		Reason:      input.RejectionReason,
		ModeratorID: input.ModeratorID,
	}

	// Fail fast before touching storage
	if err := decision.Validate(); err != nil {
		return nil, err
	}

	report, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if err := service.ModerateReport(report, decision); err != nil {
		return nil, err
	}

	// A report whose author is gone can still be moderated; the ledger
	// and notification steps are skipped explicitly instead of failing
	var author *entity.User
	var notification *entity.Notification

	author, err = uc.userRepo.GetByID(ctx, report.AuthorID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		logger.Warn("Author %s not found for report %s; skipping reputation and notification", report.AuthorID, report.ID)
		author = nil
	}

	if author != nil {
		service.ApplyReputation(author, decision)
		notification = service.BuildModerationNotification(author, report, decision)
	}

	if err := uc.reportRepo.CommitModeration(ctx, report, author, notification); err != nil {
		return nil, err
	}

	logger.Info("Report %s moderated to %s by %s (sanction=%t)", report.ID, report.Status, decision.ModeratorID, decision.Sanction)

	return report, nil
}
