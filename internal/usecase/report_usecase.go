package usecase

import (
	"context"

	"vialidades/internal/domain/entity"
	"vialidades/internal/domain/repository"
	"vialidades/pkg/errors"
)

type ReportUseCase struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

type MediaInput struct {
	URL      string
	Kind     string
	PublicID string
}

type CreateReportInput struct {
	Type        string
	Description string
	Lat         float64
	Lng         float64
	Address     string
	Media       []MediaInput
}

func (uc *ReportUseCase) CreateReport(ctx context.Context, authorID string, input CreateReportInput) (*entity.Report, error) {
	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	// The creation-time gate: three sanctions bar new reports. Checked
	// here only, never retroactively.
	if author.Sanctions >= entity.SanctionLimit {
		return nil, errors.Forbidden("You are banned from creating reports due to multiple sanctions", nil)
	}

	media := make([]entity.MediaItem, 0, len(input.Media))
	var photos []entity.MediaItem
	for _, m := range input.Media {
		kind := m.Kind
		if kind == "" {
			kind = entity.MediaKindImage
		}
		item := entity.MediaItem{
			URL:      m.URL,
			Kind:     kind,
			PublicID: m.PublicID,
		}
		media = append(media, item)
		if kind == entity.MediaKindImage {
			photos = append(photos, item)
		}
	}

	report := &entity.Report{
		AuthorID:    authorID,
		Type:        input.Type,
		Description: input.Description,
		Location: entity.Location{
			Lat:     input.Lat,
			Lng:     input.Lng,
			Address: input.Address,
		},
		Media:  media,
		Photos: photos,
		Status: entity.ReportStatusPending,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

type ListReportsInput struct {
	Mine   bool
	Status string
	Page   int
	Limit  int
}

// ListReports applies the feed visibility rules: users see their own
// reports on request and the approved feed otherwise; moderators may
// filter by status, where "rejected" excludes sanctioned reports and
// "sanctioned" selects them regardless of status.
func (uc *ReportUseCase) ListReports(ctx context.Context, viewerID string, input ListReportsInput) ([]*entity.Report, int64, error) {
	viewer, err := uc.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}

	var filter repository.ReportFilter

	switch {
	case input.Mine:
		filter.AuthorID = viewerID
	case viewer.IsModerator():
		switch input.Status {
		case "all":
			// no status filter
		case "sanctioned":
			sanctioned := true
			filter.Sanctioned = &sanctioned
		case entity.ReportStatusRejected:
			notSanctioned := false
			filter.Status = entity.ReportStatusRejected
			filter.Sanctioned = &notSanctioned
		case "":
			filter.Status = entity.ReportStatusApproved
		default:
			filter.Status = input.Status
		}
	default:
		filter.Status = entity.ReportStatusApproved
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return uc.reportRepo.List(ctx, filter, limit, (page-1)*limit)
}

func (uc *ReportUseCase) GetReportByID(ctx context.Context, id string) (*entity.Report, error) {
	return uc.reportRepo.GetByID(ctx, id)
}
