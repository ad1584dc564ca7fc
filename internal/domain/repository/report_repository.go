package repository

import (
	"context"

	"vialidades/internal/domain/entity"
)

// ReportFilter narrows report listings. Zero values mean "no filter".
type ReportFilter struct {
	AuthorID   string
	Status     string
	Sanctioned *bool
}

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	Update(ctx context.Context, report *entity.Report) error
	List(ctx context.Context, filter ReportFilter, limit, offset int) ([]*entity.Report, int64, error)

	// CommitModeration persists a moderated report together with the
	// author's adjusted reputation and the outcome notification in one
	// atomic write. The commit re-reads the report and fails with a
	// CONFLICT error unless it is still pending. Author and notification
	// may be nil when the report has no surviving author.
	CommitModeration(ctx context.Context, report *entity.Report, author *entity.User, notification *entity.Notification) error
}
