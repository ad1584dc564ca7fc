package usecase

import (
	"context"

	"vialidades/internal/domain/entity"
	"vialidades/internal/domain/repository"
	"vialidades/pkg/errors"
)

// In-memory repository fakes. They hand out copies on reads so a failed
// workflow cannot leak in-place mutations into the "store".

type fakeReportRepository struct {
	reports    map[string]*entity.Report
	getCalls   int
	commits    int
	lastFilter repository.ReportFilter

	lastCommittedAuthor       *entity.User
	lastCommittedNotification *entity.Notification
}

func newFakeReportRepository() *fakeReportRepository {
	return &fakeReportRepository{reports: make(map[string]*entity.Report)}
}

func (f *fakeReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		report.ID = "report-1"
	}
	stored := *report
	f.reports[report.ID] = &stored
	return nil
}

func (f *fakeReportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	f.getCalls++
	report, ok := f.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	copied := *report
	copied.Media = append([]entity.MediaItem(nil), report.Media...)
	copied.Photos = append([]entity.MediaItem(nil), report.Photos...)
	return &copied, nil
}

func (f *fakeReportRepository) Update(ctx context.Context, report *entity.Report) error {
	stored := *report
	f.reports[report.ID] = &stored
	return nil
}

func (f *fakeReportRepository) List(ctx context.Context, filter repository.ReportFilter, limit, offset int) ([]*entity.Report, int64, error) {
	f.lastFilter = filter
	var out []*entity.Report
	for _, r := range f.reports {
		if filter.AuthorID != "" && r.AuthorID != filter.AuthorID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Sanctioned != nil && r.WasSanctioned != *filter.Sanctioned {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeReportRepository) CommitModeration(ctx context.Context, report *entity.Report, author *entity.User, notification *entity.Notification) error {
	current, ok := f.reports[report.ID]
	if !ok {
		return errors.NotFound("Report", nil)
	}
	if current.Status != entity.ReportStatusPending {
		return errors.Conflict("Report has already been moderated")
	}

	f.commits++
	stored := *report
	f.reports[report.ID] = &stored
	f.lastCommittedAuthor = author
	f.lastCommittedNotification = notification
	return nil
}

type fakeUserRepository struct {
	users   map[string]*entity.User
	updates int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	f.updates++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

type fakeNotificationRepository struct {
	notifications map[string]*entity.Notification
	markAllCalls  int
}

func newFakeNotificationRepository() *fakeNotificationRepository {
	return &fakeNotificationRepository{notifications: make(map[string]*entity.Notification)}
}

func (f *fakeNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = "notification-1"
	}
	stored := *notification
	f.notifications[notification.ID] = &stored
	return nil
}

func (f *fakeNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	notification, ok := f.notifications[id]
	if !ok {
		return nil, errors.NotFound("Notification", nil)
	}
	copied := *notification
	return &copied, nil
}

func (f *fakeNotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifications {
		if n.UserID != userID || n.Deleted {
			continue
		}
		copied := *n
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeNotificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	stored := *notification
	f.notifications[notification.ID] = &stored
	return nil
}

func (f *fakeNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	f.markAllCalls++
	for _, n := range f.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}
