package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vialidades/internal/adapter/api"
	"vialidades/internal/domain/entity"
	"vialidades/internal/domain/repository"
	"vialidades/internal/usecase"
	"vialidades/pkg/errors"
)

type stubReportRepository struct {
	report *entity.Report
}

func (s *stubReportRepository) Create(ctx context.Context, report *entity.Report) error { return nil }

func (s *stubReportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	if s.report == nil || s.report.ID != id {
		return nil, errors.NotFound("Report", nil)
	}
	copied := *s.report
	return &copied, nil
}

func (s *stubReportRepository) Update(ctx context.Context, report *entity.Report) error { return nil }

func (s *stubReportRepository) List(ctx context.Context, filter repository.ReportFilter, limit, offset int) ([]*entity.Report, int64, error) {
	return nil, 0, nil
}

func (s *stubReportRepository) CommitModeration(ctx context.Context, report *entity.Report, author *entity.User, notification *entity.Notification) error {
	s.report = report
	return nil
}

type stubUserRepository struct {
	user *entity.User
}

func (s *stubUserRepository) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, errors.NotFound("User", nil)
	}
	copied := *s.user
	return &copied, nil
}

func (s *stubUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (s *stubUserRepository) Update(ctx context.Context, user *entity.User) error { return nil }

func moderateRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(http.MethodPatch, "/v1/reports/r1/moderate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/v1/reports/:id/moderate")
	c.SetParamNames("id")
	c.SetParamValues("r1")
	c.Set("uid", "mod-1")

	return c, rec
}

func newModerationHandler(reportRepo *stubReportRepository, userRepo *stubUserRepository) *ReportHandler {
	return NewReportHandler(
		usecase.NewReportUseCase(reportRepo, userRepo),
		usecase.NewModerationUseCase(reportRepo, userRepo),
	)
}

func TestModerateReportHandlerInvalidStatus(t *testing.T) {
	h := newModerationHandler(&stubReportRepository{}, &stubUserRepository{})
	c, rec := moderateRequest(t, `{"status":"archived"}`)

	require.NoError(t, h.ModerateReport(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
}

func TestModerateReportHandlerNotFound(t *testing.T) {
	h := newModerationHandler(&stubReportRepository{}, &stubUserRepository{})
	c, rec := moderateRequest(t, `{"status":"approved"}`)

	require.NoError(t, h.ModerateReport(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestModerateReportHandlerSanctionStringFlag(t *testing.T) {
	reportRepo := &stubReportRepository{report: &entity.Report{
		ID:       "r1",
		AuthorID: "u1",
		Type:     "Accidente",
		Status:   entity.ReportStatusPending,
	}}
	userRepo := &stubUserRepository{user: &entity.User{ID: "u1", Reputation: 100}}
	h := newModerationHandler(reportRepo, userRepo)

	// Older clients send the flag as a string literal
	c, rec := moderateRequest(t, `{"status":"rejected","rejectionReason":"fake report","sanctionUser":"true"}`)

	require.NoError(t, h.ModerateReport(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reportRepo.report.WasSanctioned)

	var envelope struct {
		Data entity.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, entity.ReportStatusRejected, envelope.Data.Status)
	assert.Equal(t, "mod-1", envelope.Data.ModeratorID)
}

func TestLooseBoolUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`null`, false},
	}

	for _, tc := range cases {
		var b looseBool
		require.NoError(t, json.Unmarshal([]byte(tc.in), &b), tc.in)
		assert.Equal(t, tc.want, bool(b), tc.in)
	}

	var b looseBool
	assert.Error(t, json.Unmarshal([]byte(`"yep"`), &b))
}
