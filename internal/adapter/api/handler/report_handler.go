package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"vialidades/internal/usecase"
	"vialidades/pkg/errors"
	"vialidades/pkg/response"
	"vialidades/pkg/utils"
)

type ReportHandler struct {
	reportUseCase     *usecase.ReportUseCase
	moderationUseCase *usecase.ModerationUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase, moderationUseCase *usecase.ModerationUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase:     reportUseCase,
		moderationUseCase: moderationUseCase,
	}
}

// looseBool accepts JSON booleans as well as the literal strings
// "true"/"false" that some older clients send
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*b = false
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean value %q", s)
	}
	*b = looseBool(v)
	return nil
}

type mediaItemRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Kind     string `json:"type" validate:"omitempty,oneof=image video"`
	PublicID string `json:"public_id,omitempty"`
}

type createReportRequest struct {
	Type        string             `json:"type" validate:"required"`
	Description string             `json:"description" validate:"required"`
	Lat         *float64           `json:"lat" validate:"required"`
	Lng         *float64           `json:"lng" validate:"required"`
	Address     string             `json:"address,omitempty"`
	Media       []mediaItemRequest `json:"media,omitempty" validate:"max=5,dive"`
}

func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	media := make([]usecase.MediaInput, 0, len(req.Media))
	for _, m := range req.Media {
		media = append(media, usecase.MediaInput{
			URL:      m.URL,
			Kind:     m.Kind,
			PublicID: m.PublicID,
		})
	}

	report, err := h.reportUseCase.CreateReport(c.Request().Context(), userID, usecase.CreateReportInput{
		Type:        req.Type,
		Description: req.Description,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Address:     req.Address,
		Media:       media,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

func (h *ReportHandler) ListReports(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	reports, total, err := h.reportUseCase.ListReports(c.Request().Context(), userID, usecase.ListReportsInput{
		Mine:   c.QueryParam("my") == "true",
		Status: c.QueryParam("status"),
		Page:   pagination.Page,
		Limit:  pagination.PageSize,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reports, total, pagination.Page, pagination.PageSize)
}

func (h *ReportHandler) GetReport(c echo.Context) error {
	reportID := c.Param("id")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	report, err := h.reportUseCase.GetReportByID(c.Request().Context(), reportID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}

type moderateReportRequest struct {
	Status          string    `json:"status" validate:"required"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	SanctionUser    looseBool `json:"sanctionUser,omitempty"`
	ModeratorID     string    `json:"moderatorId,omitempty"`
}

func (h *ReportHandler) ModerateReport(c echo.Context) error {
	reportID := c.Param("id")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	var req moderateReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	moderatorID := req.ModeratorID
	if moderatorID == "" {
		moderatorID = c.Get("uid").(string)
	}

	report, err := h.moderationUseCase.ModerateReport(c.Request().Context(), reportID, usecase.ModerateReportInput{
		Status:          req.Status,
		RejectionReason: req.RejectionReason,
		Sanction:        bool(req.SanctionUser),
		ModeratorID:     moderatorID,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}
