package middleware

import (
	"net/http"

	"vialidades/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

type ModeratorMiddleware struct {
	userRepo repository.UserRepository
}

func NewModeratorMiddleware(userRepo repository.UserRepository) *ModeratorMiddleware {
	return &ModeratorMiddleware{
		userRepo: userRepo,
	}
}

// ModeratorOnly admits moderators and admins
func (m *ModeratorMiddleware) ModeratorOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify moderator privileges")
		}

		if !user.IsModerator() {
			return echo.NewHTTPError(http.StatusForbidden, "Moderator privileges required")
		}

		return next(c)
	}
}
