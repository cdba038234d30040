package handler

import (
	"net/http"
	"strconv"

	"shop/internal/domain/model"
	"shop/internal/repository"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuditHandler struct {
	uc *usecase.AuditUsecase
}

func NewAuditHandler(uc *usecase.AuditUsecase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// GET /audit?action=&resource_type=&resource_id=&actor_user_id=&limit=&offset=
func (h *AuditHandler) List(c echo.Context) error {
	f := repository.AuditLogFilter{
		ActorUserID:  c.QueryParam("actor_user_id"),
		Action:       model.AuditAction(c.QueryParam("action")),
		ResourceType: model.AuditResourceType(c.QueryParam("resource_type")),
		ResourceID:   c.QueryParam("resource_id"),
	}

	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return badBody(c)
		}
		f.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return badBody(c)
		}
		f.Offset = n
	}

	logs, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}
