package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lorehub/lore-hub-api/internal/core/ports"
)

// CampaignHandler exposes campaign reads to authenticated callers.
type CampaignHandler struct {
	service ports.CampaignService
}

func NewCampaignHandler(service ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// List handles GET /v1/campaigns.
//
// @Summary      List campaigns
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   object
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/campaigns [get]
func (h *CampaignHandler) List(c echo.Context) error {
	viewer, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	campaigns, err := h.service.ListCampaigns(c.Request().Context(), viewer)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, campaigns)
}

// Characters handles GET /v1/campaigns/:id/characters. Sheet entries are
// filtered by visibility before serialization.
//
// @Summary      List the characters of a campaign
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Campaign id"
// @Success      200  {array}   object
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/campaigns/{id}/characters [get]
func (h *CampaignHandler) Characters(c echo.Context) error {
	viewer, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	characters, err := h.service.ListCharacters(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, characters)
}
