package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/unimeet/unimeet-api/internal/api/dto"
	"github.com/unimeet/unimeet-api/internal/service"
)

// ClubsHandler exposes the read-only club listing.
type ClubsHandler struct {
	service *service.ClubService
}

// NewClubsHandler constructs handler.
func NewClubsHandler(clubService *service.ClubService) *ClubsHandler {
	return &ClubsHandler{service: clubService}
}

// List handles GET /api/clubs.
func (h *ClubsHandler) List(c *fiber.Ctx) error {
	clubs, err := h.service.List(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		items = append(items, dto.ClubResponse{ClubID: club.ID, Name: club.Name})
	}
	return c.JSON(items)
}
