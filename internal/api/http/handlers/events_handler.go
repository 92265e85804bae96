package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/unimeet/unimeet-api/internal/api/dto"
	"github.com/unimeet/unimeet-api/internal/auth"
	"github.com/unimeet/unimeet-api/internal/domain"
	"github.com/unimeet/unimeet-api/internal/service"
	apperrors "github.com/unimeet/unimeet-api/pkg/util"
)

// EventsHandler manages event endpoints. Reads are public; mutations run
// behind the auth middleware and are role-gated inside the service.
type EventsHandler struct {
	service *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventService *service.EventService) *EventsHandler {
	return &EventsHandler{service: eventService}
}

// List handles GET /api/events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	includeCancelled := c.QueryBool("includeCancelled", false)
	events, err := h.service.List(c.Context(), includeCancelled)
	if err != nil {
		return err
	}

	items := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		items = append(items, eventResponse(&events[i]))
	}
	return c.JSON(items)
}

// Get handles GET /api/events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("Etkinlik bulunamadı.")
	}

	event, err := h.service.Get(c.Context(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(eventResponse(event))
}

// Create handles POST /api/events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	actor, err := actingUser(c)
	if err != nil {
		return err
	}
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Geçersiz istek.")
	}

	event, err := h.service.Create(c.Context(), actor, eventInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(eventResponse(event))
}

// Update handles PUT /api/events/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	actor, err := actingUser(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("Etkinlik bulunamadı.")
	}
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Geçersiz istek.")
	}

	event, err := h.service.Update(c.Context(), actor, int64(id), eventInput(req))
	if err != nil {
		return err
	}
	return c.JSON(eventResponse(event))
}

// Cancel handles DELETE /api/events/:id (soft cancel).
func (h *EventsHandler) Cancel(c *fiber.Ctx) error {
	actor, err := actingUser(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("Etkinlik bulunamadı.")
	}

	if err := h.service.Cancel(c.Context(), actor, int64(id)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func actingUser(c *fiber.Ctx) (*domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, apperrors.NewUnauthorized("Kullanıcı bilgisi alınamadı.")
	}
	return principal.User, nil
}

func eventInput(req dto.EventRequest) service.EventInput {
	return service.EventInput{
		Title:       req.Title,
		Location:    req.Location,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Quota:       req.Quota,
		ClubID:      req.ClubID,
		Description: req.Description,
		IsCancelled: req.IsCancelled,
	}
}

func eventResponse(event *domain.Event) dto.EventResponse {
	resp := dto.EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Location:    event.Location,
		StartAt:     event.StartAt.UTC(),
		Quota:       event.Quota,
		ClubID:      event.ClubID,
		ClubName:    event.ClubName,
		Description: event.Description,
		IsCancelled: event.IsCancelled,
	}
	if event.EndAt != nil {
		endAt := event.EndAt.UTC()
		resp.EndAt = &endAt
	}
	return resp
}
