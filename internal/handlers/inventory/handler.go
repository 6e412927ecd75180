package inventory

import (
	"net/http"
	"time"

	"backoffice/infras/otel"
	"backoffice/internal/domains/inventory/model/dto"
	"backoffice/internal/domains/inventory/service"
	"backoffice/shared/constant"
	"backoffice/shared/failure"
	"backoffice/shared/validator"
	"backoffice/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Get("/roomtype/{id}", handler.GetInventoryByRoomType)
		routerGroup.Post("/update", handler.UpdateInventory)
		routerGroup.Post("/generate", handler.GenerateInventory)
	})
}

// GetInventoryByRoomType lists the per-day inventory ledger of a room type.
// @Summary Get inventory by room type
// @Description Retrieve the per-day availability ledger of a room type over a date range, sorted by date.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetInventoriesResponse] "Inventory rows"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/roomtype/{id} [get]
func (handler *Handler) GetInventoryByRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInventoryByRoomType")
	defer scope.End()

	roomTypeID := chi.URLParam(r, constant.RequestParamID)

	start, err := time.Parse(constant.DateOnlyFormat, r.URL.Query().Get(constant.RequestParamStartDate))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("start_date must be in YYYY-MM-DD format"))

		return
	}

	end, err := time.Parse(constant.DateOnlyFormat, r.URL.Query().Get(constant.RequestParamEndDate))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("end_date must be in YYYY-MM-DD format"))

		return
	}

	inventories, err := handler.service.GetByRoomType(ctx, roomTypeID, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory by room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory retrieved successfully")

	response.WithJSON(w, http.StatusOK, inventories)
}

// UpdateInventory adjusts one ledger row of a room type.
// @Summary Update an inventory row
// @Description Override the available rooms and nightly price of one room type on one date. The row must already exist.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.UpdateInventoryRequest true "Update Inventory Request"
// @Success 200 {object} response.Message "Inventory updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/update [post]
// @Security BearerAuth
func (handler *Handler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInventory")
	defer scope.End()

	req := dto.UpdateInventoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inventory")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inventory updated successfully")
}

// GenerateInventory seeds ledger rows for a room type over a date range.
// @Summary Generate inventory rows
// @Description Create one ledger row per date in the inclusive range, seeded from the room type totals. Dates that already have a row are left untouched.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.GenerateInventoryRequest true "Generate Inventory Request"
// @Success 201 {object} response.Message "Inventory generated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/generate [post]
// @Security BearerAuth
func (handler *Handler) GenerateInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateInventory")
	defer scope.End()

	req := dto.GenerateInventoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Generate(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate inventory")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory generated successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Inventory generated successfully")
}
