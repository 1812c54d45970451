package api

import (
	"errors"
	"net/http"

	"hotel-booking-api/internal/domain/booking"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/notify"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	notifier        *notify.WhatsAppNotifier
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	notifier *notify.WhatsAppNotifier,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		notifier:        notifier,
	}
}

// @Summary Create booking draft
// @Description Validate guest details against a room and park the booking for confirmation
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingDraftRequest true "Booking draft request"
// @Success 201 {object} resdto.BookingDraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/drafts [post]
func (h *BookingHandler) CreateDraft(c *gin.Context) {
	var req reqdto.CreateBookingDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.StartBooking(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create draft", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromStartBookingResult(result))
}

// @Summary Confirm booking draft
// @Description Persist a pending draft as a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings/drafts/{id}/confirm [post]
func (h *BookingHandler) ConfirmDraft(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft ID format", nil)
		return
	}

	view, err := h.bookingCommands.ConfirmBooking(c.Request.Context(), draftID)
	if err != nil {
		h.abortDraftError(c, err)
		return
	}

	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Cancel booking draft
// @Description Abort a pending draft without persisting anything
// @Tags bookings
// @Param id path string true "Draft ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/bookings/drafts/{id} [delete]
func (h *BookingHandler) CancelDraft(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft ID format", nil)
		return
	}

	if err := h.bookingCommands.CancelPending(c.Request.Context(), draftID); err != nil {
		h.abortDraftError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List bookings
// @Description List all persisted bookings, newest first
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	views, err := h.bookingQueries.List(c.Request.Context())
	if err != nil {
		h.abortStorageError(c, err, "Failed to load bookings")
		return
	}

	resp, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description Get a persisted booking by id
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	view, err := h.bookingQueries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		h.abortStorageError(c, err, "Failed to load booking")
		return
	}

	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete booking
// @Description Remove a persisted booking by id
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.bookingCommands.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		h.abortStorageError(c, err, "Failed to delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary WhatsApp hand-off
// @Description Build the WhatsApp confirmation message and deep link for a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.WhatsAppHandoffResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings/{id}/whatsapp [get]
func (h *BookingHandler) WhatsAppHandoff(c *gin.Context) {
	view, err := h.bookingQueries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		h.abortStorageError(c, err, "Failed to load booking")
		return
	}

	record := toRecord(view)
	c.JSON(http.StatusOK, resdto.WhatsAppHandoffResponse{
		Message: h.notifier.Message(record),
		Link:    h.notifier.Link(record),
	})
}

func (h *BookingHandler) abortDraftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
	case errors.Is(err, errs.ErrDraftExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Draft expired", nil)
	case errors.Is(err, errs.ErrStorageFailure):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Storage unavailable, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func (h *BookingHandler) abortStorageError(c *gin.Context, err error, msg string) {
	if errors.Is(err, errs.ErrStorageFailure) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Storage unavailable, please retry", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
}

func toRecord(view *queries.BookingView) booking.Booking {
	return booking.Booking{
		ID:         view.ID,
		RoomID:     view.RoomID,
		RoomName:   view.RoomName,
		GuestName:  view.GuestName,
		Phone:      view.Phone,
		Email:      view.Email,
		Notes:      view.Notes,
		CheckIn:    view.CheckIn,
		CheckOut:   view.CheckOut,
		Guests:     view.Guests,
		Nights:     view.Nights,
		TotalPrice: view.TotalPrice,
		BookedAt:   view.BookedAt,
	}
}
