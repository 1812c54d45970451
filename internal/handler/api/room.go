package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
	}
}

// @Summary List rooms
// @Description List all rooms, optionally filtered by price range and guest capacity
// @Tags rooms
// @Produce json
// @Param min_price query int false "Minimum price per night"
// @Param max_price query int false "Maximum price per night"
// @Param min_guests query int false "Minimum guest capacity"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var q reqdto.RoomFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter parameters", nil)
		return
	}

	var (
		views []*queries.RoomView
		err   error
	)
	if q.IsZero() {
		views, err = h.roomQueries.List(c.Request.Context())
	} else {
		views, err = h.roomQueries.Filter(c.Request.Context(), q.ToFilter())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load rooms", nil)
		return
	}

	resp, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load rooms", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get room
// @Description Get a single room by its id
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	view, err := h.roomQueries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}

	resp, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
