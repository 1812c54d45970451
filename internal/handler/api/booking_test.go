//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/notify"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/common/testutil"
	commandsmock "hotel-booking-api/tests/mock/commands"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	cfg := config.NewTestConfig()
	notifier := notify.NewWhatsAppNotifier(cfg.Hotel.Name, cfg.Hotel.WhatsAppNumber)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, notifier)

	s.router.POST("/api/bookings/drafts", s.handler.CreateDraft)
	s.router.POST("/api/bookings/drafts/:id/confirm", s.handler.ConfirmDraft)
	s.router.DELETE("/api/bookings/drafts/:id", s.handler.CancelDraft)
	s.router.GET("/api/bookings", s.handler.ListBookings)
	s.router.GET("/api/bookings/:id", s.handler.GetBooking)
	s.router.DELETE("/api/bookings/:id", s.handler.DeleteBooking)
	s.router.GET("/api/bookings/:id/whatsapp", s.handler.WhatsAppHandoff)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateDraft
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateDraft() {
	url := "/api/bookings/drafts"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	draftID := uuid.New()
	expiresAt := time.Date(2024, 5, 20, 10, 30, 0, 0, time.UTC)
	startResult := b.BuildStartResult(draftID, expiresAt)

	s.Run("success: returns 201 Created with draft summary", func() {
		s.mockCommands.EXPECT().StartBooking(gomock.Any(), reqBody.ToCommand()).
			Return(startResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.BookingDraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(draftID, response.DraftID)
		s.Equal("room-102", response.Summary.RoomID)
		s.Equal(2, response.Summary.Nights)
		s.Equal(int64(1100000), response.Summary.TotalPrice)
		s.Equal("Rp 1.100.000", response.Summary.TotalPriceFormatted)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: room_id", mutate: testutil.Field("room_id", nil)},
			{name: "missing field: guest_name", mutate: testutil.Field("guest_name", nil)},
			{name: "missing field: phone", mutate: testutil.Field("phone", nil)},
			{name: "missing field: email", mutate: testutil.Field("email", nil)},
			{name: "missing field: check_in", mutate: testutil.Field("check_in", nil)},
			{name: "missing field: check_out", mutate: testutil.Field("check_out", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: zero guests reaches the workflow and maps to 422", func() {
		zeroGuests := reqBody
		zeroGuests.Guests = 0
		s.mockCommands.EXPECT().StartBooking(gomock.Any(), zeroGuests.ToCommand()).
			Return(nil, errs.Mark(booking.ErrTooFewGuests, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, zeroGuests)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				commandsError:  errs.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "validation failed",
				commandsError:  errs.Mark(errors.New("check-out must be after check-in"), errs.ErrDomainValidation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create draft",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().StartBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestConfirmDraft
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmDraft() {
	draftID := uuid.New()
	url := "/api/bookings/drafts/" + draftID.String() + "/confirm"

	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created with the persisted booking", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), draftID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("Rp 1.100.000", response.TotalPriceFormatted)
	})

	s.Run("error: 400 Bad Request for invalid draft UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/drafts/not-a-uuid/confirm", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid draft ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "draft not found",
				commandsError:  errs.ErrDraftNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Draft not found",
			},
			{
				name:           "draft expired",
				commandsError:  errs.ErrDraftExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "Draft expired",
			},
			{
				name:           "storage failure is retryable",
				commandsError:  errs.Mark(errors.New("disk full"), errs.ErrStorageFailure),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Storage unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), draftID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancelDraft
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelDraft() {
	draftID := uuid.New()
	url := "/api/bookings/drafts/" + draftID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelPending(gomock.Any(), draftID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid draft UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/drafts/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid draft ID format")
	})

	s.Run("error: 404 Not Found for unknown draft", func() {
		s.mockCommands.EXPECT().CancelPending(gomock.Any(), draftID).
			Return(errs.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})

	s.Run("error: 410 Gone for expired draft", func() {
		s.mockCommands.EXPECT().CancelPending(gomock.Any(), draftID).
			Return(errs.ErrDraftExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "Draft expired")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/api/bookings"

	newer := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ID = "booking-1716285600000-bbbbbbbbbb"
		b.BookedAt = time.Date(2024, 5, 21, 10, 0, 0, 0, time.UTC)
	}).BuildView()
	older := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns bookings newest first", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.BookingView{newer, older}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(newer.ID, response[0].ID)
		s.Equal(older.ID, response[1].ID)
	})

	s.Run("success: empty store returns empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 503 Service Unavailable on storage failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errs.Mark(errors.New("read failed"), errs.ErrStorageFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Storage unavailable")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().BuildView()
	url := "/api/bookings/" + returnView.ID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.GuestName, response.GuestName)
		s.Equal(returnView.Nights, response.Nights)
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	bookingID := "booking-1716199200000-aaaaaaaaaa"
	url := "/api/bookings/" + bookingID

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 503 Service Unavailable on storage failure", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID).
			Return(errs.Mark(errors.New("write failed"), errs.ErrStorageFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Storage unavailable")
	})
}

// ================================================================================
// TestWhatsAppHandoff
// ================================================================================

func (s *BookingHandlerTestSuite) TestWhatsAppHandoff() {
	returnView := builder.NewBookingBuilder().BuildView()
	url := "/api/bookings/" + returnView.ID + "/whatsapp"

	s.Run("success: returns message and deep link", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.WhatsAppHandoffResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Contains(response.Message, returnView.ID)
		s.Contains(response.Message, "Budi Santoso")
		s.Contains(response.Message, "Rp 1.100.000")
		s.Contains(response.Link, "https://wa.me/6281234567890?text=")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
