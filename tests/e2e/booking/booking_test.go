//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/handler/dto/request"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/authtest"
	"stay-booking/tests/common/dbtest"
	"stay-booking/tests/common/httptest"
	"stay-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.SharedSuite

	ownerID    uuid.UUID
	ownerToken string
	guestID    uuid.UUID
	guestToken string
	listingID  uuid.UUID
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.ownerID, s.ownerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleUser))
	s.guestID, s.guestToken = authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleUser))
	s.listingID = dbtest.CreateTestListing(t, s.DB, s.ownerID, "Seaside cottage", 12000)
}

func (s *bookingSuite) listingURL(suffix string) string {
	return fmt.Sprintf("/api/listings/%s%s", s.listingID, suffix)
}

func (s *bookingSuite) request(token, start, end string) *resdto.BookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, s.listingURL("/bookings"),
		request.CreateBookingRequest{StartDate: start, EndDate: end}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := httptest.DecodeJSON[resdto.BookingResponse](t, w)
	return &body
}

func (s *bookingSuite) setStatus(token, bookingID, status string) int {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/bookings/"+bookingID,
		request.UpdateBookingStatusRequest{Status: status}, token)
	return w.Code
}

func (s *bookingSuite) TestRequest() {
	s.Run("pending booking with computed total", func() {
		t := s.T()
		b := s.request(s.guestToken, e2e.Day(10), e2e.Day(13))

		assert.Equal(t, "pending", b.Status)
		assert.Equal(t, int64(36000), b.TotalCents)
		assert.Equal(t, e2e.Day(10), b.StartDate)
		assert.Equal(t, e2e.Day(13), b.EndDate)
		assert.Equal(t, s.guestID.String(), b.GuestID)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "topic = 'booking_requested'"))
	})

	tests := []struct {
		name           string
		start, end     string
		token          func() string
		expectedStatus int
		expectedMsg    string
	}{
		{"same start and end", e2e.Day(5), e2e.Day(5), func() string { return s.guestToken }, http.StatusBadRequest, "select a valid date range"},
		{"end before start", e2e.Day(9), e2e.Day(5), func() string { return s.guestToken }, http.StatusBadRequest, "select a valid date range"},
		{"malformed date", "next week", e2e.Day(5), func() string { return s.guestToken }, http.StatusBadRequest, "select a valid date range"},
		{"start in the past", e2e.Day(-2), e2e.Day(2), func() string { return s.guestToken }, http.StatusBadRequest, ""},
		{"owner books own listing", e2e.Day(5), e2e.Day(7), func() string { return s.ownerToken }, http.StatusBadRequest, "own listing"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, s.listingURL("/bookings"),
				request.CreateBookingRequest{StartDate: tt.start, EndDate: tt.end}, tt.token())
			httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedMsg)
			assert.Zero(t, dbtest.CountRows(t, s.DB, "bookings", ""))
		})
	}

	s.Run("overlapping a confirmed stay", func() {
		t := s.T()
		dbtest.CreateTestBooking(t, s.DB, s.listingID, s.guestID, e2e.Day(20), e2e.Day(25), "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, s.listingURL("/bookings"),
			request.CreateBookingRequest{StartDate: e2e.Day(25), EndDate: e2e.Day(27)}, s.guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")
	})

	s.Run("pending stays do not block requests", func() {
		t := s.T()
		dbtest.CreateTestBooking(t, s.DB, s.listingID, s.guestID, e2e.Day(20), e2e.Day(25), "pending")
		dbtest.CreateTestBooking(t, s.DB, s.listingID, s.guestID, e2e.Day(20), e2e.Day(25), "cancelled")

		s.request(s.guestToken, e2e.Day(21), e2e.Day(23))
	})
}

func (s *bookingSuite) TestLifecycle() {
	s.Run("confirm blocks the calendar", func() {
		t := s.T()
		b := s.request(s.guestToken, e2e.Day(10), e2e.Day(12))

		assert.Equal(t, http.StatusForbidden, s.setStatus(s.guestToken, b.ID, "confirmed"))
		require.Equal(t, http.StatusOK, s.setStatus(s.ownerToken, b.ID, "confirmed"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			s.listingURL(fmt.Sprintf("/availability?from=%s&to=%s", e2e.Day(9), e2e.Day(13))), nil, "")
		var cal queries.CalendarView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cal)
		assert.Equal(t, []string{e2e.Day(10), e2e.Day(11), e2e.Day(12)}, cal.DisabledDates)

		// Terminal states never change again.
		assert.Equal(t, http.StatusConflict, s.setStatus(s.ownerToken, b.ID, "cancelled"))
	})

	s.Run("cancel leaves the calendar open", func() {
		t := s.T()
		b := s.request(s.guestToken, e2e.Day(10), e2e.Day(12))
		require.Equal(t, http.StatusOK, s.setStatus(s.ownerToken, b.ID, "cancelled"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			s.listingURL(fmt.Sprintf("/availability?from=%s&to=%s", e2e.Day(9), e2e.Day(13))), nil, "")
		var cal queries.CalendarView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cal)
		assert.Empty(t, cal.DisabledDates)
	})

	s.Run("second confirmation of overlapping request conflicts", func() {
		t := s.T()
		first := s.request(s.guestToken, e2e.Day(10), e2e.Day(14))
		second := s.request(s.guestToken, e2e.Day(14), e2e.Day(16))

		require.Equal(t, http.StatusOK, s.setStatus(s.ownerToken, first.ID, "confirmed"))
		assert.Equal(t, http.StatusConflict, s.setStatus(s.ownerToken, second.ID, "confirmed"))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "status = 'confirmed'"))
	})

	s.Run("concurrent confirmations keep one winner", func() {
		t := s.T()
		const n = 5
		ids := make([]string, n)
		for i := range n {
			ids[i] = s.request(s.guestToken, e2e.Day(30), e2e.Day(33)).ID
		}

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			codes = map[int]int{}
		)
		for _, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				code := s.setStatus(s.ownerToken, id, "confirmed")
				mu.Lock()
				codes[code]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, codes[http.StatusOK])
		assert.Equal(t, n-1, codes[http.StatusConflict])
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "status = 'confirmed'"))
	})
}

func (s *bookingSuite) TestQuote() {
	s.Run("quote reflects confirmed stays", func() {
		t := s.T()
		dbtest.CreateTestBooking(t, s.DB, s.listingID, s.guestID, e2e.Day(20), e2e.Day(22), "confirmed")

		free := httptest.PerformRequest(t, s.Router, http.MethodGet,
			s.listingURL(fmt.Sprintf("/quote?start_date=%s&end_date=%s", e2e.Day(5), e2e.Day(8))), nil, "")
		var q queries.QuoteView
		httptest.AssertSuccessResponse(t, free, http.StatusOK, &q)
		assert.Equal(t, 3, q.Nights)
		assert.Equal(t, int64(36000), q.TotalCents)
		assert.True(t, q.Available)

		taken := httptest.PerformRequest(t, s.Router, http.MethodGet,
			s.listingURL(fmt.Sprintf("/quote?start_date=%s&end_date=%s", e2e.Day(18), e2e.Day(20))), nil, "")
		httptest.AssertSuccessResponse(t, taken, http.StatusOK, &q)
		assert.False(t, q.Available)
	})

	s.Run("empty range", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			s.listingURL(fmt.Sprintf("/quote?start_date=%s&end_date=%s", e2e.Day(5), e2e.Day(5))), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "select a valid date range")
	})
}

func (s *bookingSuite) TestVisibility() {
	s.Run("guest, owner and stranger", func() {
		t := s.T()
		b := s.request(s.guestToken, e2e.Day(10), e2e.Day(12))
		_, strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleUser))
		_, adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		for token, want := range map[string]int{
			s.guestToken:  http.StatusOK,
			s.ownerToken:  http.StatusOK,
			adminToken:    http.StatusOK,
			strangerToken: http.StatusForbidden,
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings/"+b.ID, nil, token)
			assert.Equal(t, want, w.Code, w.Body.String())
		}

		mine := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings", nil, s.guestToken)
		page := httptest.DecodeJSON[struct {
			Bookings []resdto.BookingResponse `json:"bookings"`
		}](t, mine)
		require.Len(t, page.Bookings, 1)
		assert.Equal(t, b.ID, page.Bookings[0].ID)

		byListing := httptest.PerformRequest(t, s.Router, http.MethodGet, s.listingURL("/bookings?status=pending"), nil, strangerToken)
		assert.Equal(t, http.StatusForbidden, byListing.Code)

		owned := httptest.PerformRequest(t, s.Router, http.MethodGet, s.listingURL("/bookings?status=pending"), nil, s.ownerToken)
		require.Equal(t, http.StatusOK, owned.Code)
	})
}
