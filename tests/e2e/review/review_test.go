//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"testing"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/handler/dto/request"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/tests/common/authtest"
	"stay-booking/tests/common/dbtest"
	"stay-booking/tests/common/httptest"
	"stay-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type reviewSuite struct {
	e2e.SharedSuite

	ownerToken string
	guestToken string
	listingID  uuid.UUID
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

func (s *reviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	var ownerID uuid.UUID
	ownerID, s.ownerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleUser))
	_, s.guestToken = authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleUser))
	s.listingID = dbtest.CreateTestListing(t, s.DB, ownerID, "Lakeside cabin", 15000)
}

func reviewsURL(listingID uuid.UUID) string {
	return fmt.Sprintf("/api/listings/%s/reviews", listingID)
}

func (s *reviewSuite) TestCreate() {
	tests := []struct {
		name           string
		token          func() string
		listing        func() uuid.UUID
		body           request.CreateReviewRequest
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "guest reviews a listing",
			token:          func() string { return s.guestToken },
			listing:        func() uuid.UUID { return s.listingID },
			body:           request.CreateReviewRequest{Rating: 4, Comment: "Quiet and clean."},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "owner cannot review own listing",
			token:          func() string { return s.ownerToken },
			listing:        func() uuid.UUID { return s.listingID },
			body:           request.CreateReviewRequest{Rating: 5, Comment: "Best place ever."},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "rating out of range",
			token:          func() string { return s.guestToken },
			listing:        func() uuid.UUID { return s.listingID },
			body:           request.CreateReviewRequest{Rating: 6, Comment: "Too good."},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown listing",
			token:          func() string { return s.guestToken },
			listing:        uuid.New,
			body:           request.CreateReviewRequest{Rating: 3, Comment: "Where is it?"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "anonymous",
			token:          func() string { return "" },
			listing:        func() uuid.UUID { return s.listingID },
			body:           request.CreateReviewRequest{Rating: 3, Comment: "Hello."},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(tt.listing()), tt.body, tt.token())
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			want := 0
			if tt.expectedStatus == http.StatusCreated {
				want = 1
				body := httptest.DecodeJSON[resdto.CreatedResponse](t, w)
				assert.NotEmpty(t, body.ID)
			}
			assert.Equal(t, want, dbtest.CountRows(t, s.DB, "reviews", ""))
		})
	}

	s.Run("second review from the same user", func() {
		t := s.T()
		body := request.CreateReviewRequest{Rating: 4, Comment: "Lovely."}

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(s.listingID), body, s.guestToken)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(s.listingID), body, s.guestToken)
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "already reviewed")
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "reviews", ""))
	})
}

func (s *reviewSuite) TestListAndRating() {
	s.Run("reviews refresh the listing rating", func() {
		t := s.T()

		// Prime the listing cache before any review exists.
		before := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/listings/"+s.listingID.String(), nil, "")
		require.Equal(t, http.StatusOK, before.Code)
		assert.Zero(t, httptest.DecodeJSON[resdto.ListingResponse](t, before).ReviewCount)

		for i, rating := range []int{5, 3} {
			_, token := authtest.CreateAndLogin(t, s.DB, s.Router, fmt.Sprintf("reviewer%d@example.com", i), string(user.RoleUser))
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(s.listingID),
				request.CreateReviewRequest{Rating: rating, Comment: "Stayed here."}, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		after := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/listings/"+s.listingID.String(), nil, "")
		listing := httptest.DecodeJSON[resdto.ListingResponse](t, after)
		assert.Equal(t, int32(2), listing.ReviewCount)
		assert.InDelta(t, 4.0, listing.AverageRating, 0.001)

		list := httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL(s.listingID)+"?limit=1", nil, "")
		page := httptest.DecodeJSON[struct {
			Reviews    []resdto.ReviewResponse `json:"reviews"`
			NextCursor string                  `json:"next_cursor"`
		}](t, list)
		require.Len(t, page.Reviews, 1)
		require.NotEmpty(t, page.NextCursor)

		rest := httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL(s.listingID)+"?limit=1&after="+page.NextCursor, nil, "")
		restPage := httptest.DecodeJSON[struct {
			Reviews []resdto.ReviewResponse `json:"reviews"`
		}](t, rest)
		require.Len(t, restPage.Reviews, 1)
		assert.NotEqual(t, page.Reviews[0].ID, restPage.Reviews[0].ID)
	})

	s.Run("malformed cursor", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL(s.listingID)+"?after=not-a-cursor", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *reviewSuite) TestEditAndDelete() {
	create := func(t *testing.T, token string, rating int) string {
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(s.listingID),
			request.CreateReviewRequest{Rating: rating, Comment: "First impressions."}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		return httptest.DecodeJSON[resdto.CreatedResponse](t, w).ID
	}
	listing := func(t *testing.T) resdto.ListingResponse {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/listings/"+s.listingID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		return httptest.DecodeJSON[resdto.ListingResponse](t, w)
	}

	s.Run("author edits and the listing rating follows", func() {
		t := s.T()
		id := create(t, s.guestToken, 5)
		assert.InDelta(t, 5.0, listing(t).AverageRating, 0.001)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/reviews/"+id, map[string]any{"rating": 2}, s.guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := httptest.DecodeJSON[resdto.ReviewResponse](t, w)
		assert.Equal(t, int32(2), body.Rating)
		assert.Equal(t, "First impressions.", body.Comment)

		assert.InDelta(t, 2.0, listing(t).AverageRating, 0.001)

		mine := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reviews", nil, s.guestToken)
		page := httptest.DecodeJSON[struct {
			Reviews []resdto.ReviewResponse `json:"reviews"`
		}](t, mine)
		require.Len(t, page.Reviews, 1)
		assert.Equal(t, id, page.Reviews[0].ID)
	})

	s.Run("only the author may edit", func() {
		t := s.T()
		id := create(t, s.guestToken, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/reviews/"+id, map[string]any{"rating": 1}, s.ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "only the author")
	})

	s.Run("stranger cannot delete but admin can", func() {
		t := s.T()
		id := create(t, s.guestToken, 4)
		_, adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/reviews/"+id, nil, s.ownerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "reviews", ""))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/reviews/"+id, nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		assert.Zero(t, dbtest.CountRows(t, s.DB, "reviews", ""))
		assert.Zero(t, listing(t).ReviewCount)

		gone := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reviews/"+id, nil, "")
		assert.Equal(t, http.StatusNotFound, gone.Code)
	})
}
