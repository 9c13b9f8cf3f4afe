//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	domreview "stay-booking/internal/domain/review"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/handler/api"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/builder"
	"stay-booking/tests/common/httptest"
	"stay-booking/tests/common/testutil"
	commandsmock "stay-booking/tests/mock/commands"
	queriesmock "stay-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/listings/:id/reviews", fakeAuth, s.handler.Create)
	s.router.GET("/listings/:id/reviews", s.handler.ListByListing)
	s.router.GET("/reviews", fakeAuth, s.handler.ListMine)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.PUT("/reviews/:id", fakeAuth, s.handler.Update)
	s.router.DELETE("/reviews/:id", fakeAuth, s.handler.Delete)
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	listingID := uuid.New()
	reviewer := uuid.New()
	url := "/listings/" + listingID.String() + "/reviews"
	reqBody := builder.NewReviewBuilder().BuildCreateRequest()
	createdID := uuid.New()

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}
	missing := []testCaseReview{
		{name: "missing field: rating", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
	}
	wrongType := []testCaseReview{
		{name: "rating as string", mutate: testutil.Field("rating", "five"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateReviewInput{
			ListingID: listingID,
			UserID:    reviewer,
			Rating:    reqBody.Rating,
			Comment:   reqBody.Comment,
		}).Return(createdID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, reviewer.String())

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(createdID.String(), body.ID)
	})

	s.Run("error: 400 on validation errors", func() {
		for _, group := range [][]testCaseReview{bound, missing, wrongType} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(createdID, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), reviewer.String())
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	s.Run("error: validation detail names the field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("rating", 9)), reviewer.String())
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		s.Contains(string(body.Detail), `"field":"Rating"`)
		s.Contains(string(body.Detail), `"rule":"max"`)
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on malformed listing id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/listings/abc/reviews", reqBody, reviewer.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	usecaseErrors := []struct {
		name string
		err  error
		code int
	}{
		{"own listing is forbidden", errs.Mark(domreview.ErrOwnListing, errs.ErrForbidden), http.StatusForbidden},
		{"duplicate review conflicts", errs.Mark(domreview.ErrReviewAlreadyExists, errs.ErrConflict), http.StatusConflict},
		{"unknown listing", errs.Mark(commands.ErrListingNotFound, errs.ErrNotFound), http.StatusNotFound},
		{"database failure", errs.Mark(assertErr, errs.ErrDatabaseOperationFailed), http.StatusInternalServerError},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, reviewer.String())
			body := httptest.AssertErrorResponse(s.T(), rec, tc.code, "")
			if tc.code == http.StatusInternalServerError {
				s.Equal("Internal server error", body.Error.Message)
			}
		})
	}
}

func (s *ReviewHandlerTestSuite) TestListByListing() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String() + "/reviews"
	views := []*queries.ReviewView{
		builder.NewReviewBuilder().WithListingID(listingID).BuildView(),
		builder.NewReviewBuilder().WithListingID(listingID).WithRating(3).BuildView(),
	}

	s.Run("success: returns reviews and the next cursor", func() {
		s.mockQueries.EXPECT().
			ListByListing(gomock.Any(), listingID, &queries.Cursor{After: "abc"}, 2).
			Return(views, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=2&after=abc", nil, "")

		var body struct {
			Reviews    []resdto.ReviewResponse `json:"reviews"`
			NextCursor string                  `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Reviews, 2)
		s.Equal(views[0].ID.String(), body.Reviews[0].ID)
		s.Equal(int32(3), body.Reviews[1].Rating)
		s.Equal("next", body.NextCursor)
	})

	s.Run("success: default limit and no cursor", func() {
		s.mockQueries.EXPECT().
			ListByListing(gomock.Any(), listingID, (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return([]*queries.ReviewView{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		body := httptest.DecodeJSON[map[string]any](s.T(), rec)
		s.Equal(http.StatusOK, rec.Code)
		s.NotContains(body, "next_cursor")
	})

	s.Run("error: invalid cursor is a bad request", func() {
		s.mockQueries.EXPECT().ListByListing(gomock.Any(), listingID, gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(assertErr, queries.ErrInvalidCursor))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=zzz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: unknown listing", func() {
		s.mockQueries.EXPECT().ListByListing(gomock.Any(), listingID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrListingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "listing not found")
	})
}

func (s *ReviewHandlerTestSuite) TestGet() {
	view := builder.NewReviewBuilder().BuildView()

	s.Run("success: returns the review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/"+view.ID.String(), nil, "")

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal(view.Comment, body.Comment)
		s.Equal(view.UpdatedAt.Unix(), body.UpdatedAt)
	})

	s.Run("error: unknown review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrReviewNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "review not found")
	})
}

func (s *ReviewHandlerTestSuite) TestListMine() {
	author := uuid.New()
	views := []*queries.ReviewView{builder.NewReviewBuilder().WithUserID(author).BuildView()}

	s.Run("success: lists the caller's reviews", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), author, (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return(views, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews", nil, author.String())

		var body struct {
			Reviews []resdto.ReviewResponse `json:"reviews"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Reviews, 1)
		s.Equal(author.String(), body.Reviews[0].UserID)
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ReviewHandlerTestSuite) TestUpdate() {
	view := builder.NewReviewBuilder().WithRating(2).BuildView()
	url := "/reviews/" + view.ID.String()
	rating := 2

	s.Run("success: returns the updated review", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, view.UserID, domreview.Changes{Rating: &rating}).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 2}, view.UserID.String())

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int32(2), body.Rating)
	})

	s.Run("error: empty patch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, view.UserID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No fields to update")
	})

	s.Run("error: rating out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 7}, view.UserID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: not the author", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), gomock.Any()).
			Return(errs.Mark(domreview.ErrNotAuthor, errs.ErrForbidden))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"comment": "changed"}, uuid.NewString())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, domreview.ErrNotAuthor.Error())
	})
}

func (s *ReviewHandlerTestSuite) TestDelete() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	s.Run("success: admin role is passed through", func() {
		admin := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), reviewID, admin, user.RoleAdmin).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, admin.String(),
			httptest.WithHeader(roleHeader, string(user.RoleAdmin)))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: forbidden for other users", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), reviewID, gomock.Any(), user.RoleUser).
			Return(errs.Mark(commands.ErrReviewForbidden, errs.ErrForbidden))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, uuid.NewString())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: unknown review", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), reviewID, gomock.Any(), gomock.Any()).
			Return(errs.Mark(commands.ErrReviewNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, uuid.NewString())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "review not found")
	})
}
