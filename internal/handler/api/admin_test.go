//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"stay-booking/internal/handler/api"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/builder"
	"stay-booking/tests/common/httptest"
	commandsmock "stay-booking/tests/mock/commands"
	queriesmock "stay-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockUserQueries
	admin        uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	ctrl := gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(ctrl)
	s.mockQueries = queriesmock.NewMockUserQueries(ctrl)
	s.admin = uuid.New()
	h := api.NewAdminHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/users", fakeAuth, h.ListUsers)
	s.router.PATCH("/admin/users/:id/role", fakeAuth, h.ChangeRole)
	s.router.DELETE("/admin/users/:id", fakeAuth, h.Deactivate)
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) do(method, path string, body any) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.router, method, path, body, s.admin.String(), httptest.WithHeader(roleHeader, "admin"))
}

func (s *AdminHandlerTestSuite) TestListUsers() {
	users := []*queries.UserView{builder.NewUserBuilder().BuildView(), builder.NewUserBuilder().AsAdmin().BuildView()}
	s.mockQueries.EXPECT().List(gomock.Any(), (*queries.Cursor)(nil), 50).Return(users, nil, nil)

	rec := s.do(http.MethodGet, "/admin/users?limit=50", nil)

	var body struct {
		Users []map[string]any `json:"users"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body.Users, 2)
	s.Equal("admin", body.Users[1]["role"])
}

func (s *AdminHandlerTestSuite) TestChangeRole() {
	target := uuid.New()
	url := "/admin/users/" + target.String() + "/role"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().ChangeRole(gomock.Any(), s.admin, target, "admin").Return(nil)
		rec := s.do(http.MethodPatch, url, map[string]any{"role": "admin"})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown role", func() {
		rec := s.do(http.MethodPatch, url, map[string]any{"role": "owner"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: own account", func() {
		s.mockCommands.EXPECT().ChangeRole(gomock.Any(), s.admin, target, "user").
			Return(errs.Mark(commands.ErrSelfModification, errs.ErrForbidden))
		rec := s.do(http.MethodPatch, url, map[string]any{"role": "user"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "own")
	})
}

func (s *AdminHandlerTestSuite) TestDeactivate() {
	target := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), s.admin, target).Return(nil)
		rec := s.do(http.MethodDelete, "/admin/users/"+target.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown user", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), s.admin, target).
			Return(errs.Mark(commands.ErrUserNotFound, errs.ErrNotFound))
		rec := s.do(http.MethodDelete, "/admin/users/"+target.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}
