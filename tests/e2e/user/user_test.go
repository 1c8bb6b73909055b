//go:build e2e

package user_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const usersURL = "/users"

type UserSuite struct {
	e2e.SharedSuite
}

func (s *UserSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestUserSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UserSuite))
}

func (s *UserSuite) TestUserLifecycle() {
	s.Run("Normal case: create, update, fetch and delete a user", func() {
		t := s.T()

		createReq := request.CreateUserRequest{Name: "Alice", Email: "alice@example.com"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, createReq, "")
		require.Equal(t, http.StatusCreated, w.Code, "Should create user successfully")

		var created response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)

		expected := &response.UserResponse{Name: "Alice", Email: "alice@example.com"}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.UserResponse{}, "ID"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("User response mismatch (-want +got):\n%s", diff)
		}

		// Patch only the name, the email stays
		newName := "Alice B."
		updateReq := request.UpdateUserRequest{Name: &newName}
		userURL := usersURL + "/" + created.ID.String()
		uw := httptest.PerformRequest(t, s.Router, http.MethodPatch, userURL, updateReq, "")
		require.Equal(t, http.StatusOK, uw.Code)

		var updated response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, uw.Body, &updated))
		require.Equal(t, "Alice B.", updated.Name)
		require.Equal(t, "alice@example.com", updated.Email)

		// Delete, then the user is gone
		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, userURL, nil, "")
		require.Equal(t, http.StatusNoContent, dw.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, userURL, nil, "")
		require.Equal(t, http.StatusNotFound, gw.Code)
	})

	s.Run("Error case: duplicate email returns 409", func() {
		t := s.T()

		createReq := request.CreateUserRequest{Name: "Bob", Email: "bob@example.com"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, createReq, "")
		require.Equal(t, http.StatusCreated, w.Code)

		dup := request.CreateUserRequest{Name: "Other Bob", Email: "bob@example.com"}
		dw := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, dup, "")
		require.Equal(t, http.StatusConflict, dw.Code, "Duplicate email should be rejected")
	})

	s.Run("Error case: updating into a taken email returns 409", func() {
		t := s.T()

		first := request.CreateUserRequest{Name: "Carol", Email: "carol@example.com"}
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, first, "")
		require.Equal(t, http.StatusCreated, w1.Code)

		second := request.CreateUserRequest{Name: "Dave", Email: "dave@example.com"}
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, second, "")
		require.Equal(t, http.StatusCreated, w2.Code)

		var daveRes response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &daveRes))

		takenEmail := "carol@example.com"
		updateReq := request.UpdateUserRequest{Email: &takenEmail}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPatch, usersURL+"/"+daveRes.ID.String(), updateReq, "")
		require.Equal(t, http.StatusConflict, uw.Code, "Email collision on update should be rejected")
	})

	s.Run("Normal case: listing returns every user", func() {
		t := s.T()

		for _, u := range []request.CreateUserRequest{
			{Name: "One", Email: "one@example.com"},
			{Name: "Two", Email: "two@example.com"},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, u, "")
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var users []response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &users))
		require.Len(t, users, 2)
	})
}
