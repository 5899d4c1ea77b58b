//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"bookhaven/internal/handler/dto/request"
	"bookhaven/tests/common/dbtest"
	"bookhaven/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token, "login response did not carry a token")

	return body.Token
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, name, email, role)
	return LoginUser(t, router, email, "password123")
}
