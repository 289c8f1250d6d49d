package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosalon/internal/middleware"
)

type staticTokens map[string]string

func (s staticTokens) StoredToken(_ context.Context, scope string) string {
	return s[scope]
}

const (
	guest  = "11111111-1111-1111-1111-111111111111"
	member = "22222222-2222-2222-2222-222222222222"
)

func newPageRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ClientScope(false))
	NewHandler(staticTokens{member: "token"}, "/pages").RegisterRoutes(r)
	return r
}

func get(r *gin.Engine, scope, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.ClientHeader, scope)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResolve_RedirectsGuestFromProfile(t *testing.T) {
	w := get(newPageRouter(), guest, "/pages/profile")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/pages/login", w.Header().Get("Location"))
	assert.Equal(t, "Профиль | AutoElite", w.Header().Get(TitleHeader))
}

func TestResolve_RedirectsMemberFromLogin(t *testing.T) {
	w := get(newPageRouter(), member, "/pages/login")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/pages/", w.Header().Get("Location"))
}

func TestResolve_Proceeds(t *testing.T) {
	w := get(newPageRouter(), member, "/pages/cars/7")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data PageResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, RouteCarDetail, body.Data.Page)
	assert.Equal(t, "Детали автомобиля | AutoElite", body.Data.Title)
	assert.Equal(t, "7", body.Data.Params["id"])
}

func TestResolve_UnknownPage(t *testing.T) {
	w := get(newPageRouter(), guest, "/pages/garage")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
