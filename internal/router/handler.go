package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autosalon/internal/middleware"
	"autosalon/internal/pkg/response"
)

const TitleHeader = "X-Page-Title"

// TokenSource reports the token a client keeps; "" means signed out.
type TokenSource interface {
	StoredToken(ctx context.Context, scope string) string
}

type Handler struct {
	tokens TokenSource
	prefix string
}

// NewHandler serves pages under prefix, e.g. "/pages".
func NewHandler(tokens TokenSource, prefix string) *Handler {
	return &Handler{tokens: tokens, prefix: strings.TrimRight(prefix, "/")}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET(h.prefix+"/*path", h.Resolve)
}

type PageResponse struct {
	Page   string            `json:"page"`
	Title  string            `json:"title"`
	Params map[string]string `json:"params"`
}

// Resolve checks access to a page. Redirects carry the requested page's
// title in X-Page-Title.
func (h *Handler) Resolve(c *gin.Context) {
	route, params, ok := Match(c.Param("path"))
	if !ok {
		response.Error(c, http.StatusNotFound, "PAGE_NOT_FOUND", "Page not found")
		return
	}

	authenticated := h.tokens.StoredToken(c.Request.Context(), middleware.ClientID(c)) != ""
	d := Evaluate(route, authenticated)
	c.Header(TitleHeader, d.Title)

	if d.Action == Redirect {
		c.Redirect(http.StatusFound, h.prefix+d.Target.Path)
		return
	}

	response.Success(c, http.StatusOK, PageResponse{
		Page:   route.Name,
		Title:  d.Title,
		Params: params,
	})
}
