package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		page   string
		auth   bool
		action Action
		target string
	}{
		{RouteProfile, false, Redirect, RouteLogin},
		{RouteRequests, false, Redirect, RouteLogin},
		{RouteProfile, true, Proceed, RouteProfile},
		{RouteLogin, true, Redirect, RouteHome},
		{RouteLogin, false, Proceed, RouteLogin},
		{RouteHome, false, Proceed, RouteHome},
		{RouteCarDetail, true, Proceed, RouteCarDetail},
	}

	for _, tt := range tests {
		d := Evaluate(ByName(tt.page), tt.auth)
		assert.Equal(t, tt.action, d.Action, "%s auth=%v", tt.page, tt.auth)
		assert.Equal(t, tt.target, d.Target.Name, "%s auth=%v", tt.page, tt.auth)
	}
}

func TestEvaluate_TitleFromRequestedPage(t *testing.T) {
	d := Evaluate(ByName(RouteProfile), false)
	assert.Equal(t, "Профиль | AutoElite", d.Title)
	assert.Equal(t, RouteLogin, d.Target.Name)
}

func TestTitle_Fallback(t *testing.T) {
	assert.Equal(t, "AutoElite", Title(Route{Name: "blank", Path: "/blank"}))
	assert.Equal(t, "Главная | AutoElite", Title(ByName(RouteHome)))
}

func TestMatch(t *testing.T) {
	r, params, ok := Match("/cars/42")
	assert.True(t, ok)
	assert.Equal(t, RouteCarDetail, r.Name)
	assert.Equal(t, map[string]string{"id": "42"}, params)

	r, _, ok = Match("/")
	assert.True(t, ok)
	assert.Equal(t, RouteHome, r.Name)

	r, _, ok = Match("/cars/")
	assert.True(t, ok)
	assert.Equal(t, RouteCars, r.Name)

	_, _, ok = Match("/cars/42/edit")
	assert.False(t, ok)
}
