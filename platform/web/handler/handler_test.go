package handler

import (
	"net/http"
	"testing"

	"github.com/appleboy/gofight"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWrapper(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/ok", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusOK, Body: []int{}}
	}))
	engine.GET("/fail", Wrapper(func(ctx *gin.Context) Result {
		return Fail(http.StatusForbidden, "rest_forbidden", "nope")
	}))
	engine.GET("/empty", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusNoContent}
	}))

	r := gofight.New()

	r.GET("/ok").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `[]`, r.Body.String())
	})

	r.GET("/fail").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusForbidden, r.Code)
		assert.JSONEq(t, `{"code":"rest_forbidden","message":"nope","data":{"status":403}}`, r.Body.String())
	})

	r.GET("/empty").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNoContent, r.Code)
		assert.Empty(t, r.Body.String())
	})
}
