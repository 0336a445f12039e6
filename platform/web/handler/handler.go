package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what a Func hands back to be written as the response
type Result struct {
	Status int
	Body   any
}

// Error is the body of every failed response
type Error struct {
	Code    string    `json:"code" example:"rest_forbidden"`
	Message string    `json:"message" example:"You cannot view the post resource."`
	Data    ErrorData `json:"data"`
}

type ErrorData struct {
	Status int               `json:"status" example:"403"`
	Params map[string]string `json:"params,omitempty"`
}

// Func is a gin handler that returns its response instead of writing it
type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func to a gin.HandlerFunc, rendering the result as json
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}

// Fail builds a Result carrying an Error body with the given status
func Fail(status int, code, message string) Result {
	return Result{
		Status: status,
		Body: Error{
			Code:    code,
			Message: message,
			Data:    ErrorData{Status: status},
		},
	}
}
