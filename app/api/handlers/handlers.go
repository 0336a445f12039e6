package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/wp-notes-api/app/api/handlers/rest"
	"github.com/ribgsilva/wp-notes-api/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/wp-notes-api/app/api/handlers/v1/notes"
	"github.com/ribgsilva/wp-notes-api/app/api/handlers/v2/posts"
	"github.com/ribgsilva/wp-notes-api/platform/auth"
	"github.com/ribgsilva/wp-notes-api/platform/web/handler"
	"github.com/ribgsilva/wp-notes-api/sys"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
	r.NoRoute(handler.Wrapper(func(*gin.Context) handler.Result {
		return rest.NoRoute()
	}))
}

func MapApi(r *gin.Engine) {
	api := r.Group("/", auth.Authenticate(sys.R.Tokens, sys.R.Log))

	api.GET("/wp-notes/v1/notes", handler.Wrapper(notes.List))
	api.OPTIONS("/wp-notes/v1/notes", handler.Wrapper(notes.Options))
	api.GET("/wp/v2/wp-notes/:id", handler.Wrapper(posts.Get))
}
