package posts

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/wp-notes-api/app/api/handlers/rest"
	"github.com/ribgsilva/wp-notes-api/business/v1/note"
	"github.com/ribgsilva/wp-notes-api/business/v1/post"
	"github.com/ribgsilva/wp-notes-api/platform/auth"
	"github.com/ribgsilva/wp-notes-api/platform/web/handler"
	"github.com/ribgsilva/wp-notes-api/sys"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id, with its title and content as raw text
// @Tags Post
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note id"
// @Success 200 {object} post.Post
// @Failure 401 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /wp/v2/wp-notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return rest.NoRoute()
	}

	n, err := note.DatabaseStore{}.Find(ctx, id)
	if err != nil {
		return rest.Failure(err)
	}

	if err := note.CanRead(auth.FromContext(ctx), n); err != nil {
		return rest.Failure(err)
	}

	base := sys.Configs.Links.BaseURL
	p, err := post.NewRenderer(base, note.RESTLinks{BaseURL: base}).Prepare(n, post.RawContent)
	if err != nil {
		return rest.Failure(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   p,
	}
}
