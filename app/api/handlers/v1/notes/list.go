package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/wp-notes-api/app/api/handlers/rest"
	"github.com/ribgsilva/wp-notes-api/business/v1/note"
	"github.com/ribgsilva/wp-notes-api/platform/auth"
	"github.com/ribgsilva/wp-notes-api/platform/web/handler"
	"github.com/ribgsilva/wp-notes-api/sys"
)

// List godoc
// @Summary List the notes of an author
// @Description List every private note of an author, reduced to its id and modification date
// @Tags Note
// @Produce json
// @Security BearerAuth
// @Param author query int true "Author id"
// @Success 200 {array} note.Summary
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /wp-notes/v1/notes [get]
func List(ctx *gin.Context) handler.Result {
	author, present := ctx.GetQuery("author")

	lister := note.Lister{Store: note.DatabaseStore{}}
	if sys.Configs.Links.Enabled {
		lister.Links = note.RESTLinks{BaseURL: sys.Configs.Links.BaseURL}
	}

	summaries, err := lister.List(ctx, auth.FromContext(ctx), author, present)
	if err != nil {
		return rest.Failure(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   summaries,
	}
}
