package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/wp-notes-api/business/v1/note"
	"github.com/ribgsilva/wp-notes-api/platform/web/handler"
)

const Namespace = "wp-notes/v1"

type Arg struct {
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type Endpoint struct {
	Methods []string       `json:"methods"`
	Args    map[string]Arg `json:"args"`
}

// Route describes an endpoint and the schema of the items it returns.
type Route struct {
	Namespace string      `json:"namespace"`
	Methods   []string    `json:"methods"`
	Endpoints []Endpoint  `json:"endpoints"`
	Schema    note.Schema `json:"schema"`
}

// Options godoc
// @Summary Describe the notes endpoint
// @Description Describe the notes endpoint, its arguments and the schema of its items
// @Tags Note
// @Produce json
// @Success 200 {object} Route
// @Router /wp-notes/v1/notes [options]
func Options(ctx *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body: Route{
			Namespace: Namespace,
			Methods:   []string{http.MethodGet},
			Endpoints: []Endpoint{{
				Methods: []string{http.MethodGet},
				Args:    map[string]Arg{"author": {Type: "integer", Required: true}},
			}},
			Schema: note.ItemSchema(),
		},
	}
}
