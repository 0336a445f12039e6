package rest

import (
	"errors"
	"net/http"

	"github.com/ribgsilva/wp-notes-api/business/v1/note"
	"github.com/ribgsilva/wp-notes-api/platform/web/handler"
	"github.com/ribgsilva/wp-notes-api/sys"
)

const forbiddenMessage = "You cannot view the post resource."

// Failure maps a business error to its REST error response.
func Failure(err error) handler.Result {
	switch {
	case errors.Is(err, note.ErrMissingAuthor):
		r := handler.Fail(http.StatusBadRequest, "rest_missing_callback_param", "Missing parameter(s): author")
		return withParam(r, "author", "Missing parameter.")
	case errors.Is(err, note.ErrInvalidAuthor):
		r := handler.Fail(http.StatusBadRequest, "rest_invalid_param", "Invalid parameter(s): author")
		return withParam(r, "author", "Invalid parameter.")
	case errors.Is(err, note.ErrUnauthorized):
		return handler.Fail(http.StatusUnauthorized, "rest_forbidden", forbiddenMessage)
	case errors.Is(err, note.ErrForbidden):
		return handler.Fail(http.StatusForbidden, "rest_forbidden", forbiddenMessage)
	case errors.Is(err, note.ErrNotFound):
		return handler.Fail(http.StatusNotFound, "rest_post_invalid_id", "Invalid post ID.")
	default:
		sys.R.Log.Errorw("request", "ERROR", err)
		return handler.Fail(http.StatusInternalServerError, "rest_store_unavailable", "The content store is unavailable.")
	}
}

// NoRoute is the response for paths matching no endpoint.
func NoRoute() handler.Result {
	return handler.Fail(http.StatusNotFound, "rest_no_route", "No route was found matching the URL and request method.")
}

func withParam(r handler.Result, name, message string) handler.Result {
	body := r.Body.(handler.Error)
	body.Data.Params = map[string]string{name: message}
	r.Body = body
	return r
}
