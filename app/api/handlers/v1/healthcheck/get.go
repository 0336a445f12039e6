package healthcheck

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/wp-notes-api/platform/web/handler"
	"github.com/ribgsilva/wp-notes-api/sys"
)

type Status struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
	Cache    string `json:"cache" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Check the database and cache connections
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} Status
// @Failure 503 {object} Status
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	s := Status{Status: "ok", Database: "ok", Cache: "ok"}

	if db := sys.R.Database; db != nil {
		dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := db.PingContext(dbCtx); err != nil {
			sys.R.Log.Warnw("healthcheck", "database", err)
			s.Database, s.Status = "down", "down"
		}
	}

	if cache := sys.R.Cache; cache != nil {
		rdsCtx, rdsCancel := context.WithTimeout(ctx, sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := cache.Ping(rdsCtx).Err(); err != nil {
			sys.R.Log.Warnw("healthcheck", "cache", err)
			s.Cache, s.Status = "down", "down"
		}
	}

	if s.Status != "ok" {
		return handler.Result{Status: http.StatusServiceUnavailable, Body: s}
	}
	return handler.Result{Status: http.StatusOK, Body: s}
}
