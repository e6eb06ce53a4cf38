package controllers

import (
	"net/http"

	"github.com/propertyhub/listings-api/internal/app"
	"github.com/propertyhub/listings-api/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app}
}

// HealthCheckHandler => GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.DB.Ping(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("database unreachable")
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Database unreachable", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
