package handler

import (
	"net/http"

	"go-bank-console/common"
)

// HealthCheck godoc
// @Summary      Show the status of the console
// @Description  get the status of the console server
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "console is healthy and running"})
}
