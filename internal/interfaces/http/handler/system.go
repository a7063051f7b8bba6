package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/plantrent/backend/internal/interfaces/http/dto"
)

// SystemInfo identifies the running service instance. The values come from
// configuration at startup and never change while the process lives.
type SystemInfo struct {
	Name        string
	Version     string
	Environment string
}

// SystemHandler serves the service identity and liveness endpoints used by
// deploy tooling and uptime probes.
type SystemHandler struct {
	BaseHandler
	info      SystemInfo
	startedAt time.Time
}

// NewSystemHandler creates a SystemHandler reporting the given identity.
// Zero-value fields fall back to defaults so tests can construct the handler
// without configuration.
func NewSystemHandler(info ...SystemInfo) *SystemHandler {
	h := &SystemHandler{
		info: SystemInfo{
			Name:        "Plant Rental Backend API",
			Version:     "1.0.0",
			Environment: "development",
		},
		startedAt: time.Now(),
	}
	if len(info) > 0 {
		if info[0].Name != "" {
			h.info.Name = info[0].Name
		}
		if info[0].Version != "" {
			h.info.Version = info[0].Version
		}
		if info[0].Environment != "" {
			h.info.Environment = info[0].Environment
		}
	}
	return h
}

// SystemInfoResponse represents the system information response
// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name        string `json:"name" example:"Plant Rental Backend API"`
	Version     string `json:"version" example:"1.0.0"`
	Environment string `json:"environment" example:"production"`
	GoVersion   string `json:"go_version" example:"go1.25.5"`
	StartedAt   string `json:"started_at" example:"2026-01-23T08:00:00Z"`
	Uptime      string `json:"uptime" example:"1h30m45s"`
}

// GetSystemInfo godoc
// @ID           getSystemSystemInfo
// @Summary      Get system information
// @Description  Returns the service identity, runtime version and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(SystemInfoResponse{
		Name:        h.info.Name,
		Version:     h.info.Version,
		Environment: h.info.Environment,
		GoVersion:   runtime.Version(),
		StartedAt:   h.startedAt.UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.startedAt).Round(time.Second).String(),
	}))
}

// PingResponse represents the ping response
// @name HandlerPingResponse
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

// Ping godoc
// @ID           pingSystem
// @Summary      Ping the API
// @Description  Liveness probe; always answers pong while the process is up
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[PingResponse]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(PingResponse{
		Message:   "pong",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}))
}
