package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/models"
	"github.com/jroosing/easyhosts/internal/system"
)

// Ping sends three echo requests to a host.
// @Summary Ping host
// @Tags system
// @Produce json
// @Security ApiKeyAuth
// @Param host query string true "Host name or address"
// @Success 200 {object} system.PingResult
// @Router /system/ping [get]
func (h *Handler) Ping(c *gin.Context) {
	host := strings.TrimSpace(c.Query("host"))
	if host == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Query parameter host is required"})
		return
	}
	c.JSON(http.StatusOK, system.Ping(c.Request.Context(), h.runner, h.goos, host))
}

// Lookup resolves a host name through the system resolver.
// @Summary Resolve host
// @Tags system
// @Produce json
// @Security ApiKeyAuth
// @Param host query string true "Host name"
// @Success 200 {object} models.LookupResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /system/lookup [get]
func (h *Handler) Lookup(c *gin.Context) {
	host := strings.TrimSpace(c.Query("host"))
	if host == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Query parameter host is required"})
		return
	}
	ip, err := system.Lookup(c.Request.Context(), h.resolver, host)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.LookupResponse{Host: host, IP: ip})
}

// FlushDNSCache clears the operating system's DNS cache.
// @Summary Flush DNS cache
// @Tags system
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.MessageResponse
// @Failure 501 {object} models.ErrorResponse
// @Router /system/flush-dns [post]
func (h *Handler) FlushDNSCache(c *gin.Context) {
	if err := h.FlushDNS(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "DNS cache flushed"})
}

// CurrentSSID reports the connected Wi-Fi network.
// @Summary Current SSID
// @Tags system
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.SSIDResponse
// @Router /system/ssid [get]
func (h *Handler) CurrentSSID(c *gin.Context) {
	ssid, ok, err := system.CurrentSSID(c.Request.Context(), h.runner, h.goos)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SSIDResponse{SSID: ssid, Connected: ok})
}

// Admin reports whether the server may write the hosts file.
// @Summary Privilege check
// @Tags system
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.AdminResponse
// @Router /system/admin [get]
func (h *Handler) Admin(c *gin.Context) {
	c.JSON(http.StatusOK, models.AdminResponse{
		Admin:     system.IsAdmin(h.store.Path()),
		HostsPath: h.store.Path(),
		OS:        h.goos,
	})
}
