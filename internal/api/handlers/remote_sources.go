package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/models"
	"github.com/jroosing/easyhosts/internal/database"
	"github.com/jroosing/easyhosts/internal/exchange"
)

// ListRemoteSources returns all remote hosts lists.
// @Summary List remote sources
// @Tags remote-sources
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.RemoteSourceResponse
// @Router /remote-sources [get]
func (h *Handler) ListRemoteSources(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	sources, err := h.db.ListRemoteSources()
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]models.RemoteSourceResponse, 0, len(sources))
	for i := range sources {
		resp = append(resp, remoteSourceResponse(&sources[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// AddRemoteSource registers a remote hosts list.
// @Summary Add remote source
// @Tags remote-sources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param source body models.RemoteSourceRequest true "Remote source"
// @Success 201 {object} models.RemoteSourceResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /remote-sources [post]
func (h *Handler) AddRemoteSource(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req models.RemoteSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	src, err := h.db.AddRemoteSource(strings.TrimSpace(req.Name), strings.TrimSpace(req.URL))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, remoteSourceResponse(src))
}

// SetRemoteSourceEnabled enables or disables a remote source.
// @Summary Enable or disable remote source
// @Tags remote-sources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Remote source ID"
// @Param body body models.EnabledRequest true "Enabled flag"
// @Success 200 {object} models.RemoteSourceResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /remote-sources/{id}/enabled [put]
func (h *Handler) SetRemoteSourceEnabled(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req models.EnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.db.SetRemoteSourceEnabled(id, *req.Enabled); err != nil {
		h.writeError(c, err)
		return
	}
	src, err := h.db.GetRemoteSource(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, remoteSourceResponse(src))
}

// DeleteRemoteSource removes a remote source.
// @Summary Delete remote source
// @Tags remote-sources
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Remote source ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /remote-sources/{id} [delete]
func (h *Handler) DeleteRemoteSource(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	if err := h.db.DeleteRemoteSource(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Remote source deleted"})
}

// ApplyRemoteSource downloads a remote list and merges it into (or replaces)
// the hosts file.
// @Summary Apply remote source
// @Tags remote-sources
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Remote source ID"
// @Param mode query string false "merge (default) or replace"
// @Success 200 {object} models.ApplyResponse
// @Failure 409 {object} models.ErrorResponse "Source is disabled"
// @Failure 502 {object} models.ErrorResponse "Download failed"
// @Router /remote-sources/{id}/apply [post]
func (h *Handler) ApplyRemoteSource(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	mode, err := exchange.ParseMode(c.Query("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	src, err := h.db.GetRemoteSource(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !src.Enabled {
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Remote source is disabled: " + src.Name})
		return
	}

	doc, fetchErr := h.fetcher.Fetch(c.Request.Context(), src.URL)
	if err := h.db.RecordRemoteSourceStatus(src.ID, fetchErr); err != nil {
		h.logger.Warn("failed to record remote source status", "id", src.ID, "err", err)
	}
	if fetchErr != nil {
		h.logger.Warn("remote source fetch failed", "name", src.Name, "url", src.URL, "err", fetchErr)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: fetchErr.Error()})
		return
	}

	h.applyDocument(c, doc, mode)
}

func remoteSourceResponse(s *database.RemoteSource) models.RemoteSourceResponse {
	return models.RemoteSourceResponse{
		ID:          s.ID,
		Name:        s.Name,
		URL:         s.URL,
		Enabled:     s.Enabled,
		LastUpdated: s.LastUpdated,
		LastStatus:  s.LastStatus,
		LastError:   s.LastError,
		CreatedAt:   s.CreatedAt,
	}
}
