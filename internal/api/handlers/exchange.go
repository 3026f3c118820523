package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/models"
	"github.com/jroosing/easyhosts/internal/exchange"
	"github.com/jroosing/easyhosts/internal/hosts"
)

// ExportJSON downloads the hosts file as a versioned JSON envelope.
// @Summary Export as JSON
// @Tags exchange
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} exchange.Envelope
// @Router /export/json [get]
func (h *Handler) ExportJSON(c *gin.Context) {
	doc, err := h.store.Load()
	if err != nil {
		h.writeError(c, err)
		return
	}

	now := time.Now()
	data, err := exchange.ExportJSON(doc, now)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="hosts_`+now.Format("20060102_150405")+`.json"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ExportHosts downloads the hosts file as normalized hosts text.
// @Summary Export as hosts text
// @Tags exchange
// @Produce plain
// @Security ApiKeyAuth
// @Success 200 {string} string
// @Router /export/hosts [get]
func (h *Handler) ExportHosts(c *gin.Context) {
	doc, err := h.store.Load()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="hosts.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(exchange.ExportHosts(doc)))
}

// ImportJSON merges or replaces the hosts file with an exported envelope.
// @Summary Import JSON export
// @Tags exchange
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param mode query string false "merge (default) or replace"
// @Param envelope body exchange.Envelope true "Export envelope"
// @Success 200 {object} models.ApplyResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /import/json [post]
func (h *Handler) ImportJSON(c *gin.Context) {
	mode, err := exchange.ParseMode(c.Query("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	incoming, err := exchange.ImportJSON(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.applyDocument(c, incoming, mode)
}

// applyDocument combines incoming with the hosts file and writes the result.
func (h *Handler) applyDocument(c *gin.Context, incoming hosts.Document, mode exchange.Mode) {
	saved, backup, err := h.editHosts(c.Request.Context(), func(doc *hosts.Document) error {
		*doc = exchange.Apply(*doc, incoming, mode)
		return nil
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ApplyResponse{
		Mode:     string(mode),
		Imported: len(incoming.Entries),
		Total:    len(saved.Entries),
		Backup:   backup,
	})
}
