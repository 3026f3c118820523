package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/models"
)

// ListBackups returns all hosts backups, newest first.
// @Summary List backups
// @Tags backups
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.BackupListResponse
// @Router /backups [get]
func (h *Handler) ListBackups(c *gin.Context) {
	backups, err := h.store.ListBackups()
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := models.BackupListResponse{
		Directory: h.store.BackupDir(),
		Backups:   make([]models.BackupResponse, 0, len(backups)),
	}
	for _, b := range backups {
		resp.Backups = append(resp.Backups, models.BackupResponse{
			Filename:  b.Filename,
			Path:      b.Path,
			Timestamp: b.Timestamp,
			Size:      b.Size,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// CreateBackup copies the current hosts file to a new backup.
// @Summary Create backup
// @Tags backups
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} models.MessageResponse
// @Router /backups [post]
func (h *Handler) CreateBackup(c *gin.Context) {
	path, err := h.store.Backup()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.MessageResponse{Message: "Backup created", Backup: path})
}

// RestoreBackup replaces the hosts file with a backup.
// @Summary Restore backup
// @Description Backs up the current file first, then restores the given backup
// @Tags backups
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param backup body models.BackupRequest true "Backup file name or path"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /backups/restore [post]
func (h *Handler) RestoreBackup(c *gin.Context) {
	var req models.BackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	h.editMu.Lock()
	err := h.store.Restore(req.Path)
	h.editMu.Unlock()
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.afterWrite(c.Request.Context())

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Backup restored"})
}

// DeleteBackup removes a backup file.
// @Summary Delete backup
// @Tags backups
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param backup body models.BackupRequest true "Backup file name or path"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /backups [delete]
func (h *Handler) DeleteBackup(c *gin.Context) {
	var req models.BackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	if err := h.store.DeleteBackup(req.Path); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Backup deleted"})
}
