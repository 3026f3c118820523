package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/models"
	"github.com/jroosing/easyhosts/internal/database"
	"github.com/jroosing/easyhosts/internal/hosts"
)

// ListProfiles returns all stored profiles.
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.ProfileResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /profiles [get]
func (h *Handler) ListProfiles(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	profiles, err := h.db.ListProfiles()
	if err != nil {
		h.writeError(c, err)
		return
	}
	active, err := h.db.ActiveProfileID()
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]models.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		resp = append(resp, profileResponse(&profiles[i], active))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateProfile stores a new profile. Without hosts_data the current hosts
// file is captured.
// @Summary Create profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body models.ProfileRequest true "Profile"
// @Success 201 {object} models.ProfileResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /profiles [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Profile name cannot be empty"})
		return
	}

	doc, err := h.profileDocument(req.Document)
	if err != nil {
		h.writeError(c, err)
		return
	}

	p, err := h.db.CreateProfile(name, req.Description, doc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profileResponse(p, ""))
}

// GetProfile returns one profile.
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} models.ProfileResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	p, err := h.db.GetProfile(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	active, _ := h.db.ActiveProfileID()
	c.JSON(http.StatusOK, profileResponse(p, active))
}

// UpdateProfile replaces a profile's name, description and document.
// @Summary Update profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Profile ID"
// @Param profile body models.ProfileRequest true "Profile"
// @Success 200 {object} models.ProfileResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{id} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	id := c.Param("id")
	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Profile name cannot be empty"})
		return
	}

	doc, err := h.profileDocument(req.Document)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.db.UpdateProfile(id, name, req.Description, doc); err != nil {
		h.writeError(c, err)
		return
	}

	p, err := h.db.GetProfile(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	active, _ := h.db.ActiveProfileID()
	c.JSON(http.StatusOK, profileResponse(p, active))
}

// DeleteProfile removes a profile and its SSID rules.
// @Summary Delete profile
// @Tags profiles
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{id} [delete]
func (h *Handler) DeleteProfile(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	if err := h.db.DeleteProfile(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Profile deleted"})
}

// ActivateProfile writes a profile's document to the hosts file.
// @Summary Activate profile
// @Tags profiles
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{id}/activate [post]
func (h *Handler) ActivateProfile(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	p, err := h.db.GetProfile(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.editMu.Lock()
	backup, err := h.store.Save(p.Document)
	h.editMu.Unlock()
	if err != nil {
		h.writeError(c, err)
		return
	}
	if err := h.db.SetActiveProfile(p.ID); err != nil {
		h.writeError(c, err)
		return
	}
	h.afterWrite(c.Request.Context())

	h.logger.Info("profile activated", "profile", p.Name, "id", p.ID)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Profile " + p.Name + " activated", Backup: backup})
}

func (h *Handler) profileDocument(doc *hosts.Document) (hosts.Document, error) {
	if doc != nil {
		if err := hosts.ValidateDocument(*doc); err != nil {
			return hosts.Document{}, err
		}
		return *doc, nil
	}
	return h.store.Load()
}

func profileResponse(p *database.Profile, activeID string) models.ProfileResponse {
	return models.ProfileResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Document:    p.Document,
		Stats:       p.Document.Stats(),
		Active:      p.ID == activeID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
