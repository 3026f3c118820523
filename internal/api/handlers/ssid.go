package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/models"
)

// ListSSIDRules returns all SSID to profile rules.
// @Summary List SSID rules
// @Tags ssid
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.SSIDRuleResponse
// @Router /ssid-rules [get]
func (h *Handler) ListSSIDRules(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	rules, err := h.db.ListSSIDRules()
	if err != nil {
		h.writeError(c, err)
		return
	}

	names := map[string]string{}
	if profiles, err := h.db.ListProfiles(); err == nil {
		for _, p := range profiles {
			names[p.ID] = p.Name
		}
	}

	resp := make([]models.SSIDRuleResponse, 0, len(rules))
	for _, r := range rules {
		resp = append(resp, models.SSIDRuleResponse{SSID: r.SSID, ProfileID: r.ProfileID, ProfileName: names[r.ProfileID]})
	}
	c.JSON(http.StatusOK, resp)
}

// PutSSIDRule creates or replaces the rule for a network.
// @Summary Upsert SSID rule
// @Tags ssid
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param rule body models.SSIDRuleRequest true "Rule"
// @Success 200 {object} models.SSIDRuleResponse
// @Failure 404 {object} models.ErrorResponse "Unknown profile"
// @Router /ssid-rules [put]
func (h *Handler) PutSSIDRule(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req models.SSIDRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	ssid := strings.TrimSpace(req.SSID)
	if ssid == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "SSID cannot be empty"})
		return
	}
	if err := h.db.UpsertSSIDRule(ssid, req.ProfileID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SSIDRuleResponse{SSID: ssid, ProfileID: req.ProfileID})
}

// DeleteSSIDRule removes the rule for a network.
// @Summary Delete SSID rule
// @Tags ssid
// @Produce json
// @Security ApiKeyAuth
// @Param ssid path string true "Network name"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /ssid-rules/{ssid} [delete]
func (h *Handler) DeleteSSIDRule(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	if err := h.db.DeleteSSIDRule(c.Param("ssid")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "SSID rule deleted"})
}

// SwitcherStatus returns the SSID switcher state.
// @Summary SSID switcher status
// @Tags ssid
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} switcher.Status
// @Failure 404 {object} models.ErrorResponse "Switcher not enabled"
// @Router /switcher/status [get]
func (h *Handler) SwitcherStatus(c *gin.Context) {
	s := h.GetSwitcher()
	if s == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "SSID switcher is not enabled"})
		return
	}
	c.JSON(http.StatusOK, s.Status())
}

// SwitcherCheck runs an SSID check immediately.
// @Summary Check SSID now
// @Tags ssid
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} switcher.Outcome
// @Failure 404 {object} models.ErrorResponse "Switcher not enabled"
// @Failure 500 {object} models.ErrorResponse
// @Router /switcher/check [post]
func (h *Handler) SwitcherCheck(c *gin.Context) {
	s := h.GetSwitcher()
	if s == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "SSID switcher is not enabled"})
		return
	}
	out, err := s.CheckNow(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
