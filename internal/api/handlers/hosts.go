package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/models"
	"github.com/jroosing/easyhosts/internal/hosts"
)

// GetHosts returns the parsed hosts file.
// @Summary Get hosts document
// @Description Reads and parses the system hosts file
// @Tags hosts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DocumentResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /hosts [get]
func (h *Handler) GetHosts(c *gin.Context) {
	doc, err := h.store.Load()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DocumentResponse{Path: h.store.Path(), Document: doc, Stats: doc.Stats()})
}

// PutHosts replaces the hosts file with a document.
// @Summary Save hosts document
// @Description Backs up the hosts file and writes the serialized document
// @Tags hosts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param document body models.SaveDocumentRequest true "Document to save"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Not permitted to write the hosts file"
// @Router /hosts [put]
func (h *Handler) PutHosts(c *gin.Context) {
	var req models.SaveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	if err := hosts.ValidateDocument(req.Document); err != nil {
		h.writeError(c, err)
		return
	}
	h.editMu.Lock()
	backup, err := h.store.Save(req.Document)
	h.editMu.Unlock()
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.afterWrite(c.Request.Context())

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Hosts file saved", Backup: backup})
}

// GetRawHosts returns the hosts file text unchanged.
// @Summary Get raw hosts file
// @Tags hosts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.RawHostsResponse
// @Router /hosts/raw [get]
func (h *Handler) GetRawHosts(c *gin.Context) {
	content, err := h.store.Read()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.RawHostsResponse{Path: h.store.Path(), Content: content})
}

// PutRawHosts writes hosts text verbatim, keeping comments and layout that a
// document round trip would drop.
// @Summary Save raw hosts file
// @Tags hosts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param content body models.RawHostsRequest true "Hosts file text"
// @Success 200 {object} models.MessageResponse
// @Router /hosts/raw [put]
func (h *Handler) PutRawHosts(c *gin.Context) {
	var req models.RawHostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	h.editMu.Lock()
	backup, err := h.store.WriteRaw(req.Content)
	h.editMu.Unlock()
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.afterWrite(c.Request.Context())

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Hosts file saved", Backup: backup})
}

// ParseHosts parses hosts text without touching the system file.
// @Summary Parse hosts text
// @Tags hosts
// @Accept json
// @Produce json
// @Param content body models.RawHostsRequest true "Hosts file text"
// @Success 200 {object} hosts.Document
// @Router /hosts/parse [post]
func (h *Handler) ParseHosts(c *gin.Context) {
	var req models.RawHostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, hosts.Parse(req.Content))
}

// SerializeHosts renders a document as hosts text without touching the system file.
// @Summary Serialize hosts document
// @Tags hosts
// @Accept json
// @Produce json
// @Param document body models.SaveDocumentRequest true "Document"
// @Success 200 {object} models.RawHostsResponse
// @Router /hosts/serialize [post]
func (h *Handler) SerializeHosts(c *gin.Context) {
	var req models.SaveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	if err := hosts.ValidateDocument(req.Document); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.RawHostsResponse{Content: hosts.Serialize(req.Document)})
}

// Conflicts lists domains mapped to more than one address.
// @Summary Domain conflicts
// @Tags hosts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.ConflictsResponse
// @Router /hosts/conflicts [get]
func (h *Handler) Conflicts(c *gin.Context) {
	doc, err := h.store.Load()
	if err != nil {
		h.writeError(c, err)
		return
	}
	conflicts := hosts.Conflicts(doc)
	c.JSON(http.StatusOK, models.ConflictsResponse{Conflicts: conflicts, Count: len(conflicts)})
}

// Search finds entries whose address, domains or comment contain q.
// @Summary Search entries
// @Tags hosts
// @Produce json
// @Security ApiKeyAuth
// @Param q query string true "Case-insensitive substring"
// @Success 200 {object} models.SearchResponse
// @Router /hosts/search [get]
func (h *Handler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Query parameter q is required"})
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		h.writeError(c, err)
		return
	}

	indices := hosts.Search(doc, q)
	entries := make([]hosts.Entry, 0, len(indices))
	for _, i := range indices {
		entries = append(entries, doc.Entries[i])
	}
	c.JSON(http.StatusOK, models.SearchResponse{Query: q, Indices: indices, Entries: entries})
}

// AddEntry appends an entry to the hosts file.
// @Summary Add entry
// @Tags hosts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param entry body models.EntryRequest true "Entry"
// @Success 201 {object} models.EntryResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /hosts/entries [post]
func (h *Handler) AddEntry(c *gin.Context) {
	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	entry := req.Entry()
	if err := hosts.ValidateEntry(entry); err != nil {
		h.writeError(c, err)
		return
	}

	var index int
	_, backup, err := h.editHosts(c.Request.Context(), func(doc *hosts.Document) error {
		doc.Add(entry)
		index = len(doc.Entries) - 1
		return nil
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.EntryResponse{Index: index, Entry: entry, Backup: backup})
}

// UpdateEntry replaces the entry at index.
// @Summary Update entry
// @Tags hosts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param index path int true "Entry index"
// @Param entry body models.EntryRequest true "Entry"
// @Success 200 {object} models.EntryResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /hosts/entries/{index} [put]
func (h *Handler) UpdateEntry(c *gin.Context) {
	index, ok := entryIndex(c)
	if !ok {
		return
	}

	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	entry := req.Entry()
	if err := hosts.ValidateEntry(entry); err != nil {
		h.writeError(c, err)
		return
	}

	_, backup, err := h.editHosts(c.Request.Context(), func(doc *hosts.Document) error {
		return doc.Replace(index, entry)
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.EntryResponse{Index: index, Entry: entry, Backup: backup})
}

// DeleteEntry removes the entry at index.
// @Summary Delete entry
// @Tags hosts
// @Produce json
// @Security ApiKeyAuth
// @Param index path int true "Entry index"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /hosts/entries/{index} [delete]
func (h *Handler) DeleteEntry(c *gin.Context) {
	index, ok := entryIndex(c)
	if !ok {
		return
	}

	_, backup, err := h.editHosts(c.Request.Context(), func(doc *hosts.Document) error {
		return doc.Remove(index)
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Entry deleted", Backup: backup})
}

// ToggleEntry flips the enabled flag of the entry at index.
// @Summary Toggle entry
// @Tags hosts
// @Produce json
// @Security ApiKeyAuth
// @Param index path int true "Entry index"
// @Success 200 {object} models.EntryResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /hosts/entries/{index}/toggle [post]
func (h *Handler) ToggleEntry(c *gin.Context) {
	index, ok := entryIndex(c)
	if !ok {
		return
	}

	doc, backup, err := h.editHosts(c.Request.Context(), func(doc *hosts.Document) error {
		_, err := doc.Toggle(index)
		return err
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.EntryResponse{Index: index, Entry: doc.Entries[index], Backup: backup})
}

// ResetHosts restores the operating system's default hosts file.
// @Summary Reset hosts file
// @Description Backs up the hosts file and restores the OS default (Windows only)
// @Tags hosts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.MessageResponse
// @Failure 501 {object} models.ErrorResponse
// @Router /hosts/reset [post]
func (h *Handler) ResetHosts(c *gin.Context) {
	h.editMu.Lock()
	err := h.store.ResetToDefault()
	h.editMu.Unlock()
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.afterWrite(c.Request.Context())
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Hosts file reset to default"})
}

func entryIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid entry index: " + c.Param("index")})
		return 0, false
	}
	return index, true
}
