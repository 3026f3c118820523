package api

import (
	"embed"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/models"
)

// Embedded UI assets.
//
// The web UI build copies its production output into internal/api/dist/browser
// before compiling Go. Without a build, the checked-in placeholder index.html
// is served.
//
//go:embed dist/browser/*
var embeddedUI embed.FS

func getEmbedFs() static.ServeFileSystem {
	fs, err := static.EmbedFolder(embeddedUI, "dist/browser")
	if err != nil {
		panic("failed to get embedded UI filesystem: " + err.Error())
	}
	return fs
}

// MountSPA serves the embedded UI and falls back to index.html for client-side
// routes. Unknown /api paths get a JSON 404.
func MountSPA(r *gin.Engine, logger *slog.Logger) {
	distFS := getEmbedFs()
	r.Use(static.Serve("/", distFS))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
			return
		}

		index, err := distFS.Open("index.html")
		if err != nil {
			logger.Error("failed to open index.html", "error", err)
			c.Status(http.StatusNotFound)
			return
		}
		defer index.Close()

		stat, err := index.Stat()
		if err != nil {
			logger.Error("failed to stat index.html", "error", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		http.ServeContent(c.Writer, c.Request, "index.html", stat.ModTime(), index)
	})
}
