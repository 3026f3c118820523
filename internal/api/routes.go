package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/easyhosts/internal/api/handlers"
	"github.com/jroosing/easyhosts/internal/api/middleware"
	"github.com/jroosing/easyhosts/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/easyhosts/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.GET("/hosts", h.GetHosts)
	api.PUT("/hosts", h.PutHosts)
	api.GET("/hosts/raw", h.GetRawHosts)
	api.PUT("/hosts/raw", h.PutRawHosts)
	api.POST("/hosts/parse", h.ParseHosts)
	api.POST("/hosts/serialize", h.SerializeHosts)
	api.GET("/hosts/conflicts", h.Conflicts)
	api.GET("/hosts/search", h.Search)
	api.POST("/hosts/entries", h.AddEntry)
	api.PUT("/hosts/entries/:index", h.UpdateEntry)
	api.DELETE("/hosts/entries/:index", h.DeleteEntry)
	api.POST("/hosts/entries/:index/toggle", h.ToggleEntry)
	api.POST("/hosts/reset", h.ResetHosts)

	api.GET("/export/json", h.ExportJSON)
	api.GET("/export/hosts", h.ExportHosts)
	api.POST("/import/json", h.ImportJSON)

	api.GET("/backups", h.ListBackups)
	api.POST("/backups", h.CreateBackup)
	api.POST("/backups/restore", h.RestoreBackup)
	api.DELETE("/backups", h.DeleteBackup)

	api.GET("/profiles", h.ListProfiles)
	api.POST("/profiles", h.CreateProfile)
	api.GET("/profiles/:id", h.GetProfile)
	api.PUT("/profiles/:id", h.UpdateProfile)
	api.DELETE("/profiles/:id", h.DeleteProfile)
	api.POST("/profiles/:id/activate", h.ActivateProfile)

	api.GET("/remote-sources", h.ListRemoteSources)
	api.POST("/remote-sources", h.AddRemoteSource)
	api.PUT("/remote-sources/:id/enabled", h.SetRemoteSourceEnabled)
	api.DELETE("/remote-sources/:id", h.DeleteRemoteSource)
	api.POST("/remote-sources/:id/apply", h.ApplyRemoteSource)

	api.GET("/ssid-rules", h.ListSSIDRules)
	api.PUT("/ssid-rules", h.PutSSIDRule)
	api.DELETE("/ssid-rules/:ssid", h.DeleteSSIDRule)
	api.GET("/switcher/status", h.SwitcherStatus)
	api.POST("/switcher/check", h.SwitcherCheck)

	api.GET("/system/ping", h.Ping)
	api.GET("/system/lookup", h.Lookup)
	api.POST("/system/flush-dns", h.FlushDNSCache)
	api.GET("/system/ssid", h.CurrentSSID)
	api.GET("/system/admin", h.Admin)
}
