package handlers

import (
	"net/http"

	"gamereviews/cache"
	"gamereviews/monitoring"
	"gamereviews/utils"

	"github.com/gin-gonic/gin"
)

// GetRecentGames proxies the catalog's recent-releases query. The payload
// is passed through unmodified and cached briefly to spare the upstream.
func (h *Handler) GetRecentGames(c *gin.Context) {
	if cache.IsRedisAvailable() {
		if payload, err := cache.GetRecentGames(); err == nil {
			c.Data(http.StatusOK, "application/json", payload)
			return
		}
	}

	payload, err := h.catalog.RecentGames(c.Request.Context())
	if err != nil {
		monitoring.CatalogRequestsTotal.WithLabelValues("failure").Inc()
		utils.Log.WithField("error", err.Error()).Error("Catalog request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}
	monitoring.CatalogRequestsTotal.WithLabelValues("success").Inc()

	if cache.IsRedisAvailable() {
		cache.SetRecentGames(payload)
	}

	c.Data(http.StatusOK, "application/json", payload)
}
