package handlers

import (
	"net/http"

	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
	"github.com/Pesteves2002/tomase-website/internal/logger"
	"github.com/Pesteves2002/tomase-website/internal/utils"
)

// Reload queues a manual reload of the links file.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := utils.ClientIP(r, d.TrustProxy)

		if d.ReloadTrigger == nil {
			d.Logger.Debug("reload requested without a links file", logger.String("remote_ip", ip))
			writeText(d, w, http.StatusConflict, "ℹ️ Built-in links in use, nothing to reload\n")
			return
		}

		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual links reload triggered via endpoint",
				logger.String("remote_ip", ip))
			writeText(d, w, http.StatusAccepted, "✅ Reload triggered successfully\n")
		default:
			d.Logger.Warn("links reload already queued",
				logger.String("remote_ip", ip))
			writeText(d, w, http.StatusTooManyRequests, "⏳ Reload already in progress, please wait\n")
		}
	}
}
