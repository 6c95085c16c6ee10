package handlers

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/Pesteves2002/tomase-website/internal/domain"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	LinksLoaded *int   `json:"links_loaded,omitempty"`
	LastReload  string `json:"last_reload,omitempty"`
	Source      string `json:"source,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the link directory, the assets and the demos.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		snap := d.MemoryIndex.Snapshot()
		count := len(snap.Links)
		lastReload := "never"
		if !snap.LastReload.IsZero() {
			lastReload = snap.LastReload.Format(time.DateTime)
		}

		mode := "builtin"
		if d.LinksFile != "" {
			mode = "file"
		}

		components := map[string]componentStatus{
			"links": {
				OK:          count > 0,
				LinksLoaded: &count,
				LastReload:  lastReload,
				Source:      snap.Source,
				Mode:        mode,
			},
			"assets": checkAssets(d, snap.Links, snap.Profile),
			"demos": {
				OK:   true,
				Mode: "delay=" + d.LoadDelay.String(),
			},
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func overallStatus(components map[string]componentStatus) string {
	if links, ok := components["links"]; ok && !links.OK {
		return "critical"
	}
	if assets, ok := components["assets"]; ok && !assets.OK {
		return "degraded"
	}
	return "ok"
}

// checkAssets looks for every icon and the portrait. Missing files only break images.
func checkAssets(d deps.Deps, links []domain.LinkEntry, profile domain.Profile) componentStatus {
	if d.Assets == nil {
		return componentStatus{OK: false, Impact: "images-broken", Error: "no asset filesystem"}
	}

	names := make([]string, 0, len(links)+1)
	for _, l := range links {
		names = append(names, l.IconPath())
	}
	if profile.Photo != "" {
		names = append(names, profile.Photo)
	}

	for _, name := range names {
		if _, err := fs.Stat(d.Assets, name); err != nil {
			return componentStatus{OK: false, Impact: "images-broken", Error: "missing " + name}
		}
	}
	return componentStatus{OK: true}
}
