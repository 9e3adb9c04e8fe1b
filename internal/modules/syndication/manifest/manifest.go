// Package manifest serves the web app manifest, a fixed descriptor with no
// data dependency.
package manifest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Icon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

type Document struct {
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	Description     string `json:"description"`
	StartURL        string `json:"start_url"`
	Display         string `json:"display"`
	BackgroundColor string `json:"background_color"`
	ThemeColor      string `json:"theme_color"`
	Icons           []Icon `json:"icons"`
}

// Default is the site's manifest. It never varies per request.
var Default = Document{
	Name:            "Pixico - AI Image Prompts",
	ShortName:       "Pixico",
	Description:     "Discover and copy AI image prompts for every style and model.",
	StartURL:        "/",
	Display:         "standalone",
	BackgroundColor: "#0a0a0a",
	ThemeColor:      "#7c3aed",
	Icons: []Icon{
		{Src: "/icons/icon-192.png", Sizes: "192x192", Type: "image/png"},
		{Src: "/icons/icon-512.png", Sizes: "512x512", Type: "image/png"},
		{Src: "/icons/icon-512-maskable.png", Sizes: "512x512", Type: "image/png", Purpose: "maskable"},
	},
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/manifest.webmanifest", h.serve)
}

func (h *Handler) serve(c *gin.Context) {
	c.Header("Content-Type", "application/manifest+json")
	c.JSON(http.StatusOK, Default)
}
