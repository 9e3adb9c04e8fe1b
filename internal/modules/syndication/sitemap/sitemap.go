// Package sitemap generates the sitemap XML from the same published-row reads
// the public pages use.
package sitemap

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// staticRoutes are the fixed pages with fixed priorities. Data-driven entries
// are appended after these.
var staticRoutes = []URL{
	{Loc: "/", ChangeFreq: "daily", Priority: "1.0"},
	{Loc: "/prompts", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/categories", ChangeFreq: "weekly", Priority: "0.8"},
	{Loc: "/blogs", ChangeFreq: "weekly", Priority: "0.8"},
	{Loc: "/about", ChangeFreq: "monthly", Priority: "0.5"},
	{Loc: "/contact", ChangeFreq: "monthly", Priority: "0.5"},
	{Loc: "/privacy", ChangeFreq: "yearly", Priority: "0.3"},
	{Loc: "/terms", ChangeFreq: "yearly", Priority: "0.3"},
}

type Service struct {
	gw      *gateway.Gateway
	baseURL string
}

func NewService(gw *gateway.Gateway, baseURL string) *Service {
	return &Service{gw: gw, baseURL: strings.TrimRight(baseURL, "/")}
}

// Entries builds the full URL set: static routes plus one entry per published
// prompt, blog, and category. Each data entry's lastmod comes straight from
// the row's update timestamp.
func (s *Service) Entries() ([]URL, error) {
	urls := make([]URL, 0, len(staticRoutes))
	for _, r := range staticRoutes {
		r.Loc = s.abs(r.Loc)
		urls = append(urls, r)
	}

	db, err := s.gw.Reader()
	if err != nil {
		// An inert gateway still yields a valid sitemap of static routes.
		return urls, nil
	}

	prompts, err := gateway.Find[models.PromptModel](gateway.Published(db.Model(&models.PromptModel{})))
	if err != nil {
		return nil, err
	}
	for _, p := range prompts {
		urls = append(urls, URL{
			Loc:        s.abs("/prompts/" + p.Slug),
			LastMod:    lastMod(p.UpdatedAt),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	blogs, err := gateway.Find[models.BlogModel](gateway.Published(db.Model(&models.BlogModel{})))
	if err != nil {
		return nil, err
	}
	for _, b := range blogs {
		urls = append(urls, URL{
			Loc:        s.abs("/blogs/" + b.Slug),
			LastMod:    lastMod(b.UpdatedAt),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	categories, err := gateway.Find[models.CategoryModel](db.Model(&models.CategoryModel{}))
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		urls = append(urls, URL{
			Loc:        s.abs("/categories/" + c.Slug),
			LastMod:    lastMod(c.UpdatedAt),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	return urls, nil
}

// Render serializes the URL set as sitemap XML.
func (s *Service) Render() ([]byte, error) {
	urls, err := s.Entries()
	if err != nil {
		return nil, err
	}
	body, err := xml.MarshalIndent(urlSet{Xmlns: xmlns, URLs: urls}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func (s *Service) abs(path string) string {
	return s.baseURL + path
}

func lastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes wires the sitemap at the site root, outside the API prefix.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/sitemap.xml", h.serve)
}

func (h *Handler) serve(c *gin.Context) {
	body, err := h.svc.Render()
	if err != nil {
		c.String(500, "sitemap generation failed")
		return
	}
	c.Data(200, "application/xml; charset=utf-8", body)
}
