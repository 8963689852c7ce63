package handler

import (
	"context"
	"encoding/xml"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ecobrands/internal/service"
)

// StaticPages are the non-brand pages listed in the sitemap.
var StaticPages = []string{"/", "/about", "/certification", "/terms", "/privacy"}

// Robots serves robots.txt pointing crawlers at the sitemap.
func Robots(siteURL string) fiber.Handler {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + siteURL + "/sitemap.xml"
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/plain")
		return c.SendString(body)
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap serves the static pages plus one entry per brand. If brands cannot be
// loaded only the static pages are listed.
func Sitemap(svc service.BrandService, siteURL string, log *zap.Logger) fiber.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		today := time.Now().UTC().Format("2006-01-02")
		set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
		for _, p := range StaticPages {
			priority := "0.5"
			if p == "/" {
				priority = "1.0"
			}
			set.URLs = append(set.URLs, sitemapURL{Loc: siteURL + p, LastMod: today, ChangeFreq: "weekly", Priority: priority})
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 10*time.Second)
		defer cancel()
		brands, err := svc.All(ctx)
		if err != nil {
			log.Warn("sitemap without brands", zap.Error(err))
		}
		for _, b := range brands {
			if b.Slug == "" {
				continue
			}
			set.URLs = append(set.URLs, sitemapURL{Loc: siteURL + "/" + b.Slug, LastMod: today, ChangeFreq: "weekly", Priority: "0.8"})
		}

		out, err := xml.Marshal(set)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Set(fiber.HeaderContentType, "application/xml")
		return c.Send(append([]byte(xml.Header), out...))
	}
}
