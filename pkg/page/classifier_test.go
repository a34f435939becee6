package page_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendixhq/trackkit/pkg/page"
)

func TestClassifier_Classify(t *testing.T) {
	c := page.NewClassifier()

	t.Run("static table entry", func(t *testing.T) {
		d := c.Classify(page.Context{Path: "/contact", Title: "Contact"})

		assert.Equal(t, page.TypeStatic, d.Type)
		assert.Equal(t, "contact", d.Category)
		assert.Equal(t, "Contact", d.ItemName)
		assert.Empty(t, d.Collection)
	})

	t.Run("static table wins over collection match", func(t *testing.T) {
		// /diensten is both a static entry and a configured collection.
		d := c.Classify(page.Context{Path: "/diensten"})

		assert.Equal(t, page.TypeStatic, d.Type)
		assert.Equal(t, "service-list", d.Category)
		assert.Equal(t, "Diensten Overzicht", d.ItemName)
	})

	t.Run("cms item path", func(t *testing.T) {
		d := c.Classify(page.Context{
			Path:     "/diensten/seo-audit",
			Title:    "SEO Audit | Fendix",
			Headings: []string{"SEO Audit"},
		})

		assert.Equal(t, page.TypeCMSItem, d.Type)
		assert.Equal(t, "diensten", d.Collection)
		assert.Equal(t, "service", d.Category)
		assert.Equal(t, "seo-audit", d.Slug)
		assert.Equal(t, "SEO Audit", d.ItemName)
	})

	t.Run("slug is the last segment of deep paths", func(t *testing.T) {
		d := c.Classify(page.Context{Path: "/resources/guides/seo-checklist"})

		assert.Equal(t, page.TypeCMSItem, d.Type)
		assert.Equal(t, "resources", d.Collection)
		assert.Equal(t, "seo-checklist", d.Slug)
	})

	t.Run("item name falls back to title before delimiter", func(t *testing.T) {
		d := c.Classify(page.Context{
			Path:  "/resources/seo-checklist",
			Title: "  SEO Checklist | Fendix Resources",
		})

		assert.Equal(t, "SEO Checklist", d.ItemName)
	})

	t.Run("blank headings are skipped", func(t *testing.T) {
		d := c.Classify(page.Context{
			Path:     "/resources/seo-checklist",
			Title:    "SEO Checklist | Fendix",
			Headings: []string{"  ", "Actual Heading"},
		})

		assert.Equal(t, "Actual Heading", d.ItemName)
	})

	t.Run("cms list for unlisted single-segment collection", func(t *testing.T) {
		custom := page.NewClassifier(page.WithSiteConfig(page.SiteConfig{
			Collections: map[string]page.Collection{
				"blog": {Name: "Blog", Type: "content"},
			},
		}))

		d := custom.Classify(page.Context{Path: "/blog"})

		assert.Equal(t, page.TypeCMSList, d.Type)
		assert.Equal(t, "blog", d.Collection)
		assert.Equal(t, "content-list", d.Category)
	})

	t.Run("unmatched path stays static without category", func(t *testing.T) {
		d := c.Classify(page.Context{Path: "/privacy-policy", Title: "Privacy"})

		assert.Equal(t, page.TypeStatic, d.Type)
		assert.Empty(t, d.Category)
		assert.Empty(t, d.Collection)
	})

	t.Run("unknown collection with slug stays static", func(t *testing.T) {
		d := c.Classify(page.Context{Path: "/cases/some-case"})

		assert.Equal(t, page.TypeStatic, d.Type)
		assert.Empty(t, d.Collection)
	})

	t.Run("trailing slash segments are ignored", func(t *testing.T) {
		d := c.Classify(page.Context{Path: "/diensten/seo-audit/"})

		assert.Equal(t, page.TypeCMSItem, d.Type)
		assert.Equal(t, "seo-audit", d.Slug)
	})

	t.Run("diagnostics side-reads are carried through", func(t *testing.T) {
		d := c.Classify(page.Context{
			Path:         "/contact",
			HasCMSList:   true,
			CMSItemCount: 4,
			FormCount:    2,
		})

		assert.True(t, d.HasCMSList)
		assert.Equal(t, 4, d.CMSItemCount)
		assert.Equal(t, 2, d.FormCount)
		// Markers never change the classification branch.
		assert.Equal(t, page.TypeStatic, d.Type)
	})

	t.Run("deterministic", func(t *testing.T) {
		pc := page.Context{Path: "/diensten/seo-audit", Title: "SEO Audit | Fendix"}
		assert.Equal(t, c.Classify(pc), c.Classify(pc))
	})
}

func TestLoadSiteConfig(t *testing.T) {
	t.Run("parses collections and static pages", func(t *testing.T) {
		doc := `
collections:
  blog: {name: Blog, type: content}
static_pages:
  /pricing: {name: Pricing, category: conversion}
`
		cfg, err := page.LoadSiteConfig(strings.NewReader(doc))
		require.NoError(t, err)

		assert.Equal(t, page.Collection{Name: "Blog", Type: "content"}, cfg.Collections["blog"])
		assert.Equal(t, page.StaticPage{Name: "Pricing", Category: "conversion"}, cfg.StaticPages["/pricing"])
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := page.LoadSiteConfig(strings.NewReader("collections: ["))
		assert.ErrorIs(t, err, page.ErrInvalidSiteConfig)
	})

	t.Run("missing sections become empty tables", func(t *testing.T) {
		cfg, err := page.LoadSiteConfig(strings.NewReader("collections:\n  blog: {name: Blog, type: content}\n"))
		require.NoError(t, err)
		assert.NotNil(t, cfg.StaticPages)
	})
}
