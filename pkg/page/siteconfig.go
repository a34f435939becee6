package page

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSiteConfig indicates a site config document could not be parsed
var ErrInvalidSiteConfig = errors.New("page.invalid_site_config")

// Collection describes one CMS content collection reachable under
// /{collection}/... paths.
type Collection struct {
	// Name is the display name of the collection.
	Name string `yaml:"name"`

	// Type is the semantic category assigned to item pages; list pages get
	// Type + "-list".
	Type string `yaml:"type"`
}

// StaticPage describes one entry of the static-page table.
type StaticPage struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// SiteConfig holds the site structure tables driving classification:
// collection slugs and fixed paths. The static table always wins over a
// collection match for the same path.
type SiteConfig struct {
	Collections map[string]Collection `yaml:"collections"`
	StaticPages map[string]StaticPage `yaml:"static_pages"`
}

// DefaultSiteConfig returns the stock site structure.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Collections: map[string]Collection{
			"resources": {Name: "Resources", Type: "content"},
			"diensten":  {Name: "Diensten", Type: "service"},
		},
		StaticPages: map[string]StaticPage{
			"/":          {Name: "Homepage", Category: "landing"},
			"/over-ons":  {Name: "Over Ons", Category: "about"},
			"/contact":   {Name: "Contact", Category: "contact"},
			"/resources": {Name: "Resources Overzicht", Category: "content-list"},
			"/diensten":  {Name: "Diensten Overzicht", Category: "service-list"},
		},
	}
}

// LoadSiteConfig parses a YAML site structure document:
//
//	collections:
//	  blog: {name: Blog, type: content}
//	static_pages:
//	  /pricing: {name: Pricing, category: conversion}
func LoadSiteConfig(r io.Reader) (SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return SiteConfig{}, errors.Join(ErrInvalidSiteConfig, err)
	}
	if cfg.Collections == nil {
		cfg.Collections = make(map[string]Collection)
	}
	if cfg.StaticPages == nil {
		cfg.StaticPages = make(map[string]StaticPage)
	}
	return cfg, nil
}
