package page

import "strings"

// Classifier resolves page contexts into descriptors using the configured
// site structure. Classification is deterministic and side-effect free.
type Classifier struct {
	site SiteConfig
}

// Option configures the Classifier.
type Option func(*Classifier)

// WithSiteConfig replaces the default site structure tables.
func WithSiteConfig(site SiteConfig) Option {
	return func(c *Classifier) {
		c.site = site
	}
}

// NewClassifier creates a classifier with the default site structure unless
// overridden by options.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{site: DefaultSiteConfig()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Site returns the classifier's site structure tables.
func (c *Classifier) Site() SiteConfig {
	return c.site
}

// Classify produces exactly one Descriptor for the given page context.
//
// Resolution order: static table first, then /{collection}/{slug...} item
// paths, then single-segment collection list paths. Unmatched paths are not
// an error; they stay static with no category.
func (c *Classifier) Classify(pc Context) Descriptor {
	d := Descriptor{
		URL:             pc.URL,
		Path:            pc.Path,
		Title:           pc.Title,
		MetaDescription: pc.MetaDescription,
		OGTitle:         pc.OGTitle,
		OGImage:         pc.OGImage,
		Type:            TypeStatic,
		HasCMSList:      pc.HasCMSList,
		CMSItemCount:    pc.CMSItemCount,
		FormCount:       pc.FormCount,
	}

	segments := splitPath(pc.Path)

	switch {
	case c.staticEntry(&d, pc.Path):
		// Static table wins even when the path matches a collection.

	case len(segments) >= 2:
		if col, ok := c.site.Collections[segments[0]]; ok {
			d.Type = TypeCMSItem
			d.Collection = segments[0]
			d.Category = col.Type
			d.Slug = segments[len(segments)-1]
			d.ItemName = itemName(pc)
		}

	case len(segments) == 1:
		if col, ok := c.site.Collections[segments[0]]; ok {
			d.Type = TypeCMSList
			d.Collection = segments[0]
			d.Category = col.Type + "-list"
		}
	}

	return d
}

func (c *Classifier) staticEntry(d *Descriptor, path string) bool {
	entry, ok := c.site.StaticPages[path]
	if !ok {
		return false
	}
	d.Type = TypeStatic
	d.Category = entry.Category
	d.ItemName = entry.Name
	return true
}

// itemName resolves a CMS item's display name: first heading, else the
// document title up to a "|" delimiter.
func itemName(pc Context) string {
	for _, h := range pc.Headings {
		if name := strings.TrimSpace(h); name != "" {
			return name
		}
	}
	name, _, _ := strings.Cut(pc.Title, "|")
	return strings.TrimSpace(name)
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
