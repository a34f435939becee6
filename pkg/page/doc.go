// Package page classifies pageviews against a configured site structure.
//
// A Context value object carries everything the classifier may read about
// the current page, so classification is a pure function: the same Context
// and SiteConfig always yield the same Descriptor. Site structure comes
// from DefaultSiteConfig, programmatic options, or a YAML document loaded
// with LoadSiteConfig.
//
//	c := page.NewClassifier()
//	d := c.Classify(page.Context{Path: "/diensten/seo-audit", Title: "SEO Audit | Fendix"})
//	// d.Type == page.TypeCMSItem, d.Collection == "diensten", d.Slug == "seo-audit"
package page
