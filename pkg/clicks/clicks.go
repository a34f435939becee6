package clicks

import (
	"strings"

	"github.com/fendixhq/trackkit/pkg/datalayer"
	"github.com/fendixhq/trackkit/pkg/page"
)

// CTAType labels what a call-to-action points at, inferred from its target.
type CTAType string

const (
	CTAGeneral    CTAType = "general"
	CTAContact    CTAType = "contact"
	CTAService    CTAType = "service"
	CTAContent    CTAType = "content"
	CTAConversion CTAType = "conversion"
)

// Click is the value object describing one user click, assembled by the
// presentation layer. CTA styling detection stays on that side; this
// package only decides which event, if any, the click becomes.
type Click struct {
	// Href is the link target; empty for non-link clicks.
	Href string

	// Text is the visible click text.
	Text string

	// ButtonID identifies standalone buttons when present.
	ButtonID string

	// IsLink and IsButton report what was clicked. A link inside a button
	// counts as a link.
	IsLink   bool
	IsButton bool

	// CTA marks links carrying call-to-action styling or placement.
	CTA bool
}

// Config holds the substring markers driving CTA type inference and the
// collection paths that count as content navigation.
type Config struct {
	ContactMarkers    []string
	ServiceMarkers    []string
	ContentMarkers    []string
	ConversionMarkers []string

	// Collections are the collection slugs whose item links emit
	// content_click events.
	Collections []string

	// TextLimit caps click text length in runes.
	TextLimit int
}

// DefaultConfig returns the stock marker and collection tables.
func DefaultConfig() Config {
	return Config{
		ContactMarkers:    []string{"contact"},
		ServiceMarkers:    []string{"dienst"},
		ContentMarkers:    []string{"resource", "blog"},
		ConversionMarkers: []string{"offerte", "demo"},
		Collections:       []string{"diensten", "resources"},
		TextLimit:         80,
	}
}

// Classifier turns clicks into contact, CTA, content or button events.
type Classifier struct {
	emitter *datalayer.Emitter
	cfg     Config
}

// Option is a functional option for configuring the Classifier.
type Option func(*Classifier)

// WithConfig replaces the default marker tables.
func WithConfig(cfg Config) Option {
	return func(c *Classifier) {
		c.cfg = cfg
	}
}

// NewClassifier creates a click classifier emitting through the given
// emitter.
func NewClassifier(emitter *datalayer.Emitter, opts ...Option) *Classifier {
	c := &Classifier{
		emitter: emitter,
		cfg:     DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle classifies one click on the given page and emits at most one
// event. Priority: contact links, then CTAs, then content navigation;
// standalone buttons are reported only when the click was not a link.
func (c *Classifier) Handle(d page.Descriptor, click Click) {
	if click.IsLink {
		c.handleLink(d, click)
		return
	}
	if click.IsButton {
		payload := map[string]any{
			"button_text": truncate(click.Text, c.cfg.TextLimit),
			"page_path":   d.Path,
		}
		if click.ButtonID != "" {
			payload["button_id"] = click.ButtonID
		}
		c.emitter.Emit(datalayer.EventButtonClick, payload)
	}
}

func (c *Classifier) handleLink(d page.Descriptor, click Click) {
	href := click.Href
	text := truncate(click.Text, c.cfg.TextLimit)

	if value, ok := strings.CutPrefix(href, "tel:"); ok {
		c.emitter.Emit(datalayer.EventContactClick, map[string]any{
			"click_type":  "phone",
			"click_value": value,
			"page_path":   d.Path,
		})
		return
	}

	if value, ok := strings.CutPrefix(href, "mailto:"); ok {
		value, _, _ = strings.Cut(value, "?")
		c.emitter.Emit(datalayer.EventContactClick, map[string]any{
			"click_type":  "email",
			"click_value": value,
			"page_path":   d.Path,
		})
		return
	}

	if click.CTA {
		c.emitter.Emit(datalayer.EventCTAClick, map[string]any{
			"cta_text":  text,
			"cta_url":   href,
			"cta_type":  string(c.InferCTAType(href)),
			"page_path": d.Path,
			"page_type": string(d.Type),
		})
		return
	}

	for _, collection := range c.cfg.Collections {
		if strings.Contains(href, "/"+collection+"/") {
			c.emitter.Emit(datalayer.EventContentClick, map[string]any{
				"target_collection": collection,
				"target_slug":       lastSegment(href),
				"click_text":        text,
				"page_path":         d.Path,
			})
			return
		}
	}
}

// InferCTAType resolves a CTA target through the marker cascade: contact
// before service before content before conversion; everything else is
// general.
func (c *Classifier) InferCTAType(href string) CTAType {
	switch {
	case containsAny(href, c.cfg.ContactMarkers):
		return CTAContact
	case containsAny(href, c.cfg.ServiceMarkers):
		return CTAService
	case containsAny(href, c.cfg.ContentMarkers):
		return CTAContent
	case containsAny(href, c.cfg.ConversionMarkers):
		return CTAConversion
	default:
		return CTAGeneral
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func lastSegment(href string) string {
	href = strings.TrimSuffix(href, "/")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if limit > 0 && len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
