// Package trackkit instruments a website with behavioral analytics.
//
// TrackKit classifies every page, maintains visitor and session state in a
// pluggable key-value store, derives journey-stage insights from browsing
// history, and emits structured events into a tag-manager style sink.
//
// Key Features:
//
//   - Page classification for static pages, CMS items, and CMS list pages
//   - Visitor identity and session lifecycle with idle expiry
//   - Capped browsing history and derived behavior insights
//   - Scroll depth, engaged time, click, and form funnel tracking
//   - Pluggable storage (in-memory, Redis) and event sinks
//
// Basic Usage:
//
//	tracker := trackkit.New()
//
//	pv := tracker.Page(ctx, page.Context{
//		URL:   "https://example.com/diensten/seo-audit",
//		Path:  "/diensten/seo-audit",
//		Title: "SEO Audit | Example",
//	})
//	defer pv.Close()
//
//	// Feed interaction signals as they happen.
//	pv.Scroll(1200, 800, 4000)
//	pv.Click(clicks.Click{Href: "/contact", Text: "Plan een gesprek", IsLink: true})
//
// Custom Storage and Sink:
//
//	tracker := trackkit.New(
//		trackkit.WithStore(redisStore),
//		trackkit.WithSink(mySink),
//		trackkit.WithLogger(logger),
//	)
//
// Every event pushed into the sink carries the event name, an ISO 8601
// timestamp, and the configured tracker version. Storage failures never
// interrupt tracking; the tracker degrades to per-pageview defaults.
package trackkit
