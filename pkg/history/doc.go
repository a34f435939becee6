// Package history keeps the rolling record of pages a visitor has seen.
//
// Two lists are maintained per pageview: the current session's ordered page
// list (a strict time-ordered subsequence of the global one for that
// session), and the capped global history holding the 50 most recent pages
// across sessions, most recent first, plus an uncapped running total of all
// pageviews ever recorded. There is no expiry beyond the cap and no
// deduplication; revisiting a path adds a new entry.
package history
