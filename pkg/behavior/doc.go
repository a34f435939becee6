// Package behavior derives journey insights from tracked history and
// session state.
//
// Analyze is deliberately pure: it holds no state and persists nothing, so
// the same inputs always produce the same Insights. Exposure flags are
// existential checks over the cross-session history, while the journey
// stage additionally weighs the current session's pageview count through a
// fixed priority cascade: consideration beats interest beats awareness
// beats discovery.
package behavior
