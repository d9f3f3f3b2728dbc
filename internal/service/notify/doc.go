// Package notify implements the campaign notification dispatcher.
//
// A dispatch resolves a campaign from the static registry, fans out over
// the party's usable channels (email, SMS) best-effort, records one audit
// row per successful delivery, and advances the party status for the two
// lifecycle campaigns. Channel failures are isolated: one channel failing
// never prevents the attempt on the other.
package notify
