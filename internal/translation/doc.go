// Package translation implements the bilingual text transformation engine.
// Markdown headings written in Chinese get an English heading inserted above
// them, and well-known Chinese code comments are replaced with English ones.
// Everything is a deterministic lookup over the curated tables in package
// phrases; no machine translation is involved.
package translation
