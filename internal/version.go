package internal

// Version is the release of the bilingual tool, overridden at build time
// through -ldflags "-X codeberg.org/snonux/bilingual/internal.Version=...".
var Version = "0.3.0"
