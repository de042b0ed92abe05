// Package phrases holds the curated lookup tables that drive the bilingual
// notebook conversion: the title map, the phrase table, the code comment
// patterns, the experiment label and the link placeholders.
//
// The tables live in an embedded TOML file. Every list is declared as an
// array of tables so the declaration order survives decoding; lookups scan
// the lists top to bottom and the first match wins.
package phrases
