// Package report prints the progress of a conversion run: the number of
// notebooks found, one status line per notebook and a closing summary.
// Messages come from embedded catalogs so the report can be read in English
// or Chinese.
package report
