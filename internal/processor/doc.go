// Package processor drives the conversion of notebooks. It transforms every
// cell of a document, decides whether the document changed, and writes it
// back through a Store. Each result is handed to a Reporter so a run ends
// with a summary of updated, unchanged and failed notebooks.
package processor
