// Package notebook reads and writes Jupyter notebook documents. Only the
// cell list is interpreted; every other field of the document and of each
// cell is carried through untouched, so a notebook written back differs from
// the one read only in the cell sources that were changed.
package notebook
