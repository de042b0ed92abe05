// Package batch finds the notebooks a run works on, either by walking the
// notebook tree or by reading an explicit list of paths from a file.
package batch
