// Package archive keeps copies of notebooks before they are rewritten in place.
package archive
