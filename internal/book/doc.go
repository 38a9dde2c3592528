// Package book holds the ordered, duplicate-rejecting collections of persons
// and properties, plus the predicate-filtered views the shell renders.
package book
