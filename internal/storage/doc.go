// Package storage persists the person book, the property book and the user
// preferences as JSON documents. Loading is all or nothing: a single invalid
// record fails the whole file with a DataConversionError.
package storage
