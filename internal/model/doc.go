// Package model composes the person book, the property book, the user
// preferences and the filtered views into the single mutation surface that
// commands act on.
package model
