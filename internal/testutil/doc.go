// Package testutil provides builders and typical fixtures for tests.
// Builders panic on invalid input; they are only meant for hard-coded test data.
package testutil
