// Package model holds the question and answer shapes exchanged between the
// HTTP layer, the services and the repositories.
package model
