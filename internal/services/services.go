// Package services implements the feature operations of the dashboard on top
// of the record store: profile editing, the personal calendar, school
// settings, report collections and the notification feed. Services own the
// read-hydrate-mutate-write cycle of their records; the store below them only
// ever sees whole-record overwrites.
package services

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())
