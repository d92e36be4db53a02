// Package repository is the sole point of contact between route handlers
// and storage. Every read that can miss returns ErrNotFound instead of a
// nil row mixed in with real results; all other persistence errors are
// propagated untouched.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
