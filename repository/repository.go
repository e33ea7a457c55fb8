// Package repository wraps gorm access to the workshop tables. Every read
// returns value copies so callers never share state with the store.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("data tidak ditemukan")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
