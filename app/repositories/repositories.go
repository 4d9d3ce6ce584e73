// Package repositories implements data access on the shared gorm connection.
package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/elgarage/backend/pkg/apperr"
)

// session returns a context-bound handle, or an error when the store never
// connected. The server boots even when Connect fails, so every operation
// must answer with a store fault instead of dereferencing a nil DB.
func session(ctx context.Context, db *gorm.DB) (*gorm.DB, error) {
	if db == nil {
		return nil, apperr.New(apperr.Unavailable, "Erreur DB: Non connectée")
	}
	return db.WithContext(ctx), nil
}
