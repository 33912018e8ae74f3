// Package users stores the last confirmed users collection in the local
// SQLite database so it can be shown while the remote store is unreachable.
//
// The snapshot is written as a whole (ReplaceAll) inside one transaction and
// read back in the same order. It is never used to seed the live
// collection; the remote store stays the only source of truth.
//
// Typical Usage
//
//	repo := users.NewSQLiteRepository(db)
//	_ = repo.ReplaceAll(ctx, list)
//	snap, _ := repo.GetAll(ctx)
//	at, _ := repo.SavedAt(ctx)
package users
