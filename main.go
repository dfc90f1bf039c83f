package main

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"napoleon/internal/ports/nakama"
)

// InitModule is the entry point Nakama loads from the compiled plugin. All
// wiring lives in the ports layer.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}

// main is never called: the module is loaded as a Nakama plugin via
// InitModule. It exists only so the package links as a main package.
func main() {}
