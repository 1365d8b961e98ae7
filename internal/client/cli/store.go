package cli

import (
	"context"
	"fmt"

	"github.com/taibogaston/frontendchat/internal/client/config"
	"github.com/taibogaston/frontendchat/internal/client/storage"
	"github.com/taibogaston/frontendchat/internal/client/storage/boltdb"
	"github.com/taibogaston/frontendchat/internal/client/storage/sqlite"
)

// openStore открывает хранилище сессии выбранного вида
func openStore(ctx context.Context, cfg config.Config) (storage.SessionStorage, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		s, err := sqlite.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite session store: %w", err)
		}
		return s, nil
	case config.StoreBolt:
		s, err := boltdb.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
