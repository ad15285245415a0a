package app

import (
	"github.com/davidpincheira/coding-interview-backend-level-3/config"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Application holds core application dependencies.
type Application struct {
	Config   *config.Config
	DBPool   *pgxpool.Pool
	ItemRepo storage.ItemRepository
}
