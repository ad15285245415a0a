package postgres

import (
	"context"
	"errors"
	"log"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/models"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemRepo implements the storage.ItemRepository interface using PostgreSQL.
// The price column is DECIMAL; every SELECT casts it to float8 so callers
// always receive a plain numeric value.
type ItemRepo struct {
	db *pgxpool.Pool
}

// NewItemRepo creates a new ItemRepo on the given connection pool.
func NewItemRepo(db *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{db: db}
}

// Compile-time check to ensure ItemRepo implements ItemRepository
var _ storage.ItemRepository = (*ItemRepo)(nil)

func (r *ItemRepo) Create(ctx context.Context, input models.CreateItemInput) (*models.Item, error) {
	query := `INSERT INTO items (name, price) VALUES ($1, $2) RETURNING id, name, price::float8;`

	var item models.Item
	err := r.db.QueryRow(ctx, query, input.Name, input.Price).Scan(&item.ID, &item.Name, &item.Price)
	if err != nil {
		log.Printf("Error creating item: %v\n", err)
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) FindAll(ctx context.Context) ([]models.Item, error) {
	query := `SELECT id, name, price::float8 AS price FROM items;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying all items: %v\n", err)
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Item])
	if err != nil {
		log.Printf("Error scanning items: %v\n", err)
		return nil, err
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

func (r *ItemRepo) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT id, name, price::float8 FROM items WHERE id = $1;`
	row := r.db.QueryRow(ctx, query, id)

	var item models.Item
	err := row.Scan(&item.ID, &item.Name, &item.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning item by ID %d: %v\n", id, err)
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) Update(ctx context.Context, id int64, input models.UpdateItemInput) (*models.Item, error) {
	query := `UPDATE items SET name = $1, price = $2 WHERE id = $3 RETURNING id, name, price::float8;`

	var item models.Item
	err := r.db.QueryRow(ctx, query, input.Name, input.Price, id).Scan(&item.ID, &item.Name, &item.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating item %d: %v\n", id, err)
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM items WHERE id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting item %d: %v\n", id, err)
		return false, err
	}

	return cmdTag.RowsAffected() > 0, nil
}

func (r *ItemRepo) FindByPriceRange(ctx context.Context, min, max float64) ([]models.Item, error) {
	query := `SELECT id, name, price::float8 AS price FROM items WHERE price BETWEEN $1 AND $2;`
	rows, err := r.db.Query(ctx, query, min, max)
	if err != nil {
		log.Printf("Error querying items by price range [%v, %v]: %v\n", min, max, err)
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Item])
	if err != nil {
		log.Printf("Error scanning items: %v\n", err)
		return nil, err
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}
