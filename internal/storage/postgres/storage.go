package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/usersnack/usersnack/internal/domain/errors"
	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/domain/repository"
)

// querier is the query surface shared by the pool and an open transaction,
// so repositories work identically inside and outside a unit of work.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxPool interface {
	querier
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type repoSet struct {
	db     querier
	logger *slog.Logger
}

type catalogRepository struct{ set *repoSet }
type userRepository struct{ set *repoSet }
type orderRepository struct{ set *repoSet }

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) factory(db querier) repository.Factory {
	return &repoSet{db: db, logger: s.logger}
}

func (rs *repoSet) Catalog() repository.CatalogRepository { return &catalogRepository{set: rs} }
func (rs *repoSet) Users() repository.UserRepository      { return &userRepository{set: rs} }
func (rs *repoSet) Orders() repository.OrderRepository    { return &orderRepository{set: rs} }

// Factory methods for pool-bound domain repositories.
func (s *Storage) Catalog() repository.CatalogRepository { return s.factory(s.pool).Catalog() }
func (s *Storage) Users() repository.UserRepository      { return s.factory(s.pool).Users() }
func (s *Storage) Orders() repository.OrderRepository    { return s.factory(s.pool).Orders() }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pizzas (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            ingredients TEXT[] NOT NULL DEFAULT '{}',
            image_url TEXT,
            available BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS extras (
            id UUID PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            available BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT,
            address TEXT,
            password_hash TEXT,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            user_id UUID NOT NULL REFERENCES users(id),
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL,
            customer_phone TEXT,
            customer_address TEXT NOT NULL,
            items JSONB NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_pizzas_name_ci ON pizzas (lower(name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_ci ON users (lower(email))`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

// txUnsupported recognizes backends that reject transaction blocks, e.g. a
// connection proxy in statement pooling mode.
func txUnsupported(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "0A000" || pgErr.Code == "08P01"
	}
	return false
}

// WithinUnitOfWork executes fn with repositories bound to one transaction.
// When the backend cannot open a transaction block the same sequence runs
// directly against the pool; the degraded mode is logged, not fatal.
func (s *Storage) WithinUnitOfWork(ctx context.Context, fn func(repos repository.Factory) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		if !txUnsupported(err) {
			return err
		}
		s.logger.Warn("transactions unavailable, executing without atomicity",
			slog.String("error", err.Error()))
		return fn(s.factory(s.pool))
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(s.factory(tx))
	return err
}

// --- CatalogRepository implementation ---

const pizzaColumns = `id, name, description, price, ingredients, image_url, available, created_at`

func scanPizza(row pgx.Row) (*model.Pizza, error) {
	var p model.Pizza
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Ingredients, &p.ImageURL, &p.Available, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepository) CreatePizza(ctx context.Context, pizza *model.Pizza) (*model.Pizza, error) {
	const query = `INSERT INTO pizzas (id, name, description, price, ingredients, image_url, available, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.set.db.Exec(ctx, query,
		pizza.ID, pizza.Name, pizza.Description, pizza.Price, pizza.Ingredients, pizza.ImageURL, pizza.Available, pizza.CreatedAt)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return pizza, nil
}

func (r *catalogRepository) GetPizzaByID(ctx context.Context, id string) (*model.Pizza, error) {
	// no availability filter: retired pizzas must still resolve by id
	const query = `SELECT ` + pizzaColumns + ` FROM pizzas WHERE id=$1`
	return scanPizza(r.set.db.QueryRow(ctx, query, id))
}

func (r *catalogRepository) ListPizzas(ctx context.Context, skip, limit int) ([]model.Pizza, int, error) {
	var total int
	if err := r.set.db.QueryRow(ctx, `SELECT COUNT(*) FROM pizzas WHERE available`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT ` + pizzaColumns + ` FROM pizzas WHERE available
                   ORDER BY created_at OFFSET $1 LIMIT $2`
	rows, err := r.set.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Pizza
	for rows.Next() {
		var p model.Pizza
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Ingredients, &p.ImageURL, &p.Available, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *catalogRepository) UpdatePizza(ctx context.Context, id string, update repository.PizzaUpdate) (*model.Pizza, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if update.Name != nil {
		sets = append(sets, "name="+next(*update.Name))
	}
	if update.Description != nil {
		sets = append(sets, "description="+next(*update.Description))
	}
	if update.Price != nil {
		sets = append(sets, "price="+next(*update.Price))
	}
	if update.Ingredients != nil {
		sets = append(sets, "ingredients="+next(update.Ingredients))
	}
	if update.ImageURL != nil {
		sets = append(sets, "image_url="+next(*update.ImageURL))
	}
	if len(sets) == 0 {
		return r.GetPizzaByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE pizzas SET %s WHERE id=%s RETURNING `+pizzaColumns,
		strings.Join(sets, ", "), next(id))
	pizza, err := scanPizza(r.set.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return pizza, nil
}

func (r *catalogRepository) SoftDeletePizza(ctx context.Context, id string) error {
	tag, err := r.set.db.Exec(ctx, `UPDATE pizzas SET available=FALSE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

const extraColumns = `id, name, price, available, created_at`

func scanExtra(row pgx.Row) (*model.Extra, error) {
	var e model.Extra
	err := row.Scan(&e.ID, &e.Name, &e.Price, &e.Available, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *catalogRepository) CreateExtra(ctx context.Context, extra *model.Extra) (*model.Extra, error) {
	const query = `INSERT INTO extras (id, name, price, available, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.set.db.Exec(ctx, query, extra.ID, extra.Name, extra.Price, extra.Available, extra.CreatedAt)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return extra, nil
}

func (r *catalogRepository) GetExtraByID(ctx context.Context, id string) (*model.Extra, error) {
	const query = `SELECT ` + extraColumns + ` FROM extras WHERE id=$1`
	return scanExtra(r.set.db.QueryRow(ctx, query, id))
}

func (r *catalogRepository) ListExtras(ctx context.Context, skip, limit int) ([]model.Extra, int, error) {
	var total int
	if err := r.set.db.QueryRow(ctx, `SELECT COUNT(*) FROM extras WHERE available`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT ` + extraColumns + ` FROM extras WHERE available
                   ORDER BY created_at OFFSET $1 LIMIT $2`
	rows, err := r.set.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Extra
	for rows.Next() {
		var e model.Extra
		if err := rows.Scan(&e.ID, &e.Name, &e.Price, &e.Available, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *catalogRepository) UpdateExtra(ctx context.Context, id string, update repository.ExtraUpdate) (*model.Extra, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if update.Name != nil {
		sets = append(sets, "name="+next(*update.Name))
	}
	if update.Price != nil {
		sets = append(sets, "price="+next(*update.Price))
	}
	if len(sets) == 0 {
		return r.GetExtraByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE extras SET %s WHERE id=%s RETURNING `+extraColumns,
		strings.Join(sets, ", "), next(id))
	extra, err := scanExtra(r.set.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return extra, nil
}

func (r *catalogRepository) SoftDeleteExtra(ctx context.Context, id string) error {
	tag, err := r.set.db.Exec(ctx, `UPDATE extras SET available=FALSE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- UserRepository implementation ---

const userColumns = `id, name, email, phone, address, password_hash, active, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (id, name, email, phone, address, password_hash, active, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.set.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Phone, user.Address, user.PasswordHash, user.Active, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.set.db.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE lower(email)=lower($1)`
	return scanUser(r.set.db.QueryRow(ctx, query, email))
}

func (r *userRepository) List(ctx context.Context, skip, limit int) ([]model.User, int, error) {
	var total int
	if err := r.set.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	rows, err := r.set.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *userRepository) Update(ctx context.Context, id string, update repository.UserUpdate) (*model.User, error) {
	sets := []string{"updated_at=NOW()"}
	args := make([]any, 0, 5)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if update.Name != nil {
		sets = append(sets, "name="+next(*update.Name))
	}
	if update.Email != nil {
		sets = append(sets, "email="+next(*update.Email))
	}
	if update.Phone != nil {
		sets = append(sets, "phone="+next(*update.Phone))
	}
	if update.Address != nil {
		sets = append(sets, "address="+next(*update.Address))
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id=%s RETURNING `+userColumns,
		strings.Join(sets, ", "), next(id))
	user, err := scanUser(r.set.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return user, nil
}

func (r *userRepository) Deactivate(ctx context.Context, id string) error {
	tag, err := r.set.db.Exec(ctx, `UPDATE users SET active=FALSE, updated_at=NOW() WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, customer_name, customer_email, customer_phone, customer_address,
                      items, total_amount, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o     model.Order
		items []byte
	)
	err := row.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.CustomerAddress,
		&items, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &o, nil
}

func (r *orderRepository) Insert(ctx context.Context, order *model.Order) (*model.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	const query = `INSERT INTO orders (id, user_id, customer_name, customer_email, customer_phone, customer_address,
                                       items, total_amount, status, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.set.db.Exec(ctx, query,
		order.ID, order.UserID, order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.CustomerAddress,
		items, order.TotalAmount, order.Status, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.set.db.QueryRow(ctx, query, id))
}

func (r *orderRepository) List(ctx context.Context, skip, limit int) ([]model.Order, int, error) {
	var total int
	if err := r.set.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	rows, err := r.set.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.set.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	var result []model.Order
	for rows.Next() {
		var (
			o     model.Order
			items []byte
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.CustomerAddress,
			&items, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + orderColumns
	return scanOrder(r.set.db.QueryRow(ctx, query, status, id))
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
