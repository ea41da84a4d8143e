package repos

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"essencia/internal/domain"
)

//go:embed migrations
var migrations embed.FS

// ErrDuplicate is returned when a write hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// OpenDB connects to PostgreSQL for postgres:// DSNs and to SQLite otherwise
// (a file path or ":memory:"), then brings the schema up to date.
func OpenDB(dsn string) (*sqlx.DB, error) {
	driver := "sqlite"
	if isPostgres(dsn) {
		driver = "pgx"
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// one connection: keeps :memory: a single database and serializes writers
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrateUp(db, dsn); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func migrateUp(db *sqlx.DB, dsn string) error {
	dir := "migrations/sqlite"
	if isPostgres(dsn) {
		dir = "migrations/postgres"
	}
	src, err := iofs.New(migrations, dir)
	if err != nil {
		return err
	}

	var m *migrate.Migrate
	if isPostgres(dsn) {
		// the pgx driver owns and closes its own connection
		url := "pgx5://" + dsn[strings.Index(dsn, "://")+3:]
		m, err = migrate.NewWithSourceInstance("iofs", src, url)
		if err != nil {
			return err
		}
		defer func() { _, _ = m.Close() }()
	} else {
		// :memory: only exists on this handle, so migrate through it and leave it open
		drv, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
		if err != nil {
			return err
		}
		m, err = migrate.NewWithInstance("iofs", src, "sqlite", drv)
		if err != nil {
			return err
		}
		defer func() { _ = src.Close() }()
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		code := sqErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			(code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqErr.Error(), "UNIQUE"))
	}
	return false
}

func utcNow() time.Time { return time.Now().UTC() }

type seedProduct struct {
	Name, Brand string
	Price       domain.Money
	Image       string
	Category    domain.Category
	Notes       string
}

// Demo catalog. Stock is left to the column default.
var seedProducts = []seedProduct{
	{"Rosa Noturna", "Essência Negra", domain.MustMoney("289.90"), "/images/perfume-fem-1.png", domain.Feminine, "Rosa, Baunilha, Âmbar"},
	{"Obsidiana Wood", "Essência Negra", domain.MustMoney("349.90"), "/images/perfume-masc-1.png", domain.Masculine, "Cedro, Pimenta Preta, Couro"},
	{"Aurum Citrus", "Luxe Edition", domain.MustMoney("219.90"), "/images/perfume-uni-1.png", domain.Unisex, "Bergamota, Limão Siciliano, Almíscar"},
	{"Velvet Orchid", "Essência Negra", domain.MustMoney("410.00"), "/images/perfume-fem-1.png", domain.Feminine, "Orquídea, Mel, Rum"},
	{"Midnight Smoke", "Luxe Edition", domain.MustMoney("389.00"), "/images/perfume-masc-1.png", domain.Masculine, "Tabaco, Madeira Guaiac, Incenso"},
	{"Pure Gold", "Essência Negra", domain.MustMoney("299.90"), "/images/perfume-uni-1.png", domain.Unisex, "Açafrão, Sândalo, Patchouli"},
}

type seedPost struct {
	Title, Excerpt, Content, Image string
	ProductIdx                     int // index into seedProducts, -1 for none
}

var seedPosts = []seedPost{
	{
		"Como escolher seu perfume de assinatura",
		"Famílias olfativas, notas de saída e fixação: um guia rápido.",
		"Um perfume de assinatura começa pela família olfativa.\n\nExperimente na pele, não no papel, e espere as notas de fundo aparecerem antes de decidir.",
		"/images/blog-1.png", 0,
	},
	{
		"Notas amadeiradas para o inverno",
		"Cedro, couro e especiarias que aquecem as noites frias.",
		"Fragrâncias amadeiradas ganham profundidade no frio.\n\nCombine com especiarias para um rastro marcante.",
		"/images/blog-2.png", 1,
	},
	{
		"Cítricos que duram o dia todo",
		"Frescor sem evaporar antes do almoço.",
		"Cítricos costumam ser voláteis.\n\nBases de almíscar ajudam a prolongar a fixação.",
		"/images/blog-3.png", 2,
	},
}

// SeedIfEmpty loads the demo catalog and blog when there are no products yet.
func SeedIfEmpty(ctx context.Context, db *sqlx.DB) error {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products/blog posts")

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]int64, len(seedProducts))
	for i, p := range seedProducts {
		if err := tx.GetContext(ctx, &ids[i], tx.Rebind(`
			INSERT INTO products(name, brand, price, image, category, notes)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING id
		`), p.Name, p.Brand, p.Price, p.Image, p.Category, p.Notes); err != nil {
			return err
		}
	}

	now := utcNow()
	for i, p := range seedPosts {
		var productID *int64
		if p.ProductIdx >= 0 {
			productID = &ids[p.ProductIdx]
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO blog_posts(title, excerpt, content, image, product_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`), p.Title, p.Excerpt, p.Content, p.Image, productID, now.Add(time.Duration(i)*time.Minute)); err != nil {
			return err
		}
	}

	return tx.Commit()
}
