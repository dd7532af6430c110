package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// Driver SQLite en Go puro (sin cgo).
	_ "modernc.org/sqlite"
)

// Config opciones de apertura de la base SQLite.
type Config struct {
	Path        string // ruta del archivo .db
	CacheSize   int    // tamaño de page cache en KB
	JournalMode string // WAL, DELETE, TRUNCATE...
	BusyTimeout int    // timeout de locks en milisegundos
}

// DefaultConfig devuelve la configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Path:        "data/shop.db",
		CacheSize:   2000,
		JournalMode: "WAL",
		BusyTimeout: 5000,
	}
}

// Store almacén relacional de la tienda sobre SQLite. Cumple el mismo contrato
// analítico que el motor de documento; además expone esquema, seed y volcado.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en cfg.Path con los pragmas indicados.
func Open(cfg Config) (*Store, error) {
	def := DefaultConfig()
	if cfg.Path == "" {
		cfg.Path = def.Path
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = def.CacheSize
	}
	if cfg.JournalMode == "" {
		cfg.JournalMode = def.JournalMode
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = def.BusyTimeout
	}

	// El driver aplica los pragmas por conexión mediante el parámetro
	// _pragma=nombre(valor). cache_size negativo significa KiB.
	dsn := fmt.Sprintf("%s?_pragma=cache_size(-%d)&_pragma=journal_mode(%s)&_pragma=busy_timeout(%d)",
		cfg.Path, cfg.CacheSize, cfg.JournalMode, cfg.BusyTimeout)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir SQLite %s: %w", cfg.Path, err)
	}
	return &Store{db: db}, nil
}

// InitSchema crea las cuatro tablas del esquema normalizado si no existen.
func (s *Store) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS Categories (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT
);`,
		`CREATE TABLE IF NOT EXISTS Products (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price REAL,
  category_id INTEGER,
  FOREIGN KEY(category_id) REFERENCES Categories(id)
);`,
		`CREATE TABLE IF NOT EXISTS Sales (
  id INTEGER PRIMARY KEY,
  date TEXT
);`,
		`CREATE TABLE IF NOT EXISTS SaleDetails (
  id INTEGER PRIMARY KEY,
  sale_id INTEGER,
  product_id INTEGER,
  quantity INTEGER,
  FOREIGN KEY(sale_id) REFERENCES Sales(id),
  FOREIGN KEY(product_id) REFERENCES Products(id)
);`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}

// Close cierra la conexión subyacente.
func (s *Store) Close() error {
	return s.db.Close()
}
