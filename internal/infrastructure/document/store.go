package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/entity"
)

// Formato en disco: un único objeto JSON con metadatos de la instantánea y la
// jerarquía completa. Se usan arrays (no objetos clave-nombre) para conservar
// el orden de recorrido de categorías y productos.

type snapshot struct {
	ID          string             `json:"id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Categories  []snapshotCategory `json:"categories"`
}

type snapshotCategory struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Products    []snapshotProduct `json:"products"`
}

type snapshotProduct struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Sales       []snapshotSale  `json:"sales"`
}

type snapshotSale struct {
	Ticket   int    `json:"ticket"`
	Date     string `json:"date"` // YYYY-MM-DD
	Quantity int    `json:"quantity"`
}

// Store persiste el documento como archivo JSON, al estilo de un almacén de
// documentos de un solo registro.
type Store struct {
	path string
}

// NewStore construye el almacén sobre la ruta dada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path devuelve la ruta del archivo.
func (s *Store) Path() string {
	return s.path
}

// Save escribe la instantánea con un ID nuevo y la marca de tiempo actual.
// La escritura es atómica: archivo temporal en el mismo directorio + rename.
func (s *Store) Save(doc *entity.Document) error {
	snap := snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
	for _, cat := range doc.Categories {
		sc := snapshotCategory{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Products:    []snapshotProduct{},
		}
		for _, p := range cat.Products {
			sp := snapshotProduct{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Sales:       []snapshotSale{},
			}
			for _, sale := range p.Sales {
				sp.Sales = append(sp.Sales, snapshotSale{
					Ticket:   sale.Ticket,
					Date:     sale.Date.Format(entity.DateLayout),
					Quantity: sale.Quantity,
				})
			}
			sc.Products = append(sc.Products, sp)
		}
		snap.Categories = append(snap.Categories, sc)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".shop-*.json")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir documento: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renombrar a %s: %w", s.path, err)
	}
	return nil
}

// Load lee la instantánea y reconstruye el documento con su índice.
func (s *Store) Load() (*entity.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("leer documento %s: %w", s.path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("deserializar documento %s: %w", s.path, err)
	}

	categories := make([]entity.Category, 0, len(snap.Categories))
	for _, sc := range snap.Categories {
		cat := entity.Category{
			ID:          sc.ID,
			Name:        sc.Name,
			Description: sc.Description,
		}
		for _, sp := range sc.Products {
			p := entity.Product{
				ID:          sp.ID,
				Name:        sp.Name,
				Description: sp.Description,
				Price:       sp.Price,
			}
			for _, sale := range sp.Sales {
				date, err := entity.ParseDate(sale.Date)
				if err != nil {
					return nil, fmt.Errorf("fecha %q en producto %q: %w", sale.Date, sp.Name, err)
				}
				p.Sales = append(p.Sales, entity.SaleRecord{
					Ticket:   sale.Ticket,
					Date:     date,
					Quantity: sale.Quantity,
				})
			}
			cat.Products = append(cat.Products, p)
		}
		categories = append(categories, cat)
	}

	return entity.NewDocument(categories), nil
}
