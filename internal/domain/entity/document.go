package entity

import (
	"fmt"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain"
)

// Document es la instantánea anidada de solo lectura sobre la que trabaja el
// motor de consultas: categorías que contienen productos que contienen líneas
// de venta. Se construye una sola vez (por el conversor) y no se muta después;
// todas las consultas son recorridos puros sobre esta estructura.
type Document struct {
	Categories []Category

	// Índice nombre de producto → referencia, construido una vez en NewDocument.
	// Sustituye el re-escaneo lineal por búsqueda que haría un recorrido ingenuo.
	byProduct map[string]productRef
}

type productRef struct {
	category *Category
	product  *Product
}

// NewDocument construye el documento y su índice de nombres de producto.
// Precondición (no validada): nombres de categoría únicos en el documento y
// nombres de producto únicos globalmente. Las categorías no deben mutarse
// después de esta llamada: el índice guarda punteros a los slices recibidos.
func NewDocument(categories []Category) *Document {
	d := &Document{
		Categories: categories,
		byProduct:  make(map[string]productRef),
	}
	for i := range d.Categories {
		cat := &d.Categories[i]
		for j := range cat.Products {
			d.byProduct[cat.Products[j].Name] = productRef{
				category: cat,
				product:  &cat.Products[j],
			}
		}
	}
	return d
}

// Product devuelve el producto con ese nombre y la categoría que lo contiene.
// Falla con domain.ErrNotFound si ningún producto del documento lleva ese nombre.
func (d *Document) Product(name string) (*Product, *Category, error) {
	ref, ok := d.byProduct[name]
	if !ok {
		return nil, nil, fmt.Errorf("producto %q: %w", name, domain.ErrNotFound)
	}
	return ref.product, ref.category, nil
}

// CategoryOfProduct devuelve la categoría propietaria del producto con ese nombre.
func (d *Document) CategoryOfProduct(name string) (*Category, error) {
	_, cat, err := d.Product(name)
	return cat, err
}
