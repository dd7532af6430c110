package entity

// Category agrupa productos relacionados dentro del documento.
// Name es único en todo el documento y actúa como clave de agrupación
// en ausencia de índices secundarios.
type Category struct {
	ID          int
	Name        string
	Description string
	Products    []Product
}
