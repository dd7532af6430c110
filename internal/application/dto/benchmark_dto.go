package dto

// OperationStatsDTO estadísticas de tiempo de ejecución de una operación (en segundos).
type OperationStatsDTO struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// OperationComparisonDTO compara la misma consulta contra el almacén relacional
// y contra el motor de documento.
type OperationComparisonDTO struct {
	Operation string            `json:"operation"`
	SQL       OperationStatsDTO `json:"sql"`
	Document  OperationStatsDTO `json:"document"`
	// DiffPct = (document.mean - sql.mean) / sql.mean * 100; positivo ⇒ SQL más rápido.
	DiffPct float64 `json:"diff_pct"`
	Faster  string  `json:"faster"` // "sql" o "document"
}

// BenchmarkReportDTO resultado completo del benchmark SQL vs documento.
type BenchmarkReportDTO struct {
	Runs       int                      `json:"runs"`
	Operations []OperationComparisonDTO `json:"operations"`
}
