package dto

import "github.com/shopspring/decimal"

// WineUpsertRequest body para crear o editar un vino (se reenvía al upstream).
type WineUpsertRequest struct {
	Codigo        string           `json:"codigo"`
	CodigoDeBarra *int64           `json:"codigoDeBarras,omitempty"`
	Nombre        string           `json:"nombre"`
	Cepa          string           `json:"cepa,omitempty"`
	Anejamiento   string           `json:"anejamiento,omitempty"`
	Bodega        string           `json:"bodega,omitempty"`
	Distribuidor  string           `json:"distribuidor,omitempty"`
	Estilo        string           `json:"estilo,omitempty"`
	Total         *int             `json:"total,omitempty"`
	StockReal     *int             `json:"stockReal,omitempty"`
	Costo         *decimal.Decimal `json:"costo,omitempty"`
}

// PaginatedWinesQuery parámetros de la pantalla de inventario paginado.
type PaginatedWinesQuery struct {
	Page    int // base 0
	Limit   int
	Order   string // ASC | DESC
	OrderBy string // total, nombre, ...
	Q       string // búsqueda libre, opcional
}
