package entity

import "github.com/shopspring/decimal"

// Wine es un vino del catálogo tal como lo entrega el API de Blend Vinos.
// Costo viaja como decimal para no perder precisión en dinero.
type Wine struct {
	ID            int64           `json:"id"`
	Codigo        string          `json:"codigo"`
	CodigoDeBarra int64           `json:"codigoDeBarras,omitempty"`
	Nombre        string          `json:"nombre"`
	Cepa          string          `json:"cepa,omitempty"`
	Anejamiento   string          `json:"anejamiento,omitempty"`
	Bodega        string          `json:"bodega,omitempty"`
	Distribuidor  string          `json:"distribuidor,omitempty"`
	Estilo        string          `json:"estilo,omitempty"`
	Total         int             `json:"total"`
	StockReal     int             `json:"stockReal,omitempty"`
	Costo         decimal.Decimal `json:"costo"`
}

// TopSoldWine es una fila del ranking "más vendidos".
type TopSoldWine struct {
	VinoID      int64           `json:"vino_id"`
	Nombre      string          `json:"nombre,omitempty"`
	Vendidos    int             `json:"vendidos"`
	TotalDinero decimal.Decimal `json:"total_dinero"`
}
