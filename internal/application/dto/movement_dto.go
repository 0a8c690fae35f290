package dto

// CreateMovementPayload es el body exacto que espera POST /api/movements/ del
// upstream: arrays paralelos de códigos y cantidades, en el orden de la lista.
type CreateMovementPayload struct {
	WineID          []string `json:"wine_id"`
	Quantity        []int    `json:"quantity"`
	Type            string   `json:"type"` // COMPRA | VENTA
	Comment         *string  `json:"comment"`
	ClientID        *int64   `json:"client_id"`
	NombreDeCliente *string  `json:"nombre_de_cliente"`
}

// OpenSessionRequest abre una sesión del flujo de movimientos (equivale a
// montar la pantalla). El tipo inicial llega desde la pantalla anterior.
type OpenSessionRequest struct {
	Type string `json:"type"` // COMPRA | VENTA; vacío -> COMPRA
}

// AddItemRequest agrega un código de vino a la lista del borrador.
type AddItemRequest struct {
	WineCode string `json:"wine_code"`
}

// UpdateQuantityRequest edita la cantidad de un renglón. Quantity llega como
// string crudo para permitir el estado "campo vacío" mientras se edita.
type UpdateQuantityRequest struct {
	Quantity string `json:"quantity"`
}

// UpdateDraftRequest cambia tipo, comentario o cliente del borrador.
// Los punteros distinguen "no tocar" de "poner en blanco".
type UpdateDraftRequest struct {
	Type     *string `json:"type,omitempty"`
	Comment  *string `json:"comment,omitempty"`
	ClientID *int64  `json:"client_id,omitempty"`
	// ClearClient en true quita la atribución de cliente (option "Sin cliente").
	ClearClient bool `json:"clear_client,omitempty"`
}

// LineItemDTO renglón del borrador hacia el navegador.
type LineItemDTO struct {
	WineCode string `json:"wine_code"`
	// Quantity como string: "" representa el centinela de campo vacío.
	Quantity string `json:"quantity"`
}

// PartyDTO usuario/cliente para el selector de atribución.
type PartyDTO struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// SessionStateResponse estado completo de la sesión del flujo, tal como lo
// renderiza la pantalla: borrador, partes cargadas y los indicadores de UI.
type SessionStateResponse struct {
	SessionID      string        `json:"session_id"`
	Type           string        `json:"type"`
	WineCode       string        `json:"wine_code"`
	Items          []LineItemDTO `json:"items"`
	ClientID       *int64        `json:"client_id"`
	Comment        string        `json:"comment"`
	Parties        []PartyDTO    `json:"parties"`
	PartiesLoading bool          `json:"parties_loading"`
	CanSubmit      bool          `json:"can_submit"`
	Submitting     bool          `json:"submitting"`
	Error          string        `json:"error,omitempty"`
	Success        string        `json:"success,omitempty"`
}
