package entity

import "encoding/json"

// Party es un usuario/cliente al que se le puede atribuir un movimiento.
// Datos de referencia de solo lectura: el flujo de movimientos nunca los muta.
type Party struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre,omitempty"`
	Username string `json:"nombredeusuario,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	RolID    int    `json:"rol_id,omitempty"`
}

// UnmarshalJSON acepta los dos juegos de claves que devuelve el upstream: el
// listado de usuarios viene con name/username y /me con nombre/nombredeusuario.
// Ambos se normalizan a los campos propios para que DisplayName resuelva igual.
func (p *Party) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID         int64  `json:"id"`
		Name       string `json:"name"`
		Nombre     string `json:"nombre"`
		Username   string `json:"username"`
		UsernameES string `json:"nombredeusuario"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Telefono   string `json:"telefono"`
		RolID      int    `json:"rol_id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ID = aux.ID
	p.Nombre = firstNonEmpty(aux.Name, aux.Nombre)
	p.Username = firstNonEmpty(aux.Username, aux.UsernameES)
	p.Email = aux.Email
	p.Telefono = firstNonEmpty(aux.Telefono, aux.Phone)
	p.RolID = aux.RolID
	return nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// DisplayName devuelve el nombre a mostrar: nombre, si no username, si no email.
// Cadena vacía cuando no hay ninguno (el caller decide cómo renderizarlo).
func (p Party) DisplayName() string {
	if p.Nombre != "" {
		return p.Nombre
	}
	if p.Username != "" {
		return p.Username
	}
	return p.Email
}
