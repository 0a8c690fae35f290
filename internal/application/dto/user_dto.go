package dto

// LoginRequest credenciales que se reenvían a /api/auth/login del upstream.
type LoginRequest struct {
	Email      string `json:"email,omitempty"`
	Username   string `json:"nombredeusuario,omitempty"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse lo que devuelve el upstream al autenticar.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterUserRequest alta de usuario (solo admin).
type RegisterUserRequest struct {
	Nombre     string `json:"nombre"`
	Username   string `json:"nombredeusuario"`
	Email      string `json:"email"`
	Telefono   string `json:"telefono,omitempty"`
	Contrasena string `json:"contrasena"`
	RolID      int    `json:"rol_id"`
}

// UpdateUserRequest edición parcial del propio perfil (pantalla Configuraciones).
// Los punteros distinguen los campos que no se tocan.
type UpdateUserRequest struct {
	Nombre     *string `json:"nombre,omitempty"`
	Username   *string `json:"nombredeusuario,omitempty"`
	Email      *string `json:"email,omitempty"`
	Telefono   *string `json:"telefono,omitempty"`
	Contrasena *string `json:"contrasena,omitempty"`
}
