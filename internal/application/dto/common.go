package dto

// ErrorResponse formato uniforme de error hacia el navegador.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con un mensaje informativo.
type MessageResponse struct {
	Message string `json:"message"`
}
