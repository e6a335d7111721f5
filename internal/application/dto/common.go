package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse respuesta mínima de creación.
type CreatedResponse struct {
	ID string `json:"id"`
}
