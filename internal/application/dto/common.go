package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Field campo a marcar en el formulario (errores de validación en línea).
	Field string `json:"field,omitempty"`
	// Redirect destino cuando la sesión expiró y hay que volver a iniciar sesión.
	Redirect string `json:"redirect,omitempty"`
	// Dismissible notificación descartable (errores transitorios de red).
	Dismissible bool `json:"dismissible,omitempty"`
}
