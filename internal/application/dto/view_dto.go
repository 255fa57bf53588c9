package dto

// ViewResponse modelo de vista que el navegador renderiza.
type ViewResponse struct {
	View    string            `json:"view"`
	Params  map[string]string `json:"params,omitempty"`
	Session *SessionResponse  `json:"session,omitempty"`
	// State "ready" o "not_found" (estado vacío explícito, no es un error).
	State string `json:"state"`
	Data  any    `json:"data,omitempty"`
}
