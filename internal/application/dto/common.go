package dto

// ErrorResponse cuerpo de error uniforme del panel.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
