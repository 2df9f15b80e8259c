package dto

// LoginRequest credenciales del usuario hacia el API de inventario.
type LoginRequest struct {
	User     string `json:"usuario"`
	Password string `json:"clave"`
}

// LoginResponse token de sesión del panel.
type LoginResponse struct {
	Token string `json:"token"`
	User  string `json:"usuario"`
}
