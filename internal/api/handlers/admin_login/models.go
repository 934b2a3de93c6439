package admin_login

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// GateResponse состояние гейта администратора
type GateResponse struct {
	Admin bool `json:"admin"`
}
