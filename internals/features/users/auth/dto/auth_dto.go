package dto

type RegisterRequest struct {
	UserName     string `json:"user_name"     validate:"required,min=3,max=50"`
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}
