package dto

// ── auth requests ──

// RegisterRequest self-registration
type RegisterRequest struct {
	Name     string `json:"name"     binding:"required,max=150"`
	Email    string `json:"email"    binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Role     string `json:"role"     binding:"omitempty,oneof=Admin Convener Staff"`
	MobileNo string `json:"mobileNo" binding:"omitempty,max=15,mobile"`
}

// LoginRequest email, password and the role the user signs in as
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"     binding:"required"`
}

// RefreshTokenRequest exchange a refresh token for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UpdateProfileRequest partial profile update
type UpdateProfileRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=1,max=150"`
	Email *string `json:"email" binding:"omitempty,email,max=100"`
}

// ChangePasswordRequest current password must match
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"     binding:"required,min=6,max=100"`
}

// ── auth responses ──

// UserResponse account without secrets
type UserResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	MobileNo    string  `json:"mobileNo,omitempty"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// TokenResponse token pair plus the signed-in user
type TokenResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"` // seconds
	User         UserResponse `json:"user"`
}

// VerifyResponse identity resolved from the bearer token
type VerifyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
