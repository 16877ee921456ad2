package account

// AccountResponse represents account data in API responses. The password
// hash never leaves the service layer.
type AccountResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (a Account) ToResponse() AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: a.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// UpdateAccountRequest represents a partial account update. Nil fields are
// left untouched.
type UpdateAccountRequest struct {
	ID           string
	Email        *string
	PasswordHash *string
	Role         *Role
}
