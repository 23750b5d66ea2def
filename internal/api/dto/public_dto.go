package dto

// PublicTicketRequest is the unauthenticated submission payload. Field
// names are part of the public contract and must not change.
type PublicTicketRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// PublicTicketResponse is returned on successful submission.
type PublicTicketResponse struct {
	Success  bool   `json:"success"`
	TicketID string `json:"ticketId"`
}

// PublicErrorResponse is the error envelope for the public endpoint.
type PublicErrorResponse struct {
	Error string `json:"error"`
}

// LoginRequest payload for staff authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer credential.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
