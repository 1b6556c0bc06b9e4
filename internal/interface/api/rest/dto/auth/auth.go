package auth

type LoginRequest struct {
	Email      string `json:"email"`
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Login accepts either field; email wins when both are set.
func (r LoginRequest) Login() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Identifier
}
