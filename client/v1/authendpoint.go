package v1

import "context"

type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResultDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type SessionDTO struct {
	User UserDTO `json:"user"`
}

type AuthEndpoint struct {
	transport *Transport
}

// Login stores the returned token on the transport.
func (ep *AuthEndpoint) Login(ctx context.Context, email, password string) (*LoginResultDTO, error) {
	res, err := decode[LoginResultDTO](ep.transport.Post(ctx, "/api/auth/login", LoginDTO{Email: email, Password: password}, nil))
	if err != nil {
		return nil, err
	}
	ep.transport.AuthToken = res.Token
	return res, nil
}

func (ep *AuthEndpoint) Session(ctx context.Context) (*SessionDTO, error) {
	return decode[SessionDTO](ep.transport.Get(ctx, "/api/auth/session", nil))
}

func (ep *AuthEndpoint) Logout(ctx context.Context) error {
	_, err := ep.transport.Post(ctx, "/api/auth/logout", nil, nil)
	ep.transport.AuthToken = ""
	return err
}
