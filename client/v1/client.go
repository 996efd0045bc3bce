package v1

type Client struct {
	Transport  *Transport
	Auth       *AuthEndpoint
	Timesheets *TimesheetEndpoint
	Tasks      *TaskEndpoint
}

// NewClient initializes the API client. token may be empty and set later by Auth.Login.
func NewClient(baseURL string, token string) *Client {
	t := NewTransport(baseURL, token)
	return &Client{
		Transport:  t,
		Auth:       &AuthEndpoint{transport: t},
		Timesheets: &TimesheetEndpoint{transport: t},
		Tasks:      &TaskEndpoint{transport: t},
	}
}
