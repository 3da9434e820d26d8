package usecases

// Caller is the verified identity behind an admin request.
type Caller struct {
	UserID    string
	SessionID string
}
