package auth

import (
	"context"

	"github.com/mmynk/utilityportal/internal/models"
)

// Profile holds the optional fields captured at registration.
type Profile struct {
	FirstName *string
	LastName  *string
	Address   *string
}

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password, passkeys, OAuth, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Register creates a new user account with the given email and credential.
	// Returns ErrEmailExists if the email is already registered.
	Register(ctx context.Context, email, credential string, profile Profile) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	// Returns ErrInvalidCredentials for an unknown email or a wrong credential alike.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
