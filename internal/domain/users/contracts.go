package users

import "context"

// UserRepository persists users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID string) error
	CountByRole(ctx context.Context, role Role) (int64, error)
}

// SessionRepository persists bearer token sessions
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// AuthService handles login, session lookup and admin accounts
type AuthService interface {
	// Login accepts an email or phone number as identifier and returns a new session token.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)

	// Authenticate resolves a bearer token into the calling principal.
	Authenticate(ctx context.Context, token string) (*Principal, error)

	// Logout deletes the session behind token.
	Logout(ctx context.Context, token string) error

	// Me returns the user record of the principal.
	Me(ctx context.Context, actor *Principal) (*User, error)

	// CreateAdmin creates an ADMIN or SUPER_ADMIN account. Only a SUPER_ADMIN may call it.
	CreateAdmin(ctx context.Context, actor *Principal, input *CreateAdminInput) (*User, error)

	// BootstrapSuperAdmin creates the first super admin when none exists yet.
	BootstrapSuperAdmin(ctx context.Context, input *CreateAdminInput) (*User, error)
}
