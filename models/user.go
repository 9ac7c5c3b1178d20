package models

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
	"golang.org/x/crypto/bcrypt"
)

// User is a site editor. Only editors may change the hero settings,
// write docs, or import bundles; reading is anonymous.
// PasswordHash uses bcrypt and is never exposed in JSON.
type User struct {
	ID           int64          `json:"id"`
	GUID         string         `json:"guid"`
	Username     string         `json:"username"`
	Email        sql.NullString `json:"email"`
	PasswordHash string         `json:"-"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	LastLoginAt  sql.NullTime   `json:"last_login_at"`
}

const CreateUsersTableSQL = `
CREATE SEQUENCE IF NOT EXISTS users_id_seq START 1;

CREATE TABLE IF NOT EXISTS users (
    id            BIGINT PRIMARY KEY DEFAULT nextval('users_id_seq'),
    guid          VARCHAR NOT NULL UNIQUE,
    username      VARCHAR NOT NULL UNIQUE,
    email         VARCHAR UNIQUE,
    password_hash VARCHAR NOT NULL,
    is_active     BOOLEAN DEFAULT true,
    created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_login_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);
`

// UserRegisterInput contains the data required for registration.
// Password is plaintext here; it is hashed before storage.
type UserRegisterInput struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email,omitempty"`
}

// UserLoginInput contains credentials for authentication
type UserLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserOutput is the JSON-friendly representation of a User.
// Excludes PasswordHash and converts NullString to pointers.
type UserOutput struct {
	ID        int64     `json:"id"`
	GUID      string    `json:"guid"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToOutput() UserOutput {
	out := UserOutput{
		ID:        u.ID,
		GUID:      u.GUID,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	if u.Email.Valid {
		out.Email = &u.Email.String
	}
	return out
}

// Cost of 12 keeps login times reasonable (~250ms) at current hardware
const bcryptCost = 12

// HashPassword creates a bcrypt hash of the plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", serr.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against its hash.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets security requirements.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return serr.New("password must be at least 8 characters")
	}
	return nil
}

// ValidateUsername requires 3-50 characters, alphanumeric and
// underscores only.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return serr.New("username must be at least 3 characters")
	}
	if len(username) > 50 {
		return serr.New("username must be at most 50 characters")
	}
	for _, c := range username {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_') {
			return serr.New("username can only contain letters, numbers, and underscores")
		}
	}
	return nil
}

// CreateUser creates a new editor account. Handles password hashing and
// GUID generation; surfaces duplicate username/email as clear errors.
func CreateUser(input UserRegisterInput) (*User, error) {
	if err := ValidateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	userGUID := uuid.NewString()

	var email sql.NullString
	if input.Email != nil && *input.Email != "" {
		email = sql.NullString{String: *input.Email, Valid: true}
	}

	now := time.Now()
	err = WriteThrough(`
		INSERT INTO users (guid, username, email, password_hash, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, true, ?, ?)
	`, userGUID, input.Username, email, passwordHash, now, now)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE") || strings.Contains(errStr, "unique") || strings.Contains(errStr, "duplicate") {
			if strings.Contains(errStr, "email") {
				return nil, serr.New("email already exists")
			}
			return nil, serr.New("username already exists")
		}
		return nil, serr.Wrap(err, "failed to create user")
	}

	return GetUserByGUID(userGUID)
}

const userColumns = `id, guid, username, email, password_hash, is_active, created_at, updated_at, last_login_at`

// GetUserByUsername retrieves a user by username. Returns nil, nil when
// not found.
func GetUserByUsername(username string) (*User, error) {
	row := QueryRowFromCache(`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUserRow(row)
}

// GetUserByGUID retrieves a user by GUID. Returns nil, nil when not found.
func GetUserByGUID(guid string) (*User, error) {
	row := QueryRowFromCache(`SELECT `+userColumns+` FROM users WHERE guid = ?`, guid)
	return scanUserRow(row)
}

func scanUserRow(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.GUID, &user.Username, &user.Email, &user.PasswordHash,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serr.Wrap(err, "failed to scan user")
	}
	return user, nil
}

// Authenticate verifies credentials and stamps the login time.
// Returns nil, nil on bad credentials so callers can't distinguish an
// unknown username from a wrong password.
func Authenticate(username, password string) (*User, error) {
	user, err := GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, nil
	}

	now := time.Now()
	if err := WriteThrough(`UPDATE users SET last_login_at = ? WHERE guid = ?`, now, user.GUID); err != nil {
		// Login still succeeds; the stamp is best-effort
		return user, nil
	}
	user.LastLoginAt = sql.NullTime{Time: now, Valid: true}
	return user, nil
}
