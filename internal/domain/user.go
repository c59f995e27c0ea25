package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User-specific validation errors.
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrEmptyUserName    = errors.New("user name cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword    = errors.New("password cannot be empty")
)

// UserSettings holds per-user presentation and reminder preferences.
type UserSettings struct {
	Theme         string `json:"theme"`
	FontSize      string `json:"font_size"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	AutoPlay      bool   `json:"auto_play"`
	ReminderTime  string `json:"reminder_time"`
}

// DefaultUserSettings returns the settings assigned to a new account.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Theme:         "auto",
		FontSize:      "medium",
		Language:      "english",
		Notifications: true,
		AutoPlay:      false,
		ReminderTime:  "09:00",
	}
}

// User represents a registered account.
type User struct {
	ID             uuid.UUID    `json:"id"`
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	Password       string       `json:"-"` // Plaintext, used transiently during registration
	HashedPassword string       `json:"hashed_password,omitempty"`
	JoinedAt       time.Time    `json:"joined_at"`
	Settings       UserSettings `json:"settings"`
}

// NewUser creates a new User with the given email, name and plaintext
// password. The caller is responsible for hashing the password before the
// user is stored.
func NewUser(email, name, password string) (*User, error) {
	user := &User{
		ID:       uuid.New(),
		Email:    email,
		Name:     name,
		Password: password,
		JoinedAt: time.Now().UTC(),
		Settings: DefaultUserSettings(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrEmptyUserName
	}

	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		// bcrypt silently truncates beyond 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs a minimal structural check on an email address.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	return strings.Contains(domainPart, ".") && !strings.HasPrefix(domainPart, ".") &&
		!strings.HasSuffix(domainPart, ".")
}
