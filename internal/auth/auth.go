package auth

import (
	"crypto/subtle"
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("credenciales inválidas")

type Credentials struct {
	Username string
	Password string
}

// Authenticator es la capacidad inyectada de verificación de credenciales.
type Authenticator interface {
	Authenticate(creds Credentials) error
}

// EnvAuthenticator verifica contra las variables de entorno. Si hay un hash
// bcrypt configurado se usa ese; la comparación en texto plano queda como
// respaldo para desarrollo.
type EnvAuthenticator struct {
	username     string
	password     string
	passwordHash string
}

func NewEnvAuthenticator() *EnvAuthenticator {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "123"
	}

	return &EnvAuthenticator{
		username:     username,
		password:     password,
		passwordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func (a *EnvAuthenticator) Authenticate(creds Credentials) error {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.username)) == 1

	var passOK bool
	if a.passwordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(creds.Password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(creds.Password), []byte(a.password)) == 1
	}

	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
