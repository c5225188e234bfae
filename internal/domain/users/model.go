package users

import "time"

// User representa la cuenta de una operadora del estudio.
// Username y Email se guardan siempre en minúsculas; el login compara
// el identificador sin distinguir mayúsculas.
type User struct {
	ID           string
	Name         string
	Username     string
	Email        string
	PasswordHash string

	CreatedAt time.Time
}
