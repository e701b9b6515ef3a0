package entity

import "time"

type User struct {
	Base
	Email        string     `db:"email"`
	FullName     string     `db:"fullname"`
	PhoneNumber  string     `db:"phone_number"`
	PasswordHash string     `db:"password"`
	LastLogin    *time.Time `db:"last_login"`
}
