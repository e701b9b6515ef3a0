package entity

import "github.com/google/uuid"

type Article struct {
	Base
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	IsPublished bool      `db:"is_published"`
	UserID      uuid.UUID `db:"user_id"`
}

// ArticleAuthor is the owner's public profile embedded in owner-scoped listings.
type ArticleAuthor struct {
	ID       uuid.UUID `db:"id"`
	FullName string    `db:"fullname"`
	Email    string    `db:"email"`
}
