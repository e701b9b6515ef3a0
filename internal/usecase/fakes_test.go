package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"article-service/internal/data/entity"
	"article-service/internal/data/repository"
	"article-service/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- in-memory fakes for the repository interfaces ---

type fakeUserRepo struct {
	users   map[uuid.UUID]*entity.User
	failAll bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.failAll {
		return errors.New("store down")
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByPhone(ctx context.Context, phoneNumber string) (*entity.User, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	for _, user := range f.users {
		if user.PhoneNumber == phoneNumber {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if user, ok := f.users[id]; ok {
		user.LastLogin = &at
	}
	return nil
}

func (f *fakeUserRepo) ResetPasswordVerified(ctx context.Context, userID, codeID uuid.UUID, passwordHash string) error {
	return errors.New("not wired in this fake")
}

type fakeCodeRepo struct {
	codes map[uuid.UUID]*entity.VerificationCode
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{codes: make(map[uuid.UUID]*entity.VerificationCode)}
}

func (f *fakeCodeRepo) Create(ctx context.Context, code *entity.VerificationCode) error {
	copied := *code
	f.codes[code.ID] = &copied
	return nil
}

func (f *fakeCodeRepo) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.VerificationCode, error) {
	var matches []*entity.VerificationCode
	for _, code := range f.codes {
		if code.UserID == userID {
			matches = append(matches, code)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	copied := *matches[0]
	return &copied, nil
}

func (f *fakeCodeRepo) MarkVerified(ctx context.Context, codeID uuid.UUID) error {
	code, ok := f.codes[codeID]
	if !ok {
		return errors.New("code not found")
	}
	code.Verified = true
	return nil
}

// resettingUserRepo pairs the user fake with the code fake so the
// transactional reset behaves like the real repository: verified re-check,
// password overwrite, codes consumed.
type resettingUserRepo struct {
	*fakeUserRepo
	codes *fakeCodeRepo
}

func (f *resettingUserRepo) ResetPasswordVerified(ctx context.Context, userID, codeID uuid.UUID, passwordHash string) error {
	code, ok := f.codes.codes[codeID]
	if !ok || !code.Verified {
		return repository.ErrCodeNotVerified
	}
	user, ok := f.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	user.PasswordHash = passwordHash
	for id, c := range f.codes.codes {
		if c.UserID == userID {
			delete(f.codes.codes, id)
		}
	}
	return nil
}

type fakeArticleRepo struct {
	articles map[uuid.UUID]*entity.Article
	authors  map[uuid.UUID]*entity.ArticleAuthor
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: make(map[uuid.UUID]*entity.Article),
		authors:  make(map[uuid.UUID]*entity.ArticleAuthor),
	}
}

func (f *fakeArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	copied := *article
	f.articles[article.ID] = &copied
	return nil
}

func (f *fakeArticleRepo) FindPublished(ctx context.Context) ([]*entity.Article, error) {
	var result []*entity.Article
	for _, article := range f.articles {
		if article.IsPublished {
			copied := *article
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeArticleRepo) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Article, *entity.ArticleAuthor, error) {
	var result []*entity.Article
	for _, article := range f.articles {
		if article.UserID == userID {
			copied := *article
			result = append(result, &copied)
		}
	}
	return result, f.authors[userID], nil
}

func (f *fakeArticleRepo) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Article, error) {
	article, ok := f.articles[id]
	if !ok || article.UserID != userID {
		return nil, nil
	}
	copied := *article
	return &copied, nil
}

func (f *fakeArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	stored, ok := f.articles[article.ID]
	if !ok {
		return errors.New("article not found")
	}
	stored.Title = article.Title
	stored.Content = article.Content
	stored.IsPublished = article.IsPublished
	stored.UpdatedAt = article.UpdatedAt
	return nil
}

func (f *fakeArticleRepo) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error {
	article, ok := f.articles[id]
	if !ok || article.UserID != userID {
		return repository.ErrNoRowsAffected
	}
	delete(f.articles, id)
	return nil
}

// --- fake notification sender ---

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(ctx context.Context, phoneNumber, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, message)
	return nil
}

// --- shared helpers ---

func testConfig() *utils.Config {
	return &utils.Config{
		JWT:  utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Code: utils.CodeConfig{ExpiryMinutes: 15, Length: 6},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func mustHash(password string) string {
	hash, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}
