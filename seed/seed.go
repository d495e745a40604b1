// Package seed establishes the fixed initial records a fresh instance
// needs before it can serve admin-only routes: the admin account and a
// small sample catalog.
package seed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"libraryapi/model"
	bookrepo "libraryapi/repository/book"
	userrepo "libraryapi/repository/user"
	"libraryapi/util/hash"
)

func Run(ctx context.Context, users userrepo.Repo, books bookrepo.Repo, adminEmail, adminPassword string, log *slog.Logger) error {
	if _, err := users.ByEmail(ctx, adminEmail); errors.Is(err, userrepo.ErrNotFound) {
		hashed, err := hash.HashPassword(adminPassword)
		if err != nil {
			return err
		}
		admin := &model.User{
			Email:        adminEmail,
			Name:         "Admin",
			Role:         model.RoleAdmin,
			PasswordHash: hashed,
			CreatedAt:    time.Now().UTC(),
		}
		if err := users.Create(ctx, admin); err != nil {
			return err
		}
		log.Info("admin created", "email", adminEmail)
	}

	seeded := 0
	for _, b := range sampleBooks() {
		if _, err := books.ByID(ctx, b.BookID); err == nil {
			continue
		}
		b.CreatedAt = time.Now().UTC()
		if err := books.Insert(ctx, &b); err != nil {
			return err
		}
		seeded++
	}
	log.Info("sample books seeded", "count", seeded)
	return nil
}

func sampleBooks() []model.Book {
	return []model.Book{
		{
			BookID:       "1",
			Title:        "Clean Code",
			Author:       "Robert Martin",
			Category:     "Programming",
			Description:  strptr("A Handbook of Agile Software Craftsmanship"),
			BorrowPolicy: model.PolicyStandard,
		},
		{
			BookID:       "2",
			Title:        "Introduction to Algorithms",
			Author:       "Cormen",
			Category:     "Programming",
			Description:  strptr("Comprehensive algorithms textbook"),
			BorrowPolicy: model.PolicyStandard,
		},
		{
			BookID:       "3",
			Title:        "Python Crash Course",
			Author:       "Eric Matthes",
			Category:     "Programming",
			Description:  strptr("Hands-on Python project-based guide"),
			BorrowPolicy: model.PolicyDailyReturn,
			ExpiryHours:  intptr(24),
		},
		{
			BookID:       "4",
			Title:        "The Pragmatic Programmer",
			Author:       "Andrew Hunt",
			Category:     "Programming",
			Description:  strptr("Journey to Mastery"),
			BorrowPolicy: model.PolicyStandard,
		},
		{
			BookID:       "5",
			Title:        "Design Patterns",
			Author:       "Gamma, Helm, Johnson, Vlissides",
			Category:     "Programming",
			Description:  strptr("Elements of Reusable Object-Oriented Software"),
			BorrowPolicy: model.PolicyTimed,
			ExpiryHours:  intptr(72),
		},
	}
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }
