// Command bootstrap-user creates an account directly against the
// database, bypassing the HTTP API. Useful for seeding a fresh
// deployment or a local dev environment.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/notedown/notedown/internal/auth"
	"github.com/notedown/notedown/internal/model"
	"github.com/notedown/notedown/internal/repository"
)

type output struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		email       = flag.String("email", "admin@notedown.local", "User email")
		username    = flag.String("username", "admin", "Username")
		password    = flag.String("password", "", "Password (must satisfy the account policy)")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *password == "" {
		fmt.Fprintln(os.Stderr, "-password is required")
		os.Exit(1)
	}
	if policyErrs := auth.ValidatePassword(*password); len(policyErrs) > 0 {
		for _, msg := range policyErrs {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	if _, err := repo.GetUserByEmail(ctx, *email); err == nil {
		fmt.Fprintf(os.Stderr, "user with email %s already exists\n", *email)
		os.Exit(1)
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		fmt.Fprintln(os.Stderr, "lookup user:", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     *username,
		Email:        *email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		fmt.Fprintln(os.Stderr, "create user:", err)
		os.Exit(1)
	}

	out := output{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Println(out.UserID)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}
