// Package seed provisions admin records from a YAML file. Admins are not
// managed over HTTP.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// AdminEntry is one admin in the seed file. Password is used only when no
// login exists yet for the email.
type AdminEntry struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
}

// AdminFile is the root of the seed file.
type AdminFile struct {
	Admins []AdminEntry `yaml:"admins"`
}

// LoginProvisioner creates a login for an email unless one exists.
type LoginProvisioner interface {
	EnsureAuthUser(ctx context.Context, email, password string) (*domain.AuthUser, bool, error)
}

// Result summarises a seed run.
type Result struct {
	Upserted      int
	LoginsCreated int
	Pruned        int
}

// LoadAdminFile reads and validates the seed file at path.
func LoadAdminFile(path string) (*AdminFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseAdminFile(data)
}

// ParseAdminFile decodes and validates seed file content.
// Emails are normalised to lower case and must be unique within the file.
func ParseAdminFile(data []byte) (*AdminFile, error) {
	var file AdminFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	seen := make(map[string]bool, len(file.Admins))
	for i := range file.Admins {
		a := &file.Admins[i]
		a.Email = strings.ToLower(strings.TrimSpace(a.Email))
		a.FirstName = strings.TrimSpace(a.FirstName)
		a.LastName = strings.TrimSpace(a.LastName)
		if a.Email == "" {
			return nil, fmt.Errorf("admins[%d]: email is required", i)
		}
		if a.FirstName == "" {
			return nil, fmt.Errorf("admins[%d] (%s): first_name is required", i, a.Email)
		}
		if seen[a.Email] {
			return nil, fmt.Errorf("admins[%d]: duplicate email %s", i, a.Email)
		}
		seen[a.Email] = true
	}
	return &file, nil
}

// ApplyAdmins upserts every admin in file and provisions its login. With prune
// set, admins whose email is absent from file are deleted.
func ApplyAdmins(ctx context.Context, logger *slog.Logger, admins portsrepo.AdminRepositoryFacade, logins LoginProvisioner, file *AdminFile, prune bool) (*Result, error) {
	result := &Result{}
	keep := make(map[string]bool, len(file.Admins))

	for _, entry := range file.Admins {
		stored, err := admins.UpsertAdmin(ctx, domain.Admin{PersonFields: domain.PersonFields{
			ID:        uuid.NewString(),
			FirstName: entry.FirstName,
			LastName:  entry.LastName,
			Email:     entry.Email,
		}})
		if err != nil {
			return result, fmt.Errorf("upserting admin %s: %w", entry.Email, err)
		}
		keep[stored.ID] = true
		result.Upserted++

		_, created, err := logins.EnsureAuthUser(ctx, entry.Email, entry.Password)
		if err != nil {
			return result, fmt.Errorf("provisioning login for %s: %w", entry.Email, err)
		}
		if created {
			result.LoginsCreated++
		}
		logger.Info("Admin seeded", slog.String("admin_id", stored.ID), slog.Bool("login_created", created))
	}

	if !prune {
		return result, nil
	}

	existing, err := admins.FindAdmins(ctx)
	if err != nil {
		return result, fmt.Errorf("listing admins: %w", err)
	}
	for _, a := range existing {
		if keep[a.ID] {
			continue
		}
		if err := admins.DeleteAdmin(ctx, a.ID); err != nil {
			return result, fmt.Errorf("pruning admin %s: %w", a.Email, err)
		}
		result.Pruned++
		logger.Info("Admin pruned", slog.String("admin_id", a.ID))
	}
	return result, nil
}
