package seed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	"github.com/SscSPs/travel_request_app/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdminStore keeps admins keyed by email.
type fakeAdminStore struct {
	byEmail map[string]domain.Admin
	deleted []string
}

func newFakeAdminStore(existing ...domain.Admin) *fakeAdminStore {
	s := &fakeAdminStore{byEmail: map[string]domain.Admin{}}
	for _, a := range existing {
		s.byEmail[a.Email] = a
	}
	return s
}

func (s *fakeAdminStore) FindAdminByID(_ context.Context, id string) (*domain.Admin, error) {
	for _, a := range s.byEmail {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *fakeAdminStore) FindAdminByEmail(_ context.Context, email string) (*domain.Admin, error) {
	if a, ok := s.byEmail[email]; ok {
		return &a, nil
	}
	return nil, errors.New("not found")
}

func (s *fakeAdminStore) FindAdmins(_ context.Context) ([]domain.Admin, error) {
	out := make([]domain.Admin, 0, len(s.byEmail))
	for _, a := range s.byEmail {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeAdminStore) UpsertAdmin(_ context.Context, admin domain.Admin) (*domain.Admin, error) {
	if existing, ok := s.byEmail[admin.Email]; ok {
		admin.ID = existing.ID
	}
	s.byEmail[admin.Email] = admin
	return &admin, nil
}

func (s *fakeAdminStore) DeleteAdmin(_ context.Context, id string) error {
	for email, a := range s.byEmail {
		if a.ID == id {
			delete(s.byEmail, email)
			s.deleted = append(s.deleted, id)
			return nil
		}
	}
	return errors.New("not found")
}

type fakeLogins struct {
	existing map[string]bool
}

func (f *fakeLogins) EnsureAuthUser(_ context.Context, email, password string) (*domain.AuthUser, bool, error) {
	if f.existing[email] {
		return &domain.AuthUser{Email: email}, false, nil
	}
	if password == "" {
		return nil, false, errors.New("password required")
	}
	f.existing[email] = true
	return &domain.AuthUser{Email: email}, true, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseAdminFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		want    []string
	}{
		{
			name: "normalises emails",
			content: `
admins:
  - first_name: Ada
    last_name: Root
    email: " Ada@Example.com "
    password: secret123
`,
			want: []string{"ada@example.com"},
		},
		{
			name:    "missing email",
			content: "admins:\n  - first_name: Ada\n",
			wantErr: "email is required",
		},
		{
			name:    "duplicate email",
			content: "admins:\n  - {first_name: A, email: a@x.io}\n  - {first_name: B, email: A@x.io}\n",
			wantErr: "duplicate email",
		},
		{
			name:    "invalid yaml",
			content: "admins: [",
			wantErr: "parsing seed file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := seed.ParseAdminFile([]byte(tt.content))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			var emails []string
			for _, a := range file.Admins {
				emails = append(emails, a.Email)
			}
			assert.Equal(t, tt.want, emails)
		})
	}
}

func TestApplyAdmins_UpsertsAndPrunes(t *testing.T) {
	ctx := context.Background()
	store := newFakeAdminStore(
		domain.Admin{PersonFields: domain.PersonFields{ID: "keep", FirstName: "Old", Email: "ada@example.com"}},
		domain.Admin{PersonFields: domain.PersonFields{ID: "gone", FirstName: "Bob", Email: "bob@example.com"}},
	)
	logins := &fakeLogins{existing: map[string]bool{"ada@example.com": true}}
	file := &seed.AdminFile{Admins: []seed.AdminEntry{
		{FirstName: "Ada", LastName: "Root", Email: "ada@example.com"},
		{FirstName: "Cy", Email: "cy@example.com", Password: "password1"},
	}}

	result, err := seed.ApplyAdmins(ctx, discardLogger(), store, logins, file, true)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Upserted)
	assert.Equal(t, 1, result.LoginsCreated)
	assert.Equal(t, 1, result.Pruned)
	assert.Equal(t, []string{"gone"}, store.deleted)
	assert.Equal(t, "keep", store.byEmail["ada@example.com"].ID)
	assert.Equal(t, "Ada", store.byEmail["ada@example.com"].FirstName)
}

func TestApplyAdmins_WithoutPruneKeepsOthers(t *testing.T) {
	ctx := context.Background()
	store := newFakeAdminStore(domain.Admin{PersonFields: domain.PersonFields{ID: "other", Email: "other@example.com"}})
	logins := &fakeLogins{existing: map[string]bool{}}
	file := &seed.AdminFile{Admins: []seed.AdminEntry{{FirstName: "Cy", Email: "cy@example.com", Password: "password1"}}}

	result, err := seed.ApplyAdmins(ctx, discardLogger(), store, logins, file, false)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Pruned)
	assert.Len(t, store.byEmail, 2)
}

func TestApplyAdmins_MissingPasswordForNewLogin(t *testing.T) {
	ctx := context.Background()
	store := newFakeAdminStore()
	logins := &fakeLogins{existing: map[string]bool{}}
	file := &seed.AdminFile{Admins: []seed.AdminEntry{{FirstName: "Cy", Email: "cy@example.com"}}}

	_, err := seed.ApplyAdmins(ctx, discardLogger(), store, logins, file, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "provisioning login for cy@example.com")
}
