package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

func TestService_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		term      string
		wantCalls int
		wantTerm  string
	}{
		{"trims term", "  ana ", 1, "ana"},
		{"blank term skips query", "   ", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			var gotTerm string
			var gotLimit int
			repo := &user.StubRepo{
				SearchByEmailFunc: func(_ context.Context, term string, limit int) ([]user.User, error) {
					calls++
					gotTerm, gotLimit = term, limit
					return []user.User{}, nil
				},
			}

			users, err := user.NewService(repo, &user.StubUploader{}).Search(context.Background(), tt.term)
			if err != nil {
				t.Fatalf("svc.Search() = %v", err)
			}
			if users == nil {
				t.Error("svc.Search() returned nil slice")
			}
			if calls != tt.wantCalls {
				t.Fatalf("calls = %d, want: %d", calls, tt.wantCalls)
			}
			if calls > 0 && (gotTerm != tt.wantTerm || gotLimit != 20) {
				t.Errorf("SearchByEmail(%q, %d), want: (%q, 20)", gotTerm, gotLimit, tt.wantTerm)
			}
		})
	}
}

func TestService_UploadPicture(t *testing.T) {
	t.Parallel()

	var got file.UploadParams
	repo := &user.StubRepo{
		FindFunc: func(_ context.Context, id int64) (user.User, error) {
			return user.User{ID: id}, nil
		},
	}
	uploader := &user.StubUploader{
		UploadFunc: func(_ context.Context, p file.UploadParams) (file.AppFile, error) {
			got = p
			return file.AppFile{ID: 1}, nil
		},
	}

	if _, err := user.NewService(repo, uploader).UploadPicture(context.Background(), 12, "me.png", strings.NewReader("x")); err != nil {
		t.Fatalf("svc.UploadPicture() = %v", err)
	}

	if got.Folder != "users/12" {
		t.Errorf("Folder = %q, want: %q", got.Folder, "users/12")
	}
	if got.EntityType != file.EntityUser || got.EntityID != 12 || got.FileType != file.TypeProfilePicture {
		t.Errorf("params = %+v", got)
	}
}

func TestService_UploadPictureUnknownUser(t *testing.T) {
	t.Parallel()

	repo := &user.StubRepo{
		FindFunc: func(context.Context, int64) (user.User, error) {
			return user.User{}, user.ErrNotFound
		},
	}

	_, err := user.NewService(repo, &user.StubUploader{}).UploadPicture(context.Background(), 1, "a.png", strings.NewReader("x"))
	if !errors.Is(err, user.ErrNotFound) {
		t.Errorf("svc.UploadPicture() = %v, want: %v", err, user.ErrNotFound)
	}
}

func TestService_CreateAdmin(t *testing.T) {
	t.Parallel()

	t.Run("promotes existing user", func(t *testing.T) {
		t.Parallel()

		var (
			promoted           string
			username, password string
		)
		repo := &user.StubRepo{
			FindByEmailFunc: func(context.Context, string) (user.User, error) {
				return user.User{ID: 4, Username: "olduser", Role: principal.RoleDonor}, nil
			},
			UpdateCredentialsFunc: func(_ context.Context, id int64, name, hash string) error {
				if id != 4 {
					t.Errorf("UpdateCredentials() id = %d, want: 4", id)
				}
				username, password = name, hash
				return nil
			},
			UpdateRoleFunc: func(_ context.Context, _ int64, role string) error {
				promoted = role
				return nil
			},
		}

		u, err := user.NewService(repo, &user.StubUploader{}).CreateAdmin(context.Background(), user.CreateParams{
			Email:        "root@dma.test",
			Username:     "root",
			PasswordHash: "$argon2id$hash",
		})
		if err != nil {
			t.Fatalf("svc.CreateAdmin() = %v", err)
		}
		if promoted != principal.RoleAdmin || u.Role != principal.RoleAdmin {
			t.Errorf("role = %q/%q, want: %q", promoted, u.Role, principal.RoleAdmin)
		}
		if username != "root" || password != "$argon2id$hash" || u.Username != "root" {
			t.Errorf("credentials = %q/%q, user = %q, want: root/$argon2id$hash", username, password, u.Username)
		}
	})

	t.Run("taken username keeps role", func(t *testing.T) {
		t.Parallel()

		repo := &user.StubRepo{
			FindByEmailFunc: func(context.Context, string) (user.User, error) {
				return user.User{ID: 4, Role: principal.RoleDonor}, nil
			},
			UpdateCredentialsFunc: func(context.Context, int64, string, string) error { return user.ErrDuplicate },
			UpdateRoleFunc: func(context.Context, int64, string) error {
				t.Error("UpdateRole() called after the credentials failed")
				return nil
			},
		}

		_, err := user.NewService(repo, &user.StubUploader{}).CreateAdmin(context.Background(), user.CreateParams{Email: "root@dma.test", Username: "taken"})
		if !errors.Is(err, user.ErrDuplicate) {
			t.Errorf("svc.CreateAdmin() = %v, want: %v", err, user.ErrDuplicate)
		}
	})

	t.Run("creates missing user", func(t *testing.T) {
		t.Parallel()

		var created user.CreateParams
		repo := &user.StubRepo{
			FindByEmailFunc: func(context.Context, string) (user.User, error) {
				return user.User{}, user.ErrNotFound
			},
			CreateFunc: func(_ context.Context, p user.CreateParams) (user.User, error) {
				created = p
				return user.User{ID: 1, Role: p.Role}, nil
			},
		}

		if _, err := user.NewService(repo, &user.StubUploader{}).CreateAdmin(context.Background(), user.CreateParams{Email: "root@dma.test"}); err != nil {
			t.Fatalf("svc.CreateAdmin() = %v", err)
		}
		if created.Role != principal.RoleAdmin {
			t.Errorf("created.Role = %q, want: %q", created.Role, principal.RoleAdmin)
		}
	})
}
