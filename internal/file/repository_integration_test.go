package file_test

import (
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
)

func TestIntegrationRepository_CreateAndList(t *testing.T) {
	conn, ctx := db.Setup(t)
	repo := file.NewRepository(conn)

	created, err := repo.Create(ctx, file.AppFile{
		URL:        "https://cdn.example.com/a.png",
		PublicID:   "Acme/Water/a",
		EntityID:   900001,
		EntityType: file.EntityCampaign,
		FileType:   file.TypeCampaignImage,
	})
	if err != nil {
		t.Fatalf("repo.Create() = %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Errorf("repo.Create() = %+v, want id and created_at", created)
	}

	files, err := repo.ListByEntity(ctx, file.EntityCampaign, 900001)
	if err != nil {
		t.Fatalf("repo.ListByEntity() = %v", err)
	}
	if len(files) != 1 || files[0].PublicID != "Acme/Water/a" {
		t.Errorf("repo.ListByEntity() = %+v", files)
	}

	if err := repo.DeleteByEntity(ctx, file.EntityCampaign, 900001); err != nil {
		t.Fatalf("repo.DeleteByEntity() = %v", err)
	}

	files, err = repo.ListByEntity(ctx, file.EntityCampaign, 900001)
	if err != nil {
		t.Fatalf("repo.ListByEntity() = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("len(files) = %d, want: 0", len(files))
	}
}
