package filestorage

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	dbmodels "recruit-flow-backend/models/db"
)

type fakeFileStore struct {
	created   *dbmodels.FileStorage
	deletedID string
}

func (s *fakeFileStore) Create(rec dbmodels.FileStorage) (string, error) {
	s.created = &rec
	return rec.ID, nil
}

func (s *fakeFileStore) GetByID(fileID string) (*dbmodels.FileStorage, error) {
	return s.created, nil
}

func (s *fakeFileStore) FindByOwner(ownerID string, fileType dbmodels.FileType) (*dbmodels.FileStorage, error) {
	return s.created, nil
}

func (s *fakeFileStore) ListByOwner(ownerID string) ([]dbmodels.FileStorage, error) {
	return nil, nil
}

func (s *fakeFileStore) Delete(fileID string) error {
	s.deletedID = fileID
	return nil
}

func TestUploadFile(t *testing.T) {
	t.Run(`success keeps db record`, func(t *testing.T) {
		store := &fakeFileStore{}
		handler := impl{
			store:     store,
			putObject: func(ctx context.Context, objectName, contentType string, body []byte) error { return nil },
		}
		fileID, err := handler.UploadFile(context.Background(), dbmodels.ApplicantResume, "owner1", "resume.pdf", "application/pdf", []byte("pdf"))
		require.Nil(t, err)
		require.NotEmpty(t, fileID)
		require.Equal(t, fileID, store.created.ID)
		require.Empty(t, store.deletedID)
	})

	t.Run(`failed upload removes db record`, func(t *testing.T) {
		store := &fakeFileStore{}
		handler := impl{
			store: store,
			putObject: func(ctx context.Context, objectName, contentType string, body []byte) error {
				return errors.New("хранилище недоступно")
			},
		}
		_, err := handler.UploadFile(context.Background(), dbmodels.ApplicantResume, "owner1", "resume.pdf", "application/pdf", []byte("pdf"))
		require.NotNil(t, err)
		// запись о файле не указывает на отсутствующий объект
		require.Equal(t, store.created.ID, store.deletedID)
	})
}
