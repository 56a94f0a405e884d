package service_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	s3Mocks "mesa/infras/s3/mocks"
	documentMocks "mesa/internal/domains/document/mocks"
	"mesa/internal/domains/document/model"
	"mesa/internal/domains/document/model/dto"
	"mesa/internal/domains/document/service"
	cacheMocks "mesa/shared/cache/mocks"
	"mesa/shared/failure"
)

func newDocumentService(t *testing.T) (service.Document, *documentMocks.MockDocument, *s3Mocks.MockS3, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := documentMocks.NewMockDocument(ctrl)
	s3 := s3Mocks.NewMockS3(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "mesa-files"

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, cfg, cache, mockOtel, s3), repo, s3, cache
}

func pdfDataURL(t *testing.T, payload string) string {
	t.Helper()

	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestDocumentService_Create(t *testing.T) {
	t.Parallel()

	t.Run("uploads and persists", func(t *testing.T) {
		t.Parallel()

		svc, repo, s3, _ := newDocumentService(t)

		req := dto.CreateDocumentRequest{
			Name: "hygiene-certificate.pdf",
			File: pdfDataURL(t, "certificate body"),
		}

		s3.EXPECT().
			UploadFileBytes(gomock.Any(), "mesa-files", model.EntityName, req.Name, "application/pdf", []byte("certificate body")).
			Return("https://cdn.example.com/mesa-files/document/hygiene-certificate.pdf", nil)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc model.Document) error {
				assert.Equal(t, "restaurant-1", doc.RestaurantID)
				assert.Equal(t, "application/pdf", doc.ContentType)
				assert.Equal(t, int64(len("certificate body")), doc.Size)

				return nil
			})

		res, err := svc.Create(context.Background(), req, "restaurant-1")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/mesa-files/document/hygiene-certificate.pdf", res.URL)
	})

	t.Run("rejects non data URL payload", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newDocumentService(t)

		req := dto.CreateDocumentRequest{
			Name: "notes.txt",
			File: "just some text",
		}

		_, err := svc.Create(context.Background(), req, "restaurant-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects malformed base64", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newDocumentService(t)

		req := dto.CreateDocumentRequest{
			Name: "notes.txt",
			File: "data:text/plain;base64,@@not-base64@@",
		}

		_, err := svc.Create(context.Background(), req, "restaurant-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestDocumentService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("missing document", func(t *testing.T) {
		t.Parallel()

		svc, repo, _, cache := newDocumentService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Document{}, nil)

		err := svc.Delete(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("removes row and object", func(t *testing.T) {
		t.Parallel()

		svc, repo, s3, cache := newDocumentService(t)

		doc := model.Document{
			ID:  "doc-1",
			URL: "https://cdn.example.com/mesa-files/document/menu.pdf",
		}

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(doc, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		s3.EXPECT().GetObjectNameFromURL("mesa-files", doc.URL).Return("menu.pdf").AnyTimes()
		s3.EXPECT().DeleteFile(gomock.Any(), "mesa-files", model.EntityName, "menu.pdf").Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), "doc-1")

		require.NoError(t, err)
	})
}
