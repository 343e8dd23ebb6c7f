package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.ObjectStorageService {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName string) (string, error) {
	// Object names are randomized so two uploads with the same filename never collide.
	objectName := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}
