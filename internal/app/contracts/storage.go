package contracts

import (
	"context"
	"io"
	"mime/multipart"
)

type ObjectStorageService interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName string) (objectName string, err error)
}
