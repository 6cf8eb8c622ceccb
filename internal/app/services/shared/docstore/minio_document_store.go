package docstore

import (
	"bytes"
	"context"

	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioDocumentStore struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioDocumentStore(minioClient *minio.Client, bucketName string) contracts.DocumentStore {
	return &minioDocumentStore{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioDocumentStore) Store(ctx context.Context, objectName, contentType string, data []byte) error {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}
