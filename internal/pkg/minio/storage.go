package minio

import (
	"context"
	"io"
)

// Storage 以依赖注入的形式暴露对象存储能力，便于在测试里替换
type Storage struct{}

func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	return UploadFile(ctx, objectName, reader, size, contentType)
}

func (s *Storage) Delete(ctx context.Context, objectName string) error {
	return DeleteFile(ctx, objectName)
}

func (s *Storage) PublicURL(objectName string) string {
	return GetPublicURL(objectName)
}
