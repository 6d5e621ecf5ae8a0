package repository

import (
	"context"
	"io"
)

// ImageStorage 对象存储能力抽象：上传、删除、公开地址解析
type ImageStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}
