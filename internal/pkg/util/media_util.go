package util

import (
	"io"
	"mime/multipart"
	"net/http"
)

// GetSafeContentType 按文件头嗅探真实类型，不信任请求里声明的 Content-Type
func GetSafeContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}
