package validator

import "errors"

// MaxFileSize 单个文件大小上限（10 MiB）
const MaxFileSize = 10 * 1024 * 1024

// 校验失败的固定原因，错误文本会原样返回给客户端
var (
	ErrFileTypeNotSupported = errors.New("File type not supported")
	ErrFileTooLarge         = errors.New("File size exceeds maximum allowed size")
	ErrFileEmpty            = errors.New("File is empty")
)

// allowedPhotoMimeTypes Allowed photo types
var allowedPhotoMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateUpload 校验上传文件的声明 MIME 类型与大小
// 以客户端声明的 Content-Type 为准，不做内容嗅探
func ValidateUpload(mimeType string, size int64) error {
	if !allowedPhotoMimeTypes[mimeType] {
		return ErrFileTypeNotSupported
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	if size == 0 {
		return ErrFileEmpty
	}
	return nil
}

// IsAllowedMimeType 判断 MIME 类型是否在允许列表内
func IsAllowedMimeType(mimeType string) bool {
	return allowedPhotoMimeTypes[mimeType]
}
