package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/anoixa/photo-album/database/models"
	"github.com/anoixa/photo-album/database/repo/photos"
	"github.com/anoixa/photo-album/utils"
	"github.com/anoixa/photo-album/utils/format"
	"github.com/anoixa/photo-album/utils/imagemeta"
	"github.com/anoixa/photo-album/utils/validator"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// UploadResult 单个文件的上传结果
type UploadResult struct {
	Photo    *models.Photo
	FileName string
	Error    string
}

// UploadService 照片上传服务
type UploadService struct {
	repo           *photos.Repository
	maxConcurrency int
}

// NewUploadService 创建上传服务
func NewUploadService(repo *photos.Repository, maxConcurrency int) *UploadService {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &UploadService{
		repo:           repo,
		maxConcurrency: maxConcurrency,
	}
}

// UploadSingle 单文件上传
func (s *UploadService) UploadSingle(ctx context.Context, fileHeader *multipart.FileHeader) (*models.Photo, error) {
	mimeType := declaredMimeType(fileHeader)

	if err := validator.ValidateUpload(mimeType, fileHeader.Size); err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	photo := &models.Photo{
		OriginalFileName: fileHeader.Filename,
		StoredFileName:   uuid.New().String() + utils.GetSafeExtension(mimeType),
		FileSize:         int64(len(data)),
		MimeType:         mimeType,
		PhotoData:        data,
	}

	// 尺寸解析尽力而为，解析失败不影响上传
	if width, height, dimErr := imagemeta.Dimensions(data); dimErr == nil {
		photo.Width = &width
		photo.Height = &height
	}

	saved, err := s.repo.SavePhoto(ctx, photo)
	if err != nil {
		log.Printf("Failed to save photo '%s': %v", utils.SanitizeLogFilename(fileHeader.Filename), err)
		return nil, errors.New("failed to save photo")
	}

	log.Printf("Photo uploaded: %s (%s)", utils.SanitizeLogFilename(saved.OriginalFileName), format.HumanReadableSize(saved.FileSize))
	return saved, nil
}

// UploadBatch 批量上传，每个文件独立校验和保存
func (s *UploadService) UploadBatch(ctx context.Context, files []*multipart.FileHeader) ([]*UploadResult, error) {
	defer utils.MonitorMemory("upload batch")()

	results := make([]*UploadResult, len(files))
	var resultsMutex sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	for i, fileHeader := range files {
		i, fileHeader := i, fileHeader
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				photo, err := s.UploadSingle(ctx, fileHeader)
				result := &UploadResult{
					FileName: fileHeader.Filename,
				}

				if err != nil {
					result.Error = err.Error()
				} else {
					result.Photo = photo
				}

				resultsMutex.Lock()
				results[i] = result
				resultsMutex.Unlock()
				return nil
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch upload failed: %w", err)
	}

	return results, nil
}

// declaredMimeType 提取客户端声明的 Content-Type，去除参数部分
func declaredMimeType(fileHeader *multipart.FileHeader) string {
	contentType := fileHeader.Header.Get("Content-Type")
	contentType = strings.Split(contentType, ";")[0]
	return strings.TrimSpace(contentType)
}
