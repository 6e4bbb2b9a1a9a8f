package photo

import (
	"context"
	"fmt"
	"time"

	"github.com/anoixa/photo-album/database/models"
	"github.com/anoixa/photo-album/database/repo/photos"
)

// GalleryResult 相册页查询结果
type GalleryResult struct {
	Photos []*models.Photo
	Total  int64
}

// PhotoDetail 照片详情，含前后相邻照片的导航信息
type PhotoDetail struct {
	Photo           *models.Photo
	PreviousPhotoID string
	NextPhotoID     string
}

// QueryService 照片查询服务
type QueryService struct {
	repo *photos.Repository
}

// NewQueryService 创建查询服务
func NewQueryService(repo *photos.Repository) *QueryService {
	return &QueryService{repo: repo}
}

// GetPhotoByID 获取单张照片，未找到时返回 (nil, nil)
func (s *QueryService) GetPhotoByID(ctx context.Context, id string) (*models.Photo, error) {
	return s.repo.GetPhotoByID(ctx, id)
}

// ListGallery 获取相册页照片列表
// limit <= 0 时返回全部照片
func (s *QueryService) ListGallery(ctx context.Context, limit, offset int) (*GalleryResult, error) {
	var (
		photoList []*models.Photo
		err       error
	)

	if limit > 0 {
		photoList, err = s.repo.ListPhotosPage(ctx, limit, offset)
	} else {
		photoList, err = s.repo.ListAllPhotos(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	total, err := s.repo.CountPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}

	return &GalleryResult{
		Photos: photoList,
		Total:  total,
	}, nil
}

// ListGalleryByMonth 获取指定月份的照片列表
func (s *QueryService) ListGalleryByMonth(ctx context.Context, year int, month time.Month) (*GalleryResult, error) {
	photoList, err := s.repo.ListPhotosByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos by month: %w", err)
	}

	return &GalleryResult{
		Photos: photoList,
		Total:  int64(len(photoList)),
	}, nil
}

// GetPhotoDetail 获取照片详情与前后导航
// 未找到时返回 (nil, nil)
func (s *QueryService) GetPhotoDetail(ctx context.Context, id string) (*PhotoDetail, error) {
	photo, err := s.repo.GetPhotoByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load photo: %w", err)
	}
	if photo == nil {
		return nil, nil
	}

	detail := &PhotoDetail{Photo: photo}

	// 相邻导航：previous 指向更早的一张，next 指向更晚的一张
	previous, err := s.repo.FindPhotoBefore(ctx, photo.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to find previous photo: %w", err)
	}
	if previous != nil {
		detail.PreviousPhotoID = previous.ID
	}

	next, err := s.repo.FindPhotoAfter(ctx, photo.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to find next photo: %w", err)
	}
	if next != nil {
		detail.NextPhotoID = next.ID
	}

	return detail, nil
}
