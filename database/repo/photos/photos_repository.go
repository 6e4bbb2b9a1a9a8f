package photos

import (
	"context"
	"errors"
	"time"

	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository 照片仓库 - 封装所有照片相关的数据库操作
type Repository struct {
	provider database.Provider
}

// NewRepository 创建新的照片仓库
func NewRepository(provider database.Provider) *Repository {
	return &Repository{provider: provider}
}

// SavePhoto 保存照片，写入前补全 ID 与上传时间
func (r *Repository) SavePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	if photo.ID == "" {
		photo.ID = uuid.New().String()
	}
	if photo.UploadedAt.IsZero() {
		photo.UploadedAt = time.Now()
	}

	if err := r.provider.WithContext(ctx).Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

// GetPhotoByID 通过ID获取照片，未找到时返回 (nil, nil)
func (r *Repository) GetPhotoByID(ctx context.Context, id string) (*models.Photo, error) {
	var photo models.Photo
	err := r.provider.WithContext(ctx).Where("id = ?", id).First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListAllPhotos 获取全部照片，按上传时间倒序（同一时刻按ID倒序）
func (r *Repository) ListAllPhotos(ctx context.Context) ([]*models.Photo, error) {
	var photoList []*models.Photo
	err := r.provider.WithContext(ctx).
		Order("uploaded_at DESC, id DESC").
		Find(&photoList).Error
	return photoList, err
}

// ListPhotosPage 按 limit/offset 获取照片分页，排序与 ListAllPhotos 一致
func (r *Repository) ListPhotosPage(ctx context.Context, limit, offset int) ([]*models.Photo, error) {
	var photoList []*models.Photo
	err := r.provider.WithContext(ctx).
		Order("uploaded_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&photoList).Error
	return photoList, err
}

// ListPhotosByMonth 获取指定月份内上传的照片，时间区间为左闭右开
func (r *Repository) ListPhotosByMonth(ctx context.Context, year int, month time.Month) ([]*models.Photo, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	var photoList []*models.Photo
	err := r.provider.WithContext(ctx).
		Where("uploaded_at >= ? AND uploaded_at < ?", monthStart, nextMonthStart).
		Order("uploaded_at DESC, id DESC").
		Find(&photoList).Error
	return photoList, err
}

// FindPhotoBefore 获取上传时间严格早于给定时刻的最近一张照片，未找到时返回 (nil, nil)
func (r *Repository) FindPhotoBefore(ctx context.Context, uploadedAt time.Time) (*models.Photo, error) {
	var photo models.Photo
	err := r.provider.WithContext(ctx).
		Where("uploaded_at < ?", uploadedAt).
		Order("uploaded_at DESC, id DESC").
		First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// FindPhotoAfter 获取上传时间严格晚于给定时刻的最近一张照片，未找到时返回 (nil, nil)
func (r *Repository) FindPhotoAfter(ctx context.Context, uploadedAt time.Time) (*models.Photo, error) {
	var photo models.Photo
	err := r.provider.WithContext(ctx).
		Where("uploaded_at > ?", uploadedAt).
		Order("uploaded_at ASC, id ASC").
		First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// DeletePhotoByID 删除照片，返回是否确有记录被删除
func (r *Repository) DeletePhotoByID(ctx context.Context, id string) (bool, error) {
	result := r.provider.WithContext(ctx).Where("id = ?", id).Delete(&models.Photo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountPhotos 统计照片总数
func (r *Repository) CountPhotos(ctx context.Context) (int64, error) {
	var count int64
	err := r.provider.WithContext(ctx).Model(&models.Photo{}).Count(&count).Error
	return count, err
}

// PhotoExists 检查照片是否存在
func (r *Repository) PhotoExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.provider.WithContext(ctx).Model(&models.Photo{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
