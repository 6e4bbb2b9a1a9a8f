package photo

import (
	"context"
	"fmt"
	"log"

	"github.com/anoixa/photo-album/database/repo/photos"
	"github.com/anoixa/photo-album/utils"
)

// DeleteService 照片删除服务
type DeleteService struct {
	repo *photos.Repository
}

// NewDeleteService 创建删除服务
func NewDeleteService(repo *photos.Repository) *DeleteService {
	return &DeleteService{repo: repo}
}

// DeletePhoto 删除照片，返回是否确有记录被删除
// 记录不存在不视为错误
func (s *DeleteService) DeletePhoto(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.DeletePhotoByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete photo: %w", err)
	}

	if deleted {
		log.Printf("Photo deleted: %s", utils.SanitizeLogMessage(id))
	} else {
		log.Printf("Delete requested for missing photo: %s", utils.SanitizeLogMessage(id))
	}

	return deleted, nil
}
