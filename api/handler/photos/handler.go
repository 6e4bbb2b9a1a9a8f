package photos

import (
	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/database/repo/photos"
	photoSvc "github.com/anoixa/photo-album/internal/services/photo"
)

// Handler 照片处理器
type Handler struct {
	repo          *photos.Repository
	uploadService *photoSvc.UploadService
	queryService  *photoSvc.QueryService
	deleteService *photoSvc.DeleteService
}

// NewHandler 照片处理器
func NewHandler(photosRepo *photos.Repository) *Handler {
	cfg := config.Get()

	return &Handler{
		repo:          photosRepo,
		uploadService: photoSvc.NewUploadService(photosRepo, cfg.GetUploadConcurrency()),
		queryService:  photoSvc.NewQueryService(photosRepo),
		deleteService: photoSvc.NewDeleteService(photosRepo),
	}
}
