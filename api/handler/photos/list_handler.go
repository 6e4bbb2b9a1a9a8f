package photos

import (
	"net/http"
	"time"

	"github.com/anoixa/photo-album/api/common"
	"github.com/anoixa/photo-album/database/models"
	photoSvc "github.com/anoixa/photo-album/internal/services/photo"
	"github.com/anoixa/photo-album/utils"
	"github.com/gin-gonic/gin"
)

// PhotoDTO 画廊列表中的照片摘要，不含二进制数据
type PhotoDTO struct {
	ID               string `json:"id"`
	URL              string `json:"url"`
	DetailURL        string `json:"detail_url"`
	OriginalFileName string `json:"original_file_name"`
	FileSize         int64  `json:"file_size"`
	MimeType         string `json:"mime_type"`
	Width            *int   `json:"width,omitempty"`
	Height           *int   `json:"height,omitempty"`
	UploadedAt       int64  `json:"uploaded_at"`
}

type galleryRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
	Year   int `form:"year"`
	Month  int `form:"month"`
}

// GalleryResponse 画廊列表响应
type GalleryResponse struct {
	Photos    []*PhotoDTO `json:"photos"`
	Total     int64       `json:"total"`
	Timestamp int64       `json:"timestamp"`
}

// ListPhotos 获取画廊列表
func (h *Handler) ListPhotos(c *gin.Context) {
	var req galleryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// 月份过滤需要 year 和 month 成对出现
	hasYear := c.Query("year") != ""
	hasMonth := c.Query("month") != ""
	if hasYear != hasMonth {
		common.RespondError(c, http.StatusBadRequest, "Both 'year' and 'month' are required for month filtering")
		return
	}

	var result *photoSvc.GalleryResult
	var err error
	if hasYear {
		if req.Month < 1 || req.Month > 12 {
			common.RespondError(c, http.StatusBadRequest, "Month must be between 1 and 12")
			return
		}
		result, err = h.queryService.ListGalleryByMonth(c.Request.Context(), req.Year, time.Month(req.Month))
	} else {
		if req.Offset < 0 {
			req.Offset = 0
		}
		result, err = h.queryService.ListGallery(c.Request.Context(), req.Limit, req.Offset)
	}
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to get photo list")
		return
	}

	common.RespondSuccess(c, GalleryResponse{
		Photos:    toPhotoDTOs(result.Photos),
		Total:     result.Total,
		Timestamp: time.Now().Unix(),
	})
}

func toPhotoDTO(photo *models.Photo) *PhotoDTO {
	if photo == nil {
		return nil
	}

	return &PhotoDTO{
		ID:               photo.ID,
		URL:              utils.BuildPhotoURL(photo.ID),
		DetailURL:        utils.BuildDetailURL(photo.ID),
		OriginalFileName: photo.OriginalFileName,
		FileSize:         photo.FileSize,
		MimeType:         photo.MimeType,
		Width:            photo.Width,
		Height:           photo.Height,
		UploadedAt:       photo.UploadedAt.Unix(),
	}
}

func toPhotoDTOs(photos []*models.Photo) []*PhotoDTO {
	dtos := make([]*PhotoDTO, len(photos))
	for i, photo := range photos {
		dtos[i] = toPhotoDTO(photo)
	}
	return dtos
}
