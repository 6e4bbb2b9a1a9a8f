package photos

import (
	"log"
	"net/http"

	"github.com/anoixa/photo-album/api/common"
	"github.com/anoixa/photo-album/utils"
	"github.com/gin-gonic/gin"
)

// PhotoDetailResponse 照片详情与相邻导航
type PhotoDetailResponse struct {
	Photo           *PhotoDTO `json:"photo"`
	PreviousPhotoID string    `json:"previous_photo_id"`
	NextPhotoID     string    `json:"next_photo_id"`
}

// GetPhotoDetail 获取照片详情
func (h *Handler) GetPhotoDetail(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.queryService.GetPhotoDetail(c.Request.Context(), id)
	if err != nil {
		log.Printf("Failed to fetch photo detail %s: %v", utils.SanitizeLogMessage(id), err)
		common.RespondError(c, http.StatusInternalServerError, "Error retrieving photo")
		return
	}
	if detail == nil {
		// 未知 ID 回到画廊首页
		c.Redirect(http.StatusFound, "/")
		return
	}

	common.RespondSuccess(c, PhotoDetailResponse{
		Photo:           toPhotoDTO(detail.Photo),
		PreviousPhotoID: detail.PreviousPhotoID,
		NextPhotoID:     detail.NextPhotoID,
	})
}
