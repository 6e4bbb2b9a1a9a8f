package photos

import (
	"log"
	"net/http"

	"github.com/anoixa/photo-album/api/common"
	"github.com/anoixa/photo-album/utils"
	"github.com/gin-gonic/gin"
)

// GetPhoto 返回照片原始数据
func (h *Handler) GetPhoto(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		common.RespondError(c, http.StatusBadRequest, "Photo id is required")
		return
	}

	photo, err := h.queryService.GetPhotoByID(c.Request.Context(), id)
	if err != nil {
		if utils.IsClientDisconnect(err) {
			log.Printf("Client disconnected while fetching photo %s", utils.SanitizeLogMessage(id))
			return
		}
		log.Printf("Failed to fetch photo %s: %v", utils.SanitizeLogMessage(id), err)
		common.RespondError(c, http.StatusInternalServerError, "Error retrieving photo")
		return
	}
	if photo == nil {
		common.RespondError(c, http.StatusNotFound, "Photo not found")
		return
	}

	contentType := photo.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// 照片数据随时可能被删除，禁止客户端与中间层缓存
	c.Header("X-Photo-ID", photo.ID)
	c.Header("X-Photo-Name", photo.OriginalFileName)
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	c.Data(http.StatusOK, contentType, photo.PhotoData)
}
