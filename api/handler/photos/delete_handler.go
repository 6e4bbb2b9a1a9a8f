package photos

import (
	"net/http"

	"github.com/anoixa/photo-album/api/common"
	"github.com/gin-gonic/gin"
)

// DeletePhoto 删除照片后回到画廊
func (h *Handler) DeletePhoto(c *gin.Context) {
	id := c.Param("id")

	_, err := h.deleteService.DeletePhoto(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to delete the photo due to an internal error.")
		return
	}

	// 无论照片是否存在都回到画廊
	c.Redirect(http.StatusFound, "/")
}
