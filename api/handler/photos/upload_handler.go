package photos

import (
	"net/http"

	"github.com/anoixa/photo-album/api/common"
	"github.com/gin-gonic/gin"
)

// UploadedPhotoDTO 上传成功的单个条目
type UploadedPhotoDTO struct {
	ID               string `json:"id"`
	OriginalFileName string `json:"originalFileName"`
}

// FailedUploadDTO 上传失败的单个条目
type FailedUploadDTO struct {
	FileName string `json:"fileName"`
	Error    string `json:"error"`
}

// UploadResponse 批量上传的结果，供客户端逐个文件核对
type UploadResponse struct {
	Success        bool               `json:"success"`
	UploadedPhotos []UploadedPhotoDTO `json:"uploadedPhotos"`
	FailedUploads  []FailedUploadDTO  `json:"failedUploads"`
}

// UploadPhotos 处理照片批量上传
func (h *Handler) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		common.RespondError(c, http.StatusBadRequest, "At least one file is required under the 'files' key")
		return
	}

	results, err := h.uploadService.UploadBatch(c.Request.Context(), files)
	if err != nil {
		common.RespondError(c, http.StatusInternalServerError, "Failed to process uploads")
		return
	}

	// 两个数组都要序列化为 []，不能是 null
	uploaded := make([]UploadedPhotoDTO, 0, len(results))
	failed := make([]FailedUploadDTO, 0)
	for _, result := range results {
		if result.Error != "" {
			failed = append(failed, FailedUploadDTO{
				FileName: result.FileName,
				Error:    result.Error,
			})
			continue
		}
		uploaded = append(uploaded, UploadedPhotoDTO{
			ID:               result.Photo.ID,
			OriginalFileName: result.Photo.OriginalFileName,
		})
	}

	// 单个文件失败不影响 HTTP 状态码，失败原因随响应体返回
	c.JSON(http.StatusOK, UploadResponse{
		Success:        len(failed) == 0,
		UploadedPhotos: uploaded,
		FailedUploads:  failed,
	})
}
