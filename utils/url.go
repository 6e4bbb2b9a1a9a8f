package utils

import (
	"fmt"

	"github.com/anoixa/photo-album/config"
)

// BuildPhotoURL 生成照片原图的访问地址
func BuildPhotoURL(id string) string {
	cfg := config.Get()
	return fmt.Sprintf("%s/photo/%s", cfg.BaseURL(), id)
}

// BuildDetailURL 生成照片详情页的访问地址
func BuildDetailURL(id string) string {
	cfg := config.Get()
	return fmt.Sprintf("%s/detail/%s", cfg.BaseURL(), id)
}
