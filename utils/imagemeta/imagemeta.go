package imagemeta

import (
	"bytes"
	"fmt"
	"image"

	// 注册标准图片格式解码器
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// 注册 WebP 解码器
	_ "golang.org/x/image/webp"
)

// Dimensions 从图片头部解析宽高
// 只读取图片头信息，不做完整解码
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
