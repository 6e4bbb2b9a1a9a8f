package models

import "time"

// Photo 照片记录，二进制数据与元数据一并入库
type Photo struct {
	ID               string  `gorm:"primarykey;size:36" json:"id"` // UUID 字符串
	OriginalFileName string  `gorm:"not null;size:255" json:"original_file_name"`
	StoredFileName   string  `gorm:"uniqueIndex:idx_stored_file_name;not null;size:255" json:"stored_file_name"`
	FilePath         *string `gorm:"size:512" json:"file_path,omitempty"` // 历史遗留字段，现始终为空
	FileSize         int64   `gorm:"not null" json:"file_size"`
	MimeType         string  `gorm:"not null;size:100" json:"mime_type"`

	UploadedAt time.Time `gorm:"index:idx_uploaded_at;not null" json:"uploaded_at"`

	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`

	PhotoData []byte `gorm:"not null" json:"-"`
}

// TableName 指定表名
func (Photo) TableName() string {
	return "photos"
}

// HasDimensions 判断是否已解析出图片尺寸
func (p *Photo) HasDimensions() bool {
	return p.Width != nil && p.Height != nil
}
