package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID            string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title         string      `gorm:"type:varchar(255);not null" json:"title"`
	Caption       string      `gorm:"type:varchar(500);not null" json:"caption"`
	Description   *string     `gorm:"type:text" json:"description"`
	ImageURL      *string     `gorm:"type:varchar(512)" json:"image_url"`
	ImageFilePath *string     `gorm:"type:varchar(512)" json:"image_file_path"`
	InstagramURL  *string     `gorm:"type:varchar(512)" json:"instagram_url"`
	Hashtags      HashtagList `gorm:"type:json" json:"hashtags"`
	ScheduledDate *time.Time  `gorm:"index:idx_scheduled_date" json:"scheduled_date"`
	Status        string      `gorm:"type:varchar(16);not null;default:'draft';index:idx_status" json:"status"`
	Likes         int         `gorm:"not null;default:0" json:"likes"`
	Comments      int         `gorm:"not null;default:0" json:"comments"`
	Featured      bool        `gorm:"type:tinyint(1);not null;default:0" json:"featured"`
	Active        bool        `gorm:"type:tinyint(1);not null;default:1" json:"active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (Post) TableName() string {
	return "instagram_posts"
}

// BeforeCreate 未指定 ID 时由服务端生成
func (s *Post) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// HashtagList 以 JSON 列存储的话题标签列表
type HashtagList []string

func (s HashtagList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *HashtagList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported hashtags column type: %T", value)
	}
	return json.Unmarshal(data, s)
}
