package dto

import (
	"CafeX/internal/model"
	"time"
)

// PostDTO 应用侧的帖子实体，ImageURL 为解析后的可展示地址
type PostDTO struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Caption       string         `json:"caption"`
	Description   string         `json:"description"`
	Image         model.ImageRef `json:"-"`
	ImageURL      string         `json:"image_url"`
	InstagramURL  string         `json:"instagram_url"`
	Hashtags      []string       `json:"hashtags"`
	ScheduledDate *time.Time     `json:"scheduled_date,omitempty"`
	Status        string         `json:"status"`
	Likes         int            `json:"likes"`
	Comments      int            `json:"comments"`
	Featured      bool           `json:"featured"`
	Active        bool           `json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
