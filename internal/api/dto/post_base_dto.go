package dto

// PostBaseDTO 创建帖子的请求体，Image 可以是完整外链或桶内路径
type PostBaseDTO struct {
	ID            string   `json:"id"`
	Title         string   `json:"title" binding:"required" validate:"required,min=1,max=255"`
	Caption       string   `json:"caption" binding:"required" validate:"required,min=1,max=500"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	InstagramURL  string   `json:"instagram_url"`
	Hashtags      []string `json:"hashtags"`
	ScheduledDate string   `json:"scheduled_date"`
	Status        string   `json:"status" binding:"required,oneof=draft scheduled published" validate:"required,oneof=draft scheduled published"`
	Likes         int      `json:"likes" validate:"min=0"`
	Comments      int      `json:"comments" validate:"min=0"`
	Featured      bool     `json:"featured"`
	Active        bool     `json:"active"`
}
