package dto

// PostUpdateDTO 部分更新请求体，只有非 nil 字段会下发到存储层
type PostUpdateDTO struct {
	Title         *string   `json:"title" binding:"omitempty,min=1,max=255"`
	Caption       *string   `json:"caption" binding:"omitempty,min=1,max=500"`
	Description   *string   `json:"description"`
	Image         *string   `json:"image"`
	InstagramURL  *string   `json:"instagram_url"`
	Hashtags      *[]string `json:"hashtags"`
	ScheduledDate *string   `json:"scheduled_date"`
	Status        *string   `json:"status" binding:"omitempty,oneof=draft scheduled published"`
	Likes         *int      `json:"likes" binding:"omitempty,min=0"`
	Comments      *int      `json:"comments" binding:"omitempty,min=0"`
	Featured      *bool     `json:"featured"`
	Active        *bool     `json:"active"`
}
