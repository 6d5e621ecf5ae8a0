package dto

// EngagementStatsDTO 已发布且上架帖子的互动数据聚合
type EngagementStatsDTO struct {
	TotalPosts      int `json:"total_posts"`
	TotalLikes      int `json:"total_likes"`
	TotalComments   int `json:"total_comments"`
	AverageLikes    int `json:"average_likes"`
	AverageComments int `json:"average_comments"`
}

// SweepFailureDTO 定时发布巡检中单条失败记录
type SweepFailureDTO struct {
	PostID string `json:"post_id"`
	Error  string `json:"error"`
}

// SweepResultDTO 定时发布巡检结果，成功与失败分别列出
type SweepResultDTO struct {
	Published []*PostDTO        `json:"published"`
	Failed    []SweepFailureDTO `json:"failed"`
}
