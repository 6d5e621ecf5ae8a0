package dto

// MediaUploadDTO 上传结果，Path 为桶内路径，展示地址需另行解析
type MediaUploadDTO struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Original string `json:"original"`
	Mime     string `json:"mime"`
}
