package repository

import (
	"CafeX/internal/api/dto"
	"CafeX/internal/model"
	"time"
)

// PostMapper 行记录与应用实体之间的双向映射，
// 有效图片地址只在这里解析一次
type PostMapper struct {
	storage ImageStorage
}

func NewPostMapper(storage ImageStorage) *PostMapper {
	return &PostMapper{storage: storage}
}

// ToEntity 行记录转实体。图片解析顺序：桶内路径优先，其次外链，否则为空
func (s *PostMapper) ToEntity(row *model.Post) *dto.PostDTO {
	if row == nil {
		return nil
	}

	out := &dto.PostDTO{
		ID:            row.ID,
		Title:         row.Title,
		Caption:       row.Caption,
		Description:   row.Caption,
		InstagramURL:  deref(row.InstagramURL),
		Hashtags:      append([]string(nil), row.Hashtags...),
		ScheduledDate: row.ScheduledDate,
		Status:        row.Status,
		Likes:         row.Likes,
		Comments:      row.Comments,
		Featured:      row.Featured,
		Active:        row.Active,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if row.Description != nil && *row.Description != "" {
		out.Description = *row.Description
	}

	switch {
	case row.ImageFilePath != nil && *row.ImageFilePath != "":
		out.Image = model.ImageRef{Kind: model.ImageKindInternal, Value: *row.ImageFilePath}
		out.ImageURL = s.storage.PublicURL(*row.ImageFilePath)
	case row.ImageURL != nil && *row.ImageURL != "":
		out.Image = model.ImageRef{Kind: model.ImageKindExternal, Value: *row.ImageURL}
		out.ImageURL = *row.ImageURL
	default:
		out.Image = model.ImageRef{Kind: model.ImageKindNone}
	}

	return out
}

// ToModel 实体转待插入的行记录。
// 图片引用按类型标签落到互斥的两列之一
func (s *PostMapper) ToModel(entity *dto.PostDTO) *model.Post {
	if entity == nil {
		return nil
	}

	row := &model.Post{
		ID:            entity.ID,
		Title:         entity.Title,
		Caption:       entity.Caption,
		Hashtags:      append(model.HashtagList(nil), entity.Hashtags...),
		ScheduledDate: entity.ScheduledDate,
		Status:        entity.Status,
		Likes:         entity.Likes,
		Comments:      entity.Comments,
		Featured:      entity.Featured,
		Active:        entity.Active,
	}

	if entity.Description != "" {
		row.Description = ptr(entity.Description)
	}
	if entity.InstagramURL != "" {
		row.InstagramURL = ptr(entity.InstagramURL)
	}

	switch entity.Image.Kind {
	case model.ImageKindInternal:
		row.ImageFilePath = ptr(entity.Image.Value)
	case model.ImageKindExternal:
		row.ImageURL = ptr(entity.Image.Value)
	}

	return row
}

// UpdateColumns 把部分更新请求转换为待写入的列集合。
// 设置任一图片引用都会清空另一列；空白的定时时间落库为 NULL 而不是空串。
// 时间格式由服务层先行校验，这里不再重复报错
func (s *PostMapper) UpdateColumns(changes *dto.PostUpdateDTO) map[string]interface{} {
	cols := make(map[string]interface{})
	if changes == nil {
		return cols
	}

	if changes.Title != nil {
		cols["title"] = *changes.Title
	}
	if changes.Caption != nil {
		cols["caption"] = *changes.Caption
	}
	if changes.Description != nil {
		if *changes.Description == "" {
			cols["description"] = nil
		} else {
			cols["description"] = *changes.Description
		}
	}
	if changes.InstagramURL != nil {
		cols["instagram_url"] = *changes.InstagramURL
	}
	if changes.Hashtags != nil {
		cols["hashtags"] = model.HashtagList(*changes.Hashtags)
	}
	if changes.Image != nil {
		ref := model.ParseImageRef(*changes.Image)
		switch ref.Kind {
		case model.ImageKindInternal:
			cols["image_file_path"] = ref.Value
			cols["image_url"] = nil
		case model.ImageKindExternal:
			cols["image_url"] = ref.Value
			cols["image_file_path"] = nil
		default:
			cols["image_url"] = nil
			cols["image_file_path"] = nil
		}
	}
	if changes.ScheduledDate != nil {
		if *changes.ScheduledDate == "" {
			cols["scheduled_date"] = nil
		} else if ts, err := time.Parse(time.RFC3339, *changes.ScheduledDate); err == nil {
			cols["scheduled_date"] = ts
		}
	}
	if changes.Status != nil {
		cols["status"] = *changes.Status
	}
	if changes.Likes != nil {
		cols["likes"] = *changes.Likes
	}
	if changes.Comments != nil {
		cols["comments"] = *changes.Comments
	}
	if changes.Featured != nil {
		cols["featured"] = *changes.Featured
	}
	if changes.Active != nil {
		cols["active"] = *changes.Active
	}

	return cols
}

func ptr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
