package dto

import "github.com/bionicotaku/lingo-services-media/internal/services"

// ListVideosRequest 对应 GET /v1/videos 的查询参数。
type ListVideosRequest struct {
	Page          int32    `json:"page"`
	PerPage       int32    `json:"perPage"`
	Search        string   `json:"search"`
	Sort          string   `json:"sort"`
	Dir           string   `json:"dir"`
	CategoriesID  []string `json:"categories_id"`
	GenresID      []string `json:"genres_id"`
	CastMembersID []string `json:"cast_members_id"`
}

// ToInput 转换为业务层查询输入，分页与排序的归一化由服务层完成。
func (r ListVideosRequest) ToInput() services.ListVideosInput {
	return services.ListVideosInput{
		Page:        r.Page,
		PerPage:     r.PerPage,
		Terms:       r.Search,
		Sort:        r.Sort,
		Direction:   r.Dir,
		Categories:  splitIDs(r.CategoriesID),
		Genres:      splitIDs(r.GenresID),
		CastMembers: splitIDs(r.CastMembersID),
	}
}

// MediaStatusRequest 是转码流水线的 HTTP 状态回调请求体。
type MediaStatusRequest struct {
	Status          string `json:"status"`
	ResourceID      string `json:"id"`
	VideoID         string `json:"video_id"`
	EncodedFolder   string `json:"encoded_video_folder"`
	EncodedFileName string `json:"file_name"`
}

// ToInput 转换为业务层输入；路径参数中的视频 ID 优先。
func (r MediaStatusRequest) ToInput(pathVideoID string) services.UpdateMediaStatusInput {
	videoID := r.VideoID
	if pathVideoID != "" {
		videoID = pathVideoID
	}
	return services.UpdateMediaStatusInput{
		Status:          r.Status,
		VideoID:         videoID,
		ResourceID:      r.ResourceID,
		EncodedFolder:   r.EncodedFolder,
		EncodedFileName: r.EncodedFileName,
	}
}
