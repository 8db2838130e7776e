// Package dto 负责 HTTP 请求体与业务层输入之间的转换。
package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bionicotaku/lingo-services-media/internal/models/media"
	"github.com/bionicotaku/lingo-services-media/internal/services"
)

// 表单字段名。
const (
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldYearLaunched  = "year_launched"
	FieldDuration      = "duration"
	FieldOpened        = "opened"
	FieldPublished     = "published"
	FieldRating        = "rating"
	FieldCategories    = "categories_id"
	FieldGenres        = "genres_id"
	FieldCastMembers   = "cast_members_id"
	FileVideo          = "video_file"
	FileTrailer        = "trailer_file"
	FileBanner         = "banner_file"
	FileThumbnail      = "thumbnail_file"
	FileThumbnailHalf  = "thumbnail_half_file"
	defaultContentType = "application/octet-stream"
)

// ErrMalformedRequest 表示请求体无法解析。
var ErrMalformedRequest = errors.New("malformed request")

// VideoRequest 是 JSON 形式的创建/更新请求体；JSON 请求不携带媒体文件。
type VideoRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	YearLaunched  *int     `json:"year_launched"`
	Duration      float64  `json:"duration"`
	Opened        bool     `json:"opened"`
	Published     bool     `json:"published"`
	Rating        string   `json:"rating"`
	CategoriesID  []string `json:"categories_id"`
	GenresID      []string `json:"genres_id"`
	CastMembersID []string `json:"cast_members_id"`
}

// ToInput 转换为业务层输入。
func (r VideoRequest) ToInput() services.VideoInput {
	return services.VideoInput{
		Title:       r.Title,
		Description: r.Description,
		LaunchedAt:  r.YearLaunched,
		Duration:    r.Duration,
		Opened:      r.Opened,
		Published:   r.Published,
		Rating:      r.Rating,
		Categories:  splitIDs(r.CategoriesID),
		Genres:      splitIDs(r.GenresID),
		CastMembers: splitIDs(r.CastMembersID),
	}
}

// ParseVideoInput 按 Content-Type 解析 multipart 表单或 JSON 请求体。
func ParseVideoInput(req *http.Request, maxBytes int64) (services.VideoInput, error) {
	if maxBytes > 0 && req.Body != nil {
		req.Body = http.MaxBytesReader(nil, req.Body, maxBytes)
	}
	mediaType, _, _ := mime.ParseMediaType(req.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		return parseMultipart(req, maxBytes)
	case "application/x-www-form-urlencoded":
		if err := req.ParseForm(); err != nil {
			return services.VideoInput{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
		}
		return fromValues(req.PostForm), nil
	default:
		var body VideoRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return services.VideoInput{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
		}
		return body.ToInput(), nil
	}
}

func parseMultipart(req *http.Request, maxBytes int64) (services.VideoInput, error) {
	memory := maxBytes
	if memory <= 0 || memory > 32<<20 {
		memory = 32 << 20
	}
	if err := req.ParseMultipartForm(memory); err != nil {
		return services.VideoInput{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	form := req.MultipartForm

	input := fromValues(url.Values(form.Value))

	files := []struct {
		field  string
		target **media.Resource
	}{
		{FileVideo, &input.Video},
		{FileTrailer, &input.Trailer},
		{FileBanner, &input.Banner},
		{FileThumbnail, &input.Thumbnail},
		{FileThumbnailHalf, &input.ThumbnailHalf},
	}
	for _, f := range files {
		headers := form.File[f.field]
		if len(headers) == 0 {
			continue
		}
		resource, err := readResource(headers[0])
		if err != nil {
			return services.VideoInput{}, err
		}
		*f.target = resource
	}
	return input, nil
}

func readResource(header *multipart.FileHeader) (*media.Resource, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrMalformedRequest, header.Filename, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrMalformedRequest, header.Filename, err)
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}
	resource := media.NewResource(content, contentType, header.Filename)
	return &resource, nil
}

func fromValues(values url.Values) services.VideoInput {
	input := services.VideoInput{
		Title:       values.Get(FieldTitle),
		Description: values.Get(FieldDescription),
		Rating:      values.Get(FieldRating),
		Categories:  splitIDs(values[FieldCategories]),
		Genres:      splitIDs(values[FieldGenres]),
		CastMembers: splitIDs(values[FieldCastMembers]),
	}

	if raw := strings.TrimSpace(values.Get(FieldYearLaunched)); raw != "" {
		// 无法解析的年份按未提供处理，由聚合校验报告
		if year, err := strconv.Atoi(raw); err == nil {
			input.LaunchedAt = &year
		}
	}
	if raw := strings.TrimSpace(values.Get(FieldDuration)); raw != "" {
		duration, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			input.InvalidFields = append(input.InvalidFields, "duration")
		} else {
			input.Duration = duration
		}
	}
	input.Opened = parseBool(values.Get(FieldOpened))
	input.Published = parseBool(values.Get(FieldPublished))
	return input
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

// splitIDs 同时支持重复字段与逗号分隔两种写法，丢弃空白项。
func splitIDs(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if id := strings.TrimSpace(part); id != "" {
				out = append(out, id)
			}
		}
	}
	return out
}
