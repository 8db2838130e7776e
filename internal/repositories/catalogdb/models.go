package catalogdb

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CatalogVideo 对应 catalog.videos。
type CatalogVideo struct {
	VideoID      uuid.UUID          `json:"video_id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	YearLaunched int32              `json:"year_launched"`
	Duration     float64            `json:"duration"`
	Opened       bool               `json:"opened"`
	Published    bool               `json:"published"`
	Rating       string             `json:"rating"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

// CatalogVideoMedium 对应 catalog.video_media 的一行。
type CatalogVideoMedium struct {
	VideoID         uuid.UUID   `json:"video_id"`
	MediaType       string      `json:"media_type"`
	MediaID         string      `json:"media_id"`
	Checksum        string      `json:"checksum"`
	Name            string      `json:"name"`
	Location        string      `json:"location"`
	EncodedLocation pgtype.Text `json:"encoded_location"`
	Status          pgtype.Text `json:"status"`
}
