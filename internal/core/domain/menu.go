package domain

import "time"

// MenuPDF records an uploaded weekly menu document. The file itself lives on
// disk under the configured upload directory; this is the metadata row.
type MenuPDF struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Filename         string    `json:"filename" bson:"filename"`
	OriginalFilename string    `json:"original_filename" bson:"original_filename"`
	FileSize         int64     `json:"file_size" bson:"file_size"`
	UploadedAt       time.Time `json:"upload_date" bson:"uploaded_at"`
	UploadedBy       string    `json:"uploaded_by,omitempty" bson:"uploaded_by,omitempty"`
}
