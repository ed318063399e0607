package model

import (
	"strings"
	"time"
)

// DownloadTask represents a single image save operation
type DownloadTask struct {
	ID         string
	ImageID    int
	URL        string
	Title      string
	Status     TaskStatus
	OutputPath string // path of the saved file, set on completion
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayTitle returns the image title, falling back to the saved
// filename and finally the source URL
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" {
		return dt.Title
	}

	if dt.OutputPath != "" {
		parts := strings.FieldsFunc(dt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	return dt.URL
}
