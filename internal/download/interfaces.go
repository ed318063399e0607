package download

import (
	"github.com/swipedeck/swipe-deck/internal/model"
)

// Downloader defines the interface for the image save service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	SaveImage(record *model.ImageRecord) (*model.DownloadTask, error)
	SaveAll(catalog *model.Catalog)
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask

	// SetSaveDirectory sets the directory saved images are written into
	SetSaveDirectory(dir string)
}
