package download

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/swipedeck/swipe-deck/internal/model"
)

// Fetch behavior constants
const (
	FetchTimeout     = 30 * time.Second
	DefaultExtension = ".jpg"
	FallbackBaseName = "image"
)

// Service handles image save operations
type Service struct {
	tasks       map[string]*model.DownloadTask
	tasksMutex  sync.RWMutex
	maxParallel int
	activeCount int
	saveDir     string
	client      *http.Client
	onUpdate    func(*model.DownloadTask) // callback for UI updates
}

// NewService creates a new image save service
func NewService(saveDir string, maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		tasks:       make(map[string]*model.DownloadTask),
		maxParallel: maxParallel,
		saveDir:     saveDir,
		client:      &http.Client{Timeout: FetchTimeout},
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// SetSaveDirectory sets the directory saved images are written into
func (s *Service) SetSaveDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.saveDir = dir
}

// SaveImage queues a save task for the given catalog record
func (s *Service) SaveImage(record *model.ImageRecord) (*model.DownloadTask, error) {
	if record == nil {
		return nil, fmt.Errorf("no catalog record to save")
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task := &model.DownloadTask{
		ID:        uuid.NewString(),
		ImageID:   record.ID,
		URL:       record.URL,
		Title:     record.Title,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task

	// Start immediately if we have capacity
	if s.activeCount < s.maxParallel {
		go s.startTask(task)
	}

	return task, nil
}

// SaveAll queues a save task for every record in the catalog. The fetches
// run in parallel with no aggregate completion signal; per-task results
// still flow through the update callback.
func (s *Service) SaveAll(catalog *model.Catalog) {
	for i := 0; i < catalog.Len(); i++ {
		if _, err := s.SaveImage(catalog.At(i)); err != nil {
			log.Printf("Failed to queue save for catalog index %d: %v", i, err)
		}
	}
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// startTask fetches the image bytes and writes them to the save directory
func (s *Service) startTask(task *model.DownloadTask) {
	s.tasksMutex.Lock()
	s.activeCount++
	task.Status = model.TaskStatusDownloading
	saveDir := s.saveDir
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)

	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()

		// Try to start next pending task
		s.startNextPendingTask()
	}()

	outputPath, err := s.fetchToFile(task.URL, saveDir, Filename(task.Title, task.URL))

	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		log.Printf("Save failed for task %s (%s): %v", task.ID, task.URL, err)
	} else {
		task.Status = model.TaskStatusCompleted
		task.OutputPath = outputPath
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// fetchToFile downloads the URL and writes the bytes to dir/name
func (s *Service) fetchToFile(rawURL, dir, name string) (string, error) {
	resp, err := s.client.Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch failed: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create save directory: %w", err)
	}

	outputPath := filepath.Join(dir, name)
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return outputPath, nil
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}

	for _, task := range s.tasks {
		if task.Status == model.TaskStatusPending {
			go s.startTask(task)
			return
		}
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// Filename derives the saved file name: the image title with whitespace
// replaced by underscores, plus the extension of the source URL path.
func Filename(title, rawURL string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = FallbackBaseName
	}

	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		ext = path.Ext(u.Path)
	}
	if ext == "" {
		ext = DefaultExtension
	}

	return name + ext
}
