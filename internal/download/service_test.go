package download

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/swipedeck/swipe-deck/internal/model"
)

func TestNewService(t *testing.T) {
	service := NewService("/tmp", 2)

	if service.saveDir != "/tmp" {
		t.Errorf("Expected saveDir to be '/tmp', got '%s'", service.saveDir)
	}

	if service.maxParallel != 2 {
		t.Errorf("Expected maxParallel to be 2, got %d", service.maxParallel)
	}

	if len(service.tasks) != 0 {
		t.Errorf("Expected empty tasks map, got %d items", len(service.tasks))
	}
}

func TestNewService_ClampsParallelism(t *testing.T) {
	service := NewService("/tmp", 0)
	if service.maxParallel != 1 {
		t.Errorf("Expected maxParallel to be clamped to 1, got %d", service.maxParallel)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title    string
		url      string
		expected string
	}{
		{"Mountain Lake", "https://example.com/photos/lake.jpg", "Mountain_Lake.jpg"},
		{"City Lights", "https://example.com/photos/city.png", "City_Lights.png"},
		{"One Two Three", "https://example.com/a.webp", "One_Two_Three.webp"},
		{"NoSpaces", "https://example.com/x.jpg", "NoSpaces.jpg"},
		{"Query Ext", "https://example.com/img.jpeg?size=large", "Query_Ext.jpeg"},
		{"No Extension", "https://example.com/image", "No_Extension.jpg"},
		{"", "https://example.com/image.png", "image.png"},
	}

	for _, test := range tests {
		result := Filename(test.title, test.url)
		if result != test.expected {
			t.Errorf("Filename(%q, %q) = %q, expected %q", test.title, test.url, result, test.expected)
		}
	}
}

func TestSaveImage_NilRecord(t *testing.T) {
	service := NewService(t.TempDir(), 1)

	_, err := service.SaveImage(nil)
	if err == nil {
		t.Error("Expected error for nil record")
	}
	if len(service.GetAllTasks()) != 0 {
		t.Error("Nil record must not create a task")
	}
}

// waitForTask polls until the task leaves its active states
func waitForTask(t *testing.T, service *Service, id string) *model.DownloadTask {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		task, ok := service.GetTask(id)
		if ok && task.Status.IsFinished() {
			return task
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("Task did not finish in time")
	return nil
}

func TestSaveImage_WritesFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake image bytes"))
	}))
	defer server.Close()

	saveDir := t.TempDir()
	service := NewService(saveDir, 1)

	record := &model.ImageRecord{ID: 1, URL: server.URL + "/photos/lake.jpg", Title: "Mountain Lake"}
	task, err := service.SaveImage(record)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	finished := waitForTask(t, service, task.ID)
	if finished.Status != model.TaskStatusCompleted {
		t.Fatalf("Expected Completed, got %s (%s)", finished.Status, finished.LastError)
	}

	expectedPath := filepath.Join(saveDir, "Mountain_Lake.jpg")
	if finished.OutputPath != expectedPath {
		t.Errorf("Expected output path %s, got %s", expectedPath, finished.OutputPath)
	}

	data, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("Saved file missing: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("Saved file has wrong contents: %q", data)
	}
}

func TestSaveImage_ServerErrorSurfacesAsTaskError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	service := NewService(t.TempDir(), 1)

	var updates []model.TaskStatus
	done := make(chan struct{})
	service.SetUpdateCallback(func(task *model.DownloadTask) {
		updates = append(updates, task.Status)
		if task.Status.IsFinished() {
			close(done)
		}
	})

	record := &model.ImageRecord{ID: 2, URL: server.URL + "/missing.jpg", Title: "Missing"}
	task, err := service.SaveImage(record)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Update callback never reported a finished task")
	}

	finished, _ := service.GetTask(task.ID)
	if finished.Status != model.TaskStatusError {
		t.Errorf("Expected Error status, got %s", finished.Status)
	}
	if finished.LastError == "" {
		t.Error("Expected LastError to be populated")
	}
	if len(updates) < 2 {
		t.Errorf("Expected at least Downloading and Error updates, got %v", updates)
	}
}

func TestSaveAll_QueuesEveryRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("img"))
	}))
	defer server.Close()

	service := NewService(t.TempDir(), 2)

	catalog := model.NewCatalog([]*model.ImageRecord{
		{ID: 1, URL: server.URL + "/a.jpg", Title: "A"},
		{ID: 2, URL: server.URL + "/b.jpg", Title: "B"},
		{ID: 3, URL: server.URL + "/c.jpg", Title: "C"},
	})

	service.SaveAll(catalog)

	tasks := service.GetAllTasks()
	if len(tasks) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(tasks))
	}

	for _, task := range tasks {
		finished := waitForTask(t, service, task.ID)
		if finished.Status != model.TaskStatusCompleted {
			t.Errorf("Task %s: expected Completed, got %s", task.ID, finished.Status)
		}
	}
}
