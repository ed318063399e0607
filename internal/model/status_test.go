package model

import "testing"

func TestTaskStatusString(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected string
	}{
		{TaskStatusPending, "Pending"},
		{TaskStatusDownloading, "Downloading"},
		{TaskStatusCompleted, "Completed"},
		{TaskStatusError, "Error"},
	}

	for _, test := range tests {
		if test.status.String() != test.expected {
			t.Errorf("String() = %s, expected %s", test.status.String(), test.expected)
		}
	}
}

func TestTaskStatusIsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, true},
		{TaskStatusDownloading, true},
		{TaskStatusCompleted, false},
		{TaskStatusError, false},
	}

	for _, test := range tests {
		if test.status.IsActive() != test.expected {
			t.Errorf("IsActive() for %s = %v, expected %v", test.status, test.status.IsActive(), test.expected)
		}
	}
}

func TestTaskStatusIsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusDownloading, false},
		{TaskStatusCompleted, true},
		{TaskStatusError, true},
	}

	for _, test := range tests {
		if test.status.IsFinished() != test.expected {
			t.Errorf("IsFinished() for %s = %v, expected %v", test.status, test.status.IsFinished(), test.expected)
		}
	}
}
