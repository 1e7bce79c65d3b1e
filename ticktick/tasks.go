package ticktick

import (
	"context"
	"net/url"
)

// TaskPriority matches the priority values in the Open API task reference.
type TaskPriority int

const (
	PriorityNone   TaskPriority = 0
	PriorityLow    TaskPriority = 1
	PriorityMedium TaskPriority = 3
	PriorityHigh   TaskPriority = 5
)

// TaskStatus matches the status values in the Open API task reference.
type TaskStatus int

const (
	StatusNormal    TaskStatus = 0
	StatusCompleted TaskStatus = 2
)

// SubtaskStatus matches the status values in the ChecklistItem reference.
// Note the completed value differs from TaskStatus.
type SubtaskStatus int

const (
	SubtaskStatusNormal    SubtaskStatus = 0
	SubtaskStatusCompleted SubtaskStatus = 1
)

// Subtask is an item of a task's checklist. The Open API calls this a
// ChecklistItem and carries it in the task's "items" field.
type Subtask struct {
	ID            string        `json:"id,omitempty"`
	Title         string        `json:"title"`
	Status        SubtaskStatus `json:"status,omitempty"`
	CompletedTime Time          `json:"completedTime,omitzero"`
	IsAllDay      bool          `json:"isAllDay,omitempty"`
	SortOrder     int64         `json:"sortOrder,omitempty"`
	StartDate     Time          `json:"startDate,omitzero"`
	TimeZone      string        `json:"timeZone,omitempty"`
}

// Task is a TickTick task.
type Task struct {
	ID            string       `json:"id,omitempty"`
	ProjectID     string       `json:"projectId,omitempty"`
	Title         string       `json:"title"`
	IsAllDay      bool         `json:"isAllDay,omitempty"`
	CompletedTime Time         `json:"completedTime,omitzero"`
	Content       string       `json:"content,omitempty"`
	Desc          string       `json:"desc,omitempty"`
	DueDate       Time         `json:"dueDate,omitzero"`
	Subtasks      []Subtask    `json:"items,omitempty"`
	Priority      TaskPriority `json:"priority,omitempty"`
	Reminders     []string     `json:"reminders,omitempty"`
	RepeatFlag    string       `json:"repeatFlag,omitempty"`
	SortOrder     int64        `json:"sortOrder,omitempty"`
	StartDate     Time         `json:"startDate,omitzero"`
	Status        TaskStatus   `json:"status,omitempty"`
	TimeZone      string       `json:"timeZone,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
}

// GetTask fetches a task by project and task ID.
func (c *Client) GetTask(ctx context.Context, projectID, taskID string) (*Task, error) {
	var task Task
	if err := c.get(ctx, taskPath(projectID, taskID), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetAllTasksInProjects fetches every task across all of the user's projects.
func (c *Client) GetAllTasksInProjects(ctx context.Context) ([]Task, error) {
	projects, err := c.GetAllProjects(ctx)
	if err != nil {
		return nil, err
	}
	var tasks []Task
	for _, project := range projects {
		data, err := c.GetProjectData(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, data.Tasks...)
	}
	return tasks, nil
}

// UpdateTask publishes changes made to the task. Other clients need a sync
// before the change is visible.
func (c *Client) UpdateTask(ctx context.Context, task *Task) error {
	return c.post(ctx, "/task/"+url.PathEscape(task.ID), task, nil)
}

// CompleteTask marks the task completed.
func (c *Client) CompleteTask(ctx context.Context, projectID, taskID string) error {
	return c.post(ctx, taskPath(projectID, taskID)+"/complete", nil, nil)
}

// DeleteTask deletes the task.
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return c.del(ctx, taskPath(projectID, taskID))
}

func taskPath(projectID, taskID string) string {
	return "/project/" + url.PathEscape(projectID) + "/task/" + url.PathEscape(taskID)
}
