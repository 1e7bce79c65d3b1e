package ticktick

import (
	"context"

	"github.com/jrsteele09/go-ticktick/internal/utils"
)

// TaskBuilder assembles the creation payload for a new task. Setters return
// the builder for chaining; Create publishes the task and returns the created
// resource.
type TaskBuilder struct {
	client  *Client
	payload taskCreate
}

// taskCreate is the POST /task body. Unset optionals are omitted so the
// provider applies its own defaults.
type taskCreate struct {
	Title         string        `json:"title"`
	ProjectID     *string       `json:"projectId,omitempty"`
	IsAllDay      *bool         `json:"isAllDay,omitempty"`
	CompletedTime Time          `json:"completedTime,omitzero"`
	Content       *string       `json:"content,omitempty"`
	Desc          *string       `json:"desc,omitempty"`
	DueDate       Time          `json:"dueDate,omitzero"`
	Subtasks      []Subtask     `json:"items,omitempty"`
	Priority      *TaskPriority `json:"priority,omitempty"`
	Reminders     []string      `json:"reminders,omitempty"`
	RepeatFlag    *string       `json:"repeatFlag,omitempty"`
	SortOrder     *int64        `json:"sortOrder,omitempty"`
	StartDate     Time          `json:"startDate,omitzero"`
	Status        *TaskStatus   `json:"status,omitempty"`
	TimeZone      *string       `json:"timeZone,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
}

// NewTask starts a task creation with the given title.
func (c *Client) NewTask(title string) *TaskBuilder {
	return &TaskBuilder{client: c, payload: taskCreate{Title: title}}
}

func (b *TaskBuilder) Title(title string) *TaskBuilder {
	b.payload.Title = title
	return b
}

func (b *TaskBuilder) ProjectID(projectID string) *TaskBuilder {
	b.payload.ProjectID = utils.Ptr(projectID)
	return b
}

func (b *TaskBuilder) IsAllDay(allDay bool) *TaskBuilder {
	b.payload.IsAllDay = utils.Ptr(allDay)
	return b
}

func (b *TaskBuilder) CompletedTime(t Time) *TaskBuilder {
	b.payload.CompletedTime = t
	return b
}

func (b *TaskBuilder) Content(content string) *TaskBuilder {
	b.payload.Content = utils.Ptr(content)
	return b
}

func (b *TaskBuilder) Desc(desc string) *TaskBuilder {
	b.payload.Desc = utils.Ptr(desc)
	return b
}

func (b *TaskBuilder) DueDate(t Time) *TaskBuilder {
	b.payload.DueDate = t
	return b
}

func (b *TaskBuilder) Subtasks(subtasks []Subtask) *TaskBuilder {
	b.payload.Subtasks = subtasks
	return b
}

func (b *TaskBuilder) Priority(priority TaskPriority) *TaskBuilder {
	b.payload.Priority = utils.Ptr(priority)
	return b
}

func (b *TaskBuilder) Reminders(reminders []string) *TaskBuilder {
	b.payload.Reminders = reminders
	return b
}

func (b *TaskBuilder) RepeatFlag(flag string) *TaskBuilder {
	b.payload.RepeatFlag = utils.Ptr(flag)
	return b
}

func (b *TaskBuilder) SortOrder(order int64) *TaskBuilder {
	b.payload.SortOrder = utils.Ptr(order)
	return b
}

func (b *TaskBuilder) StartDate(t Time) *TaskBuilder {
	b.payload.StartDate = t
	return b
}

func (b *TaskBuilder) Status(status TaskStatus) *TaskBuilder {
	b.payload.Status = utils.Ptr(status)
	return b
}

func (b *TaskBuilder) TimeZone(tz string) *TaskBuilder {
	b.payload.TimeZone = utils.Ptr(tz)
	return b
}

func (b *TaskBuilder) Tags(tags []string) *TaskBuilder {
	b.payload.Tags = tags
	return b
}

// Create publishes the task to the Open API.
func (b *TaskBuilder) Create(ctx context.Context) (*Task, error) {
	var task Task
	if err := b.client.post(ctx, "/task", b.payload, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ProjectBuilder assembles the creation payload for a new project.
type ProjectBuilder struct {
	client  *Client
	payload projectCreate
}

type projectCreate struct {
	Name      string           `json:"name"`
	Color     *string          `json:"color,omitempty"`
	SortOrder *int64           `json:"sortOrder,omitempty"`
	ViewMode  *ProjectViewMode `json:"viewMode,omitempty"`
	Kind      *ProjectKind     `json:"kind,omitempty"`
}

// NewProject starts a project creation with the given name.
func (c *Client) NewProject(name string) *ProjectBuilder {
	return &ProjectBuilder{client: c, payload: projectCreate{Name: name}}
}

func (b *ProjectBuilder) Name(name string) *ProjectBuilder {
	b.payload.Name = name
	return b
}

func (b *ProjectBuilder) Color(color string) *ProjectBuilder {
	b.payload.Color = utils.Ptr(color)
	return b
}

func (b *ProjectBuilder) SortOrder(order int64) *ProjectBuilder {
	b.payload.SortOrder = utils.Ptr(order)
	return b
}

func (b *ProjectBuilder) ViewMode(mode ProjectViewMode) *ProjectBuilder {
	b.payload.ViewMode = utils.Ptr(mode)
	return b
}

func (b *ProjectBuilder) Kind(kind ProjectKind) *ProjectBuilder {
	b.payload.Kind = utils.Ptr(kind)
	return b
}

// Create publishes the project to the Open API.
func (b *ProjectBuilder) Create(ctx context.Context) (*Project, error) {
	var project Project
	if err := b.client.post(ctx, "/project", b.payload, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
