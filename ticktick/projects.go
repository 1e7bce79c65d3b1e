package ticktick

import (
	"context"
	"encoding/json"
	"net/url"
)

// ProjectViewMode is how a project is displayed in the TickTick clients.
type ProjectViewMode string

const (
	ViewModeList     ProjectViewMode = "list"
	ViewModeKanban   ProjectViewMode = "kanban"
	ViewModeTimeline ProjectViewMode = "timeline"
)

// UnmarshalJSON maps unrecognised values to the list view, matching the
// provider's default.
func (m *ProjectViewMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ProjectViewMode(s) {
	case ViewModeKanban, ViewModeTimeline:
		*m = ProjectViewMode(s)
	default:
		*m = ViewModeList
	}
	return nil
}

// ProjectPermission is the calling user's permission on a shared project.
type ProjectPermission string

const (
	PermissionRead    ProjectPermission = "read"
	PermissionWrite   ProjectPermission = "write"
	PermissionComment ProjectPermission = "comment"
)

// UnmarshalJSON maps unrecognised values to read, the weakest permission.
func (p *ProjectPermission) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ProjectPermission(s) {
	case PermissionWrite, PermissionComment:
		*p = ProjectPermission(s)
	default:
		*p = PermissionRead
	}
	return nil
}

// ProjectKind distinguishes task projects from note projects.
type ProjectKind string

const (
	KindTask ProjectKind = "TASK"
	KindNote ProjectKind = "NOTE"
)

// UnmarshalJSON maps unrecognised values to TASK.
func (k *ProjectKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ProjectKind(s) {
	case KindNote:
		*k = KindNote
	default:
		*k = KindTask
	}
	return nil
}

// Project is a TickTick project (a task list).
type Project struct {
	ID         string            `json:"id,omitempty"`
	Name       string            `json:"name"`
	Color      string            `json:"color,omitempty"`
	SortOrder  int64             `json:"sortOrder,omitempty"`
	Closed     bool              `json:"closed,omitempty"`
	GroupID    string            `json:"groupId,omitempty"`
	ViewMode   ProjectViewMode   `json:"viewMode,omitempty"`
	Permission ProjectPermission `json:"permission,omitempty"`
	Kind       ProjectKind       `json:"kind,omitempty"`
}

// Column is a kanban column within a project.
type Column struct {
	ID        string `json:"id,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
	Name      string `json:"name"`
	SortOrder int64  `json:"sortOrder,omitempty"`
}

// ProjectData is a project together with its undone tasks and columns.
type ProjectData struct {
	Project Project  `json:"project"`
	Tasks   []Task   `json:"tasks"`
	Columns []Column `json:"columns"`
}

// GetProject fetches a single project by ID.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	var project Project
	if err := c.get(ctx, "/project/"+url.PathEscape(projectID), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAllProjects fetches the user's projects.
func (c *Client) GetAllProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.get(ctx, "/project", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectData fetches a project with its tasks and columns.
func (c *Client) GetProjectData(ctx context.Context, projectID string) (*ProjectData, error) {
	var data ProjectData
	if err := c.get(ctx, "/project/"+url.PathEscape(projectID)+"/data", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// UpdateProject publishes changes made to the project. Other clients need a
// sync before the change is visible.
func (c *Client) UpdateProject(ctx context.Context, project *Project) error {
	return c.post(ctx, "/project/"+url.PathEscape(project.ID), project, nil)
}

// DeleteProject deletes the project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.del(ctx, "/project/"+url.PathEscape(projectID))
}
