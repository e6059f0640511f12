package api

import "time"

type Child struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Grade       string `json:"grade,omitempty"`
	StudentCode string `json:"student_code,omitempty"`
}

type ParentDashboard struct {
	ParentID          string          `json:"parent_id"`
	Children          []Child         `json:"children"`
	UpcomingDeadlines []Assignment    `json:"upcoming_deadlines,omitempty"`
	RecentGrades      []ChildProgress `json:"recent_grades,omitempty"`
	UnreadMessages    int             `json:"unread_messages"`
}

type ChildProgress struct {
	ChildID          string  `json:"child_id"`
	CourseID         string  `json:"course_id"`
	CourseTitle      string  `json:"course_title,omitempty"`
	CompletedPercent float64 `json:"completed_percent"`
	AverageScore     float64 `json:"average_score,omitempty"`
}

type AttendanceRecord struct {
	ChildID string    `json:"child_id"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
	Note    string    `json:"note,omitempty"`
}

type LinkChildRequest struct {
	StudentCode  string `json:"student_code" validate:"required"`
	Relationship string `json:"relationship,omitempty"`
}

type ParentDashboardResponse = Response[ParentDashboard]
type ChildrenResponse = Response[[]Child]
type ChildResponse = Response[Child]
type ChildProgressResponse = Response[[]ChildProgress]
type AttendanceResponse = Response[[]AttendanceRecord]
