package fakeapi

import (
	"fmt"
	"time"

	"github.com/edu-platform/educlient/shared/api"
)

// Seeded identities, usable with Server.Token.
const (
	SeedAdmin      = "admin-1"
	SeedInstructor = "instructor-1"
	SeedParent     = "parent-1"
	SeedStudentID  = "child-1"
	SeedCourseID   = "course-go"
)

func (s *Server) seed() {
	now := s.now().UTC().Truncate(24 * time.Hour)
	day := 24 * time.Hour

	blogs := []api.BlogRequest{
		{Title: "Getting started with Go", Content: "# Hello\n\nGo is a **simple** language.", Category: "programming", Tags: []string{"go", "beginner"}, Published: true},
		{Title: "Study habits that work", Content: "Spaced repetition beats cramming.", Category: "learning", Tags: []string{"study"}, Published: true},
		{Title: "Data science roadmap", Content: "Start with statistics, then *Python*.", Category: "data", Tags: []string{"data", "python"}, Published: true},
	}
	for i, b := range blogs {
		blog := s.blogFromRequest(api.Blog{ID: fmt.Sprintf("blog-%d", i+1), CreatedAt: now.Add(time.Duration(i) * time.Hour)}, b)
		blog.Author = SeedInstructor
		s.Blogs.Put(blog.ID, blog)
	}

	courses := []api.Course{
		{ID: SeedCourseID, Title: "Go Fundamentals", Slug: "go-fundamentals", Description: "Types, interfaces and concurrency.", Category: "programming", Level: "beginner", Tags: []string{"go"}, IsFree: true, DurationHrs: 12, InstructorID: SeedInstructor, Rating: 4.7, CreatedAt: now.Add(-3 * day)},
		{ID: "course-ds", Title: "Data Science with Python", Slug: "data-science-with-python", Description: "Pandas, plots and models.", Category: "data", Level: "intermediate", Tags: []string{"python", "data"}, Price: 49.99, DurationHrs: 30, InstructorID: SeedInstructor, Rating: 4.5, CreatedAt: now.Add(-2 * day)},
		{ID: "course-ml", Title: "Applied Machine Learning", Slug: "applied-machine-learning", Description: "From regression to deployment.", Category: "data", Level: "advanced", Tags: []string{"ml", "python"}, Price: 99, DurationHrs: 45, Rating: 4.8, CreatedAt: now.Add(-day)},
	}
	for _, c := range courses {
		s.Courses.Put(c.ID, c)
	}

	s.Brochures.Put("brochure-1", api.Brochure{ID: "brochure-1", Title: "2025 Programme Guide", Category: "general", FileURL: "/files/brochure-1/guide.pdf", CreatedAt: now})
	s.Brochures.Put("brochure-2", api.Brochure{ID: "brochure-2", Title: "Data Track", Category: "data", CourseID: "course-ds", FileURL: "/files/brochure-2/data.pdf", CreatedAt: now})

	s.Jobs.Put("job-1", api.Job{ID: "job-1", Title: "Go Instructor", Department: "Teaching", Location: "Berlin", JobType: "full-time", Remote: true, Description: "Teach Go to adults.", PostedAt: now.Add(-day)})
	s.Jobs.Put("job-2", api.Job{ID: "job-2", Title: "Curriculum Intern", Department: "Content", Location: "London", JobType: "internship", Description: "Help write course material.", PostedAt: now})

	s.Materials.Put("material-1", api.Material{ID: "material-1", CourseID: SeedCourseID, Title: "Slides week 1", Type: "slides", URL: "/files/material-1/week1.pptx", CreatedAt: now})
	s.Materials.Put("material-2", api.Material{ID: "material-2", CourseID: SeedCourseID, Title: "Intro video", Type: "video", URL: "/files/material-2/intro.mp4", CreatedAt: now})

	s.Assignments.Put("assignment-1", api.Assignment{ID: "assignment-1", CourseID: SeedCourseID, InstructorID: SeedInstructor, Title: "Build a CLI", Status: "published", MaxScore: 100, DueDate: now.Add(7 * day)})
	s.Work.Put("submission-1", api.AssignmentSubmission{ID: "submission-1", AssignmentID: "assignment-1", StudentID: SeedStudentID, FileURL: "/files/submission-1/cli.zip", SubmittedAt: now})

	s.Students.Put(SeedStudentID, api.Child{ID: SeedStudentID, Name: "Alex Doe", Grade: "8", StudentCode: "STU-1001"})
	s.Students.Put("child-2", api.Child{ID: "child-2", Name: "Sam Doe", Grade: "5", StudentCode: "STU-1002"})
	s.Links.Put(SeedParent, []string{SeedStudentID})
	s.Progress.Put(SeedStudentID+"/"+SeedCourseID, api.ChildProgress{ChildID: SeedStudentID, CourseID: SeedCourseID, CourseTitle: "Go Fundamentals", CompletedPercent: 40, AverageScore: 87.5})
	for i := range 5 {
		date := now.Add(-time.Duration(i) * day)
		status := "present"
		if i == 2 {
			status = "absent"
		}
		s.Attendance.Put(SeedStudentID+"/"+date.Format(dateLayout), api.AttendanceRecord{ChildID: SeedStudentID, Date: date, Status: status})
	}
}
