package main

import (
	"github.com/edu-platform/educlient/shared/apiclient"
)

type assignmentsCmd struct {
	List assignmentsListCmd `cmd:"" help:"list your assignments (instructor token required)"`
}

type assignmentsListCmd struct {
	pageOptions
	Course    string `help:"course id"`
	Status    string `help:"draft, published or closed"`
	SortOrder string `help:"asc or desc" default:"desc"`
}

func (l *assignmentsListCmd) Run(g *globalOptions) error {
	resp, err := g.client.GetInstructorAssignments(g.ctx, apiclient.AssignmentListOptions{
		Page:      l.Page,
		Limit:     l.Limit,
		CourseID:  l.Course,
		Status:    l.Status,
		SortOrder: l.SortOrder,
	})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(resp.Data))
	for _, a := range resp.Data {
		rows = append(rows, []string{a.ID, a.CourseID, a.Title, a.Status, formatFloat(a.MaxScore), formatTime(a.DueDate)})
	}
	if err := g.printTable(resp, []string{"id", "course", "title", "status", "max score", "due"}, rows); err != nil {
		return err
	}
	g.printPagination(resp.Pagination)
	return nil
}
