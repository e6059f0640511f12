package main

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/apiclient"
)

const defaultAttendanceDays = 30

type parentCmd struct {
	Overview parentOverviewCmd `cmd:"" help:"dashboard, children and attendance in one view"`
}

type parentOverviewCmd struct {
	Child string `help:"child id to show attendance for"`
	From  string `help:"attendance start date (YYYY-MM-DD), default 30 days ago"`
	To    string `help:"attendance end date (YYYY-MM-DD), default today"`
}

type parentOverview struct {
	Dashboard  api.ParentDashboard    `json:"dashboard"`
	Children   []api.Child            `json:"children"`
	Attendance []api.AttendanceRecord `json:"attendance,omitempty"`
}

func (p *parentOverviewCmd) dateRange(now time.Time) (apiclient.DateRange, error) {
	r := apiclient.DateRange{From: now.AddDate(0, 0, -defaultAttendanceDays), To: now}
	for _, d := range []struct {
		raw string
		dst *time.Time
	}{{p.From, &r.From}, {p.To, &r.To}} {
		if d.raw == "" {
			continue
		}
		t, err := time.Parse(time.DateOnly, d.raw)
		if err != nil {
			return r, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", d.raw)
		}
		*d.dst = t
	}
	return r, nil
}

// Run fetches the three views concurrently. The first failure cancels the rest.
func (p *parentOverviewCmd) Run(g *globalOptions) error {
	dates, err := p.dateRange(time.Now().UTC())
	if err != nil {
		return err
	}

	var out parentOverview
	eg, ctx := errgroup.WithContext(g.ctx)
	eg.Go(func() error {
		resp, err := g.client.GetParentDashboard(ctx)
		if err != nil {
			return err
		}
		out.Dashboard = resp.Data
		return nil
	})
	eg.Go(func() error {
		resp, err := g.client.GetChildren(ctx)
		if err != nil {
			return err
		}
		out.Children = resp.Data
		return nil
	})
	if p.Child != "" {
		eg.Go(func() error {
			resp, err := g.client.GetChildAttendance(ctx, p.Child, dates)
			if err != nil {
				return err
			}
			out.Attendance = resp.Data
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if g.JSON {
		return g.printJSON(out)
	}
	return printOverview(g, out)
}

func printOverview(g *globalOptions, o parentOverview) error {
	children := make([][]string, 0, len(o.Children))
	for _, c := range o.Children {
		children = append(children, []string{c.ID, c.Name, c.Grade, c.StudentCode})
	}
	fmt.Fprintln(g.out, "children")
	if err := g.printTable(o, []string{"id", "name", "grade", "student code"}, children); err != nil {
		return err
	}

	grades := make([][]string, 0, len(o.Dashboard.RecentGrades))
	for _, p := range o.Dashboard.RecentGrades {
		grades = append(grades, []string{p.ChildID, p.CourseTitle, formatFloat(p.CompletedPercent) + "%", formatFloat(p.AverageScore)})
	}
	fmt.Fprintln(g.out, "progress")
	if err := g.printTable(o, []string{"child", "course", "completed", "average"}, grades); err != nil {
		return err
	}

	deadlines := make([][]string, 0, len(o.Dashboard.UpcomingDeadlines))
	for _, a := range o.Dashboard.UpcomingDeadlines {
		deadlines = append(deadlines, []string{a.CourseID, a.Title, formatTime(a.DueDate)})
	}
	fmt.Fprintln(g.out, "upcoming deadlines")
	if err := g.printTable(o, []string{"course", "assignment", "due"}, deadlines); err != nil {
		return err
	}

	if len(o.Attendance) > 0 {
		absent := 0
		rows := make([][]string, 0, len(o.Attendance))
		for _, a := range o.Attendance {
			if a.Status == "absent" {
				absent++
			}
			rows = append(rows, []string{formatTime(a.Date), a.Status, a.Note})
		}
		fmt.Fprintf(g.out, "attendance (%d of %d days absent)\n", absent, len(o.Attendance))
		return g.printTable(o, []string{"date", "status", "note"}, rows)
	}
	return nil
}
