package main

import (
	"fmt"

	"github.com/edu-platform/educlient/shared/apiclient"
)

type coursesCmd struct {
	List coursesListCmd `cmd:"" help:"list courses"`
	Get  coursesGetCmd  `cmd:"" help:"show one course"`
}

type coursesListCmd struct {
	pageOptions
	Category  string   `help:"category filter"`
	Level     string   `help:"beginner, intermediate or advanced"`
	Search    string   `help:"search term"`
	Tags      []string `help:"match any of these tags" sep:","`
	SortBy    string   `help:"title, price, rating or created_at"`
	SortOrder string   `help:"asc or desc" default:"desc"`
	Free      bool     `help:"only free courses" xor:"price"`
	Paid      bool     `help:"only paid courses" xor:"price"`

	MinPrice float64 `help:"drop courses below this price after fetching"`
	MaxPrice float64 `help:"drop courses above this price after fetching, 0 means no limit"`
}

func (l *coursesListCmd) isFree() *bool {
	switch {
	case l.Free:
		return &l.Free
	case l.Paid:
		free := false
		return &free
	}
	return nil
}

func (l *coursesListCmd) priceFilter() apiclient.CourseFilter {
	var f apiclient.CourseFilter
	if l.MinPrice > 0 {
		f.MinPrice = &l.MinPrice
	}
	if l.MaxPrice > 0 {
		f.MaxPrice = &l.MaxPrice
	}
	return f
}

func (l *coursesListCmd) Run(g *globalOptions) error {
	resp, err := g.client.GetCourses(g.ctx, apiclient.CourseListOptions{
		Page:      l.Page,
		Limit:     l.Limit,
		Category:  l.Category,
		Level:     l.Level,
		Search:    l.Search,
		Tags:      l.Tags,
		SortBy:    l.SortBy,
		SortOrder: l.SortOrder,
		IsFree:    l.isFree(),
	})
	if err != nil {
		return err
	}
	// the backend has no price range filter
	resp.Data = apiclient.FilterCourses(resp.Data, l.priceFilter())

	rows := make([][]string, 0, len(resp.Data))
	for _, c := range resp.Data {
		price := formatFloat(c.Price)
		if c.IsFree {
			price = "free"
		}
		rows = append(rows, []string{c.ID, c.Title, c.Category, c.Level, price, formatFloat(c.Rating), join(c.Tags)})
	}
	if err := g.printTable(resp, []string{"id", "title", "category", "level", "price", "rating", "tags"}, rows); err != nil {
		return err
	}
	g.printPagination(resp.Pagination)
	return nil
}

type coursesGetCmd struct {
	ID   string `arg:"" help:"course id, or slug with --slug"`
	Slug bool   `help:"treat the argument as a slug"`
}

func (c *coursesGetCmd) Run(g *globalOptions) error {
	get := g.client.GetCourse
	if c.Slug {
		get = g.client.GetCourseBySlug
	}
	resp, err := get(g.ctx, c.ID)
	if err != nil {
		return err
	}
	if g.JSON {
		return g.printJSON(resp)
	}

	course := resp.Data
	text, err := g.body(course.Description)
	if err != nil {
		return fmt.Errorf("failed to render course: %w", err)
	}
	fmt.Fprintf(g.out, "%s (%s, %s)\n%d enrolled, rating %s\n\n%s\n", course.Title, course.Category, course.Level, course.Enrolled, formatFloat(course.Rating), text)
	return nil
}
