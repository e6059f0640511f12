package main

import (
	"strconv"

	"github.com/edu-platform/educlient/shared/apiclient"
)

type brochuresCmd struct {
	List brochuresListCmd `cmd:"" help:"list brochures"`
}

type brochuresListCmd struct {
	pageOptions
	Category string `help:"category filter"`
}

func (l *brochuresListCmd) Run(g *globalOptions) error {
	resp, err := g.client.GetBrochures(g.ctx, apiclient.BrochureListOptions{Page: l.Page, Limit: l.Limit, Category: l.Category})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(resp.Data))
	for _, b := range resp.Data {
		rows = append(rows, []string{b.ID, b.Title, b.Category, b.FileURL})
	}
	if err := g.printTable(resp, []string{"id", "title", "category", "file"}, rows); err != nil {
		return err
	}
	g.printPagination(resp.Pagination)
	return nil
}

type jobsCmd struct {
	List jobsListCmd `cmd:"" help:"list open positions"`
}

type jobsListCmd struct {
	pageOptions
	Search   string   `help:"search term"`
	Location string   `help:"city or region"`
	Type     []string `help:"full-time, part-time, contract or internship" sep:","`
	Remote   bool     `help:"only remote positions"`
	SortBy   string   `help:"sort field"`
}

func (l *jobsListCmd) Run(g *globalOptions) error {
	opts := apiclient.JobListOptions{
		Page:     l.Page,
		Limit:    l.Limit,
		Search:   l.Search,
		Location: l.Location,
		JobTypes: l.Type,
		SortBy:   l.SortBy,
	}
	if l.Remote {
		opts.Remote = &l.Remote
	}
	resp, err := g.client.GetJobs(g.ctx, opts)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(resp.Data))
	for _, j := range resp.Data {
		rows = append(rows, []string{j.ID, j.Title, j.Location, j.JobType, strconv.FormatBool(j.Remote), formatTime(j.PostedAt)})
	}
	if err := g.printTable(resp, []string{"id", "title", "location", "type", "remote", "posted"}, rows); err != nil {
		return err
	}
	g.printPagination(resp.Pagination)
	return nil
}

type materialsCmd struct {
	List materialsListCmd `cmd:"" help:"list materials"`
}

type materialsListCmd struct {
	pageOptions
	Course string   `help:"only materials of this course"`
	Type   []string `help:"document, video, image, slides or other" sep:","`
}

func (l *materialsListCmd) Run(g *globalOptions) error {
	resp, err := g.client.GetMaterials(g.ctx, apiclient.MaterialListOptions{
		Page:     l.Page,
		Limit:    l.Limit,
		CourseID: l.Course,
		Types:    l.Type,
	})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(resp.Data))
	for _, m := range resp.Data {
		rows = append(rows, []string{m.ID, m.CourseID, m.Title, m.Type, m.URL})
	}
	if err := g.printTable(resp, []string{"id", "course", "title", "type", "url"}, rows); err != nil {
		return err
	}
	g.printPagination(resp.Pagination)
	return nil
}
