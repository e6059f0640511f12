package main

import (
	"fmt"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/apiclient"
)

type blogsCmd struct {
	List   blogsListCmd   `cmd:"" help:"list published posts"`
	Get    blogsGetCmd    `cmd:"" help:"show one post"`
	Search blogsSearchCmd `cmd:"" help:"full text search"`
}

type pageOptions struct {
	Page  int `help:"page number, 1-based" default:"1"`
	Limit int `help:"items per page" default:"10"`
}

type blogsListCmd struct {
	pageOptions
	Tags     []string `help:"match any of these tags" sep:","`
	Category string   `help:"category filter"`
	Search   string   `help:"search term"`
	Author   string   `help:"author id"`
}

func (l *blogsListCmd) Run(g *globalOptions) error {
	resp, err := g.client.GetAllBlogs(g.ctx, apiclient.BlogListOptions{
		Page:     l.Page,
		Limit:    l.Limit,
		Tags:     l.Tags,
		Category: l.Category,
		Search:   l.Search,
		Author:   l.Author,
	})
	if err != nil {
		return err
	}
	return printBlogs(g, resp)
}

type blogsSearchCmd struct {
	pageOptions
	Query string `arg:"" help:"search term"`
}

func (s *blogsSearchCmd) Run(g *globalOptions) error {
	resp, err := g.client.SearchBlogs(g.ctx, s.Query, s.Page, s.Limit)
	if err != nil {
		return err
	}
	return printBlogs(g, resp)
}

func printBlogs(g *globalOptions, resp *api.BlogListResponse) error {
	rows := make([][]string, 0, len(resp.Data))
	for _, b := range resp.Data {
		rows = append(rows, []string{b.ID, b.Title, b.Slug, b.Category, join(b.Tags), formatTime(b.PublishedAt)})
	}
	if err := g.printTable(resp, []string{"id", "title", "slug", "category", "tags", "published"}, rows); err != nil {
		return err
	}
	g.printPagination(resp.Pagination)
	return nil
}

type blogsGetCmd struct {
	ID   string `arg:"" help:"post id, or slug with --slug"`
	Slug bool   `help:"treat the argument as a slug"`
}

func (c *blogsGetCmd) Run(g *globalOptions) error {
	var (
		resp *api.BlogResponse
		err  error
	)
	if c.Slug {
		resp, err = g.client.GetBlogBySlug(g.ctx, c.ID)
	} else {
		resp, err = g.client.GetBlog(g.ctx, c.ID)
	}
	if err != nil {
		return err
	}
	if g.JSON {
		return g.printJSON(resp)
	}

	b := resp.Data
	text, err := g.body(b.Content)
	if err != nil {
		return fmt.Errorf("failed to render post: %w", err)
	}
	fmt.Fprintf(g.out, "%s\n%s | %s | %s\n\n%s\n", b.Title, b.Author, formatTime(b.PublishedAt), join(b.Tags), text)
	return nil
}
