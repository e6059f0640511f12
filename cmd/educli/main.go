package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/edu-platform/educlient/shared/apiclient"
	"github.com/edu-platform/educlient/shared/auth"
	"github.com/edu-platform/educlient/shared/config"
	"github.com/edu-platform/educlient/shared/content"
	"github.com/edu-platform/educlient/shared/logger"
)

// globalOptions are shared by every command and handed to Run.
type globalOptions struct {
	ConfigFolder string `name:"config_folder" default:"config" help:"path to folder with configs"`
	BaseURL      string `help:"API base URL, overrides api.base_url"`
	Token        string `help:"bearer token, overrides private.yaml"`
	JSON         bool   `help:"print the response envelope as JSON instead of a table"`
	Render       bool   `help:"render markdown bodies to sanitized HTML"`
	LogLevel     string `help:"log level (debug, info, warn, error)"`

	ctx      context.Context
	out      io.Writer
	client   *apiclient.Client
	renderer *content.Renderer
}

type cli struct {
	globalOptions

	Blogs       blogsCmd       `cmd:"" help:"read blog posts"`
	Courses     coursesCmd     `cmd:"" help:"browse the course catalogue"`
	Brochures   brochuresCmd   `cmd:"" help:"list downloadable brochures"`
	Jobs        jobsCmd        `cmd:"" help:"list open positions"`
	Materials   materialsCmd   `cmd:"" help:"list course materials"`
	Assignments assignmentsCmd `cmd:"" help:"manage instructor assignments"`
	Parent      parentCmd      `cmd:"" help:"parent dashboard"`
	Forms       formsCmd       `cmd:"" help:"submit public forms"`
	Query       queryCmd       `cmd:"" help:"query string helpers"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("educli"),
		kong.Description("Command line client for the education platform API."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	g := &c.globalOptions
	if err := g.setup(ctx, stdout, stderr); err != nil {
		return err
	}
	return kctx.Run(g)
}

func (g *globalOptions) setup(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := config.Load(g.ConfigFolder)
	if err != nil {
		return err
	}

	level := cfg.Public.Log.Level
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	logger.InitializeWriter(stderr, level, cfg.Public.Log.JSON)

	api := cfg.Public.API
	if g.BaseURL != "" {
		api.BaseURL = g.BaseURL
	}
	opts := []apiclient.Option{
		apiclient.WithTimeout(api.Timeout),
		apiclient.WithUserAgent(api.UserAgent),
	}
	if api.Compression {
		opts = append(opts, apiclient.WithCompression())
	}
	if api.Metrics {
		opts = append(opts, apiclient.WithMetrics())
	}
	token := cfg.APIToken()
	if g.Token != "" {
		token = g.Token
	}
	if token != "" {
		opts = append(opts, apiclient.WithTokenSource(auth.NewExpiryChecked(auth.StaticToken(token), 0)))
	}

	g.ctx = ctx
	g.out = stdout
	g.client = apiclient.New(api.BaseURL, opts...)
	g.renderer = content.New()
	return nil
}
