package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/dmitrymomot/sendbox/internal/demo"
	"github.com/dmitrymomot/sendbox/pkg/cache"
	"github.com/dmitrymomot/sendbox/pkg/config"
	"github.com/dmitrymomot/sendbox/pkg/logger"
	"github.com/dmitrymomot/sendbox/pkg/mailer"
	mandrillmail "github.com/dmitrymomot/sendbox/pkg/mailer/mandrill"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

const usage = `Sendbox runs one transactional email demo per invocation.

Usage:
  sendbox list                  show the demo catalog
  sendbox run <name> [-p k=v]   run a demo and print its report

Run flags:
  -p name=value   demo parameter, repeatable

Configuration comes from the environment (MANDRILL_KEY, SENDER_EMAIL,
RECIPIENT_EMAIL, ...); a .env file in the working directory is loaded
automatically.
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var cfg Config
	config.MustLoad(&cfg)

	// The report owns stdout; logs go to stderr as text.
	cfg.Log.Format = logger.FormatText
	log := logger.New(cfg.Log)

	registry := demo.Catalog()

	switch args[0] {
	case "list":
		printCatalog(registry)
	case "run":
		if err := runDemo(cfg, log, registry, args[1:]); err != nil {
			log.Error("run failed", "error", err.Error())
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
}

func printCatalog(registry *demo.Registry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	for _, d := range registry.List() {
		fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Summary)
	}
	_ = w.Flush()
}

func runDemo(cfg Config, log *slog.Logger, registry *demo.Registry, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	params := paramsFlag{}
	fs.Var(&params, "p", "demo parameter as name=value; repeatable")

	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		fs.Usage()
		os.Exit(2)
	}
	name := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	client, err := mandrill.New(cfg.Mandrill)
	if err != nil {
		return err
	}

	mem := cache.NewMemory[[]mandrill.TemplateInfo]()
	defer func() { _ = mem.Close() }()

	env := &demo.Env{
		Builder:       mailer.NewBuilder(cfg.Sender, log),
		Sender:        mandrillmail.New(client),
		Client:        client,
		Composer:      demo.NewComposer(cfg.Content),
		Listing:       demo.NewListing(client, mem, cfg.CacheTTL),
		AttachmentDir: cfg.AttachmentDir,
		Log:           log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := registry.Run(ctx, env, name, params.values)
	if rep == nil {
		fmt.Fprintf(os.Stderr, "unknown demo %q; run `sendbox list` for the catalog\n", name)
		os.Exit(2)
	}

	fmt.Print(rep.String())
	return err
}

// paramsFlag collects repeated -p name=value pairs.
type paramsFlag struct {
	values demo.Params
}

func (f *paramsFlag) String() string {
	if len(f.values) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(f.values))
	for name, value := range f.values {
		pairs = append(pairs, name+"="+value)
	}
	return strings.Join(pairs, ",")
}

func (f *paramsFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	if f.values == nil {
		f.values = demo.Params{}
	}
	f.values[name] = value
	return nil
}
