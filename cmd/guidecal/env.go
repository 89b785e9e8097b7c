package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/NUWildHacks/guide2026/internal/calendar"
	"github.com/NUWildHacks/guide2026/internal/config"
	"github.com/NUWildHacks/guide2026/internal/export"
	"github.com/NUWildHacks/guide2026/internal/filter"
	"github.com/NUWildHacks/guide2026/internal/notify"
	"github.com/NUWildHacks/guide2026/internal/schedule"
	"github.com/NUWildHacks/guide2026/internal/sink"
)

// env holds what a command needs: configuration, the selected export and
// the desktop connections it opened.
type env struct {
	cfg      *config.Config
	ctx      *cli.Context
	sink     *sink.Sink
	informer export.Informer
	closers  []io.Closer
}

func newEnv(c *cli.Context) (*env, error) {
	var cfg *config.Config
	var err error
	if path := c.GlobalString("config"); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if path := c.GlobalString("schedule"); path != "" {
		cfg.Schedule = path
	}

	e := &env{cfg: cfg, ctx: c}
	if err := e.setupSink(); err != nil {
		e.Close()
		return nil, err
	}
	e.setupInformer()
	return e, nil
}

func (e *env) setupSink() error {
	var saver sink.Saver = sink.NewDir(e.cfg.Output.Dir)
	switch out := e.cfg.Output; {
	case out.CalDAV.URL != "":
		password, err := out.CalDAV.GetPassword()
		if err != nil {
			return fmt.Errorf("get caldav password: %w", err)
		}
		saver, err = sink.NewCalDAV(out.CalDAV.URL, out.CalDAV.Dir, out.CalDAV.Username, password, out.CalDAV.Timeout)
		if err != nil {
			return err
		}
	case out.WebDAV.URL != "":
		password, err := out.WebDAV.GetPassword()
		if err != nil {
			return fmt.Errorf("get webdav password: %w", err)
		}
		saver, err = sink.NewWebDAV(out.WebDAV.URL, out.WebDAV.Dir, out.WebDAV.Username, password, out.WebDAV.Timeout)
		if err != nil {
			return err
		}
	}

	var opener sink.Opener
	switch e.cfg.Open.Method {
	case config.OpenBrowser:
		opener = sink.Browser()
	case config.OpenXDG:
		opener = sink.XDGOpen()
	case config.OpenPrint:
		opener = sink.Print(os.Stdout)
	case config.OpenPortal:
		portal, err := sink.NewPortal()
		if err != nil {
			slog.Warn("desktop portal unavailable, using browser", "error", err)
			opener = sink.Browser()
			break
		}
		e.closers = append(e.closers, portal)
		opener = portal
	default:
		return fmt.Errorf("unknown open method %q", e.cfg.Open.Method)
	}

	e.sink = sink.New(saver, opener)
	return nil
}

func (e *env) setupInformer() {
	e.informer = printInformer{w: os.Stdout}
	if !e.cfg.Notifications.Enabled {
		return
	}

	n, err := notify.New("WildHacks Guide")
	if err != nil {
		slog.Warn("failed to initialize notifications", "error", err)
		return
	}
	e.closers = append(e.closers, n)
	e.informer = n
}

// Close releases the desktop connections.
func (e *env) Close() error {
	for _, c := range e.closers {
		if err := c.Close(); err != nil {
			slog.Debug("close failed", "error", err)
		}
	}
	return nil
}

type selection struct {
	name   string
	events []calendar.Event
}

// selectEvents loads the schedule and applies the export named on the command
// line, if any.
func (e *env) selectEvents() (selection, error) {
	var s *schedule.Schedule
	var err error
	if e.cfg.Schedule != "" {
		s, err = schedule.Load(e.cfg.Schedule)
	} else {
		s, err = schedule.Default()
	}
	if err != nil {
		return selection{}, err
	}

	sel := selection{
		name:   e.cfg.Calendar.Name,
		events: s.Events(),
	}

	if name := e.ctx.String("export"); name != "" {
		exp, ok := e.cfg.Export(name)
		if !ok {
			return selection{}, fmt.Errorf("no export named %q in config", name)
		}
		f, err := filter.New(exp.Filters)
		if err != nil {
			return selection{}, fmt.Errorf("export %s: %w", exp.Name, err)
		}
		sel.events = f.Apply(sel.events)
		if exp.CalendarName != "" {
			sel.name = exp.CalendarName
		}
	}

	if name := e.ctx.String("name"); name != "" {
		sel.name = name
	}

	slog.Debug("selected events", "calendar", sel.name, "count", len(sel.events))
	return sel, nil
}

func (e *env) exporter(name string) *export.Exporter {
	gen := &calendar.Generator{
		ProductID: e.cfg.Calendar.ProductID,
		IDs:       calendar.NewRandomIDs(e.cfg.Calendar.UIDDomain),
		Now:       time.Now,
	}
	return export.New(e.sink,
		export.WithCalendarName(name),
		export.WithBaseURL(e.cfg.Calendar.BaseURL),
		export.WithGenerator(gen),
		export.WithInformer(e.informer),
	)
}

// printInformer shows import instructions on the terminal.
type printInformer struct {
	w io.Writer
}

func (p printInformer) Inform(summary, body string) error {
	_, err := fmt.Fprintf(p.w, "%s\n%s\n", summary, body)
	return err
}
