package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/NUWildHacks/guide2026/internal/calendar"
	"github.com/NUWildHacks/guide2026/internal/export"
	"github.com/NUWildHacks/guide2026/internal/links"
)

var selectionFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "export, e",
		Usage: "only the events of the named export from the config file",
	},
	&cli.StringFlag{
		Name:  "name",
		Usage: "calendar display name",
	},
}

var EventsCmd = cli.Command{
	Name:   "events",
	Usage:  "Lists the selected events",
	Flags:  selectionFlags,
	Action: listEvents,
}

var SaveCmd = cli.Command{
	Name:   "save",
	Usage:  "Saves the selected events as a calendar file",
	Flags:  selectionFlags,
	Action: saveFile,
}

var OpenCmd = cli.Command{
	Name:   "open",
	Usage:  "Adds the selected events to Google Calendar",
	Flags:  selectionFlags,
	Action: openInCalendar,
}

var LinkCmd = cli.Command{
	Name:   "link",
	Usage:  "Prints the Google Calendar link for the selected events",
	Flags:  selectionFlags,
	Action: printLink,
}

var InspectCmd = cli.Command{
	Name:      "inspect",
	Usage:     "Lists the events in a calendar file",
	ArgsUsage: "FILE",
	Action:    inspectFile,
}

func listEvents(c *cli.Context) error {
	a, err := newEnv(c)
	if err != nil {
		return err
	}
	defer a.Close()

	sel, err := a.selectEvents()
	if err != nil {
		return err
	}
	if len(sel.events) == 0 {
		fmt.Println("nothing to export")
		return nil
	}

	fmt.Printf("%s (%d events)\n\n", sel.name, len(sel.events))
	printEvents(os.Stdout, sel.events)
	fmt.Printf("\n%s\n", export.Hint(len(sel.events)))
	return nil
}

func saveFile(c *cli.Context) error {
	a, err := newEnv(c)
	if err != nil {
		return err
	}
	defer a.Close()

	sel, err := a.selectEvents()
	if err != nil {
		return err
	}
	if len(sel.events) == 0 {
		fmt.Println("nothing to export")
		return nil
	}

	return a.exporter(sel.name).SaveFile(sel.events)
}

func openInCalendar(c *cli.Context) error {
	a, err := newEnv(c)
	if err != nil {
		return err
	}
	defer a.Close()

	sel, err := a.selectEvents()
	if err != nil {
		return err
	}
	if len(sel.events) == 0 {
		fmt.Println("nothing to export")
		return nil
	}

	return a.exporter(sel.name).OpenInCalendar(sel.events)
}

func printLink(c *cli.Context) error {
	a, err := newEnv(c)
	if err != nil {
		return err
	}
	defer a.Close()

	sel, err := a.selectEvents()
	if err != nil {
		return err
	}
	if len(sel.events) == 0 {
		fmt.Println("nothing to export")
		return nil
	}

	fmt.Println(links.ForEvents(sel.events))
	return nil
}

func inspectFile(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("inspect: missing FILE argument")
	}

	events, name, err := calendar.ReadICS(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d events)\n\n", name, len(events))
	printEvents(os.Stdout, events)
	return nil
}

func printEvents(w io.Writer, events []calendar.Event) {
	for _, line := range formatEventList(events, time.Now()) {
		fmt.Fprintln(w, line)
	}
}
