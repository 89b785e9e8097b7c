package sink

import (
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/browser"
)

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

// Open implements Opener.
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// Browser opens URLs in the default web browser.
func Browser() Opener {
	// Keep the browser launcher's own output off our terminal.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return OpenerFunc(browser.OpenURL)
}

// XDGOpen opens URLs with xdg-open.
func XDGOpen() Opener {
	return OpenerFunc(func(url string) error {
		return exec.Command("xdg-open", url).Start()
	})
}

// Print writes URLs to w instead of opening them, for headless use.
func Print(w io.Writer) Opener {
	return OpenerFunc(func(url string) error {
		_, err := fmt.Fprintln(w, url)
		return err
	})
}

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.OpenURI"
)

// Portal opens URLs through the xdg-desktop-portal OpenURI interface on the
// session bus, which also works from inside a sandbox.
type Portal struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// NewPortal connects to the session bus.
func NewPortal() (*Portal, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect to session bus: %w", err)
	}

	return &Portal{
		conn: conn,
		obj:  conn.Object(portalDest, portalPath),
	}, nil
}

// Close closes the D-Bus connection.
func (p *Portal) Close() error {
	return p.conn.Close()
}

// Open asks the portal to open url with the user's preferred handler.
func (p *Portal) Open(url string) error {
	call := p.obj.Call(
		portalInterface+".OpenURI",
		0,
		"",                        // parent_window
		url,                       // uri
		map[string]dbus.Variant{}, // options
	)
	if call.Err != nil {
		return fmt.Errorf("open uri: %w", call.Err)
	}

	var handle dbus.ObjectPath
	if err := call.Store(&handle); err != nil {
		return fmt.Errorf("get request handle: %w", err)
	}

	slog.Debug("opened uri via portal", "url", url, "handle", handle)
	return nil
}
