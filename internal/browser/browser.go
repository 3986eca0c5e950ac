// Package browser hands resolved URLs to the system browser.
package browser

import (
	"fmt"
	"io"

	pkgbrowser "github.com/pkg/browser"
	"github.com/quantmind-br/cargo-navigate/internal/domain"
	"github.com/quantmind-br/cargo-navigate/internal/utils"
)

// OpenFunc launches a URL
type OpenFunc func(url string) error

// Launcher opens URLs in the default browser
type Launcher struct {
	open   OpenFunc
	logger *utils.Logger
}

// LauncherOption configures a Launcher
type LauncherOption func(*Launcher)

// WithOpenFunc replaces the platform launcher. A nil fn keeps it.
func WithOpenFunc(fn OpenFunc) LauncherOption {
	return func(l *Launcher) {
		if fn != nil {
			l.open = fn
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *utils.Logger) LauncherOption {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// NewLauncher creates a Launcher backed by xdg-open, open or start
func NewLauncher(opts ...LauncherOption) *Launcher {
	l := &Launcher{
		open:   pkgbrowser.OpenURL,
		logger: utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.WithComponent("browser")
	return l
}

// Open implements domain.Opener
func (l *Launcher) Open(url string) error {
	l.logger.Debug().Str("url", url).Msg("Opening browser")

	if err := l.open(url); err != nil {
		return domain.NewLaunchFailedError(url, err)
	}
	return nil
}

// Printer writes URLs instead of launching a browser
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing one URL per line to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Open implements domain.Opener
func (p *Printer) Open(url string) error {
	if _, err := fmt.Fprintln(p.w, url); err != nil {
		return domain.NewLaunchFailedError(url, err)
	}
	return nil
}

var (
	_ domain.Opener = (*Launcher)(nil)
	_ domain.Opener = (*Printer)(nil)
)
