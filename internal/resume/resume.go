// Package resume copies the portfolio résumé to a location the user picks.
package resume

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
)

var ErrNoSource = errors.New("no résumé source configured")

// Dialog asks the user for a destination. It returns zenity.ErrCanceled when
// the user backs out.
type Dialog func(suggested string) (string, error)

// SaveDialog is the native save-file dialog.
func SaveDialog(suggested string) (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save Résumé"),
		zenity.Filename(suggested),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PDF",
			Patterns: []string{"*.pdf"},
		}},
	)
}

type Downloader struct {
	Source string // local path or http(s) URL
	Dialog Dialog
	Client *http.Client
}

func New(source string) *Downloader {
	return &Downloader{Source: source, Dialog: SaveDialog, Client: http.DefaultClient}
}

// Save asks for a destination and writes the résumé there. It returns the
// written path, or "" with a nil error when the user cancels.
func (d *Downloader) Save(ctx context.Context) (string, error) {
	if d.Source == "" {
		return "", ErrNoSource
	}

	dst, err := d.Dialog(d.filename())
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("save dialog failed: %w", err)
	}

	src, err := d.open(ctx)
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := writeFile(dst, src); err != nil {
		return "", err
	}
	return dst, nil
}

func (d *Downloader) remote() bool {
	return strings.HasPrefix(d.Source, "http://") || strings.HasPrefix(d.Source, "https://")
}

func (d *Downloader) filename() string {
	name := filepath.Base(d.Source)
	if d.remote() {
		u, err := url.Parse(d.Source)
		if err != nil {
			return "resume.pdf"
		}
		name = path.Base(u.Path)
	}
	if !strings.Contains(name, ".") || strings.HasPrefix(name, ".") {
		return "resume.pdf"
	}
	return name
}

func (d *Downloader) open(ctx context.Context) (io.ReadCloser, error) {
	if !d.remote() {
		f, err := os.Open(d.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to open résumé: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid résumé URL: %w", err)
	}
	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch résumé: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch résumé: %s", resp.Status)
	}
	return resp.Body, nil
}

// writeFile copies src to a temp file next to dst and renames it into place,
// so a failed download never leaves a truncated résumé behind.
func writeFile(dst string, src io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".resume-*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write résumé: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write résumé: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("failed to move résumé into place: %w", err)
	}
	return nil
}
