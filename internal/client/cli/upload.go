package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dkravets/internhub/internal/client/models"
	"github.com/dkravets/internhub/internal/client/services"
)

// readDocument loads path into a Document. Both the argument path and the
// interactive prompt funnel through the same intake validation later, so
// this does no checking of its own beyond reading the file.
func (a *App) readDocument(path string) (models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	// mime.TypeByExtension may append parameters ("text/plain; charset=utf-8")
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	return models.Document{
		Name:     filepath.Base(path),
		MimeType: mimeType,
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}

func (a *App) resolvePath(args []string) (string, bool) {
	if len(args) > 0 {
		return args[0], true
	}
	path, err := GetSimpleText(a.reader, "Enter path to resume file", a.out)
	if err != nil || path == "" {
		fmt.Fprintln(a.out, "No file selected")
		return "", false
	}
	return path, true
}

// upload runs the full parse pipeline with live stage feedback and renders
// the resulting extraction.
func (a *App) upload(ctx context.Context, args []string) {
	path, ok := a.resolvePath(args)
	if !ok {
		return
	}

	doc, err := a.readDocument(path)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	if err := services.ValidateDocument(doc); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	a.pipeline.SetObserver(a.printStageProgress())
	defer a.pipeline.SetObserver(nil)

	extraction, err := a.pipeline.Submit(ctx, doc)
	if err != nil {
		fmt.Fprintln(a.out, "Upload failed:", err)
		return
	}

	fmt.Fprintln(a.out, "Resume processed successfully")
	a.renderExtraction(extraction)
}

// storeOnly uses the simple upload flow: the document is stored and parsed
// in the background without returning structured data.
func (a *App) storeOnly(ctx context.Context, args []string) {
	path, ok := a.resolvePath(args)
	if !ok {
		return
	}

	doc, err := a.readDocument(path)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	if err := services.ValidateDocument(doc); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	if err := a.api.Store(ctx, doc); err != nil {
		fmt.Fprintln(a.out, "Upload failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Resume uploaded")
}

// printStageProgress returns an observer that prints each stage label once,
// when the stage becomes active.
func (a *App) printStageProgress() services.StageObserver {
	var mu sync.Mutex
	printed := make(map[string]bool)
	return func(stages []models.Stage, active int) {
		if active == models.NoActiveStage || active >= len(stages) {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		stage := stages[active]
		if printed[stage.Name] {
			return
		}
		printed[stage.Name] = true
		fmt.Fprintf(a.out, "  [%d/%d] %s...\n", active+1, len(stages), stage.Label)
	}
}
