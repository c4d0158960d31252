// Package ops applies generated names to files on disk.
package ops

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmccarthy619/file-name-generator/internal/naming"
)

type RenameInput struct {
	Source  string
	Request naming.Request
	DryRun  bool
}

type RenamePlanner struct{}

func NewRenamePlanner() *RenamePlanner {
	return &RenamePlanner{}
}

type Action struct {
	From    string
	To      string
	Reason  string
	Applied bool
	Error   string
}

type Result struct {
	Title   string
	Actions []Action
	DryRun  bool
}

func (r Result) Print(w io.Writer) {
	fmt.Fprintln(w, r.Title)
	for _, action := range r.Actions {
		status := "preview"
		if action.Applied {
			status = "applied"
		}
		if action.Error != "" {
			status = "error"
		}
		fmt.Fprintf(w, "- [%s] %s -> %s", status, action.From, action.To)
		if action.Reason != "" {
			fmt.Fprintf(w, " (%s)", action.Reason)
		}
		if action.Error != "" {
			fmt.Fprintf(w, " [error: %s]", action.Error)
		}
		fmt.Fprintln(w)
	}
	if len(r.Actions) == 0 {
		fmt.Fprintln(w, "- nothing to do")
	}
}

// Failed reports whether any action recorded an error.
func (r Result) Failed() bool {
	for _, action := range r.Actions {
		if action.Error != "" {
			return true
		}
	}
	return false
}

// Plan renames in.Source to the generated name, keeping its extension and
// directory. Validation failures are returned as *naming.ValidationError.
func (p *RenamePlanner) Plan(ctx context.Context, in RenameInput) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	name, err := naming.Generate(in.Request)
	if err != nil {
		return Result{}, err
	}
	if err := requireFile(in.Source); err != nil {
		return Result{}, err
	}

	target, err := targetPath(filepath.Dir(in.Source), name, filepath.Ext(in.Source))
	if err != nil {
		return Result{}, err
	}
	result := Result{Title: "Rename plan", DryRun: in.DryRun}
	if filepath.Clean(target) == filepath.Clean(in.Source) {
		return result, nil
	}
	action := Action{From: in.Source, To: target, Reason: "generated name"}
	if !in.DryRun {
		move(&action)
	}
	result.Actions = append(result.Actions, action)
	return result, nil
}

// targetPath joins dir and the generated file name. Names that are not a
// single path element are refused so a move never leaves dir.
func targetPath(dir, name, ext string) (string, error) {
	file := name + ext
	if file == "" || file == "." || file == ".." || strings.ContainsAny(file, `/\`) || filepath.Base(file) != file {
		return "", fmt.Errorf("generated name %q is not a plain file name", file)
	}
	return filepath.Join(dir, file), nil
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// move performs the action in place and never overwrites an existing file.
func move(action *Action) {
	if _, err := os.Stat(action.To); err == nil {
		action.Error = "target already exists"
		return
	} else if !errors.Is(err, os.ErrNotExist) {
		action.Error = err.Error()
		return
	}
	if err := os.MkdirAll(filepath.Dir(action.To), 0o755); err != nil {
		action.Error = err.Error()
		return
	}
	if err := os.Rename(action.From, action.To); err != nil {
		action.Error = err.Error()
		return
	}
	action.Applied = true
}
