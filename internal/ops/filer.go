package ops

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/dmccarthy619/file-name-generator/internal/naming"
)

// CategoryLister is the part of the taxonomy store the filer needs.
type CategoryLister interface {
	HasDocument(process, document string) bool
	ListDescriptions(process, document string) []string
}

type FileInput struct {
	Source   string
	Root     string
	Process  string
	Document string
	Request  naming.Request
	DryRun   bool
}

// Filer moves a document into the case folder for its process and document
// category, <root>/<process>/<document>/<generated name><ext>.
type Filer struct {
	taxonomy CategoryLister
}

func NewFiler(l CategoryLister) *Filer {
	return &Filer{taxonomy: l}
}

func (f *Filer) Plan(ctx context.Context, in FileInput) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	process := naming.NormalizeField(in.Process)
	document := naming.NormalizeField(in.Document)
	if !f.taxonomy.HasDocument(process, document) {
		return Result{}, fmt.Errorf("unknown document category %q for process %q", document, process)
	}
	description := naming.NormalizeField(in.Request.Description)
	if !slices.Contains(f.taxonomy.ListDescriptions(process, document), description) {
		return Result{}, fmt.Errorf("description %q is not listed under (%s, %s)", description, process, document)
	}

	name, err := naming.Generate(in.Request)
	if err != nil {
		return Result{}, err
	}
	if err := requireFile(in.Source); err != nil {
		return Result{}, err
	}

	root := in.Root
	if root == "" {
		root = "."
	}
	target, err := targetPath(filepath.Join(root, process, document), name, filepath.Ext(in.Source))
	if err != nil {
		return Result{}, err
	}
	action := Action{
		From:   in.Source,
		To:     target,
		Reason: process + "/" + document,
	}
	result := Result{Title: "Filing plan", DryRun: in.DryRun}
	if !in.DryRun {
		move(&action)
	}
	result.Actions = append(result.Actions, action)
	return result, nil
}
