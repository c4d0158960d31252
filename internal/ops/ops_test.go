package ops

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmccarthy619/file-name-generator/internal/naming"
	"github.com/dmccarthy619/file-name-generator/internal/taxonomy"
)

func passRequest() naming.Request {
	return naming.Request{Person: "Ast1", Description: "National-Pass", DateSubmitted: "2024.01.15", AdditionalInfo: "Seite 1"}
}

func writeScan(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "scan0001.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))
	return path
}

func TestRenameDryRun(t *testing.T) {
	dir := t.TempDir()
	src := writeScan(t, dir)

	res, err := NewRenamePlanner().Plan(context.Background(), RenameInput{Source: src, Request: passRequest(), DryRun: true})
	require.NoError(t, err)
	require.Len(t, res.Actions, 1)
	assert.Equal(t, filepath.Join(dir, "Ast1_National-Pass_20240115_Seite-1.pdf"), res.Actions[0].To)
	assert.False(t, res.Actions[0].Applied)
	assert.FileExists(t, src)
}

func TestRenameApplies(t *testing.T) {
	dir := t.TempDir()
	src := writeScan(t, dir)

	res, err := NewRenamePlanner().Plan(context.Background(), RenameInput{Source: src, Request: passRequest()})
	require.NoError(t, err)
	require.Len(t, res.Actions, 1)
	assert.True(t, res.Actions[0].Applied)
	assert.False(t, res.Failed())
	assert.NoFileExists(t, src)
	assert.FileExists(t, res.Actions[0].To)
}

func TestRenameRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := writeScan(t, dir)
	taken := filepath.Join(dir, "Ast1_National-Pass_20240115_Seite-1.pdf")
	require.NoError(t, os.WriteFile(taken, []byte("other"), 0o644))

	res, err := NewRenamePlanner().Plan(context.Background(), RenameInput{Source: src, Request: passRequest()})
	require.NoError(t, err)
	assert.True(t, res.Failed())
	assert.Equal(t, "target already exists", res.Actions[0].Error)
	assert.FileExists(t, src)

	data, err := os.ReadFile(taken)
	require.NoError(t, err)
	assert.Equal(t, "other", string(data))
}

func TestRenameAlreadyNamed(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Ast1_National-Pass_20240115_Seite-1.pdf")
	require.NoError(t, os.WriteFile(src, nil, 0o644))

	res, err := NewRenamePlanner().Plan(context.Background(), RenameInput{Source: src, Request: passRequest()})
	require.NoError(t, err)
	assert.Empty(t, res.Actions)
}

func TestRenameValidationError(t *testing.T) {
	dir := t.TempDir()
	src := writeScan(t, dir)
	req := passRequest()
	req.AdditionalInfo = "Seite#1"

	_, err := NewRenamePlanner().Plan(context.Background(), RenameInput{Source: src, Request: req})
	verr, ok := naming.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, naming.CodeInvalidAdditionalInfo, verr.Code)
}

func TestRenameStaysInSourceDirectory(t *testing.T) {
	base := t.TempDir()
	in := filepath.Join(base, "in")
	require.NoError(t, os.MkdirAll(in, 0o755))
	src := writeScan(t, in)
	req := naming.Request{Person: "../../out/Ast1", Description: "EAT", DateSubmitted: "2024.01.01"}

	res, err := NewRenamePlanner().Plan(context.Background(), RenameInput{Source: src, Request: req})
	verr, ok := naming.AsValidationError(err)
	require.True(t, ok, "err %v", err)
	assert.Equal(t, naming.CodeInvalidNameField, verr.Code)
	assert.Empty(t, res.Actions)
	assert.FileExists(t, src)
	assert.NoDirExists(t, filepath.Join(base, "out"))
}

func TestTargetPathRefusesNestedNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"../x", "a/b", `a\b`, "..", ""} {
		_, err := targetPath(dir, name, "")
		assert.Error(t, err, "name %q", name)
	}

	got, err := targetPath(dir, "Ast1_EAT_20240101", ".pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Ast1_EAT_20240101.pdf"), got)
}

func TestRenameRejectsDirectory(t *testing.T) {
	_, err := NewRenamePlanner().Plan(context.Background(), RenameInput{Source: t.TempDir(), Request: passRequest()})
	require.Error(t, err)
}

func TestRenameHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRenamePlanner().Plan(ctx, RenameInput{Source: "x", Request: passRequest()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFilerMovesIntoCaseFolder(t *testing.T) {
	dir := t.TempDir()
	src := writeScan(t, dir)
	root := filepath.Join(dir, "akte")

	filer := NewFiler(taxonomy.NewDefaultStore())
	res, err := filer.Plan(context.Background(), FileInput{
		Source:   src,
		Root:     root,
		Process:  "001_Hauptverfahren",
		Document: "AAA_Identitat",
		Request:  passRequest(),
	})
	require.NoError(t, err)
	require.Len(t, res.Actions, 1)

	want := filepath.Join(root, "001_Hauptverfahren", "AAA_Identitat", "Ast1_National-Pass_20240115_Seite-1.pdf")
	assert.Equal(t, want, res.Actions[0].To)
	assert.True(t, res.Actions[0].Applied)
	assert.FileExists(t, want)
}

func TestFilerDryRunLeavesFile(t *testing.T) {
	dir := t.TempDir()
	src := writeScan(t, dir)

	res, err := NewFiler(taxonomy.NewDefaultStore()).Plan(context.Background(), FileInput{
		Source: src, Root: dir, Process: "001_Hauptverfahren", Document: "AAA_Identitat", Request: passRequest(), DryRun: true,
	})
	require.NoError(t, err)
	assert.False(t, res.Actions[0].Applied)
	assert.FileExists(t, src)
	assert.NoDirExists(t, filepath.Join(dir, "001_Hauptverfahren"))
}

func TestFilerRejectsUnknownPairs(t *testing.T) {
	filer := NewFiler(taxonomy.NewDefaultStore())
	src := writeScan(t, t.TempDir())

	_, err := filer.Plan(context.Background(), FileInput{Source: src, Process: "002_Entscheidung", Document: "AAA_Identitat", Request: passRequest()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document category")

	_, err = filer.Plan(context.Background(), FileInput{Source: src, Process: "001_Hauptverfahren", Document: "BBB_Aufenthaltstitel", Request: passRequest()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not listed under")
}

func TestFilerNormalizesDescription(t *testing.T) {
	dir := t.TempDir()
	src := writeScan(t, dir)
	req := naming.Request{Person: "Kind1", Description: " Reiseausweis f\u00fcr Ausla\u0308nder ", DateSubmitted: "2024.01.15"}

	res, err := NewFiler(taxonomy.NewDefaultStore()).Plan(context.Background(), FileInput{
		Source: src, Root: dir, Process: "001_Hauptverfahren", Document: "BBB_Aufenthaltstitel", Request: req, DryRun: true,
	})
	require.NoError(t, err)
	require.Len(t, res.Actions, 1)
	want := filepath.Join(dir, "001_Hauptverfahren", "BBB_Aufenthaltstitel", "Kind1_Reiseausweis-f\u00fcr-Ausl\u00e4nder_20240115.pdf")
	assert.Equal(t, want, res.Actions[0].To)
}

func TestResultPrint(t *testing.T) {
	var buf bytes.Buffer
	Result{Title: "Rename plan", Actions: []Action{
		{From: "a.pdf", To: "b.pdf", Reason: "generated name", Applied: true},
		{From: "c.pdf", To: "d.pdf", Error: "target already exists"},
	}}.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "Rename plan")
	assert.Contains(t, out, "- [applied] a.pdf -> b.pdf (generated name)")
	assert.Contains(t, out, "- [error] c.pdf -> d.pdf [error: target already exists]")

	buf.Reset()
	Result{Title: "Filing plan"}.Print(&buf)
	assert.Contains(t, buf.String(), "- nothing to do")
}
