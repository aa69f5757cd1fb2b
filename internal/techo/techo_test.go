package techo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/techo/internal/cli"
	"github.com/wesen/techo/internal/faces"
	"github.com/wesen/techo/pkg/layout"
)

func defaults() cli.Options {
	return cli.Options{ShowWhole: true, Align: layout.AlignRight}
}

func TestRunDrawsMessage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	o := defaults()
	o.Args = []string{"hi"}
	err := Run(o, Env{Stdout: &stdout, Stderr: &stderr, Width: 80})
	require.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.Contains(t, ansi.Strip(stdout.String()), "hi")
	assert.Contains(t, stdout.String(), "\x1b[4")
}

func TestRunQuietDrawsFaceOnly(t *testing.T) {
	var stdout, stderr bytes.Buffer
	o := defaults()
	o.Quiet = true
	err := Run(o, Env{Stdin: strings.NewReader("ignored"), Stdout: &stdout, Stderr: &stderr, Width: 80})
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	plain := ansi.Strip(stdout.String())
	assert.Empty(t, strings.Trim(plain, " \n"))
	rows := strings.Count(plain, "\n")
	assert.Equal(t, faces.Default().Art.Height(), rows)
}

func TestRunTooNarrow(t *testing.T) {
	var stdout, stderr bytes.Buffer
	o := defaults()
	o.Args = []string{"hello"}
	err := Run(o, Env{Stdout: &stdout, Stderr: &stderr, Width: 50})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "warning: too narrow screen\n", stderr.String())
}

func TestRunTooNarrowLeft(t *testing.T) {
	var stdout, stderr bytes.Buffer
	o := defaults()
	o.Align = layout.AlignLeft
	o.Args = []string{"hello"}
	require.NoError(t, Run(o, Env{Stdout: &stdout, Stderr: &stderr, Width: 50}))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "too narrow screen")
}

func TestRunReadsStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run(defaults(), Env{Stdin: strings.NewReader("from stdin\n"), Stdout: &stdout, Stderr: &stderr, Width: 120})
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(stdout.String()), "from stdin")
}

func TestRunBadFace(t *testing.T) {
	o := defaults()
	o.Face = faces.Len()
	err := Run(o, Env{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Width: 80})
	assert.Error(t, err)
}

func TestRunBright(t *testing.T) {
	var stdout bytes.Buffer
	o := defaults()
	o.Bright = true
	o.Quiet = true
	require.NoError(t, Run(o, Env{Stdout: &stdout, Stderr: &bytes.Buffer{}, Width: 80}))
	assert.Contains(t, stdout.String(), "\x1b[10")
	assert.NotContains(t, stdout.String(), "\x1b[4")
}

func TestGalleryListsEveryFace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Gallery(&buf, 200, false))
	out := buf.String()
	for i, f := range faces.All() {
		assert.Contains(t, out, "-"+string(rune('0'+i))+" "+f.Name)
		assert.Contains(t, out, f.Description)
	}
}

func TestGalleryWrapsToWidth(t *testing.T) {
	var narrow, wide bytes.Buffer
	require.NoError(t, Gallery(&narrow, 60, false))
	require.NoError(t, Gallery(&wide, 200, false))
	assert.Greater(t, strings.Count(narrow.String(), "\n"), strings.Count(wide.String(), "\n"))
}

func TestPreviewPalette(t *testing.T) {
	assert.Len(t, PreviewPalette(false), 8)
	assert.Len(t, PreviewPalette(true), 8)
}
