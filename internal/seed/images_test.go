package seed

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/garagesale/internal/model"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestGatherer returns a gatherer over fresh source and public directories.
func newTestGatherer(t *testing.T) *Gatherer {
	t.Helper()
	root := t.TempDir()
	return &Gatherer{
		SourceDir: filepath.Join(root, "src"),
		PublicDir: filepath.Join(root, "public"),
		URLPrefix: "/images/items",
		Logger:    quietLogger(),
	}
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("data:"+n), 0644))
	}
}

func TestGatherBlankFolder(t *testing.T) {
	g := newTestGatherer(t)
	assert.Empty(t, g.Gather("", "Lamp", "").Images)
}

func TestGatherNoImages(t *testing.T) {
	g := newTestGatherer(t)
	res := g.Gather("lamp1", "Lamp", "")
	assert.Empty(t, res.Images)
	assert.Empty(t, res.Warnings)
}

func TestGatherCopiesSourceImagesSorted(t *testing.T) {
	g := newTestGatherer(t)
	writeFiles(t, filepath.Join(g.SourceDir, "chair"), "b.PNG", "a.jpg", "c.gif", "notes.txt", "d.webp")

	res := g.Gather("chair", "Chair", "Solid   oak\nchair")
	require.Len(t, res.Images, 3)

	assert.Equal(t, model.ImageDescriptor{
		Src: "/images/items/chair/a.jpg",
		Alt: "Chair — Solid oak chair — Image 1",
	}, res.Images[0])
	assert.Equal(t, "/images/items/chair/b.PNG", res.Images[1].Src)
	assert.Equal(t, "/images/items/chair/c.gif", res.Images[2].Src)
	assert.Equal(t, "Chair — Solid oak chair — Image 3", res.Images[2].Alt)

	for _, n := range []string{"a.jpg", "b.PNG", "c.gif"} {
		assert.FileExists(t, filepath.Join(g.PublicDir, "chair", n))
	}
	assert.NoFileExists(t, filepath.Join(g.PublicDir, "chair", "notes.txt"))
	assert.NoFileExists(t, filepath.Join(g.PublicDir, "chair", "d.webp"))
}

func TestGatherFallsBackToPublished(t *testing.T) {
	g := newTestGatherer(t)
	writeFiles(t, filepath.Join(g.PublicDir, "desk"), "2.webp", "1.jpg", "1-thumb.jpg", "readme.md")

	res := g.Gather("desk", "Desk", "ignored for published images")
	require.Len(t, res.Images, 2)

	assert.Equal(t, model.ImageDescriptor{
		Src:   "/images/items/desk/1.jpg",
		Thumb: "/images/items/desk/1-thumb.jpg",
		Alt:   "Desk — Image 1",
	}, res.Images[0])
	assert.Equal(t, "/images/items/desk/2.webp", res.Images[1].Src)
	assert.Equal(t, "Desk — Image 2", res.Images[1].Alt)
}

func TestGatherVariants(t *testing.T) {
	g := newTestGatherer(t)
	writeFiles(t, filepath.Join(g.SourceDir, "lamp"), "lamp.jpg")

	var calls int
	g.Variants = func(src, thumbPath, medPath string) error {
		calls++
		assert.Equal(t, filepath.Join(g.PublicDir, "lamp", "lamp.jpg"), src)
		require.NoError(t, os.WriteFile(thumbPath, []byte("thumb"), 0644))
		return os.WriteFile(medPath, []byte("med"), 0644)
	}

	res := g.Gather("lamp", "Lamp", "")
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, res.Variants)
	require.Len(t, res.Images, 1)

	img := res.Images[0]
	assert.Equal(t, "/images/items/lamp/lamp-thumb.jpg", img.Thumb)
	assert.Equal(t, "/images/items/lamp/lamp-med.webp", img.Med)
	// The superseded original is removed and Src follows the medium variant.
	assert.Equal(t, img.Med, img.Src)
	assert.NoFileExists(t, filepath.Join(g.PublicDir, "lamp", "lamp.jpg"))
	assert.Equal(t, img.Med, model.BestImageURL(res.Images))
}

func TestGatherVariantFailureIsNotFatal(t *testing.T) {
	g := newTestGatherer(t)
	writeFiles(t, filepath.Join(g.SourceDir, "rug"), "a.jpg", "b.jpg")

	g.Variants = func(src, thumbPath, medPath string) error {
		if strings.HasSuffix(src, "a.jpg") {
			return errors.New("corrupt image")
		}
		return os.WriteFile(medPath, []byte("med"), 0644)
	}

	res := g.Gather("rug", "Rug", "")
	require.Len(t, res.Images, 2)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "corrupt image")

	// The failed image keeps its original.
	assert.Equal(t, model.ImageDescriptor{Src: "/images/items/rug/a.jpg", Alt: "Rug — Image 1"}, res.Images[0])
	assert.Equal(t, "/images/items/rug/b-med.webp", res.Images[1].Med)
	assert.Equal(t, 1, res.Variants)
}

func TestAltText(t *testing.T) {
	assert.Equal(t, "Lamp — Image 1", AltText("Lamp", "", 1))
	assert.Equal(t, "Lamp — Brass lamp — Image 2", AltText("Lamp", " Brass\t lamp\n", 2))
	assert.Equal(t, "— Image 3", AltText("", "", 3))

	long := strings.Repeat("é", 200)
	alt := AltText("Vase", long, 1)
	assert.Equal(t, "Vase — "+strings.Repeat("é", 120)+" — Image 1", alt)
}
