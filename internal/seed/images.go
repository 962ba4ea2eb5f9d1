package seed

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/erazemk/garagesale/internal/imaging"
	"github.com/erazemk/garagesale/internal/model"
)

var (
	sourceImagePattern    = regexp.MustCompile(`(?i)\.(jpe?g|png|gif)$`)
	publishedImagePattern = regexp.MustCompile(`(?i)\.(jpe?g|png|webp|gif)$`)
)

// Variant file name suffixes.
const (
	thumbSuffix = "-thumb.jpg"
	medSuffix   = "-med.webp"
)

// maxAltSnippet is the longest description excerpt used in alt text.
const maxAltSnippet = 120

// Gatherer resolves the images attached to a table row.
type Gatherer struct {
	// SourceDir holds user-supplied images, one folder per row.
	SourceDir string
	// PublicDir is where published images live, one folder per row.
	PublicDir string
	// URLPrefix is the public URL of PublicDir.
	URLPrefix string
	// Variants generates thumbnails and medium images; nil disables generation.
	Variants imaging.VariantFunc
	Logger   *slog.Logger
}

// Gathered is the outcome of resolving one row's images.
type Gathered struct {
	Images   []model.ImageDescriptor
	Variants int
	Warnings []string
}

func (g *Gatherer) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// Gather resolves the images in folder. Images supplied under SourceDir are
// published (and, when enabled, given variants); otherwise images already
// under PublicDir are used. Failures on individual files are recorded as
// warnings and never abort the row.
func (g *Gatherer) Gather(folder, name, description string) Gathered {
	var res Gathered
	if strings.TrimSpace(folder) == "" {
		return res
	}

	publicFolder := filepath.Join(g.PublicDir, folder)

	if files := listImages(filepath.Join(g.SourceDir, folder), sourceImagePattern); len(files) > 0 {
		if err := os.MkdirAll(publicFolder, 0755); err != nil {
			res.warn(g.logger(), "creating public folder", "folder", publicFolder, "error", err)
		}
		for _, f := range files {
			if err := copyFile(filepath.Join(g.SourceDir, folder, f), filepath.Join(publicFolder, f)); err != nil {
				res.warn(g.logger(), "copying image", "file", f, "folder", folder, "error", err)
			}
		}

		if g.Variants != nil {
			g.logger().Info("generating image variants", "folder", folder, "images", len(files))
			for _, f := range files {
				base := strings.TrimSuffix(f, filepath.Ext(f))
				err := g.Variants(
					filepath.Join(publicFolder, f),
					filepath.Join(publicFolder, base+thumbSuffix),
					filepath.Join(publicFolder, base+medSuffix),
				)
				if err != nil {
					res.warn(g.logger(), "generating image variants", "file", f, "folder", folder, "error", err)
					continue
				}
				res.Variants++
			}
		}

		res.Images = g.describe(folder, files, name, description)
		return res
	}

	files := listImages(publicFolder, publishedImagePattern)
	res.Images = g.describe(folder, files, name, "")
	return res
}

// describe builds a descriptor per published image. When a medium variant
// exists for a non-WebP original, the original is removed to avoid keeping two
// copies and the descriptor's Src points at the variant instead.
func (g *Gatherer) describe(folder string, files []string, name, description string) []model.ImageDescriptor {
	publicFolder := filepath.Join(g.PublicDir, folder)
	images := make([]model.ImageDescriptor, 0, len(files))

	for i, f := range files {
		ext := strings.ToLower(filepath.Ext(f))
		base := strings.TrimSuffix(f, filepath.Ext(f))

		d := model.ImageDescriptor{
			Src: g.url(folder, f),
			Alt: AltText(name, description, i+1),
		}
		if fileExists(filepath.Join(publicFolder, base+thumbSuffix)) {
			d.Thumb = g.url(folder, base+thumbSuffix)
		}
		if fileExists(filepath.Join(publicFolder, base+medSuffix)) {
			d.Med = g.url(folder, base+medSuffix)
			if ext != ".webp" {
				_ = os.Remove(filepath.Join(publicFolder, f))
				d.Src = d.Med
			}
		}
		images = append(images, d)
	}
	return images
}

func (g *Gatherer) url(folder, file string) string {
	return strings.TrimSuffix(g.URLPrefix, "/") + "/" + folder + "/" + file
}

func (res *Gathered) warn(logger *slog.Logger, msg string, args ...any) {
	logger.Warn(msg, args...)
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	res.Warnings = append(res.Warnings, b.String())
}

// AltText builds "<name> — <description snippet> — Image <n>". The snippet has
// its whitespace collapsed and is cut to 120 characters; it is left out when
// the description is blank.
func AltText(name, description string, n int) string {
	alt := name
	if snippet := strings.Join(strings.Fields(description), " "); snippet != "" {
		if r := []rune(snippet); len(r) > maxAltSnippet {
			snippet = string(r[:maxAltSnippet])
		}
		alt += " — " + snippet
	}
	return strings.TrimSpace(fmt.Sprintf("%s — Image %d", alt, n))
}

// listImages returns the sorted names of files in dir matching pattern,
// skipping generated variants. A missing or unreadable dir yields nil.
func listImages(dir string, pattern *regexp.Regexp) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !pattern.MatchString(name) || isVariant(name) {
			continue
		}
		files = append(files, name)
	}
	slices.Sort(files)
	return files
}

func isVariant(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, thumbSuffix) || strings.HasSuffix(lower, medSuffix)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
