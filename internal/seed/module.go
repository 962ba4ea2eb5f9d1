package seed

import (
	"bytes"
	"fmt"
	"go/format"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/erazemk/garagesale/assets"
	"github.com/erazemk/garagesale/internal/model"
)

// FuncMap returns the functions available to the module template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"quote":      strconv.Quote,
		"float":      formatFloat,
		"descriptor": descriptorLiteral,
		"dimensions": dimensionsLiteral,
	}
}

// LoadModuleTemplate parses the generated-module template.
func LoadModuleTemplate() (*template.Template, error) {
	data, err := fs.ReadFile(assets.TemplatesFS(), "items.go.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading module template: %w", err)
	}
	tmpl, err := template.New("items.go.tmpl").Funcs(FuncMap()).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing module template: %w", err)
	}
	return tmpl, nil
}

// RenderModule returns gofmt'd Go source declaring items in package pkg.
func RenderModule(pkg, source string, items []model.Item) ([]byte, error) {
	tmpl, err := LoadModuleTemplate()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Package string
		Source  string
		Items   []model.Item
	}{pkg, filepath.ToSlash(source), items})
	if err != nil {
		return nil, fmt.Errorf("rendering module: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting module: %w", err)
	}
	return src, nil
}

// WriteModule replaces the file at path with src. A previous version is first
// copied to path+".bak"; a failed backup is logged and does not stop the write.
// The new content goes to a temporary file that is renamed over path, so
// readers see either the old file or the new one.
func WriteModule(path string, src []byte, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if fileExists(path) {
		if err := copyFile(path, path+".bak"); err != nil {
			logger.Warn("backing up generated module", "path", path, "error", err)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(src); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func descriptorLiteral(d model.ImageDescriptor) string {
	fields := []string{"Src: " + strconv.Quote(d.Src)}
	if d.Thumb != "" {
		fields = append(fields, "Thumb: "+strconv.Quote(d.Thumb))
	}
	if d.Med != "" {
		fields = append(fields, "Med: "+strconv.Quote(d.Med))
	}
	if d.Alt != "" {
		fields = append(fields, "Alt: "+strconv.Quote(d.Alt))
	}
	return "model.ImageDescriptor{" + strings.Join(fields, ", ") + "}"
}

func dimensionsLiteral(d *model.Dimensions) string {
	if d.IsRaw() {
		return "&model.Dimensions{Raw: " + strconv.Quote(d.Raw) + "}"
	}
	var fields []string
	for _, f := range []struct {
		name string
		v    *float64
	}{{"Width", d.Width}, {"Height", d.Height}, {"Depth", d.Depth}} {
		if f.v != nil {
			fields = append(fields, f.name+": model.Float("+formatFloat(*f.v)+")")
		}
	}
	if d.Unit != "" {
		fields = append(fields, "Unit: "+strconv.Quote(d.Unit))
	}
	return "&model.Dimensions{" + strings.Join(fields, ", ") + "}"
}
