package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopfab/shelfgen"
)

// Format is a supported interchange mesh format.
type Format string

const (
	FormatOBJ  Format = "obj"
	FormatPLY  Format = "ply"
	FormatSTL  Format = "stl"
	FormatGLTF Format = "gltf"
)

// ErrUnsupportedFormat is wrapped by ParseFormat errors.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat maps a user supplied format name to a Format. Matching is case
// insensitive. Unknown names return an error wrapping ErrUnsupportedFormat.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatOBJ, FormatPLY, FormatSTL, FormatGLTF:
		return f, nil
	case "fbx":
		return "", fmt.Errorf("%w %q: FBX is a closed format, use gltf or obj", ErrUnsupportedFormat, s)
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, s)
	}
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	return "." + string(f)
}

// Export writes one geometry file per format into dir, creating it if
// absent. A failing format is logged and the remaining formats are still
// attempted; the joined errors are returned after the last attempt.
func Export(dir string, a *shelfgen.Assembly, formats []Format, logger *log.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := baseName(a.Label)
	var errs []error
	for _, f := range formats {
		path := filepath.Join(dir, base+f.Ext())
		if err := exportOne(dir, base, path, f, a); err != nil {
			logger.Error("export failed", "format", f, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", f, err))
			continue
		}
		logger.Info("exported", "format", f, "path", path)
	}
	return errors.Join(errs...)
}

func exportOne(dir, base, path string, f Format, a *shelfgen.Assembly) error {
	switch f {
	case FormatOBJ:
		return createOBJ(dir, base, a)
	case FormatSTL:
		return CreateSTL(path, NewAssemblyRenderer(a))
	case FormatPLY, FormatGLTF:
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if f == FormatPLY {
			return WritePLY(file, a)
		}
		return WriteGLTF(file, a)
	}
	return fmt.Errorf("%w %q", ErrUnsupportedFormat, string(f))
}

// baseName derives a file name stem from an assembly label.
func baseName(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
	if s == "" {
		s = "assembly"
	}
	return s
}
