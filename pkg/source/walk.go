package source

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/migraterc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(KindWalk, func(ctx context.Context, args Args) (Source, error) {
		return NewWalk(args.Root, args.Extensions, args.Ignore)
	})
}

// 🌲 Walk visits every file under Root whose name ends with one of Extensions.
// Unreadable directories are skipped without failing the walk, and symlinked
// directories are not descended into.
type Walk struct {
	Root       string
	Extensions []string
	Ignore     []string
}

// 🏭 NewWalk creates a walk source, defaulting the extensions to DefaultExtensions
func NewWalk(root string, extensions, ignore []string) (*Walk, error) {
	if root == "" {
		return nil, errors.Errorf("walk source: root is required")
	}

	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = append(exts, DefaultExtensions...)
	}

	for _, pattern := range ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("walk source: invalid ignore pattern %q", pattern)
		}
	}

	return &Walk{
		Root:       filepath.Clean(root),
		Extensions: exts,
		Ignore:     ignore,
	}, nil
}

// Paths implements Source.Paths
func (w *Walk) Paths(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(w.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.FromContext(ctx).Warningf("walk root %s does not exist, nothing to migrate", w.Root)
			return nil, nil
		}
		return nil, errors.Errorf("checking walk root: %w", err)
	}
	if !info.IsDir() {
		log.FromContext(ctx).Warningf("walk root %s is not a directory, nothing to migrate", w.Root)
		return nil, nil
	}

	var paths []string
	err = doublestar.GlobWalk(os.DirFS(w.Root), "**", func(rel string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !w.hasExtension(d.Name()) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// a link to a directory is never a candidate file
			if info, err := os.Stat(filepath.Join(w.Root, filepath.FromSlash(rel))); err == nil && info.IsDir() {
				return nil
			}
		}
		if w.ignored(rel) {
			logger.Debug().Str("path", rel).Msg("ignored by pattern")
			return nil
		}
		paths = append(paths, filepath.Join(w.Root, filepath.FromSlash(rel)))
		return nil
	}, doublestar.WithNoFollow())
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", w.Root, err)
	}

	logger.Debug().Str("root", w.Root).Int("files", len(paths)).Msg("walk complete")
	return paths, nil
}

func (w *Walk) hasExtension(name string) bool {
	for _, ext := range w.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// 🔍 ignored checks the slash separated path, relative to Root, against the ignore patterns
func (w *Walk) ignored(rel string) bool {
	for _, pattern := range w.Ignore {
		target := rel
		if !strings.Contains(pattern, "/") {
			target = path.Base(rel)
		}
		if matched, _ := doublestar.Match(pattern, target); matched {
			return true
		}
	}
	return false
}

func (w *Walk) String() string {
	return Args{Kind: KindWalk, Root: w.Root, Extensions: w.Extensions}.String()
}
