package source

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/migraterc/pkg/log"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
}

func testContext(t *testing.T) context.Context {
	return contextWithDiag(t, zerolog.NewTestWriter(t))
}

func contextWithDiag(t *testing.T, diag io.Writer) context.Context {
	logger := log.New(io.Discard, diag, zerolog.DebugLevel)
	return logger.Zerolog().WithContext(log.NewContext(context.Background(), logger))
}

func TestWalk_Paths(t *testing.T) {
	tests := []struct {
		name       string
		files      []string
		extensions []string
		ignore     []string
		want       []string
	}{
		{
			name: "only_matching_extension",
			files: []string{
				"main.dart",
				"screens/home_screen.dart",
				"screens/login_screen.dart",
				"widgets/card.dart",
				"README.md",
				"screens/notes.txt",
				"pubspec.yaml",
			},
			want: []string{
				"main.dart",
				"screens/home_screen.dart",
				"screens/login_screen.dart",
				"widgets/card.dart",
			},
		},
		{
			name:  "suffix_not_contains",
			files: []string{"a.dart.bak", "b.dartx", "c.dart"},
			want:  []string{"c.dart"},
		},
		{
			name:       "custom_extensions_without_dot",
			files:      []string{"a.kt", "b.java", "c.dart"},
			extensions: []string{"kt", ".java"},
			want:       []string{"a.kt", "b.java"},
		},
		{
			name:   "ignore_patterns",
			files:  []string{"a.dart", "a.g.dart", "gen/b.dart", "src/c.dart"},
			ignore: []string{"*.g.dart", "gen/**"},
			want:   []string{"a.dart", "src/c.dart"},
		},
		{
			name:  "hidden_files_included",
			files: []string{".hidden/a.dart"},
			want:  []string{".hidden/a.dart"},
		},
		{
			name:  "empty_tree",
			files: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files...)

			w, err := NewWalk(root, tt.extensions, tt.ignore)
			require.NoError(t, err)

			got, err := w.Paths(testContext(t))
			require.NoError(t, err)

			var want []string
			for _, f := range tt.want {
				want = append(want, filepath.Join(root, filepath.FromSlash(f)))
			}
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestWalk_DirectoryNamedLikeFileIsSkipped(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "weird.dart"), 0o755))
	writeTree(t, root, "weird.dart/inner.dart")

	w, err := NewWalk(root, nil, nil)
	require.NoError(t, err)

	got, err := w.Paths(testContext(t))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "weird.dart", "inner.dart")}, got)
}

func TestWalk_MissingRoot(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	root := filepath.Join(t.TempDir(), "nope")
	w, err := NewWalk(root, nil, nil)
	require.NoError(t, err)

	diag := &bytes.Buffer{}
	got, err := w.Paths(contextWithDiag(t, diag))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, diag.String(), "⚠️  walk root "+root+" does not exist, nothing to migrate")
}

func TestWalk_RootIsFile(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	root := t.TempDir()
	writeTree(t, root, "main.dart")

	w, err := NewWalk(filepath.Join(root, "main.dart"), nil, nil)
	require.NoError(t, err)

	diag := &bytes.Buffer{}
	got, err := w.Paths(contextWithDiag(t, diag))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, diag.String(), "is not a directory")
}

func TestWalk_DoesNotFollowSymlinks(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		links map[string]string // link name -> target, both relative to root
		want  []string
	}{
		{
			name:  "symlinked_directory",
			files: []string{"screens/home_screen.dart"},
			links: map[string]string{"alias": "screens"},
			want:  []string{"screens/home_screen.dart"},
		},
		{
			name:  "symlink_loop",
			files: []string{"a.dart"},
			links: map[string]string{"loop": "."},
			want:  []string{"a.dart"},
		},
		{
			name:  "directory_link_named_like_a_file",
			files: []string{"screens/home_screen.dart"},
			links: map[string]string{"fake.dart": "screens"},
			want:  []string{"screens/home_screen.dart"},
		},
		{
			name:  "file_link_is_kept",
			files: []string{"a.dart"},
			links: map[string]string{"b.dart": "a.dart"},
			want:  []string{"a.dart", "b.dart"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files...)
			for link, target := range tt.links {
				if err := os.Symlink(target, filepath.Join(root, link)); err != nil {
					t.Skipf("symlinks unavailable: %v", err)
				}
			}

			w, err := NewWalk(root, nil, nil)
			require.NoError(t, err)

			got, err := w.Paths(testContext(t))
			require.NoError(t, err)

			want := make([]string, len(tt.want))
			for i, p := range tt.want {
				want[i] = filepath.Join(root, filepath.FromSlash(p))
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestWalk_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.dart")

	w, err := NewWalk(root, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	_, err = w.Paths(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewWalk_Validation(t *testing.T) {
	_, err := NewWalk("", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root is required")

	_, err = NewWalk("lib", nil, []string{"[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")

	w, err := NewWalk("lib/", []string{" ", ""}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultExtensions, w.Extensions)
	assert.Equal(t, "lib", w.Root)
}

func TestList_PathsKeepOrderAndDuplicates(t *testing.T) {
	l := List{"b.dart", "a.dart", "b.dart"}
	got, err := l.Paths(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b.dart", "a.dart", "b.dart"}, got)

	got[0] = "mutated"
	assert.Equal(t, "b.dart", l[0], "returned slice must not alias the list")
}

func TestSingle(t *testing.T) {
	got, err := Single("lib/screens/login_screen.dart").Paths(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/screens/login_screen.dart"}, got)
}

func TestNew(t *testing.T) {
	ctx := testContext(t)

	src, err := New(ctx, Args{Kind: KindWalk, Root: "lib"})
	require.NoError(t, err)
	assert.IsType(t, &Walk{}, src)

	src, err = New(ctx, Args{Kind: KindList, Paths: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, List{"a", "b"}, src)

	src, err = New(ctx, Args{Kind: KindFile, Path: "a"})
	require.NoError(t, err)
	assert.Equal(t, "file a", src.String())

	_, err = New(ctx, Args{Kind: "ftp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown source kind")

	_, err = New(ctx, Args{Kind: KindList})
	require.Error(t, err)
}

func TestArgs_Validate(t *testing.T) {
	assert.NoError(t, Args{Kind: KindWalk, Root: "lib"}.Validate())
	assert.NoError(t, Args{Kind: KindList, Paths: []string{"a"}}.Validate())
	assert.NoError(t, Args{Kind: KindFile, Path: "a"}.Validate())
	assert.ErrorContains(t, Args{Kind: KindWalk}.Validate(), "root is required")
	assert.ErrorContains(t, Args{Kind: KindList}.Validate(), "paths is required")
	assert.ErrorContains(t, Args{Kind: KindFile}.Validate(), "path is required")
	assert.ErrorContains(t, Args{}.Validate(), "kind is required")
	assert.ErrorContains(t, Args{Kind: "x"}.Validate(), "unknown source kind")
}

func TestMulti(t *testing.T) {
	m := Multi{List{"a", "b"}, Single("c")}
	got, err := m.Paths(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, "list (2 paths) + file c", m.String())
}
