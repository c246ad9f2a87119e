package source

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(KindList, func(ctx context.Context, args Args) (Source, error) {
		if len(args.Paths) == 0 {
			return nil, errors.Errorf("list source: paths is required")
		}
		return List(args.Paths), nil
	})
	Register(KindFile, func(ctx context.Context, args Args) (Source, error) {
		if args.Path == "" {
			return nil, errors.Errorf("file source: path is required")
		}
		return Single(args.Path), nil
	})
}

// 📋 List is a fixed, explicitly enumerated set of paths, processed as given
type List []string

// Paths implements Source.Paths
func (l List) Paths(ctx context.Context) ([]string, error) {
	out := make([]string, len(l))
	copy(out, l)
	return out, nil
}

func (l List) String() string {
	return Args{Kind: KindList, Paths: l}.String()
}

// 📄 Single returns a source for exactly one path
func Single(path string) Source {
	return single(path)
}

type single string

func (s single) Paths(ctx context.Context) ([]string, error) {
	return []string{string(s)}, nil
}

func (s single) String() string {
	return Args{Kind: KindFile, Path: string(s)}.String()
}
