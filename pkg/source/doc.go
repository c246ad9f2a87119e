/*
Package source enumerates the files a migration should visit.

	            +-------------+
	            |   Source    |
	            |   (Paths)   |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   Walk   | |   List   | |  Single  |
	| (tree)   | | (fixed)  | |  (one)   |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Walk: every file under a root whose name ends with one of the extensions
- List: an explicit, fixed list of paths
- Single: one path

Sources only enumerate. They never check that listed paths exist; a missing
path is reported by the migrator as not-found.

🔍 Example:

	src, err := source.New(ctx, source.Args{Kind: source.KindWalk, Root: "lib"})
	paths, err := src.Paths(ctx)
*/
package source
