/*
Package status describes what happened to each file a migration touched.

	+-------------+        +-------------+
	|  FileResult | -----> |   Summary   |
	| (per file)  |        |  (tallies)  |
	+------+------+        +-------------+
	       |
	+------+------+
	|  Formatter  |
	| (one line)  |
	+-------------+

🎯 Purpose:
- Defines the four outcomes a file can end in: updated, no-change, not-found, error
- Renders one human readable line per file
- Tallies outcomes for the end of run summary

A file moves straight from unprocessed to exactly one outcome. There are no
intermediate states and nothing is rolled back.
*/
package status
