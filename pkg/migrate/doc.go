/*
Package migrate implements the text migrator: read a file, apply literal
replacement rules, and write the file back only when its content changed.

	+-------------+
	|   Source    |
	|   (paths)   |
	+------+------+
	       |
	+------+------+
	|  Migrator   |
	| (rewrite)   |
	+------+------+
	       |
	+------+------+
	|  Reporter   |
	| (one line)  |
	+-------------+

🔄 Flow, per path:
1. stat: missing paths end as not-found
2. read the whole file and check it is valid UTF-8
3. replace every occurrence of every applicable rule
4. write back in place if and only if something changed

Every failure is recorded against its path and the run moves on to the next
one. Nothing a single file does can abort a run; only a failing source or a
cancelled context stop it.

With Jobs > 1 files are migrated in parallel but still reported in the order
the source produced them.

🔍 Example:

	m, err := migrate.New(migrate.Options{Reporter: logger})
	summary, err := m.Run(ctx, source.Single("lib/screens/login_screen.dart"))
*/
package migrate
