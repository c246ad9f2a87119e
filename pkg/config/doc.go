/*
Package config loads optional migraterc configuration files.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   HCL    | |   YAML   | |   JSON   |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Describes where files come from (sources) and what to replace (rules)
- Carries run options: dry run, backups, parallelism, probes, output style
- Falls back to Default() when no file is given

The format is chosen by extension. YAML and JSON reject unknown fields.
Relative paths in sources are resolved against the directory of the
configuration file.

🔍 Example (.migraterc.hcl):

	source "walk" {
	  root       = "lib"
	  extensions = [".dart"]
	  ignore     = ["generated/**", "*.g.dart"]
	}

	rule {
	  from = ".withOpacity("
	  to   = ".withValues(alpha: "
	}

	jobs  = 1
	probe = ["home_screen"]
*/
package config
