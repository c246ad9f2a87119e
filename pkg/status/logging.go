// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent   = 2  // spaces to indent file entries
	nameWidth    = 50 // Base width for file path
	statusWidth  = 10 // Width for status text
	replaceWidth = 4  // Width for the replacement count
)

// 🎯 FormatFileLine formats a file result as an aligned, colored row
func FormatFileLine(r FileResult) string {
	var prefix string
	var label string
	switch r.Status {
	case StatusUpdated:
		prefix = color.GreenString("⟳")
		label = color.GreenString("%-*s", statusWidth, r.Status)
	case StatusUnchanged:
		prefix = color.HiBlackString("-")
		label = color.HiBlackString("%-*s", statusWidth, r.Status)
	case StatusNotFound:
		prefix = color.YellowString("?")
		label = color.YellowString("%-*s", statusWidth, r.Status)
	case StatusError:
		prefix = color.RedString("✗")
		label = color.RedString("%-*s", statusWidth, r.Status)
	default:
		prefix = " "
		label = fmt.Sprintf("%-*s", statusWidth, r.Status)
	}

	line := fmt.Sprintf("%s%s %-*s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		nameWidth, r.Path,
		label,
	)

	if r.Replacements > 0 {
		line += fmt.Sprintf(" %*d", replaceWidth, r.Replacements)
	}
	if r.Err != nil {
		line += " " + color.RedString("%v", r.Err)
	}
	return strings.TrimRight(line, " ")
}
