package text

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTextReplacer_ReplaceText(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		content      string
		rules        []ReplacementRule
		want         string
		wantCount    int
		wantModified bool
	}{
		{
			name:         "with_opacity_scenario",
			path:         "lib/main.dart",
			content:      "Text(color: Colors.black.withOpacity(0.5))",
			rules:        DefaultRules(),
			want:         "Text(color: Colors.black.withValues(alpha: 0.5))",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "every_occurrence",
			path:         "lib/theme.dart",
			content:      "a.withOpacity(0.1); b.withOpacity(0.2);\nc.withOpacity(.3)",
			rules:        DefaultRules(),
			want:         "a.withValues(alpha: 0.1); b.withValues(alpha: 0.2);\nc.withValues(alpha: .3)",
			wantCount:    3,
			wantModified: true,
		},
		{
			name:         "comments_and_strings_are_replaced",
			path:         "lib/main.dart",
			content:      "// use .withOpacity( here\nprint('.withOpacity(');",
			rules:        DefaultRules(),
			want:         "// use .withValues(alpha:  here\nprint('.withValues(alpha: ');",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:         "no_match",
			path:         "lib/main.dart",
			content:      "Text(color: Colors.black)",
			rules:        DefaultRules(),
			want:         "Text(color: Colors.black)",
			wantModified: false,
		},
		{
			name:         "method_name_without_dot_is_kept",
			path:         "lib/main.dart",
			content:      "withOpacity(0.5)",
			rules:        DefaultRules(),
			want:         "withOpacity(0.5)",
			wantModified: false,
		},
		{
			name:         "empty_content",
			path:         "lib/main.dart",
			content:      "",
			rules:        DefaultRules(),
			want:         "",
			wantModified: false,
		},
		{
			name:         "empty_rules",
			path:         "lib/main.dart",
			content:      "x.withOpacity(1)",
			rules:        []ReplacementRule{},
			want:         "x.withOpacity(1)",
			wantModified: false,
		},
		{
			name:    "multiple_rules_in_order",
			path:    "notes.txt",
			content: "Hello World",
			rules: []ReplacementRule{
				{FromText: "Hello", ToText: "Hi"},
				{FromText: "World", ToText: "Universe"},
			},
			want:         "Hi Universe",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "glob_on_file_name",
			path:    "lib/widgets/card.dart",
			content: "x.withOpacity(1)",
			rules: []ReplacementRule{
				{FromText: ".withOpacity(", ToText: ".withValues(alpha: ", FileFilterGlob: "*.dart"},
			},
			want:         "x.withValues(alpha: 1)",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "glob_filters_rule_out",
			path:    "lib/widgets/card.g.dart",
			content: "x.withOpacity(1)",
			rules: []ReplacementRule{
				{FromText: ".withOpacity(", ToText: ".withValues(alpha: ", FileFilterGlob: "lib/screens/**"},
			},
			want:         "x.withOpacity(1)",
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewSimpleTextReplacer()
			result, err := replacer.ReplaceText(context.Background(), tt.path, strings.NewReader(tt.content), tt.rules)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestSimpleTextReplacer_Idempotent(t *testing.T) {
	replacer := NewSimpleTextReplacer()
	ctx := context.Background()

	first, err := replacer.ReplaceText(ctx, "a.dart", strings.NewReader("a.withOpacity(0.5) b.withOpacity(x)"), DefaultRules())
	require.NoError(t, err)
	require.True(t, first.WasModified)
	assert.NotContains(t, string(first.ModifiedContent), WithOpacityRule.FromText)

	second, err := replacer.ReplaceText(ctx, "a.dart", strings.NewReader(string(first.ModifiedContent)), DefaultRules())
	require.NoError(t, err)
	assert.False(t, second.WasModified)
	assert.Equal(t, first.ModifiedContent, second.ModifiedContent)
}

func TestSimpleTextReplacer_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []ReplacementRule
		wantError string
	}{
		{
			name:  "default_rules",
			rules: DefaultRules(),
		},
		{
			name:  "empty_rules",
			rules: []ReplacementRule{},
		},
		{
			name:      "missing_from",
			rules:     []ReplacementRule{{ToText: "bar"}},
			wantError: "rule 0: from is required",
		},
		{
			name:      "to_contains_from",
			rules:     []ReplacementRule{{FromText: "foo", ToText: "foobar"}},
			wantError: "contains from",
		},
		{
			name:      "invalid_glob",
			rules:     []ReplacementRule{{FromText: "foo", ToText: "bar", FileFilterGlob: "lib/[a"}},
			wantError: "invalid file_filter_glob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSimpleTextReplacer().ValidateRules(tt.rules)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestReplacementRule_AppliesTo(t *testing.T) {
	rule := ReplacementRule{FromText: "x", FileFilterGlob: "**/screens/*.dart"}
	assert.True(t, rule.AppliesTo("lib/screens/home_screen.dart"))
	assert.False(t, rule.AppliesTo("lib/widgets/card.dart"))

	assert.True(t, ReplacementRule{FromText: "x"}.AppliesTo("anything"))
}
