package text

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer using literal string replacement.
// It does not understand the syntax of the files it rewrites: matches inside
// comments and string literals are replaced too.
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, path string, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule.FromText == "" {
			continue
		}

		if !rule.AppliesTo(path) {
			zerolog.Ctx(ctx).Trace().Str("path", path).Str("glob", rule.FileFilterGlob).Msg("rule filtered out")
			continue
		}

		count := strings.Count(currentContent, rule.FromText)
		if count == 0 {
			continue
		}

		currentContent = strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)
		result.WasModified = true
		result.ReplacementCount += count
	}

	if result.WasModified {
		result.ModifiedContent = []byte(currentContent)
	}
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from is required", i)
		}
		// a rule that reintroduces its own pattern would never converge
		if strings.Contains(rule.ToText, rule.FromText) {
			return errors.Errorf("rule %d: to %q contains from %q", i, rule.ToText, rule.FromText)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

// AppliesTo reports whether the rule's file filter matches path
func (rule ReplacementRule) AppliesTo(path string) bool {
	if rule.FileFilterGlob == "" {
		return true
	}

	target := filepath.ToSlash(path)
	if !strings.Contains(rule.FileFilterGlob, "/") {
		target = filepath.Base(path)
	}

	matched, err := doublestar.Match(rule.FileFilterGlob, target)
	if err != nil {
		return false
	}
	return matched
}
