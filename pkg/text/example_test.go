package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/migraterc/pkg/text"
)

func ExampleSimpleTextReplacer_ReplaceText() {
	replacer := text.NewSimpleTextReplacer()

	content := strings.NewReader("Text(color: Colors.black.withOpacity(0.5))")

	result, err := replacer.ReplaceText(context.Background(), "lib/main.dart", content, text.DefaultRules())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: Text(color: Colors.black.withValues(alpha: 0.5))
	// Changes: 1
	// Was Modified: true
}

func ExampleSimpleTextReplacer_ValidateRules() {
	replacer := text.NewSimpleTextReplacer()

	err := replacer.ValidateRules([]text.ReplacementRule{
		text.WithOpacityRule,
		{ToText: "qux"},
	})
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 1: from is required
}
