package docs

import (
	_ "embed"
)

// ServerInstructions embeds the guidance sent to clients on initialize.
// It tells the model how the flow tools relate to each other and how
// failures are reported.
//
//go:embed prompts/instructions.md
var ServerInstructions string
