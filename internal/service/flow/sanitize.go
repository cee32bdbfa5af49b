package flow

import "strings"

// emphasisMarkers are the characters simple chat renderers treat as paired
// text emphasis.
var emphasisMarkers = []string{"*", "_", "`", "~"}

// sanitizeEmphasis neutralizes unpaired emphasis markers in model output so a
// stray asterisk or underscore cannot break the transport's rendering. Balanced
// markup passes through untouched.
func sanitizeEmphasis(text string) string {
	for _, marker := range emphasisMarkers {
		if strings.Count(text, marker)%2 == 1 {
			text = strings.ReplaceAll(text, marker, `\`+marker)
		}
	}
	return text
}
