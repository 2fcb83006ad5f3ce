package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"wumpus/pkg/game/locale"
)

// markupPattern matches FUNCTION{operand} markup such as ITEM{rope} or ROOM{Sand Pit}
var markupPattern = regexp.MustCompile(`([A-Z_]+)\{([^{}]+)\}`)

// MarkupFunc renders one markup function. ok is false for unknown functions.
type MarkupFunc func(function, operand string) (val string, ok bool)

// ReplaceMarkup formats msg with args and replaces every markup match using fn
func ReplaceMarkup(fn MarkupFunc, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	for _, match := range markupPattern.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		val, ok := fn(function, operand)
		if !ok {
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// plainMarkup renders markup without any styling
func plainMarkup(function, operand string) (string, bool) {
	switch function {
	case "GT":
		return locale.T(operand), true
	case "ITEM", "ROOM", "ACTION", "HAZARD", "TREASURE":
		return operand, true
	default:
		return "", false
	}
}

// ApplyMarkup formats a message for the message log. With no active renderer
// the markup is reduced to plain text.
func ApplyMarkup(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return ReplaceMarkup(plainMarkup, msg, args...)
}

// StripMarkup formats msg with args and reduces markup to plain text
func StripMarkup(msg string, args ...any) string {
	return ReplaceMarkup(plainMarkup, msg, args...)
}
