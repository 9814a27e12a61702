package shooter

import (
	"fmt"
	"iter"
	"strings"
)

// DebugInfo names a line of the debug overlay. Lines are drawn in this order.
type DebugInfo int

const (
	DebugModeNotice DebugInfo = iota // always first, drawn in red
	DebugFps
	DebugPlayer
	DebugEntities
	DebugStep
	DebugPapaTicker
	DebugMousePosition
	DebugAimPosition
	DebugTemp
	DebugMoving

	debugInfoCount
)

var debugInfoNames = [debugInfoCount]string{
	DebugModeNotice:    "DebugModeNotice",
	DebugFps:           "Fps",
	DebugPlayer:        "Player",
	DebugEntities:      "Entities",
	DebugStep:          "Step",
	DebugPapaTicker:    "PapaTicker",
	DebugMousePosition: "MousePosition",
	DebugAimPosition:   "AimPosition",
	DebugTemp:          "Temp",
	DebugMoving:        "Moving",
}

func (d DebugInfo) String() string {
	if d < 0 || d >= debugInfoCount {
		return fmt.Sprintf("DebugInfo(%d)", int(d))
	}
	return debugInfoNames[d]
}

// DebugTable holds one text slot per DebugInfo. Empty slots are not drawn.
type DebugTable [debugInfoCount]string

// Set formats a line into its slot.
func (t *DebugTable) Set(k DebugInfo, format string, args ...any) {
	if k < 0 || k >= debugInfoCount {
		return
	}
	t[k] = fmt.Sprintf(format, args...)
}

// Get returns the text in a slot.
func (t *DebugTable) Get(k DebugInfo) string {
	if k < 0 || k >= debugInfoCount {
		return ""
	}
	return t[k]
}

// Clear empties a slot.
func (t *DebugTable) Clear(k DebugInfo) {
	if k < 0 || k >= debugInfoCount {
		return
	}
	t[k] = ""
}

// Lines yields the non-blank slots in enum order.
func (t *DebugTable) Lines() iter.Seq2[DebugInfo, string] {
	return func(yield func(DebugInfo, string) bool) {
		for k, line := range t {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !yield(DebugInfo(k), line) {
				return
			}
		}
	}
}
