package isa

import "fmt"

// ---------------------------------------------------------------------------
// Action code space
// ---------------------------------------------------------------------------

// Action identifies the operation an instruction performs. Actions are
// 2-byte codes organized into categories by the high byte. The code space
// is open-ended: values outside the catalog below are legal, round-trip
// untouched, and report the name "UNKNOWN".
type Action uint16

// System actions
const (
	ActNOP    Action = 0x0000 // no operation
	ActHalt   Action = 0x0001 // halt execution
	ActError  Action = 0x0002 // error condition
	ActStatus Action = 0x0003 // status report
)

// Response actions
const (
	ActGreet     Action = 0x0100 // greeting response
	ActConfirm   Action = 0x0101 // confirmation
	ActDeny      Action = 0x0102 // denial
	ActExplain   Action = 0x0103 // explanation
	ActClarify   Action = 0x0104 // clarification
	ActApologize Action = 0x0105 // apology
	ActThank     Action = 0x0106 // thanks
	ActRespond   Action = 0x0107 // generic response
)

// Query actions
const (
	ActAsk      Action = 0x0200 // ask a question
	ActRequest  Action = 0x0201 // request information
	ActSearch   Action = 0x0202 // search for information
	ActRetrieve Action = 0x0203 // retrieve stored information
)

// Knowledge actions
const (
	ActDefine     Action = 0x0300 // define a term
	ActDescribe   Action = 0x0301 // describe something
	ActCompare    Action = 0x0302 // compare items
	ActSummarize  Action = 0x0303 // summarize content
	ActExplainHow Action = 0x0304 // explain how something works
	ActExplainWhy Action = 0x0305 // explain why something is
)

// Skill actions
const (
	ActCalculate       Action = 0x0400 // perform a calculation
	ActSetTimer        Action = 0x0401 // set a timer
	ActKnowledgeSearch Action = 0x0402 // search the knowledge base
)

// Emotion actions
const (
	ActEmpathy       Action = 0x0500 // express empathy
	ActConcern       Action = 0x0501 // express concern
	ActEncouragement Action = 0x0502 // give encouragement
	ActReassure      Action = 0x0503 // reassure the user
)

// Template actions
const (
	ActTemplateLoad Action = 0x0600 // load a template
	ActTemplateFill Action = 0x0601 // fill a template
)

// Chain actions
const (
	ActChain Action = 0x0700 // chain to another model
	ActFork  Action = 0x0701 // fork to multiple models
	ActMerge Action = 0x0702 // merge chained results
)

// actionNames maps cataloged actions to their display names.
var actionNames = map[Action]string{
	ActNOP:    "NOP",
	ActHalt:   "HALT",
	ActError:  "ERROR",
	ActStatus: "STATUS",

	ActGreet:     "GREET",
	ActConfirm:   "CONFIRM",
	ActDeny:      "DENY",
	ActExplain:   "EXPLAIN",
	ActClarify:   "CLARIFY",
	ActApologize: "APOLOGIZE",
	ActThank:     "THANK",
	ActRespond:   "RESPOND",

	ActAsk:      "ASK",
	ActRequest:  "REQUEST",
	ActSearch:   "SEARCH",
	ActRetrieve: "RETRIEVE",

	ActDefine:     "DEFINE",
	ActDescribe:   "DESCRIBE",
	ActCompare:    "COMPARE",
	ActSummarize:  "SUMMARIZE",
	ActExplainHow: "EXPLAIN_HOW",
	ActExplainWhy: "EXPLAIN_WHY",

	ActCalculate:       "CALCULATE",
	ActSetTimer:        "SET_TIMER",
	ActKnowledgeSearch: "KNOWLEDGE_SEARCH",

	ActEmpathy:       "EMPATHY",
	ActConcern:       "CONCERN",
	ActEncouragement: "ENCOURAGEMENT",
	ActReassure:      "REASSURE",

	ActTemplateLoad: "TEMPLATE_LOAD",
	ActTemplateFill: "TEMPLATE_FILL",

	ActChain: "CHAIN",
	ActFork:  "FORK",
	ActMerge: "MERGE",
}

// ActionFromU16 creates an Action from a raw 16-bit value. Every value is
// valid; unrecognized codes are preserved as-is.
func ActionFromU16(v uint16) Action {
	return Action(v)
}

// U16 returns the raw 16-bit value.
func (a Action) U16() uint16 {
	return uint16(a)
}

// Category returns the category byte (high byte).
func (a Action) Category() uint8 {
	return uint8(a >> 8)
}

// Subcategory returns the subcategory byte (low byte).
func (a Action) Subcategory() uint8 {
	return uint8(a)
}

// IsSystem reports whether this is a system action (0x00xx).
func (a Action) IsSystem() bool {
	return a <= 0x00FF
}

// IsResponse reports whether this is a response action (0x01xx).
func (a Action) IsResponse() bool {
	return a >= 0x0100 && a <= 0x01FF
}

// IsQuery reports whether this is a query action (0x02xx).
func (a Action) IsQuery() bool {
	return a >= 0x0200 && a <= 0x02FF
}

// IsKnowledge reports whether this is a knowledge action (0x03xx).
func (a Action) IsKnowledge() bool {
	return a >= 0x0300 && a <= 0x03FF
}

// IsSkill reports whether this is a skill action (0x04xx).
func (a Action) IsSkill() bool {
	return a >= 0x0400 && a <= 0x04FF
}

// IsEmotion reports whether this is an emotion action (0x05xx).
func (a Action) IsEmotion() bool {
	return a >= 0x0500 && a <= 0x05FF
}

// IsTemplate reports whether this is a template action (0x06xx).
func (a Action) IsTemplate() bool {
	return a >= 0x0600 && a <= 0x06FF
}

// IsChain reports whether this is a chain action (0x07xx).
func (a Action) IsChain() bool {
	return a >= 0x0700 && a <= 0x07FF
}

// Name returns the display name for a cataloged action, or "UNKNOWN" for
// any other value. It never fails.
func (a Action) Name() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

// String implements the Stringer interface.
func (a Action) String() string {
	return fmt.Sprintf("ACT(0x%04X:%s)", uint16(a), a.Name())
}
