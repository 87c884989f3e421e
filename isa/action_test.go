package isa

import "testing"

func TestActionCategories(t *testing.T) {
	tests := []struct {
		action Action
		check  func(Action) bool
		name   string
	}{
		{ActNOP, Action.IsSystem, "IsSystem"},
		{ActGreet, Action.IsResponse, "IsResponse"},
		{ActSearch, Action.IsQuery, "IsQuery"},
		{ActDefine, Action.IsKnowledge, "IsKnowledge"},
		{ActCalculate, Action.IsSkill, "IsSkill"},
		{ActEmpathy, Action.IsEmotion, "IsEmotion"},
		{ActTemplateLoad, Action.IsTemplate, "IsTemplate"},
		{ActChain, Action.IsChain, "IsChain"},
	}

	for _, tt := range tests {
		if !tt.check(tt.action) {
			t.Errorf("%s: %s() = false, want true", tt.action, tt.name)
		}
	}

	if ActGreet.IsSystem() {
		t.Error("GREET should not be a system action")
	}
	if ActNOP.IsResponse() {
		t.Error("NOP should not be a response action")
	}
}

func TestActionBytes(t *testing.T) {
	tests := []struct {
		action      Action
		category    uint8
		subcategory uint8
	}{
		{ActGreet, 0x01, 0x00},
		{ActCalculate, 0x04, 0x00},
		{ActConfirm, 0x01, 0x01},
		{ActMerge, 0x07, 0x02},
	}

	for _, tt := range tests {
		if got := tt.action.Category(); got != tt.category {
			t.Errorf("%s: Category() = 0x%02X, want 0x%02X", tt.action, got, tt.category)
		}
		if got := tt.action.Subcategory(); got != tt.subcategory {
			t.Errorf("%s: Subcategory() = 0x%02X, want 0x%02X", tt.action, got, tt.subcategory)
		}
	}
}

func TestActionNames(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActGreet, "GREET"},
		{ActCalculate, "CALCULATE"},
		{ActExplainHow, "EXPLAIN_HOW"},
		{ActKnowledgeSearch, "KNOWLEDGE_SEARCH"},
		{ActionFromU16(0xFFFF), "UNKNOWN"},
		{ActionFromU16(0x0008), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.Name(); got != tt.want {
			t.Errorf("Action(0x%04X).Name() = %q, want %q", uint16(tt.action), got, tt.want)
		}
	}
}

func TestActionRoundTripFullSpace(t *testing.T) {
	// from_u16 must be the exact inverse of as_u16 over the entire space,
	// including uncataloged codes.
	for v := 0; v <= 0xFFFF; v++ {
		if got := ActionFromU16(uint16(v)).U16(); got != uint16(v) {
			t.Fatalf("ActionFromU16(0x%04X).U16() = 0x%04X", v, got)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := ActGreet.String(); got != "ACT(0x0100:GREET)" {
		t.Errorf("String() = %q, want %q", got, "ACT(0x0100:GREET)")
	}
}
