package domain

import "testing"

func TestParseAction(t *testing.T) {
	cases := []struct {
		in       string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"MELEE", ActionMelee},
		{"BUMP", ActionBump},
		{"WAIT", ActionWait},
		{"PICKUP", ActionPickup},
		{"DROP", ActionDrop},
		{"USE", ActionUse},
		{"EQUIP", ActionEquip},
		{"TAKE_STAIRS", ActionTakeStairs},
		{"LEVEL_UP", ActionLevelUp},
		{"FLY", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, c := range cases {
		if got := ParseAction(c.in); got != c.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", c.in, got, c.expected)
		}
	}
}

func TestActionTypeString(t *testing.T) {
	for name, action := range actionStringToCmd {
		if action.String() != name {
			t.Errorf("String() for %v = %q, want %q", action, action.String(), name)
		}
	}

	if ActionUnknown.String() != "UNKNOWN" {
		t.Errorf("ActionUnknown.String() = %q", ActionUnknown.String())
	}
}
