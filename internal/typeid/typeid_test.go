package typeid

import "testing"

func TestValidate(t *testing.T) {
	id := NewSheetID()
	if err := Validate(id, PrefixSheet); err != nil {
		t.Errorf("Validate(%q, %q) = %v, want nil", id, PrefixSheet, err)
	}
	if err := Validate(id, PrefixUser); err == nil {
		t.Errorf("Validate(%q, %q) = nil, want prefix error", id, PrefixUser)
	}
	if err := Validate("garbage", PrefixSheet); err == nil {
		t.Error("Validate of a malformed id should fail")
	}
	if err := Validate(NewSessionID(), PrefixSession); err != nil {
		t.Error("session ids should validate against their own prefix")
	}
}
