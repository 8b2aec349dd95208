package logfields

import (
	"errors"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
	}{
		{"Addon", KeyAddon, "sale_extended"},
		{"Path", KeyPath, "/tmp/addons"},
		{"File", KeyFile, "DESCRIPTION.rst"},
		{"Section", KeySection, "USAGE"},
		{"Branch", KeyBranch, "16.0"},
	}

	for _, c := range cases {
		var got string
		var key string
		switch c.name {
		case "Addon":
			a := Addon(c.attrVal)
			key, got = a.Key, a.Value.String()
		case "Path":
			a := Path(c.attrVal)
			key, got = a.Key, a.Value.String()
		case "File":
			a := File(c.attrVal)
			key, got = a.Key, a.Value.String()
		case "Section":
			a := Section(c.attrVal)
			key, got = a.Key, a.Value.String()
		case "Branch":
			a := Branch(c.attrVal)
			key, got = a.Key, a.Value.String()
		}
		if key != c.attrKey {
			t.Errorf("%s: key = %q, want %q", c.name, key, c.attrKey)
		}
		if got != c.attrVal {
			t.Errorf("%s: value = %q, want %q", c.name, got, c.attrVal)
		}
	}
}

func TestErrorAttr(t *testing.T) {
	a := Error(errors.New("boom"))
	if a.Key != KeyError || a.Value.String() != "boom" {
		t.Errorf("Error attr = %s=%s", a.Key, a.Value.String())
	}
	if Error(nil).Value.String() != "" {
		t.Errorf("nil error should produce empty value")
	}
}
