package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestBuiltinTablesAreWellFormed(t *testing.T) {
	cat := Builtin()
	if err := cat.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(cat.Services) == 0 || len(cat.Settings) == 0 {
		t.Fatalf("builtin catalog is empty: %d services, %d settings", len(cat.Services), len(cat.Settings))
	}

	accessors := make(map[string]string)
	for _, entry := range cat.Services {
		if !strings.HasSuffix(entry.Constant, "_SERVICE") {
			t.Errorf("constant %q does not look like a service constant", entry.Constant)
		}
		if !strings.Contains(entry.TypeName, ".") {
			t.Errorf("type %q is not qualified", entry.TypeName)
		}
		name := entry.AccessorName()
		if prev, ok := accessors[name]; ok {
			t.Errorf("accessor %q derived from both %s and %s", name, prev, entry.Constant)
		}
		accessors[name] = entry.Constant
	}
	for _, entry := range cat.Settings {
		if !strings.HasPrefix(entry.Action, "ACTION_") {
			t.Errorf("action %q lacks ACTION_ prefix", entry.Action)
		}
		if entry.Doc == "" {
			t.Errorf("action %q has no doc", entry.Action)
		}
	}
}

func TestBuiltinReturnsFreshSlices(t *testing.T) {
	first := Services()
	first[0].Constant = "CHANGED"
	if Services()[0].Constant == "CHANGED" {
		t.Fatal("Services shares backing storage between calls")
	}
}

func TestBuiltinHardwarePropertiesPairOrder(t *testing.T) {
	for _, entry := range Services() {
		if entry.Constant == "HARDWARE_PROPERTIES_SERVICE" {
			if entry.TypeName != "android.os.HardwarePropertiesManager" {
				t.Fatalf("TypeName = %q", entry.TypeName)
			}
			return
		}
	}
	t.Fatal("HARDWARE_PROPERTIES_SERVICE missing")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cat  Catalog
		ok   bool
	}{
		{name: "empty", cat: Catalog{}, ok: true},
		{name: "good", cat: Catalog{Services: []ServiceEntry{{Constant: "A", TypeName: "x.Foo"}}}, ok: true},
		{name: "empty constant", cat: Catalog{Services: []ServiceEntry{{Constant: " ", TypeName: "x.Foo"}}}},
		{name: "type ends in dot", cat: Catalog{Services: []ServiceEntry{{Constant: "A", TypeName: "x."}}}},
		{name: "empty action", cat: Catalog{Settings: []SettingsEntry{{Doc: "orphan"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if tt.ok {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			var malformed *MalformedInputError
			if !errors.As(err, &malformed) {
				t.Fatalf("Validate error = %v, want MalformedInputError", err)
			}
		})
	}
}

func TestCatalogAppendKeepsOrder(t *testing.T) {
	var cat Catalog
	cat.Append(Catalog{Services: []ServiceEntry{{Constant: "A"}}})
	cat.Append(Catalog{Services: []ServiceEntry{{Constant: "B"}}, Settings: []SettingsEntry{{Action: "ACTION_X"}}})
	if cat.Len() != 3 {
		t.Fatalf("Len = %d, want 3", cat.Len())
	}
	if cat.Services[0].Constant != "A" || cat.Services[1].Constant != "B" {
		t.Fatalf("order = %+v", cat.Services)
	}
}

func TestOriginString(t *testing.T) {
	if got := (Origin{Path: "a.yaml", Line: 4, Index: 2}).String(); got != "a.yaml:4" {
		t.Fatalf("String = %q", got)
	}
	if got := (Origin{Path: "a.toml", Index: 2}).String(); got != "a.toml:2" {
		t.Fatalf("String = %q", got)
	}
	if got := (Origin{Index: 7}).String(); got != "<builtin>:7" {
		t.Fatalf("String = %q", got)
	}
}
