package project

import "testing"

func TestFieldRegistryComplete(t *testing.T) {
	if len(fieldSpecs) != int(fieldCount) {
		t.Fatalf("registry has %d entries, want %d", len(fieldSpecs), fieldCount)
	}
	seen := make(map[FieldID]bool)
	for _, f := range fieldSpecs {
		if seen[f.ID] {
			t.Errorf("duplicate field %v", f.ID)
		}
		seen[f.ID] = true
		if f.KeyPath == "" || f.Label == "" {
			t.Errorf("field %v has empty label or key path", f.ID)
		}
	}
}

func TestRequiredFields(t *testing.T) {
	req := RequiredFields()
	if len(req) != 4 {
		t.Fatalf("required fields = %d, want 4", len(req))
	}
	want := map[FieldID]bool{
		FieldImagesDir:    true,
		FieldAudioDir:     true,
		FieldOutputDir:    true,
		FieldSpecialPhoto: true,
	}
	for _, f := range req {
		if !want[f.ID] {
			t.Errorf("unexpected required field %v", f.ID)
		}
	}
}

func TestFieldToken(t *testing.T) {
	tests := []struct {
		id   FieldID
		want string
	}{
		{FieldProjectName, "name:"},
		{FieldImagesDir, "images_dir:"},
		{FieldOutputDir, "output_file:"},
		{FieldKenBurnsRate, "application_rate:"},
		{FieldGentleWeight, "weights:"},
	}
	for _, tt := range tests {
		if got := FieldByID(tt.id).Token(); got != tt.want {
			t.Errorf("Token(%v) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFieldsForTab(t *testing.T) {
	var total int
	for _, tab := range Tabs() {
		fields := FieldsForTab(tab)
		if len(fields) == 0 {
			t.Errorf("tab %v has no fields", tab)
		}
		total += len(fields)
	}
	if total != int(fieldCount) {
		t.Errorf("tabs cover %d fields, want %d", total, fieldCount)
	}
}
