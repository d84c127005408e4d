package catalog

import "testing"

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Landscape != "风景" {
		t.Fatalf("landscape = %q", c.Landscape)
	}
	if len(c.Areas) != 7 {
		t.Fatalf("areas = %d, want 7", len(c.Areas))
	}
	for _, a := range c.Areas {
		if len(a.Animals) != 6 {
			t.Fatalf("area %s has %d animals, want 6", a.Name, len(a.Animals))
		}
	}
	if !c.HasAnimal("育空河", "狮子") || c.HasAnimal("育空河", "驼鹿") {
		t.Fatal("HasAnimal mismatch")
	}
}
