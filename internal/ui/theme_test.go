package ui

import "testing"

func TestGetTheme_KnownAndFallback(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Errorf("GetTheme(%q).Name = %q", name, got.Name)
		}
	}
	if got := GetTheme("NoSuchTheme"); got.Name != "Nightfox" {
		t.Errorf("GetTheme fallback = %q, want Nightfox", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	start := ThemeNames()[0]
	current := start
	for range ThemeNames() {
		current = NextTheme(current)
	}
	if current != start {
		t.Fatalf("NextTheme cycle ended at %q, want %q", current, start)
	}
	if NextTheme("NoSuchTheme") != ThemeNames()[0] {
		t.Fatal("NextTheme of unknown theme should restart the cycle")
	}
}

func TestThemes_HaveCompletePalettes(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for field, v := range map[string]string{
			"Text": th.Text, "Muted": th.Muted, "Accent": th.Accent,
			"Success": th.Success, "Warning": th.Warning, "Danger": th.Danger,
		} {
			if v == "" {
				t.Errorf("theme %s missing %s color", name, field)
			}
		}
	}
}
