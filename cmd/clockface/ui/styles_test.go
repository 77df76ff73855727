package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("CLOCKFACE_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when CLOCKFACE_DARK_MODE=1")
	}

	t.Setenv("CLOCKFACE_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when CLOCKFACE_DARK_MODE is unset")
	}
}

func TestDetectTheme_COLORFGBG(t *testing.T) {
	t.Setenv("CLOCKFACE_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	if theme := DetectTheme(); !theme.IsDark {
		t.Errorf("background index 0 should pick the dark theme")
	}

	t.Setenv("COLORFGBG", "0;15")
	if theme := DetectTheme(); theme.IsDark {
		t.Errorf("background index 15 should pick the light theme")
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("dark") != DarkTheme() {
		t.Errorf("expected dark theme for \"dark\"")
	}
	if ThemeByName("light") != LightTheme() {
		t.Errorf("expected light theme for \"light\"")
	}
}
