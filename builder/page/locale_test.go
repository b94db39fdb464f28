package page

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		want string
	}{
		{"japanese", language.Japanese, "ja"},
		{"english", language.English, "en"},
		{"regional english", language.MustParse("en-US"), "en"},
		{"british english", language.BritishEnglish, "en"},
		{"unsupported falls back to base", language.Korean, "ja"},
		{"undetermined falls back to base", language.Und, "ja"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := For(tt.tag)
			if loc.Lang != tt.want {
				t.Errorf("For(%v).Lang = %q, want %q", tt.tag, loc.Lang, tt.want)
			}
		})
	}
}

func TestLocaleTagsMatchLang(t *testing.T) {
	if Japanese.Tag != language.Japanese {
		t.Errorf("Japanese.Tag = %v", Japanese.Tag)
	}
	if English.Tag != language.English {
		t.Errorf("English.Tag = %v", English.Tag)
	}
}
