package expand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		path string
		sep  string
		want string
	}{
		{name: "two words", path: "iron_gear", want: "IronGear"},
		{name: "nugget", path: "copper_nugget", want: "CopperNugget"},
		{name: "single word", path: "bronze", want: "Bronze"},
		{name: "three words", path: "raw_tin_block", want: "RawTinBlock"},
		{name: "digits", path: "tier_2_plate", want: "Tier2Plate"},
		{name: "repeated separator", path: "steel__rod", want: "SteelRod"},
		{name: "leading separator", path: "_lead", want: "Lead"},
		{name: "already capitalized rest kept", path: "x_ray", want: "XRay"},
		{name: "space separator", path: "iron_gear", sep: " ", want: "Iron Gear"},
		{name: "empty path", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Label(tt.path, tt.sep))
		})
	}
}

func TestLabel_ConcatenatesCapitalizedSegments(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-z][a-z0-9]{0,8}`), 1, 5).Draw(t, "words")
		path := strings.Join(words, "_")

		var want strings.Builder
		for _, w := range words {
			want.WriteString(strings.ToUpper(w[:1]) + w[1:])
		}

		if got := Label(path, ""); got != want.String() {
			t.Fatalf("Label(%q) = %q, want %q", path, got, want.String())
		}
		if strings.Contains(Label(path, ""), "_") {
			t.Fatalf("label of %q kept a separator", path)
		}
	})
}
