package datagen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/megal/resourced/internal/expand"
	"github.com/megal/resourced/internal/testutil"
)

func TestTranslationKey(t *testing.T) {
	require.Equal(t, "item.resourced.copper_nugget", TranslationKey(testutil.ID("copper_nugget")))
	require.Equal(t, "item.minecraft.stick", TranslationKey(testutil.Vanilla("stick")))
}

func TestLangFile(t *testing.T) {
	reg := testutil.NewBuilder(t).WithCopperSet().Build()
	names := expand.Names(expand.Group(reg), expand.Options{})

	f, err := LangFile("resourced", "en_us", names)
	require.NoError(t, err)
	require.Equal(t, "assets/resourced/lang/en_us.json", f.Path)
	require.Equal(t, `{
  "item.resourced.copper_block": "CopperBlock",
  "item.resourced.copper_ingot": "CopperIngot",
  "item.resourced.copper_nugget": "CopperNugget",
  "item.resourced.copper_pickaxe": "CopperPickaxe",
  "item.resourced.copper_sword": "CopperSword"
}
`, string(f.Data))
}

func TestLangFile_SeparatorAndDuplicates(t *testing.T) {
	reg := testutil.NewBuilder(t).
		WithEntry("tin_ingot", testutil.DefaultName()).
		WithEntry("tin_ingot", testutil.DefaultName()).
		Build()
	names := expand.Names(expand.Group(reg), expand.Options{LabelSeparator: " "})
	require.Len(t, names, 2)

	f, err := LangFile("resourced", "de_de", names)
	require.NoError(t, err)
	require.Equal(t, "assets/resourced/lang/de_de.json", f.Path)
	require.JSONEq(t, `{"item.resourced.tin_ingot":"Tin Ingot"}`, string(f.Data))
}

func TestLangFile_Empty(t *testing.T) {
	f, err := LangFile("resourced", "en_us", nil)
	require.NoError(t, err)
	require.Equal(t, "{}\n", string(f.Data))
}
