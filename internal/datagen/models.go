package datagen

import (
	"github.com/megal/resourced/internal/expand"
	"github.com/megal/resourced/internal/paths"
)

type modelJSON struct {
	Parent    string            `json:"parent"`
	Textures  map[string]string `json:"textures"`
	Overrides []overrideJSON    `json:"overrides,omitempty"`
}

type overrideJSON struct {
	Predicate predicateJSON `json:"predicate"`
	Model     string        `json:"model"`
}

type predicateJSON struct {
	Pulling int     `json:"pulling"`
	Pull    float64 `json:"pull,omitempty"`
}

// ModelFiles renders the model of rec followed by its variant models.
func ModelFiles(rec expand.ModelRecord) ([]File, error) {
	base := modelJSON{
		Parent:   rec.Parent.String(),
		Textures: map[string]string{"layer0": rec.Texture.String()},
	}
	for _, v := range rec.Variants {
		base.Overrides = append(base.Overrides, overrideJSON{
			Predicate: predicateJSON{Pulling: v.Predicate.Pulling, Pull: v.Predicate.Pull},
			Model:     v.Model.String(),
		})
	}

	files := make([]File, 0, 1+len(rec.Variants))
	data, err := encodeJSON(base)
	if err != nil {
		return nil, err
	}
	files = append(files, File{Path: paths.ItemModel(rec.Model), Data: data})

	for _, v := range rec.Variants {
		data, err := encodeJSON(modelJSON{
			Parent:   rec.Parent.String(),
			Textures: map[string]string{"layer0": v.Texture.String()},
		})
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: paths.ItemModel(v.Model), Data: data})
	}
	return files, nil
}
