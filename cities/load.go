package cities

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/tourlab/tsp"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// cityRecord is one entry of a city file. ID is optional; entries without
// one get their position in the list.
type cityRecord struct {
	ID *int    `mapstructure:"id"`
	X  float64 `mapstructure:"x"`
	Y  float64 `mapstructure:"y"`
}

type cityFile struct {
	Cities []cityRecord `mapstructure:"cities"`
}

// Load reads a YAML city file of the form
//
//	cities:
//	  - {x: 0, y: 0}
//	  - {x: 3, y: 0}
//	  - {id: 7, x: 3, y: 4}
//
// The document is decoded into a generic map first and then into typed
// records, so integer and float coordinates are both accepted.
//
// Errors: ErrMalformedFile (wrapping the decoder error), tsp.ErrEmptyCities
// when the list is empty or missing.
func Load(r io.Reader) ([]tsp.City, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	var file cityFile
	if err = mapstructure.Decode(doc, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if len(file.Cities) == 0 {
		return nil, tsp.ErrEmptyCities
	}

	out := make([]tsp.City, len(file.Cities))
	for i, rec := range file.Cities {
		id := i
		if rec.ID != nil {
			id = *rec.ID
		}
		out[i] = tsp.City{ID: id, X: rec.X, Y: rec.Y}
	}

	return out, nil
}

// LoadFile is Load on the file at path.
func LoadFile(path string) ([]tsp.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cs, nil
}
