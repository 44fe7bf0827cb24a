package tabledef

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	apperrors "kingshot-calc/internal/errors"
)

type tomlFile struct {
	Tables []Definition `toml:"table"`
}

// LoadTOML reads [[table]] definitions from a TOML file
func LoadTOML(path string) ([]Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.TypeParsing, err, "read %s", path)
	}
	return ParseTOML(src, path)
}

// ParseTOML decodes [[table]] definitions
func ParseTOML(src []byte, filename string) ([]Definition, error) {
	var f tomlFile
	dec := toml.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		if de, ok := err.(*toml.DecodeError); ok {
			row, _ := de.Position()
			return nil, apperrors.Wrapf(apperrors.TypeParsing, err, "%s:%d", filename, row)
		}
		return nil, apperrors.Wrapf(apperrors.TypeParsing, err, "%s", filename)
	}
	for i := range f.Tables {
		f.Tables[i].Source = fmt.Sprintf("%s#%d", filename, i+1)
	}
	return f.Tables, nil
}
