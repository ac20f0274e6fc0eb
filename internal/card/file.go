package card

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// File is the on-disk TOML form of a card.
//
//	title = "Greenwood"
//	types = ["Forest", "River"]
//	rules = "Grants +1 to adjacent hexes."
//	flavor = "The trees remember."
//	extend_rules = false
type File struct {
	Title       string   `toml:"title"`
	Types       []string `toml:"types"`
	Rules       string   `toml:"rules"`
	Flavor      string   `toml:"flavor"`
	ExtendRules bool     `toml:"extend_rules"`
}

// LoadFile decodes a card file.
func LoadFile(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("card file not found: %s", path)
	}

	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), path)
	}

	return &f, nil
}

// Card converts the file into a validated record.
func (f *File) Card() (Card, error) {
	return FromSlots(f.Title, f.Types, f.Rules, f.Flavor)
}
