// Package profile persists the user's chart inputs in a small TOML file so
// the birthdate does not have to be typed on every run.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/lifeweeks/internal/lifechart"
	"github.com/papapumpkin/lifeweeks/internal/share"
)

// DefaultFile is the profile's file name inside the user's home directory.
const DefaultFile = ".lifeweeks.toml"

// Profile is the persisted chart input.
type Profile struct {
	BirthDate string     `toml:"birthdate"`
	EndYear   int        `toml:"end_year,omitempty"`
	Locale    string     `toml:"locale,omitempty"`
	Updated   *time.Time `toml:"updated,omitempty"`
}

// Load reads the profile at path. A missing file yields an empty profile and
// no error.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Profile{}, nil
		}
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return &p, nil
}

// Save writes p to path, creating parent directories as needed.
func Save(path string, p *Profile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile %s: %w", path, err)
	}
	return nil
}

// Validate checks that the birthdate parses and is not after today.
func (p *Profile) Validate(today time.Time) error {
	birth, err := lifechart.ParseBirthDate(p.BirthDate)
	if err != nil {
		return err
	}
	if birth.After(lifechart.Normalize(today)) {
		return fmt.Errorf("%w: %s is in the future", lifechart.ErrInvalidBirthDate, p.BirthDate)
	}
	if p.EndYear < 0 {
		return fmt.Errorf("end year must not be negative, got %d", p.EndYear)
	}
	return nil
}

// Params returns the profile's shareable inputs.
func (p *Profile) Params() share.Params {
	return share.Params{BirthDate: p.BirthDate, EndYear: p.EndYear}
}
