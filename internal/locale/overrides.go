package locale

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"
)

// Overrides holds user-defined day-period labels, keyed by canonical
// locale id and then by width name.
type Overrides struct {
	Locales map[string]map[string][2]string `json:"locales"`
}

// ConfigDir returns the global timepattern config directory.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".timepattern")
}

// OverridesPath returns the path to the global locales.json.
func OverridesPath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "locales.json")
}

// ReadOverrides reads the user override file.
// Returns empty overrides if the file does not exist.
func ReadOverrides(homeDir string) (*Overrides, error) {
	data, err := os.ReadFile(OverridesPath(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return &Overrides{Locales: map[string]map[string][2]string{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var o Overrides
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", OverridesPath(homeDir), err)
	}
	if o.Locales == nil {
		o.Locales = map[string]map[string][2]string{}
	}
	return &o, nil
}

// WriteOverrides writes the user override file, creating the directory if needed.
func WriteOverrides(homeDir string, o *Overrides) error {
	dir := ConfigDir(homeDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(OverridesPath(homeDir), data, 0644)
}

// Canonicalize returns the canonical BCP 47 form of a locale id.
func Canonicalize(localeID string) (string, error) {
	tag, err := language.Parse(localeID)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, localeID, err)
	}
	return tag.String(), nil
}

// Set stores an override after validating the label pair.
func (o *Overrides) Set(localeID string, w Width, labels [2]string) error {
	if err := ValidateLabels(labels); err != nil {
		return err
	}
	id, err := Canonicalize(localeID)
	if err != nil {
		return err
	}
	if o.Locales == nil {
		o.Locales = map[string]map[string][2]string{}
	}
	if o.Locales[id] == nil {
		o.Locales[id] = map[string][2]string{}
	}
	o.Locales[id][w.String()] = labels
	return nil
}

// Get returns the override for a locale and width, if any.
func (o *Overrides) Get(localeID string, w Width) ([2]string, bool) {
	id, err := Canonicalize(localeID)
	if err != nil {
		return [2]string{}, false
	}
	labels, ok := o.Locales[id][w.String()]
	return labels, ok
}

// Remove deletes every override of a locale. Returns false if there were none.
func (o *Overrides) Remove(localeID string) bool {
	id, err := Canonicalize(localeID)
	if err != nil {
		return false
	}
	if _, ok := o.Locales[id]; !ok {
		return false
	}
	delete(o.Locales, id)
	return true
}

// IDs returns the overridden locale ids, sorted.
func (o *Overrides) IDs() []string {
	ids := make([]string, 0, len(o.Locales))
	for id := range o.Locales {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Layered serves overrides first and falls back to Base.
type Layered struct {
	Base      Provider
	Overrides *Overrides
}

// DayPeriods implements Provider.
func (l Layered) DayPeriods(localeID string, w Width) ([2]string, error) {
	if l.Overrides != nil {
		if labels, ok := l.Overrides.Get(localeID, w); ok {
			if err := ValidateLabels(labels); err != nil {
				return [2]string{}, fmt.Errorf("override for %s, %s: %w", localeID, w, err)
			}
			return labels, nil
		}
	}
	return l.Base.DayPeriods(localeID, w)
}
