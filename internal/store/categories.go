package store

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/shamar-morrison/recurr-sub000/internal/categorizer"
	"github.com/shamar-morrison/recurr-sub000/internal/logging"
)

// categoriesFile is the YAML shape of a custom-category file:
//
//	categories:
//	  - name: Homelab
//	    color: "#34d399"
type categoriesFile struct {
	Categories []categorizer.CustomCategory `yaml:"categories"`
}

// LoadCustomCategories reads user-defined categories from a YAML
// file. A missing file is not an error; it simply means the user has
// defined none.
func LoadCustomCategories(path string) ([]categorizer.CustomCategory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, path).Debug("Custom categories file not found")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var file categoriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  path,
		logging.FieldCount: len(file.Categories),
	}).Debug("Loaded custom categories")
	return file.Categories, nil
}
