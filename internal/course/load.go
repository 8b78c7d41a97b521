package course

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Course content ships inside the binary. Section files are numbered to
// fix curriculum order; exam.yaml holds the final exam and its
// question-to-section mapping.
//
//go:embed content/*.yaml
var contentFS embed.FS

// examFile is the on-disk shape of exam.yaml.
type examFile struct {
	Questions []Question        `yaml:"questions"`
	Sections  map[string]string `yaml:"sections"`
}

func init() {
	cat, err := loadCatalog(contentFS)
	if err != nil {
		panic(fmt.Sprintf("course: embedded content invalid: %v", err))
	}
	c = cat
}

// loadCatalog parses every content file and builds the validated catalog.
// fs.ReadDir returns entries sorted by name, so the numeric file prefixes
// determine section order.
func loadCatalog(fsys fs.FS) (*catalog, error) {
	entries, err := fs.ReadDir(fsys, "content")
	if err != nil {
		return nil, fmt.Errorf("reading content dir: %w", err)
	}

	var sections []Section
	var exam examFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := fs.ReadFile(fsys, "content/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}

		if e.Name() == "exam.yaml" {
			if err := yaml.Unmarshal(data, &exam); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", e.Name(), err)
			}
			continue
		}

		var s Section
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", e.Name(), err)
		}
		if s.ID == "" {
			return nil, fmt.Errorf("%s: section has no id", e.Name())
		}
		sections = append(sections, s)
	}

	if err := validateCourse(sections, exam.Questions, exam.Sections); err != nil {
		return nil, err
	}
	return buildCatalog(sections, exam.Questions, exam.Sections), nil
}
