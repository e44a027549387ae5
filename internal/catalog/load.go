package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipebrowser/internal/domain"
	"github.com/hammamikhairi/recipebrowser/internal/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fileRecord is the on-disk shape of a recipe. A nil or empty tag value
// means the category does not apply.
type fileRecord struct {
	ID           int                `yaml:"id"           validate:"gte=1"`
	Name         string             `yaml:"name"         validate:"required"`
	Icon         string             `yaml:"icon"`
	Image        string             `yaml:"image"`
	Instructions string             `yaml:"instructions"`
	Tags         map[string]*string `yaml:"tags"`
}

type fileCatalog struct {
	Recipes []fileRecord `yaml:"recipes"`
}

// Open returns an index over the files matching pattern, or over the
// built-in recipes when pattern is empty.
func Open(pattern string, log *logger.Logger) (*MemoryIndex, error) {
	if pattern == "" {
		return NewSeededIndex(log), nil
	}
	records, err := LoadGlob(pattern)
	if err != nil {
		return nil, err
	}
	log.Info("loaded %d recipes from %s", len(records), pattern)
	return NewMemoryIndex(records, log)
}

// LoadGlob loads every file matching pattern ("**" supported) in lexical
// path order and concatenates their records.
func LoadGlob(pattern string) ([]domain.RecipeRecord, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", pattern, domain.ErrNoCatalog)
	}
	sort.Strings(matches)

	var out []domain.RecipeRecord
	for _, path := range matches {
		records, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, records...)
	}
	return out, nil
}

// LoadFile loads a single catalog file. The format is chosen by extension:
// .yaml, .yml and .json are read as YAML documents, .xlsx as a spreadsheet.
func LoadFile(path string) ([]domain.RecipeRecord, error) {
	var (
		raw []fileRecord
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		raw, err = readYAML(path)
	case ".xlsx":
		raw, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	out := make([]domain.RecipeRecord, 0, len(raw))
	for i, fr := range raw {
		rec, err := fr.toRecord()
		if err != nil {
			return nil, fmt.Errorf("%s: recipe[%d]: %w", path, i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func readYAML(path string) ([]fileRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var doc fileCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return doc.Recipes, nil
}

// xlsxColumns are the header names understood in spreadsheets. Only id and
// name are required.
var xlsxColumns = []string{"id", "name", "icon", "image", "instructions", "taste", "meal", "time", "ingredient"}

func readXLSX(path string) ([]fileRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("spreadsheet has no rows")
	}

	headers := map[string]int{}
	for i, h := range rows[0] {
		headers[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range []string{"id", "name"} {
		if _, ok := headers[req]; !ok {
			return nil, fmt.Errorf("missing required column: %s", req)
		}
	}

	var out []fileRecord
	for r := 1; r < len(rows); r++ {
		row := rows[r]
		cell := func(name string) string {
			if i, ok := headers[name]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		if isBlank(row) {
			continue
		}

		id, err := strconv.Atoi(cell("id"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid id %q", r+1, cell("id"))
		}
		fr := fileRecord{
			ID:           id,
			Name:         cell("name"),
			Icon:         cell("icon"),
			Image:        cell("image"),
			Instructions: cell("instructions"),
			Tags:         map[string]*string{},
		}
		for _, c := range domain.Categories() {
			if v := cell(c.String()); v != "" {
				fr.Tags[c.String()] = &v
			}
		}
		out = append(out, fr)
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (fr fileRecord) toRecord() (domain.RecipeRecord, error) {
	if err := validate.Struct(fr); err != nil {
		return domain.RecipeRecord{}, formatValidationErrors(err)
	}

	var tags domain.Tags
	for key, v := range fr.Tags {
		c, ok := domain.CategoryFromString(strings.ToLower(strings.TrimSpace(key)))
		if !ok {
			return domain.RecipeRecord{}, fmt.Errorf("%q: %w", key, domain.ErrUnknownCategory)
		}
		if v == nil {
			continue
		}
		tags[c] = domain.TagValue(strings.TrimSpace(*v))
	}

	return domain.RecipeRecord{
		ID:           fr.ID,
		Name:         fr.Name,
		Icon:         fr.Icon,
		Image:        fr.Image,
		Instructions: fr.Instructions,
		Tags:         tags,
	}, nil
}

func formatValidationErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation: %s", field, e.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
