package influence

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// SupportedSchema is the semver constraint input documents must satisfy.
const SupportedSchema = "^1.0"

type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrMissingSchemaVersion is returned for documents without schema_version.
	ErrMissingSchemaVersion = constError("input document has no schema_version")

	// ErrUnsupportedSchema is returned when schema_version is not a valid
	// version or does not satisfy SupportedSchema.
	ErrUnsupportedSchema = constError("unsupported input schema version")

	// ErrEmptyDocument is returned for documents without any content.
	ErrEmptyDocument = constError("input document is empty")

	// ErrNonFinite is returned for documents holding NaN or infinite values.
	ErrNonFinite = constError("input document holds non-finite values")
)

// Document is one region's influence balance plus optional reference values
// that override the fact and assumption tables.
type Document struct {
	SchemaVersion string `json:"schema_version"       yaml:"schema_version"`
	AGS           string `json:"ags,omitempty"        yaml:"ags,omitempty"`
	Name          string `json:"name,omitempty"       yaml:"name,omitempty"`
	Year          int    `json:"year,omitempty"       yaml:"year,omitempty"`

	Balance `yaml:",inline"`

	Facts       map[string]float64 `json:"facts,omitempty"       yaml:"facts,omitempty"`
	Assumptions map[string]float64 `json:"assumptions,omitempty" yaml:"assumptions,omitempty"`
}

// Region returns a human readable identifier of the document's region.
func (d *Document) Region() string {
	switch {
	case d.AGS != "" && d.Name != "":
		return d.AGS + " " + d.Name
	case d.AGS != "":
		return d.AGS
	case d.Name != "":
		return d.Name
	default:
		return "unknown"
	}
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML or JSON document and checks its schema version.
// Keys the model does not know are ignored, so complete result dumps of the
// influence balance load as they are.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("parsing input document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document's schema version against SupportedSchema
// and rejects NaN or infinite figures, facts and assumptions.
func (d *Document) Validate() error {
	if err := d.validateSchema(); err != nil {
		return err
	}
	if bad := d.nonFinite(); len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrNonFinite, strings.Join(bad, ", "))
	}
	return nil
}

func (d *Document) validateSchema() error {
	if d.SchemaVersion == "" {
		return ErrMissingSchemaVersion
	}
	v, err := semver.NewVersion(d.SchemaVersion)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, d.SchemaVersion, err)
	}
	c, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, SupportedSchema)
	}
	return nil
}

// nonFinite returns the keys of every NaN or infinite value in d.
func (d *Document) nonFinite() []string {
	var bad []string
	collectNonFinite(reflect.ValueOf(d.Balance), "", &bad)
	for _, m := range []struct {
		name   string
		values map[string]float64
	}{{"facts", d.Facts}, {"assumptions", d.Assumptions}} {
		keys := lo.Keys(lo.PickBy(m.values, func(_ string, v float64) bool { return !isFinite(v) }))
		slices.Sort(keys)
		for _, k := range keys {
			bad = append(bad, m.name+"."+k)
		}
	}
	return bad
}

func collectNonFinite(v reflect.Value, path string, bad *[]string) {
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			key, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
			switch {
			case key == "":
				key = path
			case path != "":
				key = path + "." + key
			}
			collectNonFinite(v.Field(i), key, bad)
		}
	case reflect.Float64:
		if !isFinite(v.Float()) {
			*bad = append(*bad, path)
		}
	default:
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
