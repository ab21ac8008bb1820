package twconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DeclarationNames are the well-known file names Load looks for, in order.
// JSON declarations are read by the YAML parser (JSON is valid YAML).
var DeclarationNames = []string{
	"tailwind.config.yaml",
	"tailwind.config.yml",
	"tailwind.config.json",
}

// Declaration keys. Each of them must be present in every declaration.
const (
	KeyContent = "content"
	KeyColors  = "theme.extend.colors"
	KeyPlugins = "plugins"
)

var requiredKeys = []string{KeyContent, KeyColors, KeyPlugins}

// Locate returns the path of the first well-known declaration file in dir.
func Locate(dir string) (string, error) {
	for _, name := range DeclarationNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %v)", ErrDeclarationNotFound, dir, DeclarationNames)
}

// Load reads the declaration from the current directory.
func Load() (*Document, error) {
	path, err := Locate(".")
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and validates the declaration at path.
func LoadFile(path string) (*Document, error) {
	doc, _, err := loadFile(path)
	return doc, err
}

// LoadBytes validates an in-memory declaration.
func LoadBytes(data []byte) (*Document, error) {
	doc, _, err := decode(data, "")
	return doc, err
}

func loadFile(path string) (*Document, []string, error) {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrDeclarationNotFound, path)
		}
		return nil, nil, fmt.Errorf("reading declaration %s: %w", path, err)
	}
	return decode(data, path)
}

// decode parses data and checks it against the declaration schema.
// The second return value lists keys present in the input that the schema
// does not know about.
func decode(data []byte, source string) (*Document, []string, error) {
	k := koanf.New(".")
	if err := k.Load(bytesProvider(data), yaml.Parser()); err != nil {
		return nil, nil, malformed(source, "", "cannot parse declaration", err)
	}

	for _, key := range requiredKeys {
		if !k.Exists(key) {
			return nil, nil, malformed(source, key, "required key is missing", nil)
		}
		if k.Get(key) == nil {
			return nil, nil, malformed(source, key, "required key is null", nil)
		}
	}
	if err := checkScalars(data, source); err != nil {
		return nil, nil, err
	}

	var decl Declaration
	if err := unmarshalStrict(k, KeyContent, &decl.Content); err != nil {
		return nil, nil, malformed(source, KeyContent, "expected a sequence of strings", err)
	}
	if err := unmarshalStrict(k, KeyColors, &decl.Theme.Extend.Colors); err != nil {
		return nil, nil, malformed(source, KeyColors, "expected a mapping of colour families to shade/value mappings of strings", err)
	}
	if err := unmarshalStrict(k, KeyPlugins, &decl.Plugins); err != nil {
		return nil, nil, malformed(source, KeyPlugins, "expected a sequence of plugin references", err)
	}

	return decl.document(), unknownKeys(k), nil
}

// unmarshalStrict decodes the value at path without any weak type
// conversion, so a number never silently becomes a string.
func unmarshalStrict(k *koanf.Koanf, path string, out any) error {
	return k.UnmarshalWithConf(path, out, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: false,
			ErrorUnused:      true,
		},
	})
}

// unknownKeys reports the shortest key paths outside the schema.
func unknownKeys(k *koanf.Koanf) []string {
	known := map[string][]string{
		"":             {"content", "theme", "plugins"},
		"theme":        {"extend"},
		"theme.extend": {"colors"},
	}

	var unknown []string
	for parent, allowed := range known {
		if parent != "" && !isMap(k, parent) {
			continue
		}
		for _, key := range k.MapKeys(parent) {
			if slices.Contains(allowed, key) {
				continue
			}
			if parent == "" {
				unknown = append(unknown, key)
			} else {
				unknown = append(unknown, parent+"."+key)
			}
		}
	}
	sort.Strings(unknown)
	return unknown
}

func isMap(k *koanf.Koanf, path string) bool {
	_, ok := k.Get(path).(map[string]interface{})
	return ok
}

// bytesProvider feeds an in-memory declaration to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) {
	return b, nil
}

func (b bytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("bytes provider does not support Read")
}
