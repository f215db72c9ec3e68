package container

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"
)

var ErrUnknownFormat = errors.New("unknown config format")

type unmarshalFunc func(data []byte, out interface{}) error

var formats = map[string]unmarshalFunc{
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".json": jsoniter.Unmarshal,
}

// Load decodes filePath into out, picking yaml or json from the extension.
func Load(filePath string, out interface{}) (err error) {
	unmarshal, exists := formats[strings.ToLower(filepath.Ext(filePath))]
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, filePath)
	}
	return load(filePath, out, unmarshal)
}

func Yaml(filePath string, out interface{}) (err error) {
	return load(filePath, out, yaml.Unmarshal)
}

func Json(filePath string, out interface{}) (err error) {
	return load(filePath, out, jsoniter.Unmarshal)
}

func load(filePath string, out interface{}, unmarshal unmarshalFunc) (err error) {
	conf, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err = unmarshal(conf, out); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}
	return nil
}
