package codec

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"
)

var ErrUnknownCodec = errors.New("unknown codec")

type Codec interface {
	Name() string
	Marshal(v interface{}) (data []byte, err error)
	Unmarshal(data []byte, v interface{}) (err error)
}

var (
	JSON Codec = jsonCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary}
	YAML Codec = yamlCodec{}
)

var codecs = map[string]Codec{
	"json": JSON,
	"yaml": YAML,
	"yml":  YAML,
}

func Get(name string) (c Codec, err error) {
	c, exists := codecs[strings.ToLower(name)]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

type jsonCodec struct {
	api jsoniter.API
}

func (jsonCodec) Name() string {
	return "json"
}

func (j jsonCodec) Marshal(v interface{}) (data []byte, err error) {
	return j.api.Marshal(v)
}

func (j jsonCodec) Unmarshal(data []byte, v interface{}) (err error) {
	return j.api.Unmarshal(data, v)
}

type yamlCodec struct{}

func (yamlCodec) Name() string {
	return "yaml"
}

func (yamlCodec) Marshal(v interface{}) (data []byte, err error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Unmarshal(data []byte, v interface{}) (err error) {
	return yaml.Unmarshal(data, v)
}
