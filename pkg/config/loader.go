package config

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// RCFile is the extensionless config name; it may hold YAML or HCL
const RCFile = ".migraterc"

type decodeFunc func(data []byte, filename string) (*Config, error)

// decoders maps a lowercase file extension to its decoder
var decoders = map[string]decodeFunc{
	".hcl":  decodeHCL,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".json": decodeJSON,
}

// 📥 LoadConfig reads, decodes and validates the config file at path.
// Relative source paths are resolved against the file's directory.
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	cfg, err := decode(data, path)
	if err != nil {
		return nil, err
	}

	if err := Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.location = path
	cfg.resolve(filepath.Dir(path))

	logger.Debug().Str("path", path).Str("config", cfg.String()).Msg("config loaded")
	return cfg, nil
}

func decoderFor(path string) (decodeFunc, error) {
	if filepath.Base(path) == RCFile {
		return decodeRC, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, errors.Errorf("unsupported file extension %q (want .hcl, .yaml, .yml or .json)", ext)
	}
	return decode, nil
}

// decodeRC tries YAML first, then HCL
func decodeRC(data []byte, filename string) (*Config, error) {
	if cfg, err := decodeYAML(data, filename); err == nil {
		return cfg, nil
	}
	cfg, err := decodeHCL(data, filename)
	if err != nil {
		return nil, errors.Errorf("%s is neither YAML nor HCL: %w", RCFile, err)
	}
	return cfg, nil
}

func decodeJSON(data []byte, _ string) (*Config, error) {
	cfg := &Config{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return cfg, nil
}

func decodeYAML(data []byte, _ string) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty document decodes to EOF; treat it as an empty config
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return cfg, nil
}

// hclVariables are the names an HCL config may reference
func hclVariables() map[string]cty.Value {
	return map[string]cty.Value{
		"default_root":      cty.StringVal(DefaultWalkRoot),
		"default_extension": cty.StringVal(".dart"),
	}
}

func decodeHCL(data []byte, filename string) (*Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	cfg := &Config{}
	if diags := gohcl.DecodeBody(file.Body, &hcl.EvalContext{Variables: hclVariables()}, cfg); diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return cfg, nil
}
