package transfer

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/viant/simdash/internal/yml"
	"github.com/viant/simdash/model"
)

//go:embed samples/*.yaml
var samples embed.FS

// Samples returns the names of the embedded sample models.
func Samples() []string {
	entries, _ := samples.ReadDir("samples")
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	sort.Strings(result)
	return result
}

func sample(name string) (*model.Definition, error) {
	data, err := samples.ReadFile(path.Join("samples", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown sample model %q", name)
	}
	return decodeYAML(data)
}

// DecodeModel decodes a JSON or YAML model document; format is guessed from
// the location extension, defaulting to JSON.
func DecodeModel(location string, data []byte) (*model.Definition, error) {
	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	}
	return model.DecodeDefinition(data)
}

func decodeYAML(data []byte) (*model.Definition, error) {
	node, err := yml.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}
	if node.Lookup("kind") == nil {
		return nil, fmt.Errorf("model kind was not %v", model.DefinitionKind)
	}
	asJSON, err := json.Marshal(node.Interface())
	if err != nil {
		return nil, fmt.Errorf("failed to convert model: %w", err)
	}
	return model.DecodeDefinition(asJSON)
}
