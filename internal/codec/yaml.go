package codec

import (
	"fmt"
	"io"

	"netupdate/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse reads a YAML mapping of scalar values, keeping key order.
// JSON objects are valid input too.
func (c *YAMLCodec) Parse(r io.Reader) (*domain.DeviceTable, error) {
	var doc yaml.Node
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to parse YAML: expected mapping at line %d", root.Line)
	}

	table := domain.NewDeviceTable()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("failed to parse YAML: value for %q at line %d is not a scalar", key.Value, value.Line)
		}
		table.Set(key.Value, value.Value)
	}

	return table, nil
}

// ExportTable writes table as a YAML mapping in table order
func (c *YAMLCodec) ExportTable(table *domain.DeviceTable, w io.Writer) error {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	table.Each(func(name, ip string) {
		node.Content = append(node.Content, strNode(name), strNode(ip))
	})
	if len(node.Content) == 0 {
		node.Style = yaml.FlowStyle
	}
	return c.encode(node, w)
}

// ExportList writes items as a YAML sequence
func (c *YAMLCodec) ExportList(items []string, w io.Writer) error {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, item := range items {
		node.Content = append(node.Content, strNode(item))
	}
	if len(node.Content) == 0 {
		node.Style = yaml.FlowStyle
	}
	return c.encode(node, w)
}

func (c *YAMLCodec) encode(node *yaml.Node, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(node); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
