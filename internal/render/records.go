// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// writeRecordsYAML emits rows as a sequence of flow mappings, keys in header order.
func writeRecordsYAML(w io.Writer, header []string, rows [][]string) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rows {
		m := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		for i, key := range header {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: key},
				&yaml.Node{Kind: yaml.ScalarNode, Value: val},
			)
		}
		seq.Content = append(seq.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}

	return enc.Close()
}
