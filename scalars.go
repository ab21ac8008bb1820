package twconfig

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// checkScalars walks the raw YAML tree for what the decoder would rewrite
// without complaint: null entries become "", and colour keys written as
// numbers or booleans lose their spelling (050 reads back as 40).
func checkScalars(data []byte, source string) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return malformed(source, "", "cannot parse declaration", err)
	}

	if err := checkSequence(lookup(&root, KeyContent), KeyContent, source); err != nil {
		return err
	}
	if err := checkColors(lookup(&root, strings.Split(KeyColors, ".")...), source); err != nil {
		return err
	}
	return checkSequence(lookup(&root, KeyPlugins), KeyPlugins, source)
}

func checkSequence(n *yaml.Node, key, source string) error {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	for i, item := range n.Content {
		if isNull(resolve(item)) {
			return malformed(source, fmt.Sprintf("%s[%d]", key, i), "entry is null", nil)
		}
	}
	return nil
}

func checkColors(n *yaml.Node, source string) error {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	return eachPair(n, func(key, value *yaml.Node) error {
		familyKey := KeyColors + "." + key.Value
		if !keyPreserved(key) {
			return malformed(source, familyKey, keyReason(key), nil)
		}
		value = resolve(value)
		if isNull(value) {
			return malformed(source, familyKey, "family is null", nil)
		}
		if value.Kind != yaml.MappingNode {
			return nil
		}
		return eachPair(value, func(key, value *yaml.Node) error {
			shadeKey := familyKey + "." + key.Value
			if !keyPreserved(key) {
				return malformed(source, shadeKey, keyReason(key), nil)
			}
			if isNull(resolve(value)) {
				// An unquoted "#16a34a" is a YAML comment.
				return malformed(source, shadeKey, "colour value is null (quote values starting with #)", nil)
			}
			return nil
		})
	})
}

// keyPreserved reports whether a mapping key reads back with the spelling
// it was written with. Only strings and plain decimal integers do.
func keyPreserved(key *yaml.Node) bool {
	switch key.ShortTag() {
	case "!!str":
		return true
	case "!!int":
		n, err := strconv.ParseInt(key.Value, 10, 64)
		return err == nil && strconv.FormatInt(n, 10) == key.Value
	}
	return false
}

func keyReason(key *yaml.Node) string {
	return fmt.Sprintf("key %q is read as %s, quote it to keep its spelling",
		key.Value, strings.TrimPrefix(key.ShortTag(), "!!"))
}

// eachPair calls fn for every key/value pair of a mapping, following
// merge keys ("<<") into the mappings they pull in.
func eachPair(n *yaml.Node, fn func(key, value *yaml.Node) error) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if key.ShortTag() != "!!merge" {
			if err := fn(key, value); err != nil {
				return err
			}
			continue
		}

		merged := resolve(value)
		sources := []*yaml.Node{merged}
		if merged != nil && merged.Kind == yaml.SequenceNode {
			sources = merged.Content
		}
		for _, src := range sources {
			src = resolve(src)
			if src == nil || src.Kind != yaml.MappingNode {
				continue
			}
			if err := eachPair(src, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// lookup follows path through nested mappings and returns the resolved
// node, or nil when any step is missing.
func lookup(n *yaml.Node, path ...string) *yaml.Node {
	n = resolve(n)
	for _, name := range path {
		if n == nil || n.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		_ = eachPair(n, func(key, value *yaml.Node) error {
			if key.Value == name {
				next = value
			}
			return nil
		})
		n = resolve(next)
	}
	return n
}

// resolve unwraps document and alias nodes.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}
