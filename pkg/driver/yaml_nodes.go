package driver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"church/interpreter-go/pkg/ast"
)

// termList decodes a sequence of terms. Scalars are shorthands: a string
// names a binding, an integer is a native integer, null is nil, a sequence
// is a list. Mappings carry exactly one of the keys in termKeys.
//
// Elements are decoded from the raw nodes because yaml.v3 skips custom
// unmarshalers for null scalars and would drop them from the slice.
type termList []ast.Term

func (l *termList) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a sequence of terms", value.Line)
	}
	out := make(termList, 0, len(value.Content))
	for _, item := range value.Content {
		term, err := decodeTerm(item)
		if err != nil {
			return err
		}
		out = append(out, term)
	}
	*l = out
	return nil
}

type termFields struct {
	Numeral *uint64  `yaml:"numeral"`
	Int     *int64   `yaml:"int"`
	Text    *string  `yaml:"text"`
	Bool    *bool    `yaml:"bool"`
	List    termList `yaml:"list"`
	Ref     *string  `yaml:"ref"`
	Call    *string  `yaml:"call"`
	Args    termList `yaml:"args"`
}

var termKeys = map[string]struct{}{
	"numeral": {},
	"int":     {},
	"text":    {},
	"bool":    {},
	"list":    {},
	"ref":     {},
	"call":    {},
	"args":    {},
}

func resolveAlias(value *yaml.Node) *yaml.Node {
	for value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	return value
}

func decodeTerm(value *yaml.Node) (ast.Term, error) {
	value = resolveAlias(value)
	switch value.Kind {
	case yaml.ScalarNode:
		return decodeScalarTerm(value)
	case yaml.SequenceNode:
		var elems termList
		if err := elems.UnmarshalYAML(value); err != nil {
			return nil, err
		}
		return ast.NewListLiteral(elems), nil
	case yaml.MappingNode:
		return decodeMappingTerm(value)
	case yaml.AliasNode:
		return nil, fmt.Errorf("line %d: dangling alias", value.Line)
	default:
		return nil, fmt.Errorf("line %d: unsupported term", value.Line)
	}
}

func decodeScalarTerm(value *yaml.Node) (ast.Term, error) {
	switch value.ShortTag() {
	case "!!null":
		return ast.Nil(), nil
	case "!!int":
		var v int64
		if err := value.Decode(&v); err != nil {
			return nil, err
		}
		return ast.Int(v), nil
	case "!!bool":
		var v bool
		if err := value.Decode(&v); err != nil {
			return nil, err
		}
		return ast.Bool(v), nil
	case "!!str":
		name := strings.TrimSpace(value.Value)
		if name == "" {
			return nil, fmt.Errorf("line %d: empty reference", value.Line)
		}
		return ast.Ref(name), nil
	default:
		return nil, fmt.Errorf("line %d: unsupported scalar %s", value.Line, value.ShortTag())
	}
}

func decodeMappingTerm(value *yaml.Node) (ast.Term, error) {
	var present []string
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		if _, ok := termKeys[key]; !ok {
			return nil, fmt.Errorf("line %d: unknown term field %q", value.Content[i].Line, key)
		}
		if key == "args" {
			continue
		}
		if resolveAlias(value.Content[i+1]).ShortTag() == "!!null" {
			return nil, fmt.Errorf("line %d: %s must not be null", value.Content[i].Line, key)
		}
		present = append(present, key)
	}
	var fields termFields
	if err := value.Decode(&fields); err != nil {
		return nil, err
	}
	if len(present) != 1 {
		sort.Strings(present)
		return nil, fmt.Errorf("line %d: term needs exactly one of numeral, int, text, bool, list, ref, call (got %s)", value.Line, strings.Join(present, ", "))
	}
	if fields.Args != nil && fields.Call == nil {
		return nil, fmt.Errorf("line %d: args given without call", value.Line)
	}

	switch present[0] {
	case "numeral":
		return ast.Num(*fields.Numeral), nil
	case "int":
		return ast.Int(*fields.Int), nil
	case "text":
		return ast.Str(*fields.Text), nil
	case "bool":
		return ast.Bool(*fields.Bool), nil
	case "list":
		return ast.NewListLiteral(fields.List), nil
	case "ref":
		return ast.Ref(strings.TrimSpace(*fields.Ref)), nil
	default:
		return ast.NewFunctionCall(ast.Ref(strings.TrimSpace(*fields.Call)), fields.Args), nil
	}
}

// expectationText normalises `expect` to the form interpreter.Stringify
// produces.
func expectationText(value *yaml.Node) (string, error) {
	value = resolveAlias(value)
	switch value.Kind {
	case yaml.ScalarNode:
		return scalarText(value)
	case yaml.SequenceNode:
		parts := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return "", fmt.Errorf("line %d: expect sequences may only hold scalars", item.Line)
			}
			text, err := scalarText(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, text)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return "", fmt.Errorf("line %d: expect must be a scalar or a sequence", value.Line)
	}
}

func scalarText(value *yaml.Node) (string, error) {
	switch value.ShortTag() {
	case "!!null":
		return "nil", nil
	case "!!int":
		var v int64
		if err := value.Decode(&v); err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case "!!bool":
		var v bool
		if err := value.Decode(&v); err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	default:
		return value.Value, nil
	}
}
