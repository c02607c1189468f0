package ast

type NodeType string

const (
	NodeReference      NodeType = "Reference"
	NodeFunctionCall   NodeType = "FunctionCall"
	NodeNumeralLiteral NodeType = "NumeralLiteral"
	NodeIntegerLiteral NodeType = "IntegerLiteral"
	NodeTextLiteral    NodeType = "TextLiteral"
	NodeBooleanLiteral NodeType = "BooleanLiteral"
	NodeNilLiteral     NodeType = "NilLiteral"
	NodeListLiteral    NodeType = "ListLiteral"
)

// Term is any node a driver can hand to the interpreter. Terms only name and
// apply prelude closures; there is no abstraction node.
type Term interface {
	NodeType() NodeType
	isTerm()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isTerm()              {}

// Reference

type Reference struct {
	nodeImpl

	Name string `json:"name"`
}

func NewReference(name string) *Reference {
	return &Reference{nodeImpl: newNodeImpl(NodeReference), Name: name}
}

// FunctionCall applies the binding named by Callee to Args, left to right.

type FunctionCall struct {
	nodeImpl

	Callee *Reference `json:"callee"`
	Args   []Term     `json:"arguments"`
}

func NewFunctionCall(callee *Reference, args []Term) *FunctionCall {
	return &FunctionCall{nodeImpl: newNodeImpl(NodeFunctionCall), Callee: callee, Args: args}
}

// Literals

type NumeralLiteral struct {
	nodeImpl

	Value uint64 `json:"value"`
}

func NewNumeralLiteral(value uint64) *NumeralLiteral {
	return &NumeralLiteral{nodeImpl: newNodeImpl(NodeNumeralLiteral), Value: value}
}

type IntegerLiteral struct {
	nodeImpl

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type TextLiteral struct {
	nodeImpl

	Value string `json:"value"`
}

func NewTextLiteral(value string) *TextLiteral {
	return &TextLiteral{nodeImpl: newNodeImpl(NodeTextLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type NilLiteral struct {
	nodeImpl
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{nodeImpl: newNodeImpl(NodeNilLiteral)}
}

type ListLiteral struct {
	nodeImpl

	Elements []Term `json:"elements"`
}

func NewListLiteral(elements []Term) *ListLiteral {
	return &ListLiteral{nodeImpl: newNodeImpl(NodeListLiteral), Elements: elements}
}
