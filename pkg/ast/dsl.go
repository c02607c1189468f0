package ast

// Reference and literal helpers.

func Ref(name string) *Reference {
	return NewReference(name)
}

func Num(value uint64) *NumeralLiteral {
	return NewNumeralLiteral(value)
}

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Str(value string) *TextLiteral {
	return NewTextLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Nil() *NilLiteral {
	return NewNilLiteral()
}

func List(elements ...Term) *ListLiteral {
	return NewListLiteral(elements)
}

// Call helpers.

func Call(name string, args ...Term) *FunctionCall {
	return NewFunctionCall(Ref(name), args)
}

func Nums(values ...uint64) *ListLiteral {
	elems := make([]Term, len(values))
	for i, v := range values {
		elems[i] = Num(v)
	}
	return NewListLiteral(elems)
}
