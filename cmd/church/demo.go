package main

import (
	"fmt"
	"os"

	"church/interpreter-go/pkg/ast"
	"church/interpreter-go/pkg/interpreter"
)

type demoLine struct {
	label string
	term  ast.Term
	mode  interpreter.DecodeMode
}

var demoLines = []demoLine{
	{"1 + 2", ast.Call("add", ast.Num(1), ast.Num(2)), interpreter.DecodeNumeral},
	{"2 * 3", ast.Call("mul", ast.Num(2), ast.Num(3)), interpreter.DecodeNumeral},
	{"5 - 2", ast.Call("sub", ast.Num(5), ast.Num(2)), interpreter.DecodeNumeral},
	{"if true then A else B", ast.Call("if", ast.Bool(true), ast.Str("A"), ast.Str("B")), interpreter.DecodeText},
	{"First (1, 2)", ast.Call("first", ast.Call("pair", ast.Num(1), ast.Num(2))), interpreter.DecodeNumeral},
	{"Second (1, 2)", ast.Call("second", ast.Call("pair", ast.Num(1), ast.Num(2))), interpreter.DecodeNumeral},
	{"Head [1, 2, 3]", ast.Call("head", ast.Nums(1, 2, 3)), interpreter.DecodeNumeral},
	{"map succ [1, 2, 3]", ast.Call("map", ast.Ref("succ"), ast.Nums(1, 2, 3)), interpreter.DecodeNumeralList},
	{"filter zero? [0, 1, 0, 2]", ast.Call("filter", ast.Ref("zero?"), ast.Nums(0, 1, 0, 2)), interpreter.DecodeNumeralList},
	{"fold add 0 [1, 2, 3]", ast.Call("fold", ast.Ref("add"), ast.Num(0), ast.Nums(1, 2, 3)), interpreter.DecodeNumeral},
	{"3!", ast.Call("numeral-factorial", ast.Num(3)), interpreter.DecodeNumeral},
	{"5!", ast.Call("factorial", ast.Int(5)), interpreter.DecodeInteger},
}

func runDemo(args []string) int {
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "church demo does not take arguments")
		return 1
	}
	interp := interpreter.New()
	for _, line := range demoLines {
		val, err := interp.Evaluate(line.term)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", line.label, err)
			return 1
		}
		out, err := interpreter.Render(val, line.mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", line.label, err)
			return 1
		}
		fmt.Fprintf(os.Stdout, "%s = %s\n", line.label, out)
	}
	return 0
}
