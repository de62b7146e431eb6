// Code generated by gen/gen_tables.py from the tree-sitter-sus grammar;
// DO NOT EDIT.

package grammar

import (
	sus "github.com/VonTum/sus-compiler"
	"github.com/VonTum/sus-compiler/lexer"
	"github.com/VonTum/sus-compiler/parser"
)

var susTables = &parser.Tables{
	Language:        "sus",
	Version:         14,
	TokenCount:      48,
	StateCount:      249,
	LargeStateCount: 2,
	StartState:      1,
	KeywordCapture:  1,
	Lexer:           lexDFA,
	Keywords:        keywordDFA,

	Symbols: []parser.SymbolInfo{
		0:  {Name: "end", Named: true},
		1:  {Name: "identifier", Named: true, Visible: true},
		2:  {Name: "module", Visible: true},
		3:  {Name: ":", Visible: true},
		4:  {Name: "->", Visible: true},
		5:  {Name: "<", Visible: true},
		6:  {Name: ">", Visible: true},
		7:  {Name: "=", Visible: true},
		8:  {Name: "{", Visible: true},
		9:  {Name: "}", Visible: true},
		10: {Name: "interface", Visible: true},
		11: {Name: "reg", Visible: true},
		12: {Name: "initial", Visible: true},
		13: {Name: "if", Visible: true},
		14: {Name: "else", Visible: true},
		15: {Name: "for", Visible: true},
		16: {Name: "in", Visible: true},
		17: {Name: "..", Visible: true},
		18: {Name: "input", Visible: true},
		19: {Name: "output", Visible: true},
		20: {Name: "state", Visible: true},
		21: {Name: "gen", Visible: true},
		22: {Name: "'", Visible: true},
		23: {Name: "+", Visible: true},
		24: {Name: "-", Visible: true},
		25: {Name: "*", Visible: true},
		26: {Name: "!", Visible: true},
		27: {Name: "|", Visible: true},
		28: {Name: "&", Visible: true},
		29: {Name: "^", Visible: true},
		30: {Name: "==", Visible: true},
		31: {Name: "!=", Visible: true},
		32: {Name: "<=", Visible: true},
		33: {Name: ">=", Visible: true},
		34: {Name: "/", Visible: true},
		35: {Name: "%", Visible: true},
		36: {Name: ".", Visible: true},
		37: {Name: "(", Visible: true},
		38: {Name: ")", Visible: true},
		39: {Name: "[", Visible: true},
		40: {Name: "]", Visible: true},
		41: {Name: "::", Visible: true},
		42: {Name: ";", Visible: true},
		43: {Name: "number", Named: true, Visible: true},
		44: {Name: ",", Visible: true},
		45: {Name: "\n", Visible: true},
		46: {Name: "single_line_comment", Named: true, Visible: true},
		47: {Name: "multi_line_comment", Named: true, Visible: true},
		48: {Name: "source_file", Named: true, Visible: true},
		49: {Name: "module", Named: true, Visible: true},
		50: {Name: "interface_ports", Named: true, Visible: true},
		51: {Name: "_interface_ports_output", Named: true},
		52: {Name: "template_declaration_arguments", Named: true, Visible: true},
		53: {Name: "template_declaration_type", Named: true, Visible: true},
		54: {Name: "block", Named: true, Visible: true},
		55: {Name: "interface_statement", Named: true, Visible: true},
		56: {Name: "decl_assign_statement", Named: true, Visible: true},
		57: {Name: "assign_left_side", Named: true, Visible: true},
		58: {Name: "assign_to", Named: true, Visible: true},
		59: {Name: "write_modifiers", Named: true, Visible: true},
		60: {Name: "if_statement", Named: true, Visible: true},
		61: {Name: "for_statement", Named: true, Visible: true},
		62: {Name: "declaration_list", Named: true, Visible: true},
		63: {Name: "declaration", Named: true, Visible: true},
		64: {Name: "latency_specifier", Named: true, Visible: true},
		65: {Name: "_type", Named: true},
		66: {Name: "array_type", Named: true, Visible: true},
		67: {Name: "_expression", Named: true},
		68: {Name: "unary_op", Named: true, Visible: true},
		69: {Name: "binary_op", Named: true, Visible: true},
		70: {Name: "array_op", Named: true, Visible: true},
		71: {Name: "func_call", Named: true, Visible: true},
		72: {Name: "field_access", Named: true, Visible: true},
		73: {Name: "parenthesis_expression_list", Named: true, Visible: true},
		74: {Name: "parenthesis_expression", Named: true, Visible: true},
		75: {Name: "array_bracket_expression", Named: true, Visible: true},
		76: {Name: "template_global", Named: true, Visible: true},
		77: {Name: "template_type_param", Named: true, Visible: true},
		78: {Name: "template_value_param", Named: true, Visible: true},
		79: {Name: "template_params", Named: true, Visible: true},
		80: {Name: "_comma", Named: true},
		81: {Name: "_linebreak"},
		82: {Name: "source_file_repeat1"},
		83: {Name: "template_declaration_arguments_repeat1"},
		84: {Name: "block_repeat1"},
		85: {Name: "assign_left_side_repeat1"},
		86: {Name: "write_modifiers_repeat1"},
		87: {Name: "declaration_list_repeat1"},
		88: {Name: "parenthesis_expression_list_repeat1"},
		89: {Name: "template_global_repeat1"},
		90: {Name: "template_params_repeat1"},
		91: {Name: "template_params_repeat2"},
	},

	Fields: []string{
		0:  "",
		1:  "arg",
		2:  "arguments",
		3:  "arr",
		4:  "arr_idx",
		5:  "assign_left",
		6:  "assign_value",
		7:  "block",
		8:  "condition",
		9:  "content",
		10: "declaration_modifiers",
		11: "default_value",
		12: "else_block",
		13: "expr_or_decl",
		14: "for_decl",
		15: "from",
		16: "inputs",
		17: "interface_ports",
		18: "io_port_modifiers",
		19: "is_global_path",
		20: "item",
		21: "latency_specifier",
		22: "left",
		23: "name",
		24: "operator",
		25: "outputs",
		26: "right",
		27: "template_declaration_arguments",
		28: "then_block",
		29: "to",
		30: "type",
		31: "write_modifiers",
	},

	FieldSlices: []parser.FieldMapSlice{
		{Index: 0, Length: 0},
		{Index: 0, Length: 1},
		{Index: 1, Length: 2},
		{Index: 3, Length: 1},
		{Index: 4, Length: 2},
		{Index: 6, Length: 2},
		{Index: 8, Length: 2},
		{Index: 10, Length: 1},
		{Index: 11, Length: 1},
		{Index: 12, Length: 1},
		{Index: 13, Length: 1},
		{Index: 14, Length: 1},
		{Index: 15, Length: 3},
		{Index: 18, Length: 3},
		{Index: 21, Length: 1},
		{Index: 22, Length: 2},
		{Index: 24, Length: 2},
		{Index: 26, Length: 2},
		{Index: 28, Length: 2},
		{Index: 30, Length: 1},
		{Index: 31, Length: 1},
		{Index: 32, Length: 1},
		{Index: 33, Length: 2},
		{Index: 35, Length: 2},
		{Index: 37, Length: 2},
		{Index: 39, Length: 4},
		{Index: 43, Length: 1},
		{Index: 44, Length: 3},
		{Index: 47, Length: 3},
		{Index: 50, Length: 3},
		{Index: 53, Length: 3},
		{Index: 56, Length: 2},
		{Index: 58, Length: 2},
		{Index: 60, Length: 2},
		{Index: 62, Length: 2},
		{Index: 64, Length: 1},
		{Index: 65, Length: 2},
		{Index: 67, Length: 3},
		{Index: 70, Length: 2},
		{Index: 72, Length: 1},
		{Index: 73, Length: 4},
		{Index: 77, Length: 4},
		{Index: 81, Length: 4},
		{Index: 85, Length: 1},
		{Index: 86, Length: 2},
		{Index: 88, Length: 5},
		{Index: 93, Length: 3},
		{Index: 96, Length: 2},
		{Index: 98, Length: 2},
		{Index: 100, Length: 4},
		{Index: 104, Length: 3},
		{Index: 107, Length: 3},
		{Index: 110, Length: 4},
	},

	FieldEntries: []parser.FieldMapEntry{
		{Field: 20, ChildIndex: 0},
		{Field: 20, ChildIndex: 0},
		{Field: 20, ChildIndex: 1, Inherited: true},
		{Field: 20, ChildIndex: 1},
		{Field: 7, ChildIndex: 2},
		{Field: 23, ChildIndex: 1},
		{Field: 20, ChildIndex: 0, Inherited: true},
		{Field: 20, ChildIndex: 1, Inherited: true},
		{Field: 20, ChildIndex: 1},
		{Field: 20, ChildIndex: 2, Inherited: true},
		{Field: 25, ChildIndex: 1, Inherited: true},
		{Field: 16, ChildIndex: 1},
		{Field: 23, ChildIndex: 0},
		{Field: 13, ChildIndex: 0},
		{Field: 20, ChildIndex: 0, Inherited: true},
		{Field: 7, ChildIndex: 3},
		{Field: 17, ChildIndex: 2},
		{Field: 23, ChildIndex: 1},
		{Field: 7, ChildIndex: 3},
		{Field: 23, ChildIndex: 1},
		{Field: 27, ChildIndex: 2},
		{Field: 25, ChildIndex: 1},
		{Field: 19, ChildIndex: 0},
		{Field: 20, ChildIndex: 1},
		{Field: 16, ChildIndex: 1},
		{Field: 25, ChildIndex: 2, Inherited: true},
		{Field: 23, ChildIndex: 1},
		{Field: 30, ChildIndex: 0},
		{Field: 3, ChildIndex: 0},
		{Field: 4, ChildIndex: 1},
		{Field: 25, ChildIndex: 2, Inherited: true},
		{Field: 16, ChildIndex: 2},
		{Field: 23, ChildIndex: 1},
		{Field: 24, ChildIndex: 0},
		{Field: 26, ChildIndex: 1},
		{Field: 13, ChildIndex: 1},
		{Field: 31, ChildIndex: 0},
		{Field: 2, ChildIndex: 1},
		{Field: 23, ChildIndex: 0},
		{Field: 7, ChildIndex: 4},
		{Field: 17, ChildIndex: 3},
		{Field: 23, ChildIndex: 1},
		{Field: 27, ChildIndex: 2},
		{Field: 25, ChildIndex: 2},
		{Field: 18, ChildIndex: 0},
		{Field: 23, ChildIndex: 2},
		{Field: 30, ChildIndex: 1},
		{Field: 10, ChildIndex: 0},
		{Field: 23, ChildIndex: 2},
		{Field: 30, ChildIndex: 1},
		{Field: 19, ChildIndex: 0},
		{Field: 20, ChildIndex: 1},
		{Field: 20, ChildIndex: 2, Inherited: true},
		{Field: 21, ChildIndex: 2},
		{Field: 23, ChildIndex: 1},
		{Field: 30, ChildIndex: 0},
		{Field: 16, ChildIndex: 2},
		{Field: 25, ChildIndex: 3, Inherited: true},
		{Field: 11, ChildIndex: 2},
		{Field: 23, ChildIndex: 0},
		{Field: 17, ChildIndex: 2},
		{Field: 23, ChildIndex: 1},
		{Field: 8, ChildIndex: 1},
		{Field: 28, ChildIndex: 2},
		{Field: 9, ChildIndex: 1},
		{Field: 5, ChildIndex: 0},
		{Field: 6, ChildIndex: 2},
		{Field: 22, ChildIndex: 0},
		{Field: 24, ChildIndex: 1},
		{Field: 26, ChildIndex: 2},
		{Field: 22, ChildIndex: 0},
		{Field: 23, ChildIndex: 2},
		{Field: 20, ChildIndex: 2},
		{Field: 10, ChildIndex: 1},
		{Field: 18, ChildIndex: 0},
		{Field: 23, ChildIndex: 3},
		{Field: 30, ChildIndex: 2},
		{Field: 18, ChildIndex: 0},
		{Field: 21, ChildIndex: 3},
		{Field: 23, ChildIndex: 2},
		{Field: 30, ChildIndex: 1},
		{Field: 10, ChildIndex: 0},
		{Field: 21, ChildIndex: 3},
		{Field: 23, ChildIndex: 2},
		{Field: 30, ChildIndex: 1},
		{Field: 1, ChildIndex: 0},
		{Field: 20, ChildIndex: 2},
		{Field: 20, ChildIndex: 3, Inherited: true},
		{Field: 10, ChildIndex: 1},
		{Field: 18, ChildIndex: 0},
		{Field: 21, ChildIndex: 4},
		{Field: 23, ChildIndex: 3},
		{Field: 30, ChildIndex: 2},
		{Field: 8, ChildIndex: 1},
		{Field: 12, ChildIndex: 4},
		{Field: 28, ChildIndex: 2},
		{Field: 1, ChildIndex: 2},
		{Field: 23, ChildIndex: 0},
		{Field: 20, ChildIndex: 1},
		{Field: 20, ChildIndex: 3},
		{Field: 7, ChildIndex: 6},
		{Field: 14, ChildIndex: 1},
		{Field: 15, ChildIndex: 3},
		{Field: 29, ChildIndex: 5},
		{Field: 20, ChildIndex: 1},
		{Field: 20, ChildIndex: 3},
		{Field: 20, ChildIndex: 4, Inherited: true},
		{Field: 20, ChildIndex: 1},
		{Field: 20, ChildIndex: 2, Inherited: true},
		{Field: 20, ChildIndex: 4},
		{Field: 20, ChildIndex: 1},
		{Field: 20, ChildIndex: 2, Inherited: true},
		{Field: 20, ChildIndex: 4},
		{Field: 20, ChildIndex: 5, Inherited: true},
	},

	LexModes: []uint16{
		0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 1,
		2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
		2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 2, 2, 2,
		2, 2, 2, 2, 1, 2, 2, 1, 2, 2, 2, 1, 2, 2, 1, 2,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0,
		0, 0, 0, 1, 0, 1, 1, 1, 0, 0, 1, 1, 0, 0, 1, 0,
		0, 0, 1, 1, 0, 0, 1, 0, 0, 1, 1, 1, 0, 0, 0, 1,
		1, 1, 0, 1, 0, 0, 0, 1, 1, 1, 1, 0, 1, 0, 1, 0,
		1, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0,
		0, 0, 1, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1,
		1, 1, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 0,
		0, 1, 1, 0, 0, 1, 0, 1, 0, 1, 0, 1, 0, 0, 1, 0,
		0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
		1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	},

	Primary: []uint16{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
		32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47,
		48, 49, 50, 51, 52, 53, 54, 52, 56, 57, 58, 59, 60, 61, 62, 60,
		64, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79,
		80, 81, 69, 83, 84, 85, 86, 87, 88, 89, 90, 91, 92, 93, 94, 95,
		96, 97, 98, 99, 100, 99, 102, 103, 104, 105, 102, 103, 108, 109, 110, 111,
		112, 113, 114, 115, 116, 117, 118, 119, 120, 13, 122, 14, 124, 125, 126, 127,
		11, 16, 130, 131, 132, 133, 134, 12, 136, 137, 30, 139, 33, 141, 21, 143,
		31, 145, 146, 147, 148, 149, 150, 151, 152, 29, 154, 155, 156, 157, 158, 159,
		160, 161, 162, 163, 164, 165, 166, 167, 168, 27, 170, 171, 23, 173, 22, 175,
		150, 177, 178, 179, 180, 20, 182, 183, 184, 185, 186, 187, 188, 189, 157, 44,
		192, 158, 18, 195, 196, 197, 180, 199, 200, 165, 202, 182, 204, 156, 183, 207,
		208, 209, 210, 211, 212, 213, 214, 215, 216, 217, 214, 219, 220, 221, 222, 34,
		224, 225, 226, 227, 228, 229, 230, 231, 232, 233, 234, 235, 236, 237, 238, 239,
		240, 241, 242, 243, 244, 245, 243, 247, 248,
	},

	Large: [][]uint16{
		{
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 3, 3,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		{
			5, 0, 7, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9, 3, 3,
			248, 204, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 120, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
	},

	Small: []parser.SmallState{
		0: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 15, Symbols: []sus.Symbol{9}},
			{Value: 17, Symbols: []sus.Symbol{10}},
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 21, Symbols: []sus.Symbol{12}},
			{Value: 23, Symbols: []sus.Symbol{13}},
			{Value: 25, Symbols: []sus.Symbol{15}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 37, Symbols: []sus.Symbol{43}},
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 43, Symbols: []sus.Symbol{59}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 84, Symbols: []sus.Symbol{86}},
			{Value: 112, Symbols: []sus.Symbol{58}},
			{Value: 130, Symbols: []sus.Symbol{57}},
			{Value: 145, Symbols: []sus.Symbol{63}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 200, Symbols: []sus.Symbol{54, 55, 56, 60, 61}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 45, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		1: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 17, Symbols: []sus.Symbol{10}},
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 21, Symbols: []sus.Symbol{12}},
			{Value: 23, Symbols: []sus.Symbol{13}},
			{Value: 25, Symbols: []sus.Symbol{15}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 37, Symbols: []sus.Symbol{43}},
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 41, Symbols: []sus.Symbol{9}},
			{Value: 43, Symbols: []sus.Symbol{59}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 84, Symbols: []sus.Symbol{86}},
			{Value: 112, Symbols: []sus.Symbol{58}},
			{Value: 145, Symbols: []sus.Symbol{63}},
			{Value: 215, Symbols: []sus.Symbol{57}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 241, Symbols: []sus.Symbol{54, 55, 56, 60, 61}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 45, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		2: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 17, Symbols: []sus.Symbol{10}},
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 21, Symbols: []sus.Symbol{12}},
			{Value: 23, Symbols: []sus.Symbol{13}},
			{Value: 25, Symbols: []sus.Symbol{15}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 37, Symbols: []sus.Symbol{43}},
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 43, Symbols: []sus.Symbol{9}},
			{Value: 43, Symbols: []sus.Symbol{59}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 84, Symbols: []sus.Symbol{86}},
			{Value: 112, Symbols: []sus.Symbol{58}},
			{Value: 145, Symbols: []sus.Symbol{63}},
			{Value: 215, Symbols: []sus.Symbol{57}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 241, Symbols: []sus.Symbol{54, 55, 56, 60, 61}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 45, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		3: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 17, Symbols: []sus.Symbol{10}},
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 21, Symbols: []sus.Symbol{12}},
			{Value: 23, Symbols: []sus.Symbol{13}},
			{Value: 25, Symbols: []sus.Symbol{15}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 37, Symbols: []sus.Symbol{43}},
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 45, Symbols: []sus.Symbol{9}},
			{Value: 43, Symbols: []sus.Symbol{59}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 84, Symbols: []sus.Symbol{86}},
			{Value: 112, Symbols: []sus.Symbol{58}},
			{Value: 145, Symbols: []sus.Symbol{63}},
			{Value: 215, Symbols: []sus.Symbol{57}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 241, Symbols: []sus.Symbol{54, 55, 56, 60, 61}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 45, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		4: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 17, Symbols: []sus.Symbol{10}},
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 21, Symbols: []sus.Symbol{12}},
			{Value: 23, Symbols: []sus.Symbol{13}},
			{Value: 25, Symbols: []sus.Symbol{15}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 37, Symbols: []sus.Symbol{43}},
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 47, Symbols: []sus.Symbol{9}},
			{Value: 43, Symbols: []sus.Symbol{59}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 84, Symbols: []sus.Symbol{86}},
			{Value: 112, Symbols: []sus.Symbol{58}},
			{Value: 145, Symbols: []sus.Symbol{63}},
			{Value: 215, Symbols: []sus.Symbol{57}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 241, Symbols: []sus.Symbol{54, 55, 56, 60, 61}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 45, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		5: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 17, Symbols: []sus.Symbol{10}},
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 21, Symbols: []sus.Symbol{12}},
			{Value: 23, Symbols: []sus.Symbol{13}},
			{Value: 25, Symbols: []sus.Symbol{15}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 37, Symbols: []sus.Symbol{43}},
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 49, Symbols: []sus.Symbol{9}},
			{Value: 43, Symbols: []sus.Symbol{59}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 84, Symbols: []sus.Symbol{86}},
			{Value: 112, Symbols: []sus.Symbol{58}},
			{Value: 145, Symbols: []sus.Symbol{63}},
			{Value: 215, Symbols: []sus.Symbol{57}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 241, Symbols: []sus.Symbol{54, 55, 56, 60, 61}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 45, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		6: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 17, Symbols: []sus.Symbol{10}},
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 21, Symbols: []sus.Symbol{12}},
			{Value: 23, Symbols: []sus.Symbol{13}},
			{Value: 25, Symbols: []sus.Symbol{15}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 37, Symbols: []sus.Symbol{43}},
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 51, Symbols: []sus.Symbol{9}},
			{Value: 43, Symbols: []sus.Symbol{59}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 84, Symbols: []sus.Symbol{86}},
			{Value: 112, Symbols: []sus.Symbol{58}},
			{Value: 145, Symbols: []sus.Symbol{63}},
			{Value: 215, Symbols: []sus.Symbol{57}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 241, Symbols: []sus.Symbol{54, 55, 56, 60, 61}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 45, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		7: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 17, Symbols: []sus.Symbol{10}},
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 21, Symbols: []sus.Symbol{12}},
			{Value: 23, Symbols: []sus.Symbol{13}},
			{Value: 25, Symbols: []sus.Symbol{15}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 37, Symbols: []sus.Symbol{43}},
			{Value: 53, Symbols: []sus.Symbol{9}},
			{Value: 55, Symbols: []sus.Symbol{45}},
			{Value: 2, Symbols: []sus.Symbol{81}},
			{Value: 43, Symbols: []sus.Symbol{59}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 84, Symbols: []sus.Symbol{86}},
			{Value: 112, Symbols: []sus.Symbol{58}},
			{Value: 134, Symbols: []sus.Symbol{57}},
			{Value: 145, Symbols: []sus.Symbol{63}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 147, Symbols: []sus.Symbol{54, 55, 56, 60, 61}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 45, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		8: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 17, Symbols: []sus.Symbol{10}},
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 21, Symbols: []sus.Symbol{12}},
			{Value: 23, Symbols: []sus.Symbol{13}},
			{Value: 25, Symbols: []sus.Symbol{15}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 37, Symbols: []sus.Symbol{43}},
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 43, Symbols: []sus.Symbol{59}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 84, Symbols: []sus.Symbol{86}},
			{Value: 112, Symbols: []sus.Symbol{58}},
			{Value: 145, Symbols: []sus.Symbol{63}},
			{Value: 215, Symbols: []sus.Symbol{57}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 241, Symbols: []sus.Symbol{54, 55, 56, 60, 61}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 45, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		9: {
			{Value: 61, Symbols: []sus.Symbol{41}},
			{Value: 12, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 57, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 59, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		10: {
			{Value: 67, Symbols: []sus.Symbol{41}},
			{Value: 12, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 63, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 65, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		11: {
			{Value: 61, Symbols: []sus.Symbol{41}},
			{Value: 16, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 70, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 72, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		12: {
			{Value: 61, Symbols: []sus.Symbol{41}},
			{Value: 11, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 74, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 76, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		13: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 21, Symbols: []sus.Symbol{12}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 37, Symbols: []sus.Symbol{43}},
			{Value: 43, Symbols: []sus.Symbol{59}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 84, Symbols: []sus.Symbol{86}},
			{Value: 141, Symbols: []sus.Symbol{58}},
			{Value: 145, Symbols: []sus.Symbol{63}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 45, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		14: {
			{Value: 61, Symbols: []sus.Symbol{41}},
			{Value: 12, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 78, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 80, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		15: {
			{Value: 86, Symbols: []sus.Symbol{36}},
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 84, Symbols: []sus.Symbol{5, 6, 7, 24, 34}},
			{Value: 82, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 38, 40, 42, 44, 45}},
		},
		16: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 92, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 94, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 41, 42, 44, 45}},
		},
		17: {
			{Value: 86, Symbols: []sus.Symbol{36}},
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 96, Symbols: []sus.Symbol{23}},
			{Value: 98, Symbols: []sus.Symbol{24}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 84, Symbols: []sus.Symbol{5, 6, 7}},
			{Value: 82, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 27, 28, 30, 31, 32, 33, 38, 40, 42, 44, 45}},
		},
		18: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 106, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 108, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 41, 42, 44, 45}},
		},
		19: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 110, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 112, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 41, 42, 44, 45}},
		},
		20: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 114, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 116, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 41, 42, 44, 45}},
		},
		21: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 118, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 120, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 41, 42, 44, 45}},
		},
		22: {
			{Value: 86, Symbols: []sus.Symbol{36}},
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 84, Symbols: []sus.Symbol{5, 6, 7, 24}},
			{Value: 82, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 23, 27, 28, 29, 30, 31, 32, 33, 38, 40, 42, 44, 45}},
		},
		23: {
			{Value: 86, Symbols: []sus.Symbol{36}},
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 96, Symbols: []sus.Symbol{23}},
			{Value: 98, Symbols: []sus.Symbol{24}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 84, Symbols: []sus.Symbol{5, 6, 7}},
			{Value: 82, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 28, 30, 31, 32, 33, 38, 40, 42, 44, 45}},
		},
		24: {
			{Value: 86, Symbols: []sus.Symbol{36}},
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 96, Symbols: []sus.Symbol{23}},
			{Value: 98, Symbols: []sus.Symbol{24}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 84, Symbols: []sus.Symbol{5, 6, 7}},
			{Value: 82, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 27, 28, 29, 30, 31, 32, 33, 38, 40, 42, 44, 45}},
		},
		25: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 124, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 126, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 41, 42, 44, 45}},
		},
		26: {
			{Value: 86, Symbols: []sus.Symbol{36}},
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 130, Symbols: []sus.Symbol{5, 6, 7, 24, 34}},
			{Value: 128, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 38, 40, 42, 44, 45}},
		},
		27: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 132, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 134, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 41, 42, 44, 45}},
		},
		28: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 136, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 138, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 41, 42, 44, 45}},
		},
		29: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 140, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 142, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 41, 42, 44, 45}},
		},
		30: {
			{Value: 86, Symbols: []sus.Symbol{36}},
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 96, Symbols: []sus.Symbol{23}},
			{Value: 98, Symbols: []sus.Symbol{24}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 84, Symbols: []sus.Symbol{5, 6, 7}},
			{Value: 82, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 30, 31, 32, 33, 38, 40, 42, 44, 45}},
		},
		31: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 146, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 148, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 41, 42, 44, 45}},
		},
		32: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 150, Symbols: []sus.Symbol{5, 6, 7, 16, 24, 34, 36, 1}},
			{Value: 152, Symbols: []sus.Symbol{4, 8, 9, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		33: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 156, Symbols: []sus.Symbol{5, 6, 7, 24, 34, 36}},
			{Value: 154, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		34: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 160, Symbols: []sus.Symbol{5, 6, 7, 24, 34, 36}},
			{Value: 158, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		35: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 164, Symbols: []sus.Symbol{5, 6, 7, 24, 34, 36}},
			{Value: 162, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		36: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 168, Symbols: []sus.Symbol{5, 6, 7, 24, 34, 36}},
			{Value: 166, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		37: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 172, Symbols: []sus.Symbol{5, 6, 7, 24, 34, 36}},
			{Value: 170, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		38: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 176, Symbols: []sus.Symbol{5, 6, 7, 24, 34, 36}},
			{Value: 174, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		39: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 180, Symbols: []sus.Symbol{5, 6, 7, 24, 34, 36}},
			{Value: 178, Symbols: []sus.Symbol{4, 8, 9, 16, 17, 23, 25, 27, 28, 29, 30, 31, 32, 33, 35, 37, 38, 39, 40, 42, 44, 45}},
		},
		40: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 96, Symbols: []sus.Symbol{23}},
			{Value: 98, Symbols: []sus.Symbol{24}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 186, Symbols: []sus.Symbol{7}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
			{Value: 182, Symbols: []sus.Symbol{4, 8, 9, 16, 44, 45}},
		},
		41: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 192, Symbols: []sus.Symbol{43}},
			{Value: 48, Symbols: []sus.Symbol{76}},
			{Value: 151, Symbols: []sus.Symbol{63}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 47, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74}},
		},
		42: {
			{Value: 198, Symbols: []sus.Symbol{45}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 194, Symbols: []sus.Symbol{10, 11, 12, 13, 15, 18, 19, 20, 21, 24, 1}},
			{Value: 196, Symbols: []sus.Symbol{4, 8, 9, 23, 25, 26, 27, 28, 29, 37, 41, 43}},
		},
		43: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 201, Symbols: []sus.Symbol{7}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 203, Symbols: []sus.Symbol{9, 44, 45}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		44: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 205, Symbols: []sus.Symbol{38}},
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 66, Symbols: []sus.Symbol{80}},
			{Value: 166, Symbols: []sus.Symbol{88}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		45: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 209, Symbols: []sus.Symbol{7}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 211, Symbols: []sus.Symbol{9, 44, 45}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		46: {
			{Value: 213, Symbols: []sus.Symbol{1}},
			{Value: 219, Symbols: []sus.Symbol{39}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 215, Symbols: []sus.Symbol{5, 6, 7, 34}},
			{Value: 217, Symbols: []sus.Symbol{9, 23, 24, 25, 27, 28, 29, 30, 31, 32, 33, 35, 36, 37, 44, 45}},
		},
		47: {
			{Value: 61, Symbols: []sus.Symbol{41}},
			{Value: 222, Symbols: []sus.Symbol{7}},
			{Value: 11, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 74, Symbols: []sus.Symbol{5, 6, 34}},
			{Value: 76, Symbols: []sus.Symbol{23, 24, 25, 27, 28, 29, 30, 31, 32, 33, 35, 36, 37, 39, 42, 44}},
		},
		48: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 224, Symbols: []sus.Symbol{42, 44}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		49: {
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 226, Symbols: []sus.Symbol{54}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		50: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 226, Symbols: []sus.Symbol{1}},
			{Value: 228, Symbols: []sus.Symbol{42}},
			{Value: 230, Symbols: []sus.Symbol{43}},
			{Value: 205, Symbols: []sus.Symbol{78}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 57, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		51: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 232, Symbols: []sus.Symbol{38, 44}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		52: {
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 209, Symbols: []sus.Symbol{54}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		53: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 226, Symbols: []sus.Symbol{1}},
			{Value: 230, Symbols: []sus.Symbol{43}},
			{Value: 234, Symbols: []sus.Symbol{42}},
			{Value: 156, Symbols: []sus.Symbol{78}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 57, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		54: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 236, Symbols: []sus.Symbol{9, 45}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		55: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 238, Symbols: []sus.Symbol{42, 44}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		56: {
			{Value: 86, Symbols: []sus.Symbol{36}},
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 240, Symbols: []sus.Symbol{17}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		57: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 244, Symbols: []sus.Symbol{38}},
			{Value: 246, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 46, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		58: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 248, Symbols: []sus.Symbol{40}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		59: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 250, Symbols: []sus.Symbol{38}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		60: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 226, Symbols: []sus.Symbol{1}},
			{Value: 230, Symbols: []sus.Symbol{43}},
			{Value: 239, Symbols: []sus.Symbol{78}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 57, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		61: {
			{Value: 88, Symbols: []sus.Symbol{37}},
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 102, Symbols: []sus.Symbol{29}},
			{Value: 104, Symbols: []sus.Symbol{34}},
			{Value: 122, Symbols: []sus.Symbol{27}},
			{Value: 144, Symbols: []sus.Symbol{28}},
			{Value: 190, Symbols: []sus.Symbol{36}},
			{Value: 252, Symbols: []sus.Symbol{40}},
			{Value: 35, Symbols: []sus.Symbol{75}},
			{Value: 37, Symbols: []sus.Symbol{73}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 96, Symbols: []sus.Symbol{23, 24}},
			{Value: 100, Symbols: []sus.Symbol{25, 35}},
			{Value: 184, Symbols: []sus.Symbol{5, 6}},
			{Value: 188, Symbols: []sus.Symbol{30, 31, 32, 33}},
		},
		62: {
			{Value: 258, Symbols: []sus.Symbol{45}},
			{Value: 74, Symbols: []sus.Symbol{81}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 254, Symbols: []sus.Symbol{11, 12, 18, 19, 20, 21, 1}},
			{Value: 256, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29, 37, 41, 43}},
		},
		63: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 260, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 61, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		64: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 262, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 53, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		65: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 264, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 17, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		66: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 266, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 58, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		67: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 268, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 63, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		68: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 270, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 24, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		69: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 272, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 32, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		70: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 274, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 42, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		71: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 276, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 26, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		72: {
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 278, Symbols: []sus.Symbol{11, 12, 18, 19, 20, 21, 1}},
			{Value: 280, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29, 37, 41, 43}},
		},
		73: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 282, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 50, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		74: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 284, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 19, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		75: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 286, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 28, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		76: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 288, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 51, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		77: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 290, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 25, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		78: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 292, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 56, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		79: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 294, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 54, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		80: {
			{Value: 33, Symbols: []sus.Symbol{37}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 296, Symbols: []sus.Symbol{43}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 31, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29}},
			{Value: 60, Symbols: []sus.Symbol{67, 68, 69, 70, 71, 72, 74, 76}},
		},
		81: {
			{Value: 300, Symbols: []sus.Symbol{11}},
			{Value: 83, Symbols: []sus.Symbol{86}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 298, Symbols: []sus.Symbol{18, 19, 20, 21, 1}},
			{Value: 303, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29, 37, 41, 43}},
		},
		82: {
			{Value: 19, Symbols: []sus.Symbol{11}},
			{Value: 83, Symbols: []sus.Symbol{86}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 305, Symbols: []sus.Symbol{18, 19, 20, 21, 1}},
			{Value: 307, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29, 37, 41, 43}},
		},
		83: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 309, Symbols: []sus.Symbol{11, 18, 19, 20, 21, 1}},
			{Value: 311, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29, 37, 41, 43}},
		},
		84: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 313, Symbols: []sus.Symbol{18, 19, 20, 21, 1}},
			{Value: 315, Symbols: []sus.Symbol{23, 24, 25, 26, 27, 28, 29, 37, 41, 43}},
		},
		85: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 317, Symbols: []sus.Symbol{4}},
			{Value: 319, Symbols: []sus.Symbol{45}},
			{Value: 88, Symbols: []sus.Symbol{81}},
			{Value: 105, Symbols: []sus.Symbol{63}},
			{Value: 125, Symbols: []sus.Symbol{62}},
			{Value: 211, Symbols: []sus.Symbol{51}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66, 76}},
		},
		86: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 317, Symbols: []sus.Symbol{4}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 105, Symbols: []sus.Symbol{63}},
			{Value: 119, Symbols: []sus.Symbol{62}},
			{Value: 208, Symbols: []sus.Symbol{51}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66, 76}},
		},
		87: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 39, Symbols: []sus.Symbol{45}},
			{Value: 44, Symbols: []sus.Symbol{81}},
			{Value: 105, Symbols: []sus.Symbol{63}},
			{Value: 221, Symbols: []sus.Symbol{62}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66, 76}},
		},
		88: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 321, Symbols: []sus.Symbol{45}},
			{Value: 89, Symbols: []sus.Symbol{81}},
			{Value: 105, Symbols: []sus.Symbol{63}},
			{Value: 216, Symbols: []sus.Symbol{62}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66, 76}},
		},
		89: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 247, Symbols: []sus.Symbol{63}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66, 76}},
		},
		90: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 117, Symbols: []sus.Symbol{63}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 27, Symbols: []sus.Symbol{18, 19}},
			{Value: 29, Symbols: []sus.Symbol{20, 21}},
			{Value: 212, Symbols: []sus.Symbol{65, 66, 76}},
		},
		91: {
			{Value: 325, Symbols: []sus.Symbol{22}},
			{Value: 97, Symbols: []sus.Symbol{64}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 323, Symbols: []sus.Symbol{4, 7, 8, 9, 16, 44, 45}},
		},
		92: {
			{Value: 325, Symbols: []sus.Symbol{22}},
			{Value: 100, Symbols: []sus.Symbol{64}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 327, Symbols: []sus.Symbol{4, 7, 8, 9, 16, 44, 45}},
		},
		93: {
			{Value: 325, Symbols: []sus.Symbol{22}},
			{Value: 108, Symbols: []sus.Symbol{64}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 329, Symbols: []sus.Symbol{4, 7, 8, 9, 16, 44, 45}},
		},
		94: {
			{Value: 325, Symbols: []sus.Symbol{22}},
			{Value: 109, Symbols: []sus.Symbol{64}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 331, Symbols: []sus.Symbol{4, 7, 8, 9, 16, 44, 45}},
		},
		95: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 333, Symbols: []sus.Symbol{4, 7, 8, 9, 16, 44, 45}},
		},
		96: {
			{Value: 337, Symbols: []sus.Symbol{44}},
			{Value: 92, Symbols: []sus.Symbol{80}},
			{Value: 98, Symbols: []sus.Symbol{87}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 335, Symbols: []sus.Symbol{4, 8, 9, 45}},
		},
		97: {
			{Value: 340, Symbols: []sus.Symbol{1}},
			{Value: 342, Symbols: []sus.Symbol{6}},
			{Value: 344, Symbols: []sus.Symbol{41}},
			{Value: 150, Symbols: []sus.Symbol{77}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 175, Symbols: []sus.Symbol{65, 66, 76}},
		},
		98: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 346, Symbols: []sus.Symbol{4, 7, 8, 9, 16, 44, 45}},
		},
		99: {
			{Value: 340, Symbols: []sus.Symbol{1}},
			{Value: 344, Symbols: []sus.Symbol{41}},
			{Value: 348, Symbols: []sus.Symbol{6}},
			{Value: 176, Symbols: []sus.Symbol{77}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 175, Symbols: []sus.Symbol{65, 66, 76}},
		},
		100: {
			{Value: 340, Symbols: []sus.Symbol{1}},
			{Value: 344, Symbols: []sus.Symbol{41}},
			{Value: 350, Symbols: []sus.Symbol{6}},
			{Value: 203, Symbols: []sus.Symbol{77}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 175, Symbols: []sus.Symbol{65, 66, 76}},
		},
		101: {
			{Value: 340, Symbols: []sus.Symbol{1}},
			{Value: 344, Symbols: []sus.Symbol{41}},
			{Value: 352, Symbols: []sus.Symbol{6}},
			{Value: 158, Symbols: []sus.Symbol{77}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 175, Symbols: []sus.Symbol{65, 66, 76}},
		},
		102: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 92, Symbols: []sus.Symbol{80}},
			{Value: 98, Symbols: []sus.Symbol{87}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 354, Symbols: []sus.Symbol{4, 8, 9, 45}},
		},
		103: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 92, Symbols: []sus.Symbol{80}},
			{Value: 104, Symbols: []sus.Symbol{87}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 356, Symbols: []sus.Symbol{4, 8, 9, 45}},
		},
		104: {
			{Value: 340, Symbols: []sus.Symbol{1}},
			{Value: 344, Symbols: []sus.Symbol{41}},
			{Value: 358, Symbols: []sus.Symbol{6}},
			{Value: 182, Symbols: []sus.Symbol{77}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 175, Symbols: []sus.Symbol{65, 66, 76}},
		},
		105: {
			{Value: 340, Symbols: []sus.Symbol{1}},
			{Value: 344, Symbols: []sus.Symbol{41}},
			{Value: 360, Symbols: []sus.Symbol{6}},
			{Value: 193, Symbols: []sus.Symbol{77}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 175, Symbols: []sus.Symbol{65, 66, 76}},
		},
		106: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 362, Symbols: []sus.Symbol{4, 7, 8, 9, 16, 44, 45}},
		},
		107: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 364, Symbols: []sus.Symbol{4, 7, 8, 9, 16, 44, 45}},
		},
		108: {
			{Value: 11, Symbols: []sus.Symbol{1}},
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 366, Symbols: []sus.Symbol{20, 21}},
			{Value: 217, Symbols: []sus.Symbol{65, 66, 76}},
		},
		109: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 15, Symbols: []sus.Symbol{80}},
			{Value: 116, Symbols: []sus.Symbol{85}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 368, Symbols: []sus.Symbol{7, 9, 45}},
		},
		110: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 15, Symbols: []sus.Symbol{80}},
			{Value: 111, Symbols: []sus.Symbol{85}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 370, Symbols: []sus.Symbol{7, 9, 45}},
		},
		111: {
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 372, Symbols: []sus.Symbol{3}},
			{Value: 374, Symbols: []sus.Symbol{5}},
			{Value: 188, Symbols: []sus.Symbol{52}},
			{Value: 233, Symbols: []sus.Symbol{50}},
			{Value: 234, Symbols: []sus.Symbol{54}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		112: {
			{Value: 340, Symbols: []sus.Symbol{1}},
			{Value: 344, Symbols: []sus.Symbol{41}},
			{Value: 238, Symbols: []sus.Symbol{77}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 175, Symbols: []sus.Symbol{65, 66, 76}},
		},
		113: {
			{Value: 376, Symbols: []sus.Symbol{7}},
			{Value: 378, Symbols: []sus.Symbol{41}},
			{Value: 128, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 76, Symbols: []sus.Symbol{6, 39, 44}},
		},
		114: {
			{Value: 382, Symbols: []sus.Symbol{44}},
			{Value: 15, Symbols: []sus.Symbol{80}},
			{Value: 116, Symbols: []sus.Symbol{85}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 380, Symbols: []sus.Symbol{7, 9, 45}},
		},
		115: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 385, Symbols: []sus.Symbol{4, 8, 9, 44, 45}},
		},
		116: {
			{Value: 344, Symbols: []sus.Symbol{41}},
			{Value: 387, Symbols: []sus.Symbol{1}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 137, Symbols: []sus.Symbol{65, 66, 76}},
		},
		117: {
			{Value: 317, Symbols: []sus.Symbol{4}},
			{Value: 219, Symbols: []sus.Symbol{51}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 389, Symbols: []sus.Symbol{8, 9, 45}},
		},
		118: {
			{Value: 7, Symbols: []sus.Symbol{2}},
			{Value: 391, Symbols: []sus.Symbol{0}},
			{Value: 393, Symbols: []sus.Symbol{45}},
			{Value: 191, Symbols: []sus.Symbol{81}},
			{Value: 192, Symbols: []sus.Symbol{49}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		119: {
			{Value: 378, Symbols: []sus.Symbol{41}},
			{Value: 129, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 72, Symbols: []sus.Symbol{6, 39, 44}},
		},
		120: {
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 207, Symbols: []sus.Symbol{65, 66, 76}},
		},
		121: {
			{Value: 378, Symbols: []sus.Symbol{41}},
			{Value: 128, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 76, Symbols: []sus.Symbol{6, 39, 44}},
		},
		122: {
			{Value: 7, Symbols: []sus.Symbol{2}},
			{Value: 393, Symbols: []sus.Symbol{45}},
			{Value: 395, Symbols: []sus.Symbol{0}},
			{Value: 191, Symbols: []sus.Symbol{81}},
			{Value: 237, Symbols: []sus.Symbol{49}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		123: {
			{Value: 317, Symbols: []sus.Symbol{4}},
			{Value: 222, Symbols: []sus.Symbol{51}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 397, Symbols: []sus.Symbol{8, 9, 45}},
		},
		124: {
			{Value: 7, Symbols: []sus.Symbol{2}},
			{Value: 393, Symbols: []sus.Symbol{45}},
			{Value: 399, Symbols: []sus.Symbol{0}},
			{Value: 191, Symbols: []sus.Symbol{81}},
			{Value: 237, Symbols: []sus.Symbol{49}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		125: {
			{Value: 344, Symbols: []sus.Symbol{41}},
			{Value: 387, Symbols: []sus.Symbol{1}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 197, Symbols: []sus.Symbol{65, 66, 76}},
		},
		126: {
			{Value: 378, Symbols: []sus.Symbol{41}},
			{Value: 135, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 59, Symbols: []sus.Symbol{6, 39, 44}},
		},
		127: {
			{Value: 378, Symbols: []sus.Symbol{41}},
			{Value: 135, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 80, Symbols: []sus.Symbol{6, 39, 44}},
		},
		128: {
			{Value: 401, Symbols: []sus.Symbol{7}},
			{Value: 403, Symbols: []sus.Symbol{9}},
			{Value: 405, Symbols: []sus.Symbol{45}},
			{Value: 3, Symbols: []sus.Symbol{81}},
			{Value: 149, Symbols: []sus.Symbol{84}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		129: {
			{Value: 35, Symbols: []sus.Symbol{41}},
			{Value: 242, Symbols: []sus.Symbol{1}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 220, Symbols: []sus.Symbol{65, 66, 76}},
		},
		130: {
			{Value: 7, Symbols: []sus.Symbol{2}},
			{Value: 393, Symbols: []sus.Symbol{45}},
			{Value: 407, Symbols: []sus.Symbol{0}},
			{Value: 191, Symbols: []sus.Symbol{81}},
			{Value: 237, Symbols: []sus.Symbol{49}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		131: {
			{Value: 7, Symbols: []sus.Symbol{2}},
			{Value: 393, Symbols: []sus.Symbol{45}},
			{Value: 409, Symbols: []sus.Symbol{0}},
			{Value: 191, Symbols: []sus.Symbol{81}},
			{Value: 237, Symbols: []sus.Symbol{49}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		132: {
			{Value: 401, Symbols: []sus.Symbol{7}},
			{Value: 411, Symbols: []sus.Symbol{9}},
			{Value: 413, Symbols: []sus.Symbol{45}},
			{Value: 8, Symbols: []sus.Symbol{81}},
			{Value: 164, Symbols: []sus.Symbol{84}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		133: {
			{Value: 415, Symbols: []sus.Symbol{41}},
			{Value: 135, Symbols: []sus.Symbol{89}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 65, Symbols: []sus.Symbol{6, 39, 44}},
		},
		134: {
			{Value: 418, Symbols: []sus.Symbol{6}},
			{Value: 420, Symbols: []sus.Symbol{44}},
			{Value: 136, Symbols: []sus.Symbol{83}},
			{Value: 227, Symbols: []sus.Symbol{80}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		135: {
			{Value: 425, Symbols: []sus.Symbol{39}},
			{Value: 162, Symbols: []sus.Symbol{75}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 423, Symbols: []sus.Symbol{6, 44}},
		},
		136: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 138, Symbols: []sus.Symbol{6, 39, 41, 44}},
		},
		137: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 427, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		138: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 148, Symbols: []sus.Symbol{6, 39, 41, 44}},
		},
		139: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 429, Symbols: []sus.Symbol{7, 9, 44, 45}},
		},
		140: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 112, Symbols: []sus.Symbol{6, 39, 41, 44}},
		},
		141: {
			{Value: 7, Symbols: []sus.Symbol{2}},
			{Value: 393, Symbols: []sus.Symbol{45}},
			{Value: 191, Symbols: []sus.Symbol{81}},
			{Value: 237, Symbols: []sus.Symbol{49}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		142: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 142, Symbols: []sus.Symbol{6, 39, 41, 44}},
		},
		143: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 203, Symbols: []sus.Symbol{7, 9, 44, 45}},
		},
		144: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 431, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		145: {
			{Value: 411, Symbols: []sus.Symbol{9}},
			{Value: 413, Symbols: []sus.Symbol{45}},
			{Value: 8, Symbols: []sus.Symbol{81}},
			{Value: 189, Symbols: []sus.Symbol{84}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		146: {
			{Value: 433, Symbols: []sus.Symbol{9}},
			{Value: 435, Symbols: []sus.Symbol{45}},
			{Value: 6, Symbols: []sus.Symbol{81}},
			{Value: 171, Symbols: []sus.Symbol{84}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		147: {
			{Value: 437, Symbols: []sus.Symbol{9}},
			{Value: 439, Symbols: []sus.Symbol{45}},
			{Value: 7, Symbols: []sus.Symbol{81}},
			{Value: 171, Symbols: []sus.Symbol{84}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		148: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 441, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 157, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		149: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 211, Symbols: []sus.Symbol{7, 9, 44, 45}},
		},
		150: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 443, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		151: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 134, Symbols: []sus.Symbol{6, 39, 41, 44}},
		},
		152: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 445, Symbols: []sus.Symbol{6}},
			{Value: 177, Symbols: []sus.Symbol{83}},
			{Value: 227, Symbols: []sus.Symbol{80}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		153: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 427, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		154: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 447, Symbols: []sus.Symbol{42}},
			{Value: 62, Symbols: []sus.Symbol{80}},
			{Value: 180, Symbols: []sus.Symbol{90}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		155: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 449, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 199, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		156: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 451, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 165, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		157: {
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 453, Symbols: []sus.Symbol{13}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 231, Symbols: []sus.Symbol{54, 60}},
		},
		158: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 455, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		159: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 457, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		160: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 459, Symbols: []sus.Symbol{6, 39, 1, 44}},
		},
		161: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 457, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		162: {
			{Value: 461, Symbols: []sus.Symbol{9}},
			{Value: 463, Symbols: []sus.Symbol{45}},
			{Value: 4, Symbols: []sus.Symbol{81}},
			{Value: 171, Symbols: []sus.Symbol{84}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		163: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 465, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 199, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		164: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 467, Symbols: []sus.Symbol{38}},
			{Value: 66, Symbols: []sus.Symbol{80}},
			{Value: 184, Symbols: []sus.Symbol{88}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		165: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 469, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		166: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 471, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		167: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 126, Symbols: []sus.Symbol{6, 39, 41, 44}},
		},
		168: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 471, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		169: {
			{Value: 473, Symbols: []sus.Symbol{9}},
			{Value: 475, Symbols: []sus.Symbol{45}},
			{Value: 10, Symbols: []sus.Symbol{81}},
			{Value: 171, Symbols: []sus.Symbol{84}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		170: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 120, Symbols: []sus.Symbol{6, 39, 41, 44}},
		},
		171: {
			{Value: 478, Symbols: []sus.Symbol{0}},
			{Value: 480, Symbols: []sus.Symbol{45}},
			{Value: 133, Symbols: []sus.Symbol{81}},
			{Value: 179, Symbols: []sus.Symbol{82}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		172: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 116, Symbols: []sus.Symbol{6, 39, 41, 44}},
		},
		173: {
			{Value: 425, Symbols: []sus.Symbol{39}},
			{Value: 162, Symbols: []sus.Symbol{75}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 482, Symbols: []sus.Symbol{6, 44}},
		},
		174: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 484, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 190, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		175: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 486, Symbols: []sus.Symbol{6}},
			{Value: 136, Symbols: []sus.Symbol{83}},
			{Value: 227, Symbols: []sus.Symbol{80}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		176: {
			{Value: 372, Symbols: []sus.Symbol{3}},
			{Value: 229, Symbols: []sus.Symbol{50}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 488, Symbols: []sus.Symbol{9, 45}},
		},
		177: {
			{Value: 490, Symbols: []sus.Symbol{0}},
			{Value: 492, Symbols: []sus.Symbol{45}},
			{Value: 143, Symbols: []sus.Symbol{81}},
			{Value: 179, Symbols: []sus.Symbol{82}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		178: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 495, Symbols: []sus.Symbol{42}},
			{Value: 62, Symbols: []sus.Symbol{80}},
			{Value: 195, Symbols: []sus.Symbol{90}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		179: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 108, Symbols: []sus.Symbol{6, 39, 41, 44}},
		},
		180: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 497, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 183, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		181: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 499, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 199, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		182: {
			{Value: 501, Symbols: []sus.Symbol{38}},
			{Value: 503, Symbols: []sus.Symbol{44}},
			{Value: 66, Symbols: []sus.Symbol{80}},
			{Value: 184, Symbols: []sus.Symbol{88}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		183: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 506, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		184: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 506, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		185: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 508, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		186: {
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 372, Symbols: []sus.Symbol{3}},
			{Value: 235, Symbols: []sus.Symbol{54}},
			{Value: 236, Symbols: []sus.Symbol{50}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		187: {
			{Value: 510, Symbols: []sus.Symbol{9}},
			{Value: 512, Symbols: []sus.Symbol{45}},
			{Value: 5, Symbols: []sus.Symbol{81}},
			{Value: 171, Symbols: []sus.Symbol{84}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		188: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 514, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 199, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		189: {
			{Value: 516, Symbols: []sus.Symbol{45}},
			{Value: 191, Symbols: []sus.Symbol{81}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 196, Symbols: []sus.Symbol{0, 2}},
		},
		190: {
			{Value: 519, Symbols: []sus.Symbol{0}},
			{Value: 521, Symbols: []sus.Symbol{45}},
			{Value: 124, Symbols: []sus.Symbol{81}},
			{Value: 173, Symbols: []sus.Symbol{82}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		191: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 523, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 201, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		192: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 94, Symbols: []sus.Symbol{6, 39, 41, 44}},
		},
		193: {
			{Value: 525, Symbols: []sus.Symbol{42}},
			{Value: 527, Symbols: []sus.Symbol{44}},
			{Value: 62, Symbols: []sus.Symbol{80}},
			{Value: 195, Symbols: []sus.Symbol{90}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		194: {
			{Value: 530, Symbols: []sus.Symbol{0}},
			{Value: 532, Symbols: []sus.Symbol{45}},
			{Value: 126, Symbols: []sus.Symbol{81}},
			{Value: 179, Symbols: []sus.Symbol{82}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		195: {
			{Value: 425, Symbols: []sus.Symbol{39}},
			{Value: 162, Symbols: []sus.Symbol{75}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 534, Symbols: []sus.Symbol{6, 44}},
		},
		196: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 536, Symbols: []sus.Symbol{42}},
			{Value: 62, Symbols: []sus.Symbol{80}},
			{Value: 195, Symbols: []sus.Symbol{90}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		197: {
			{Value: 538, Symbols: []sus.Symbol{6}},
			{Value: 540, Symbols: []sus.Symbol{44}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 199, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		198: {
			{Value: 403, Symbols: []sus.Symbol{9}},
			{Value: 405, Symbols: []sus.Symbol{45}},
			{Value: 3, Symbols: []sus.Symbol{81}},
			{Value: 148, Symbols: []sus.Symbol{84}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		199: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 543, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 199, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		200: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 545, Symbols: []sus.Symbol{0, 9, 14, 45}},
		},
		201: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 547, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 206, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		202: {
			{Value: 549, Symbols: []sus.Symbol{0}},
			{Value: 551, Symbols: []sus.Symbol{45}},
			{Value: 132, Symbols: []sus.Symbol{81}},
			{Value: 196, Symbols: []sus.Symbol{82}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		203: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 553, Symbols: []sus.Symbol{42}},
			{Value: 62, Symbols: []sus.Symbol{80}},
			{Value: 198, Symbols: []sus.Symbol{90}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		204: {
			{Value: 207, Symbols: []sus.Symbol{44}},
			{Value: 555, Symbols: []sus.Symbol{6}},
			{Value: 114, Symbols: []sus.Symbol{80}},
			{Value: 199, Symbols: []sus.Symbol{91}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		205: {
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 557, Symbols: []sus.Symbol{1}},
			{Value: 162, Symbols: []sus.Symbol{75}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		206: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 559, Symbols: []sus.Symbol{8, 9, 45}},
		},
		207: {
			{Value: 563, Symbols: []sus.Symbol{14}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 561, Symbols: []sus.Symbol{9, 45}},
		},
		208: {
			{Value: 565, Symbols: []sus.Symbol{1}},
			{Value: 567, Symbols: []sus.Symbol{6}},
			{Value: 154, Symbols: []sus.Symbol{53}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		209: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 569, Symbols: []sus.Symbol{8, 9, 45}},
		},
		210: {
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 571, Symbols: []sus.Symbol{1}},
			{Value: 162, Symbols: []sus.Symbol{75}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		211: {
			{Value: 575, Symbols: []sus.Symbol{7}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 573, Symbols: []sus.Symbol{6, 44}},
		},
		212: {
			{Value: 577, Symbols: []sus.Symbol{1}},
			{Value: 579, Symbols: []sus.Symbol{5}},
			{Value: 194, Symbols: []sus.Symbol{79}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		213: {
			{Value: 401, Symbols: []sus.Symbol{7}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 581, Symbols: []sus.Symbol{9, 45}},
		},
		214: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 583, Symbols: []sus.Symbol{8, 9, 45}},
		},
		215: {
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 585, Symbols: []sus.Symbol{1}},
			{Value: 162, Symbols: []sus.Symbol{75}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		216: {
			{Value: 587, Symbols: []sus.Symbol{1}},
			{Value: 589, Symbols: []sus.Symbol{5}},
			{Value: 18, Symbols: []sus.Symbol{79}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		217: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 591, Symbols: []sus.Symbol{8, 9, 45}},
		},
		218: {
			{Value: 90, Symbols: []sus.Symbol{39}},
			{Value: 593, Symbols: []sus.Symbol{1}},
			{Value: 162, Symbols: []sus.Symbol{75}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		219: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 595, Symbols: []sus.Symbol{8, 9, 45}},
		},
		220: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 597, Symbols: []sus.Symbol{8, 9, 45}},
		},
		221: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 152, Symbols: []sus.Symbol{6, 39, 44}},
		},
		222: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 599, Symbols: []sus.Symbol{6, 44}},
		},
		223: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 601, Symbols: []sus.Symbol{0, 45}},
		},
		224: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 603, Symbols: []sus.Symbol{9, 45}},
		},
		225: {
			{Value: 565, Symbols: []sus.Symbol{1}},
			{Value: 224, Symbols: []sus.Symbol{53}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		226: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 605, Symbols: []sus.Symbol{3, 8}},
		},
		227: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 607, Symbols: []sus.Symbol{9, 45}},
		},
		228: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 609, Symbols: []sus.Symbol{0, 45}},
		},
		229: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 611, Symbols: []sus.Symbol{9, 45}},
		},
		230: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 613, Symbols: []sus.Symbol{3, 8}},
		},
		231: {
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 225, Symbols: []sus.Symbol{54}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		232: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 615, Symbols: []sus.Symbol{0, 45}},
		},
		233: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 617, Symbols: []sus.Symbol{0, 45}},
		},
		234: {
			{Value: 13, Symbols: []sus.Symbol{8}},
			{Value: 230, Symbols: []sus.Symbol{54}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		235: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 619, Symbols: []sus.Symbol{0, 45}},
		},
		236: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 621, Symbols: []sus.Symbol{6, 44}},
		},
		237: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 623, Symbols: []sus.Symbol{42, 44}},
		},
		238: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 625, Symbols: []sus.Symbol{3, 8}},
		},
		239: {
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
			{Value: 581, Symbols: []sus.Symbol{9, 45}},
		},
		240: {
			{Value: 627, Symbols: []sus.Symbol{1}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		241: {
			{Value: 629, Symbols: []sus.Symbol{1}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		242: {
			{Value: 631, Symbols: []sus.Symbol{1}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		243: {
			{Value: 633, Symbols: []sus.Symbol{1}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		244: {
			{Value: 635, Symbols: []sus.Symbol{1}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		245: {
			{Value: 637, Symbols: []sus.Symbol{16}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
		246: {
			{Value: 639, Symbols: []sus.Symbol{0}},
			{Value: 3, Symbols: []sus.Symbol{46, 47}},
		},
	},

	Actions: []parser.ActionEntry{
		0:   {},
		1:   {Actions: []parser.Action{{Type: parser.Recover}}},
		3:   {Reusable: true, Actions: []parser.Action{{Type: parser.ShiftExtra}}},
		5:   {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 48, ChildCount: 0}}},
		7:   {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 245}}},
		9:   {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 120}}},
		11:  {Actions: []parser.Action{{Type: parser.Shift, State: 14}}},
		13:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 9}}},
		15:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 202}}},
		17:  {Actions: []parser.Action{{Type: parser.Shift, State: 242}}},
		19:  {Actions: []parser.Action{{Type: parser.Shift, State: 85}}},
		21:  {Actions: []parser.Action{{Type: parser.Shift, State: 86}}},
		23:  {Actions: []parser.Action{{Type: parser.Shift, State: 81}}},
		25:  {Actions: []parser.Action{{Type: parser.Shift, State: 91}}},
		27:  {Actions: []parser.Action{{Type: parser.Shift, State: 110}}},
		29:  {Actions: []parser.Action{{Type: parser.Shift, State: 122}}},
		31:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 77}}},
		33:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 65}}},
		35:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 243}}},
		37:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 45}}},
		39:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 44}}},
		41:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 167}}},
		43:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 163}}},
		45:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 161}}},
		47:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 185}}},
		49:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 186}}},
		51:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 160}}},
		53:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 152}}},
		55:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 2}}},
		57:  {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 76, ChildCount: 2, Production: 2}}},
		59:  {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 76, ChildCount: 2, Production: 2}}},
		61:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 218}}},
		63:  {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 89, ChildCount: 2, Production: 5}}},
		65:  {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 89, ChildCount: 2, Production: 5}}},
		67:  {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 89, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 218}}},
		70:  {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 76, ChildCount: 2, Production: 15}}},
		72:  {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 76, ChildCount: 2, Production: 15}}},
		74:  {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 76, ChildCount: 1, Production: 1}}},
		76:  {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 76, ChildCount: 1, Production: 1}}},
		78:  {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 76, ChildCount: 3, Production: 29}}},
		80:  {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 76, ChildCount: 3, Production: 29}}},
		82:  {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 69, ChildCount: 3, Production: 37}}},
		84:  {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 69, ChildCount: 3, Production: 37}}},
		86:  {Actions: []parser.Action{{Type: parser.Shift, State: 244}}},
		88:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 59}}},
		90:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 69}}},
		92:  {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 89, ChildCount: 2, Production: 3}}},
		94:  {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 89, ChildCount: 2, Production: 3}}},
		96:  {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 70}}},
		98:  {Actions: []parser.Action{{Type: parser.Shift, State: 70}}},
		100: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 67}}},
		102: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 73}}},
		104: {Actions: []parser.Action{{Type: parser.Shift, State: 67}}},
		106: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 3}}},
		108: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 3}}},
		110: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 6, Production: 51}}},
		112: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 6, Production: 51}}},
		114: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 4, Production: 39}}},
		116: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 4, Production: 39}}},
		118: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 4, Production: 3}}},
		120: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 4, Production: 3}}},
		122: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 76}}},
		124: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 5, Production: 44}}},
		126: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 5, Production: 44}}},
		128: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 68, ChildCount: 2, Production: 22}}},
		130: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 68, ChildCount: 2, Production: 22}}},
		132: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 5, Production: 48}}},
		134: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 5, Production: 48}}},
		136: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 5, Production: 6}}},
		138: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 5, Production: 6}}},
		140: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 7, Production: 52}}},
		142: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 7, Production: 52}}},
		144: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 79}}},
		146: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 6, Production: 50}}},
		148: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 79, ChildCount: 6, Production: 50}}},
		150: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 75, ChildCount: 3, Production: 35}}},
		152: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 75, ChildCount: 3, Production: 35}}},
		154: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 70, ChildCount: 2, Production: 18}}},
		156: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 70, ChildCount: 2, Production: 18}}},
		158: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 73, ChildCount: 3, Production: 3}}},
		160: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 73, ChildCount: 3, Production: 3}}},
		162: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 71, ChildCount: 2, Production: 24}}},
		164: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 71, ChildCount: 2, Production: 24}}},
		166: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 74, ChildCount: 3, Production: 35}}},
		168: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 74, ChildCount: 3, Production: 35}}},
		170: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 73, ChildCount: 4, Production: 6}}},
		172: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 73, ChildCount: 4, Production: 6}}},
		174: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 72, ChildCount: 3, Production: 38}}},
		176: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 72, ChildCount: 3, Production: 38}}},
		178: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 73, ChildCount: 2}}},
		180: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 73, ChildCount: 2}}},
		182: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 64, ChildCount: 2, Production: 35}}},
		184: {Actions: []parser.Action{{Type: parser.Shift, State: 71}}},
		186: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 64, ChildCount: 2, Production: 35}}},
		188: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 71}}},
		190: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 244}}},
		192: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 47}}},
		194: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 81, ChildCount: 2}}},
		196: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 81, ChildCount: 2}}},
		198: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 81, ChildCount: 2}, {Type: parser.ShiftRepeat, State: 44}}},
		201: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 58, ChildCount: 1, Production: 10}}},
		203: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 58, ChildCount: 1, Production: 10}}},
		205: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 36}}},
		207: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 64}}},
		209: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 58, ChildCount: 2, Production: 23}}},
		211: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 58, ChildCount: 2, Production: 23}}},
		213: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 65, ChildCount: 1}}},
		215: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 67, ChildCount: 1}}},
		217: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 67, ChildCount: 1}}},
		219: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 65, ChildCount: 1}, {Type: parser.Reduce, Symbol: 67, ChildCount: 1}}},
		222: {Actions: []parser.Action{{Type: parser.Shift, State: 75}}},
		224: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 78, ChildCount: 3, Production: 47}}},
		226: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 49}}},
		228: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 99}}},
		230: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 57}}},
		232: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 88, ChildCount: 2, Production: 3}}},
		234: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 101}}},
		236: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 56, ChildCount: 3, Production: 36}}},
		238: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 78, ChildCount: 1, Production: 43}}},
		240: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 78}}},
		242: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 14}}},
		244: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 41}}},
		246: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 46}}},
		248: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 223}}},
		250: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 38}}},
		252: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 34}}},
		254: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 80, ChildCount: 1}}},
		256: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 80, ChildCount: 1}}},
		258: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 74}}},
		260: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 61}}},
		262: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 53}}},
		264: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 17}}},
		266: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 58}}},
		268: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 63}}},
		270: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 24}}},
		272: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 32}}},
		274: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 42}}},
		276: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 26}}},
		278: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 80, ChildCount: 2}}},
		280: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 80, ChildCount: 2}}},
		282: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 50}}},
		284: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 19}}},
		286: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 28}}},
		288: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 51}}},
		290: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 25}}},
		292: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 56}}},
		294: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 54}}},
		296: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 60}}},
		298: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 86, ChildCount: 2, Production: 5}}},
		300: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 86, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 85}}},
		303: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 86, ChildCount: 2, Production: 5}}},
		305: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 59, ChildCount: 1, Production: 11}}},
		307: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 59, ChildCount: 1, Production: 11}}},
		309: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 86, ChildCount: 1, Production: 1}}},
		311: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 86, ChildCount: 1, Production: 1}}},
		313: {Actions: []parser.Action{{Type: parser.Reduce, Symbol: 59, ChildCount: 1, Production: 1}}},
		315: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 59, ChildCount: 1, Production: 1}}},
		317: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 90}}},
		319: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 88}}},
		321: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 89}}},
		323: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 63, ChildCount: 3, Production: 28}}},
		325: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 72}}},
		327: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 63, ChildCount: 3, Production: 27}}},
		329: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 63, ChildCount: 2, Production: 17}}},
		331: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 63, ChildCount: 4, Production: 40}}},
		333: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 63, ChildCount: 4, Production: 42}}},
		335: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 87, ChildCount: 2, Production: 5}}},
		337: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 87, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 64}}},
		340: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 115}}},
		342: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 181}}},
		344: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 246}}},
		346: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 63, ChildCount: 4, Production: 41}}},
		348: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 20}}},
		350: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 30}}},
		352: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 172}}},
		354: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 62, ChildCount: 2, Production: 2}}},
		356: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 62, ChildCount: 1, Production: 1}}},
		358: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 138}}},
		360: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 23}}},
		362: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 63, ChildCount: 3, Production: 30}}},
		364: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 63, ChildCount: 5, Production: 45}}},
		366: {Actions: []parser.Action{{Type: parser.Shift, State: 131}}},
		368: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 57, ChildCount: 2, Production: 2}}},
		370: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 57, ChildCount: 1, Production: 1}}},
		372: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 87}}},
		374: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 210}}},
		376: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 127}}},
		378: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 214}}},
		380: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 85, ChildCount: 2, Production: 5}}},
		382: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 85, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 64}}},
		385: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 87, ChildCount: 2, Production: 3}}},
		387: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 123}}},
		389: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 50, ChildCount: 3, Production: 20}}},
		391: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 48, ChildCount: 1}}},
		393: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 191}}},
		395: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 48, ChildCount: 3, Production: 3}}},
		397: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 50, ChildCount: 2, Production: 8}}},
		399: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 48, ChildCount: 3, Production: 2}}},
		401: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 80}}},
		403: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 146}}},
		405: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 3}}},
		407: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 48, ChildCount: 2, Production: 1}}},
		409: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 48, ChildCount: 4, Production: 6}}},
		411: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 187}}},
		413: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 8}}},
		415: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 89, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 214}}},
		418: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 83, ChildCount: 2, Production: 5}}},
		420: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 83, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 64}}},
		423: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 53, ChildCount: 3, Production: 32}}},
		425: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 82}}},
		427: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 54, ChildCount: 4, Production: 6}}},
		429: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 85, ChildCount: 2, Production: 3}}},
		431: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 54, ChildCount: 4, Production: 39}}},
		433: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 168}}},
		435: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 6}}},
		437: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 170}}},
		439: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 7}}},
		441: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 174}}},
		443: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 54, ChildCount: 2}}},
		445: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 228}}},
		447: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 107}}},
		449: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 169}}},
		451: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 153}}},
		453: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 81}}},
		455: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 54, ChildCount: 4, Production: 3}}},
		457: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 54, ChildCount: 5, Production: 6}}},
		459: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 66, ChildCount: 2, Production: 18}}},
		461: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 139}}},
		463: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 4}}},
		465: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 140}}},
		467: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 39}}},
		469: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 54, ChildCount: 5, Production: 39}}},
		471: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 54, ChildCount: 5, Production: 44}}},
		473: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 84, ChildCount: 2, Production: 5}}},
		475: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 84, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 10}}},
		478: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 48, ChildCount: 3, Production: 6}}},
		480: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 133}}},
		482: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 77, ChildCount: 1, Production: 43}}},
		484: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 22}}},
		486: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 232}}},
		488: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 55, ChildCount: 2, Production: 21}}},
		490: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 82, ChildCount: 2, Production: 5}}},
		492: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 82, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 143}}},
		495: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 102}}},
		497: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 142}}},
		499: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 144}}},
		501: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 88, ChildCount: 2, Production: 5}}},
		503: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 88, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 64}}},
		506: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 54, ChildCount: 6, Production: 44}}},
		508: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 54, ChildCount: 3, Production: 3}}},
		510: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 155}}},
		512: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 5}}},
		514: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 27}}},
		516: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 81, ChildCount: 2}, {Type: parser.ShiftRepeat, State: 191}}},
		519: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 48, ChildCount: 2, Production: 3}}},
		521: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 124}}},
		523: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 29}}},
		525: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 90, ChildCount: 2, Production: 5}}},
		527: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 90, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 64}}},
		530: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 48, ChildCount: 2, Production: 2}}},
		532: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 126}}},
		534: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 77, ChildCount: 3, Production: 47}}},
		536: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 106}}},
		538: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 91, ChildCount: 2, Production: 5}}},
		540: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 91, ChildCount: 2, Production: 5}, {Type: parser.ShiftRepeat, State: 64}}},
		543: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 33}}},
		545: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 54, ChildCount: 3}}},
		547: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 21}}},
		549: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 48, ChildCount: 1, Production: 1}}},
		551: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 132}}},
		553: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 103}}},
		555: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 31}}},
		557: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 93}}},
		559: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 50, ChildCount: 3, Production: 19}}},
		561: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 60, ChildCount: 3, Production: 34}}},
		563: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 159}}},
		565: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 213}}},
		567: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 240}}},
		569: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 50, ChildCount: 2, Production: 7}}},
		571: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 95}}},
		573: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 53, ChildCount: 1, Production: 9}}},
		575: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 118}}},
		577: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 194}}},
		579: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 52}}},
		581: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 84, ChildCount: 2, Production: 3}}},
		583: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 51, ChildCount: 2, Production: 14}}},
		585: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 94}}},
		587: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 18}}},
		589: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 55}}},
		591: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 50, ChildCount: 4, Production: 31}}},
		593: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 96}}},
		595: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 51, ChildCount: 3, Production: 26}}},
		597: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 50, ChildCount: 3, Production: 16}}},
		599: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 83, ChildCount: 2, Production: 3}}},
		601: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 49, ChildCount: 4, Production: 12}}},
		603: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 61, ChildCount: 7, Production: 49}}},
		605: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 52, ChildCount: 3, Production: 3}}},
		607: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 55, ChildCount: 3, Production: 33}}},
		609: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 49, ChildCount: 5, Production: 25}}},
		611: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 60, ChildCount: 5, Production: 46}}},
		613: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 52, ChildCount: 4, Production: 6}}},
		615: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 49, ChildCount: 3, Production: 4}}},
		617: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 49, ChildCount: 4, Production: 13}}},
		619: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 82, ChildCount: 2, Production: 3}}},
		621: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 91, ChildCount: 2, Production: 3}}},
		623: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 90, ChildCount: 2, Production: 3}}},
		625: {Reusable: true, Actions: []parser.Action{{Type: parser.Reduce, Symbol: 52, ChildCount: 2}}},
		627: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 178}}},
		629: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 13}}},
		631: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 40}}},
		633: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 113}}},
		635: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 121}}},
		637: {Reusable: true, Actions: []parser.Action{{Type: parser.Shift, State: 68}}},
		639: {Reusable: true, Actions: []parser.Action{{Type: parser.Accept}}},
	},
}

var lexDFA = &lexer.DFA{States: []lexer.State{
	0: {EOFNext: 8, Transitions: []lexer.Transition{
		{Lo: 10, Hi: 10, Next: 44},
		{Lo: 33, Hi: 33, Next: 24},
		{Lo: 37, Hi: 37, Next: 33},
		{Lo: 38, Hi: 38, Next: 26},
		{Lo: 39, Hi: 39, Next: 19},
		{Lo: 40, Hi: 40, Next: 35},
		{Lo: 41, Hi: 41, Next: 36},
		{Lo: 42, Hi: 42, Next: 22},
		{Lo: 43, Hi: 43, Next: 20},
		{Lo: 44, Hi: 44, Next: 43},
		{Lo: 45, Hi: 45, Next: 21},
		{Lo: 46, Hi: 46, Next: 34},
		{Lo: 47, Hi: 47, Next: 32},
		{Lo: 58, Hi: 58, Next: 9},
		{Lo: 59, Hi: 59, Next: 40},
		{Lo: 60, Hi: 60, Next: 11},
		{Lo: 61, Hi: 61, Next: 15},
		{Lo: 62, Hi: 62, Next: 13},
		{Lo: 91, Hi: 91, Next: 37},
		{Lo: 93, Hi: 93, Next: 38},
		{Lo: 94, Hi: 94, Next: 27},
		{Lo: 123, Hi: 123, Next: 16},
		{Lo: 124, Hi: 124, Next: 25},
		{Lo: 125, Hi: 125, Next: 17},
		{Lo: 9, Hi: 9, Next: 0, Skip: true},
		{Lo: 13, Hi: 13, Next: 0, Skip: true},
		{Lo: 32, Hi: 32, Next: 0, Skip: true},
		{Lo: 48, Hi: 57, Next: 42},
		{Class: lexer.ClassIdentStart, Next: 41},
	}},
	1: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 10, Hi: 10, Next: 44},
		{Lo: 33, Hi: 33, Next: 23},
		{Lo: 38, Hi: 38, Next: 26},
		{Lo: 40, Hi: 40, Next: 35},
		{Lo: 41, Hi: 41, Next: 36},
		{Lo: 42, Hi: 42, Next: 22},
		{Lo: 43, Hi: 43, Next: 20},
		{Lo: 44, Hi: 44, Next: 43},
		{Lo: 45, Hi: 45, Next: 21},
		{Lo: 47, Hi: 47, Next: 3},
		{Lo: 58, Hi: 58, Next: 6},
		{Lo: 59, Hi: 59, Next: 40},
		{Lo: 61, Hi: 61, Next: 14},
		{Lo: 62, Hi: 62, Next: 12},
		{Lo: 91, Hi: 91, Next: 37},
		{Lo: 94, Hi: 94, Next: 27},
		{Lo: 123, Hi: 123, Next: 16},
		{Lo: 124, Hi: 124, Next: 25},
		{Lo: 125, Hi: 125, Next: 17},
		{Lo: 9, Hi: 9, Next: 1, Skip: true},
		{Lo: 13, Hi: 13, Next: 1, Skip: true},
		{Lo: 32, Hi: 32, Next: 1, Skip: true},
		{Lo: 48, Hi: 57, Next: 42},
		{Class: lexer.ClassIdentStart, Next: 41},
	}},
	2: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 10, Hi: 10, Next: 44},
		{Lo: 33, Hi: 33, Next: 7},
		{Lo: 37, Hi: 37, Next: 33},
		{Lo: 38, Hi: 38, Next: 26},
		{Lo: 40, Hi: 40, Next: 35},
		{Lo: 41, Hi: 41, Next: 36},
		{Lo: 42, Hi: 42, Next: 22},
		{Lo: 43, Hi: 43, Next: 20},
		{Lo: 44, Hi: 44, Next: 43},
		{Lo: 45, Hi: 45, Next: 21},
		{Lo: 46, Hi: 46, Next: 34},
		{Lo: 47, Hi: 47, Next: 32},
		{Lo: 58, Hi: 58, Next: 6},
		{Lo: 59, Hi: 59, Next: 40},
		{Lo: 60, Hi: 60, Next: 11},
		{Lo: 61, Hi: 61, Next: 15},
		{Lo: 62, Hi: 62, Next: 13},
		{Lo: 91, Hi: 91, Next: 37},
		{Lo: 93, Hi: 93, Next: 38},
		{Lo: 94, Hi: 94, Next: 27},
		{Lo: 123, Hi: 123, Next: 16},
		{Lo: 124, Hi: 124, Next: 25},
		{Lo: 125, Hi: 125, Next: 17},
		{Lo: 9, Hi: 9, Next: 2, Skip: true},
		{Lo: 13, Hi: 13, Next: 2, Skip: true},
		{Lo: 32, Hi: 32, Next: 2, Skip: true},
		{Class: lexer.ClassIdentStart, Next: 41},
	}},
	3: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 42, Hi: 42, Next: 5},
		{Lo: 47, Hi: 47, Next: 45},
	}},
	4: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 42, Hi: 42, Next: 4},
		{Lo: 47, Hi: 47, Next: 46},
		{Lo: 1, Hi: 1114111, Next: 5},
	}},
	5: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 42, Hi: 42, Next: 4},
		{Lo: 1, Hi: 1114111, Next: 5},
	}},
	6: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 58, Hi: 58, Next: 39},
	}},
	7: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 61, Hi: 61, Next: 29},
	}},
	8:  {Accept: 0, HasAccept: true, EOFNext: lexer.NoState},
	9:  {Accept: 3, HasAccept: true, EOFNext: lexer.NoState},
	10: {Accept: 4, HasAccept: true, EOFNext: lexer.NoState},
	11: {Accept: 5, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 61, Hi: 61, Next: 30},
	}},
	12: {Accept: 6, HasAccept: true, EOFNext: lexer.NoState},
	13: {Accept: 6, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 61, Hi: 61, Next: 31},
	}},
	14: {Accept: 7, HasAccept: true, EOFNext: lexer.NoState},
	15: {Accept: 7, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 61, Hi: 61, Next: 28},
	}},
	16: {Accept: 8, HasAccept: true, EOFNext: lexer.NoState},
	17: {Accept: 9, HasAccept: true, EOFNext: lexer.NoState},
	18: {Accept: 17, HasAccept: true, EOFNext: lexer.NoState},
	19: {Accept: 22, HasAccept: true, EOFNext: lexer.NoState},
	20: {Accept: 23, HasAccept: true, EOFNext: lexer.NoState},
	21: {Accept: 24, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 62, Hi: 62, Next: 10},
	}},
	22: {Accept: 25, HasAccept: true, EOFNext: lexer.NoState},
	23: {Accept: 26, HasAccept: true, EOFNext: lexer.NoState},
	24: {Accept: 26, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 61, Hi: 61, Next: 29},
	}},
	25: {Accept: 27, HasAccept: true, EOFNext: lexer.NoState},
	26: {Accept: 28, HasAccept: true, EOFNext: lexer.NoState},
	27: {Accept: 29, HasAccept: true, EOFNext: lexer.NoState},
	28: {Accept: 30, HasAccept: true, EOFNext: lexer.NoState},
	29: {Accept: 31, HasAccept: true, EOFNext: lexer.NoState},
	30: {Accept: 32, HasAccept: true, EOFNext: lexer.NoState},
	31: {Accept: 33, HasAccept: true, EOFNext: lexer.NoState},
	32: {Accept: 34, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 42, Hi: 42, Next: 5},
		{Lo: 47, Hi: 47, Next: 45},
	}},
	33: {Accept: 35, HasAccept: true, EOFNext: lexer.NoState},
	34: {Accept: 36, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 46, Hi: 46, Next: 18},
	}},
	35: {Accept: 37, HasAccept: true, EOFNext: lexer.NoState},
	36: {Accept: 38, HasAccept: true, EOFNext: lexer.NoState},
	37: {Accept: 39, HasAccept: true, EOFNext: lexer.NoState},
	38: {Accept: 40, HasAccept: true, EOFNext: lexer.NoState},
	39: {Accept: 41, HasAccept: true, EOFNext: lexer.NoState},
	40: {Accept: 42, HasAccept: true, EOFNext: lexer.NoState},
	41: {Accept: 1, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Class: lexer.ClassIdentContinue, Next: 41},
	}},
	42: {Accept: 43, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 48, Hi: 57, Next: 42},
		{Lo: 95, Hi: 95, Next: 42},
	}},
	43: {Accept: 44, HasAccept: true, EOFNext: lexer.NoState},
	44: {Accept: 45, HasAccept: true, EOFNext: lexer.NoState},
	45: {Accept: 46, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 1, Hi: 9, Next: 45},
		{Lo: 11, Hi: 1114111, Next: 45},
	}},
	46: {Accept: 47, HasAccept: true, EOFNext: lexer.NoState},
}}

var keywordDFA = &lexer.DFA{States: []lexer.State{
	0: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 101, Hi: 101, Next: 1},
		{Lo: 102, Hi: 102, Next: 2},
		{Lo: 103, Hi: 103, Next: 3},
		{Lo: 105, Hi: 105, Next: 4},
		{Lo: 109, Hi: 109, Next: 5},
		{Lo: 111, Hi: 111, Next: 6},
		{Lo: 114, Hi: 114, Next: 7},
		{Lo: 115, Hi: 115, Next: 8},
		{Lo: 9, Hi: 9, Next: 0, Skip: true},
		{Lo: 13, Hi: 13, Next: 0, Skip: true},
		{Lo: 32, Hi: 32, Next: 0, Skip: true},
	}},
	1: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 108, Hi: 108, Next: 9},
	}},
	2: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 111, Hi: 111, Next: 10},
	}},
	3: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 101, Hi: 101, Next: 11},
	}},
	4: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 102, Hi: 102, Next: 12},
		{Lo: 110, Hi: 110, Next: 13},
	}},
	5: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 111, Hi: 111, Next: 14},
	}},
	6: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 117, Hi: 117, Next: 15},
	}},
	7: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 101, Hi: 101, Next: 16},
	}},
	8: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 116, Hi: 116, Next: 17},
	}},
	9: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 115, Hi: 115, Next: 18},
	}},
	10: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 114, Hi: 114, Next: 19},
	}},
	11: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 110, Hi: 110, Next: 20},
	}},
	12: {Accept: 13, HasAccept: true, EOFNext: lexer.NoState},
	13: {Accept: 16, HasAccept: true, EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 105, Hi: 105, Next: 21},
		{Lo: 112, Hi: 112, Next: 22},
		{Lo: 116, Hi: 116, Next: 23},
	}},
	14: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 100, Hi: 100, Next: 24},
	}},
	15: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 116, Hi: 116, Next: 25},
	}},
	16: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 103, Hi: 103, Next: 26},
	}},
	17: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 97, Hi: 97, Next: 27},
	}},
	18: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 101, Hi: 101, Next: 28},
	}},
	19: {Accept: 15, HasAccept: true, EOFNext: lexer.NoState},
	20: {Accept: 21, HasAccept: true, EOFNext: lexer.NoState},
	21: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 116, Hi: 116, Next: 29},
	}},
	22: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 117, Hi: 117, Next: 30},
	}},
	23: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 101, Hi: 101, Next: 31},
	}},
	24: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 117, Hi: 117, Next: 32},
	}},
	25: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 112, Hi: 112, Next: 33},
	}},
	26: {Accept: 11, HasAccept: true, EOFNext: lexer.NoState},
	27: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 116, Hi: 116, Next: 34},
	}},
	28: {Accept: 14, HasAccept: true, EOFNext: lexer.NoState},
	29: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 105, Hi: 105, Next: 35},
	}},
	30: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 116, Hi: 116, Next: 36},
	}},
	31: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 114, Hi: 114, Next: 37},
	}},
	32: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 108, Hi: 108, Next: 38},
	}},
	33: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 117, Hi: 117, Next: 39},
	}},
	34: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 101, Hi: 101, Next: 40},
	}},
	35: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 97, Hi: 97, Next: 41},
	}},
	36: {Accept: 18, HasAccept: true, EOFNext: lexer.NoState},
	37: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 102, Hi: 102, Next: 42},
	}},
	38: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 101, Hi: 101, Next: 43},
	}},
	39: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 116, Hi: 116, Next: 44},
	}},
	40: {Accept: 20, HasAccept: true, EOFNext: lexer.NoState},
	41: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 108, Hi: 108, Next: 45},
	}},
	42: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 97, Hi: 97, Next: 46},
	}},
	43: {Accept: 2, HasAccept: true, EOFNext: lexer.NoState},
	44: {Accept: 19, HasAccept: true, EOFNext: lexer.NoState},
	45: {Accept: 12, HasAccept: true, EOFNext: lexer.NoState},
	46: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 99, Hi: 99, Next: 47},
	}},
	47: {EOFNext: lexer.NoState, Transitions: []lexer.Transition{
		{Lo: 101, Hi: 101, Next: 48},
	}},
	48: {Accept: 10, HasAccept: true, EOFNext: lexer.NoState},
}}
