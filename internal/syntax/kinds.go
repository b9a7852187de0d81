// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package syntax

// Node kinds of the tree-sitter JavaScript, TypeScript and TSX grammars used by the rules.
const (
	Program    = "program"
	Comment    = "comment"
	Identifier = "identifier"

	PropertyIdentifier          = "property_identifier"
	ShorthandPropertyIdentifier = "shorthand_property_identifier"
	ComputedPropertyName        = "computed_property_name"

	String               = "string"
	Number               = "number"
	TemplateString       = "template_string"
	TemplateSubstitution = "template_substitution"
	False                = "false"

	Array                   = "array"
	Object                  = "object"
	Pair                    = "pair"
	SpreadElement           = "spread_element"
	CallExpression          = "call_expression"
	Arguments               = "arguments"
	MemberExpression        = "member_expression"
	SubscriptExpression     = "subscript_expression"
	ParenthesizedExpression = "parenthesized_expression"
	TernaryExpression       = "ternary_expression"
	ArrowFunction           = "arrow_function"
	FunctionExpression      = "function_expression"
	Function                = "function" // function_expression in older grammar versions
	GeneratorFunction       = "generator_function"
	MethodDefinition        = "method_definition"
	FormalParameters        = "formal_parameters"
	RequiredParameter       = "required_parameter"
	OptionalParameter       = "optional_parameter"

	StatementBlock      = "statement_block"
	ExpressionStatement = "expression_statement"
	ReturnStatement     = "return_statement"
	LexicalDeclaration  = "lexical_declaration"
	VariableDeclaration = "variable_declaration"
	VariableDeclarator  = "variable_declarator"
	IfStatement         = "if_statement"
	ElseClause          = "else_clause"
	SwitchStatement     = "switch_statement"
	SwitchCase          = "switch_case"
	SwitchDefault       = "switch_default"
	SwitchBody          = "switch_body"
	ForStatement        = "for_statement"
	ForInStatement      = "for_in_statement"
	CatchClause         = "catch_clause"

	FunctionDeclaration  = "function_declaration"
	GeneratorDeclaration = "generator_function_declaration"
	ClassDeclaration     = "class_declaration"
	ExportStatement      = "export_statement"
	ImportStatement      = "import_statement"
	ImportClause         = "import_clause"
	NamespaceImport      = "namespace_import"
	NamedImports         = "named_imports"
	ImportSpecifier      = "import_specifier"

	ObjectPattern                      = "object_pattern"
	PairPattern                        = "pair_pattern"
	ShorthandPropertyIdentifierPattern = "shorthand_property_identifier_pattern"
	ArrayPattern                       = "array_pattern"
	RestPattern                        = "rest_pattern"
	AssignmentPattern                  = "assignment_pattern"
	ObjectAssignmentPattern            = "object_assignment_pattern"

	JSXElement            = "jsx_element"
	JSXOpeningElement     = "jsx_opening_element"
	JSXSelfClosingElement = "jsx_self_closing_element"
	JSXExpression         = "jsx_expression"
	JSXAttribute          = "jsx_attribute"
)
