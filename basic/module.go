// Package basic models classic BASIC source files on top of the
// lossless parser: standard modules, class modules and bulk loading of
// whole source trees.
package basic

import (
	"strings"

	"github.com/vbtools/vbp/basic/parser"
)

// ModuleFile is a parsed .bas standard module. Name comes from the
// VB_Name attribute header; CST holds the tree with the attribute
// lines filtered out, Full the unfiltered lossless tree.
type ModuleFile struct {
	Origin   string
	Name     string
	CST      *parser.Tree
	Full     *parser.Tree
	Failures []parser.Failure
}

// ParseModuleFile parses module source. The result is non-nil even for
// heavily malformed input; only undecodable text leaves CST nil.
func ParseModuleFile(origin, source string) *ModuleFile {
	tree, failures := parser.FromText(origin, source)
	m := &ModuleFile{Origin: origin, Failures: failures}
	if tree == nil {
		return m
	}
	m.Full = tree
	m.Name = extractName(tree, &m.Failures)
	m.CST = tree.WithoutKinds(parser.KindAttributeStatement)
	return m
}

// ClassFile is a parsed .cls class module. The VERSION header and the
// Begin block of the class preamble are tolerated and kept in the
// tree; Name extraction works as for modules.
type ClassFile struct {
	Origin   string
	Name     string
	CST      *parser.Tree
	Full     *parser.Tree
	Failures []parser.Failure
}

// ParseClassFile parses class module source.
func ParseClassFile(origin, source string) *ClassFile {
	tree, failures := parser.FromText(origin, source)
	c := &ClassFile{Origin: origin, Failures: failures}
	if tree == nil {
		return c
	}
	c.Full = tree
	c.Name = extractName(tree, &c.Failures)
	c.CST = tree.WithoutKinds(parser.KindAttributeStatement)
	return c
}

// extractName pulls the value of the VB_Name attribute out of the
// tree's attribute statements. A missing or malformed header yields a
// failure and an empty name; parsing is unaffected.
func extractName(tree *parser.Tree, failures *[]parser.Failure) string {
	for _, stmt := range tree.Root().ChildrenOfKind(parser.KindAttributeStatement) {
		name, ok := attributeName(stmt)
		if !ok || !strings.EqualFold(name, "VB_Name") {
			continue
		}
		literal := stmt.FindDescendantsOfKind(parser.KindStringLiteral)
		if len(literal) == 0 {
			*failures = append(*failures, parser.Failure{
				Origin:  tree.Origin,
				Message: "VB_Name attribute value is not a string",
				Span:    stmt.Span,
			})
			return ""
		}
		return unquote(literal[0].TokenText())
	}
	*failures = append(*failures, parser.Failure{
		Origin:  tree.Origin,
		Message: "missing VB_Name attribute",
		Span:    parser.Span{Offset: 0},
	})
	return ""
}

// attributeName returns the first name token after the Attribute
// keyword.
func attributeName(stmt *parser.Node) (string, bool) {
	seenKeyword := false
	for _, child := range stmt.Children {
		if !child.IsToken() {
			continue
		}
		switch child.Kind {
		case parser.KindAttributeKeyword:
			seenKeyword = true
			continue
		case parser.KindWhitespace, parser.KindLineContinuation:
			continue
		}
		if seenKeyword {
			return child.TokenText(), true
		}
	}
	return "", false
}

// unquote strips the delimiters from a string literal and collapses
// doubled-quote escapes.
func unquote(text string) string {
	text = strings.TrimPrefix(text, `"`)
	text = strings.TrimSuffix(text, `"`)
	return strings.ReplaceAll(text, `""`, `"`)
}
