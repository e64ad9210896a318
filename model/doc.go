// Package model defines the serializable structure tree produced by
// template extraction: a TemplateStructure root holding document
// metadata and an ordered list of pages, where each page holds an
// ordered list of content elements (paragraphs, images, tables).
//
// The tree is built once per extraction and never mutated afterwards;
// it marshals directly to the JSON artifact consumed by downstream
// tooling.
package model
