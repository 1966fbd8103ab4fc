/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// AnnotationFile is the YAML document describing per-field reconstruction
// metadata for a set of model types.
type AnnotationFile struct {
	// Package is the Go package the generated file belongs to.
	Package string `yaml:"package"`
	// Models maps a model type name to its field annotations.
	Models map[string]Model `yaml:"models"`
}

// Model holds the field annotations of one model type.
type Model struct {
	Fields map[string]Field `yaml:"fields"`
}

// Field is one field annotation. DataType names a model type in the same
// package, or the literal "Date" for the built-in date type. Converter
// tables cannot be expressed here; declare those in code.
type Field struct {
	DataType string `yaml:"dataType,omitempty"`
	Array    bool   `yaml:"array,omitempty"`
	Skip     bool   `yaml:"skip,omitempty"`
}

var (
	inFlag  = flag.String("in", "hydrate.yaml", "Annotation file to process")
	outFlag = flag.String("out", "hydrate_gen.go", "Generated Go file to write")
)

// Main is the CLI entry point: read the annotation file, generate the
// registration code, write it next to the models.
func Main() {
	if err := Run(*inFlag, *outFlag); err != nil {
		fmt.Fprintf(os.Stderr, "hydrate-gen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s from %s\n", *outFlag, *inFlag)
}

// Run processes one annotation file into one generated source file.
func Run(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read annotation file: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return err
	}

	src, err := Generate(file)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("failed to write generated file: %w", err)
	}
	return nil
}

// Parse decodes and validates an annotation document.
func Parse(data []byte) (*AnnotationFile, error) {
	var file AnnotationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse annotation file: %w", err)
	}

	if file.Package == "" {
		return nil, fmt.Errorf("annotation file must set package")
	}
	for _, modelName := range sortedModelNames(&file) {
		model := file.Models[modelName]
		for _, fieldName := range sortedFieldNames(model) {
			f := model.Fields[fieldName]
			if f.Skip && (f.DataType != "" || f.Array) {
				return nil, fmt.Errorf("field %q of %s: skip excludes dataType and array", fieldName, modelName)
			}
			if !f.Skip && f.DataType == "" {
				return nil, fmt.Errorf("field %q of %s: annotation declares neither dataType nor skip", fieldName, modelName)
			}
		}
	}
	return &file, nil
}

func sortedModelNames(file *AnnotationFile) []string {
	names := make([]string, 0, len(file.Models))
	for name := range file.Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedFieldNames(model Model) []string {
	names := make([]string, 0, len(model.Fields))
	for name := range model.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
