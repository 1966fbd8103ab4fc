/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"go/format"
)

// Generate renders the registration code for an annotation document. Output
// is deterministic: models and fields are emitted in sorted order.
func Generate(file *AnnotationFile) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by hydrate-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", file.Package)
	buf.WriteString("import (\n\t\"github.com/suparena/hydrate/registry\"\n)\n\n")
	buf.WriteString("func init() {\n")

	for _, modelName := range sortedModelNames(file) {
		model := file.Models[modelName]
		for _, fieldName := range sortedFieldNames(model) {
			f := model.Fields[fieldName]
			switch {
			case f.Skip:
				fmt.Fprintf(&buf,
					"\tif err := registry.DeclareSkip[%s](registry.Default, %q); err != nil {\n\t\tpanic(err)\n\t}\n",
					modelName, fieldName)
			case f.DataType == "Date":
				fmt.Fprintf(&buf,
					"\tregistry.DeclareDataType[%s](registry.Default, %q, registry.DateType, %t)\n",
					modelName, fieldName, f.Array)
			default:
				fmt.Fprintf(&buf,
					"\tregistry.DeclareDataType[%s](registry.Default, %q, registry.TypeFor[%s](), %t)\n",
					modelName, fieldName, f.DataType, f.Array)
			}
		}
	}

	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not format: %w", err)
	}
	return src, nil
}
