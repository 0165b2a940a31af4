// Copyright 2026 simd-sub000 Authors
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

// Command lanegen generates the named lane-vector constructor tables
// (F32x4, I64x2, ...) for the 128/256/512-bit register widths.
//
// Usage:
//
//	lanegen -output simd/aliases_gen.go
//
// Or via go:generate from the simd package:
//
//	//go:generate go run github.com/amallia/simd-sub000/cmd/lanegen -output aliases_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

var outputFile = flag.String("output", "aliases_gen.go", "Output file path")

// kindSpec describes one element kind's alias prefix and Go type.
type kindSpec struct {
	Prefix   string
	GoType   string
	ElemSize int
}

var kinds = []kindSpec{
	{"I8", "int8", 1},
	{"I16", "int16", 2},
	{"I32", "int32", 4},
	{"I64", "int64", 8},
	{"I128", "Int128", 16},
	{"U8", "uint8", 1},
	{"U16", "uint16", 2},
	{"U32", "uint32", 4},
	{"U64", "uint64", 8},
	{"F32", "float32", 4},
	{"F64", "float64", 8},
}

// complexKinds are the component kinds that get CVec aliases.
var complexKinds = []kindSpec{
	{"CF32", "float32", 4},
	{"CF64", "float64", 8},
}

var widths = []int{16, 32, 64}

type alias struct {
	Name   string
	GoType string
	Lanes  int
	Bits   int
}

type fileData struct {
	Vecs  []alias
	CVecs []alias
}

const fileTemplate = `// Code generated by lanegen. DO NOT EDIT.

package simd

// Named constructors for the common register technologies: one
// constructor per (element kind, register width) pair, 128 through 512
// bits. These are static instantiations of the representation registry.
{{range .Vecs}}
// {{.Name}} returns a zeroed {{.Lanes}}-lane {{.GoType}} vector ({{.Bits}}-bit register).
func {{.Name}}() Vec[{{.GoType}}] {
	return New[{{.GoType}}]({{.Lanes}})
}
{{end}}{{range .CVecs}}
// {{.Name}} returns a zeroed {{.Lanes}}-lane complex vector over {{.GoType}} ({{.Bits}}-bit component registers).
func {{.Name}}() CVec[{{.GoType}}] {
	return NewC[{{.GoType}}]({{.Lanes}})
}
{{end}}`

func build() fileData {
	var data fileData
	for _, w := range widths {
		for _, k := range kinds {
			lanes := w / k.ElemSize
			if lanes < 1 {
				continue
			}
			data.Vecs = append(data.Vecs, alias{
				Name:   fmt.Sprintf("%sx%d", k.Prefix, lanes),
				GoType: k.GoType,
				Lanes:  lanes,
				Bits:   w * 8,
			})
		}
		for _, k := range complexKinds {
			lanes := w / k.ElemSize
			data.CVecs = append(data.CVecs, alias{
				Name:   fmt.Sprintf("%sx%d", k.Prefix, lanes),
				GoType: k.GoType,
				Lanes:  lanes,
				Bits:   w * 8,
			})
		}
	}
	return data
}

func main() {
	flag.Parse()

	tmpl, err := template.New("aliases").Parse(fileTemplate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, build()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	formatted, err := imports.Process(*outputFile, buf.Bytes(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, formatted, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s\n", *outputFile)
}
