// Command romgen renders the rom package's limb-array source from decimal
// constants, mirroring verifier.WritePythonCode's use of text/template to
// turn typed Go values into generated source text. It is driven by
// go:generate from rom/rom.go and is not part of the library's runtime
// surface.
package main

import (
	"fmt"
	"math/big"
	"os"
	"text/template"

	"rsc.io/tmplfunc"
)

// constant is one named decimal value to render as a little-endian
// BASEBITS-limb array.
type constant struct {
	Name  string
	Value string // decimal
}

const basebits = 24
const nlen = 11

// limbs splits a decimal string into nlen little-endian BASEBITS-bit limbs.
func limbs(decimal string) ([]int64, error) {
	v, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal constant %q", decimal)
	}
	mask := big.NewInt(1)
	mask.Lsh(mask, basebits)
	mask.Sub(mask, big.NewInt(1))

	out := make([]int64, nlen)
	t := new(big.Int).Set(v)
	for i := 0; i < nlen; i++ {
		limb := new(big.Int).And(t, mask)
		out[i] = limb.Int64()
		t.Rsh(t, basebits)
	}
	return out, nil
}

const romTemplate = `// Code generated by romgen; DO NOT EDIT.
package rom

{{range .}}// {{.Name}} is a generated limb array.
var {{.Name}} = Limbs{{"{"}}{{limbsOf .Value}}{{"}"}}
{{end}}`

// constants lists the decimal values to render. Empty by default: rom.go's
// current tables were derived once (see DESIGN.md) and checked in directly,
// so this only needs populating when the curve parameterization changes.
var constants = []constant{}

func main() {
	cs := constants
	if len(cs) == 0 {
		fmt.Fprintln(os.Stderr, "romgen: no constants configured, nothing to generate")
		return
	}

	t := template.New("rom").Funcs(template.FuncMap{
		"limbsOf": func(decimal string) (string, error) {
			ls, err := limbs(decimal)
			if err != nil {
				return "", err
			}
			s := ""
			for i, l := range ls {
				if i > 0 {
					s += ", "
				}
				s += fmt.Sprintf("%d", l)
			}
			return s, nil
		},
	})
	t, err := t.Parse(romTemplate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "romgen: parse template: %v\n", err)
		os.Exit(1)
	}
	if err := tmplfunc.Parse(t); err != nil {
		fmt.Fprintf(os.Stderr, "romgen: tmplfunc: %v\n", err)
		os.Exit(1)
	}
	if err := t.Execute(os.Stdout, cs); err != nil {
		fmt.Fprintf(os.Stderr, "romgen: execute: %v\n", err)
		os.Exit(1)
	}
}
