// Command gensysreg writes the arm64 system register read routines.
//
// Every routine has the same three-instruction body: the MRS into x0, the
// store of x0 into the result slot, and the return. The MRS is emitted as a
// raw WORD so the assembler accepts identifiers it has no mnemonic for.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/leodido/arm64id/internal/sysreg"
)

type routine struct {
	Name string
	Word uint32
}

var asmTemplate = template.Must(template.New("asm").Parse(`// Code generated by gensysreg. DO NOT EDIT.

//go:build arm64

#include "textflag.h"
{{range .}}
// func read{{.Name}}() uint64
TEXT ·read{{.Name}}(SB),NOSPLIT,$0-8
	WORD	${{printf "%#08x" .Word}} // mrs x0, {{.Name}}
	MOVD	R0, ret+0(FP)
	RET
{{end}}`))

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by gensysreg. DO NOT EDIT.

//go:build arm64

package arm64id

{{range .}}
func read{{.Name}}() uint64
{{- end}}

var sysregReaders = map[string]func() uint64{
{{- range .}}
	"{{.Name}}": read{{.Name}},
{{- end}}
}
`))

func main() {
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	regs := sysreg.All()
	routines := make([]routine, 0, len(regs))
	for _, r := range regs {
		routines = append(routines, routine{Name: r.String(), Word: r.MRS(0)})
	}

	var asm bytes.Buffer
	if err := asmTemplate.Execute(&asm, routines); err != nil {
		log.Fatalf("render assembly: %v", err)
	}

	var src bytes.Buffer
	if err := goTemplate.Execute(&src, routines); err != nil {
		log.Fatalf("render declarations: %v", err)
	}
	formatted, err := format.Source(src.Bytes())
	if err != nil {
		log.Fatalf("format declarations: %v", err)
	}

	if err := write(filepath.Join(*out, "zsysreg_arm64.s"), asm.Bytes()); err != nil {
		log.Fatal(err)
	}
	if err := write(filepath.Join(*out, "zsysreg_arm64.go"), formatted); err != nil {
		log.Fatal(err)
	}
}

func write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
