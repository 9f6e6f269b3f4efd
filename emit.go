// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"strconv"
	"strings"

	"github.com/db47h/hwgen/internal/codewriter"
	"github.com/pkg/errors"
)

// ErrUnknownModule is the cause of errors returned when a sub-module instance
// references a module that is missing from the module table.
//
var ErrUnknownModule = errors.New("unknown module")

// decl returns the Verilog declaration of an atom.
//
func decl(a atomDetails) string {
	var b strings.Builder
	b.WriteString(a.kind.keyword())
	if a.signed {
		b.WriteString(" signed")
	}
	switch {
	case a.kind == Constant:
		b.WriteString(" " + a.name + " = " + a.literal)
	case a.width == 1:
		b.WriteString(" " + a.name)
	default:
		b.WriteString(" [" + strconv.Itoa(a.width-1) + ":0] " + a.name)
	}
	b.WriteByte(';')
	return b.String()
}

// section writes a commented group of lines. Nothing is written if lines is
// empty.
//
func section(w *codewriter.Writer, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	w.Add("")
	w.Add("// " + title)
	for _, l := range lines {
		w.Add(l)
	}
}

func decls(as []atomDetails) []string {
	ls := make([]string, len(as))
	for i, a := range as {
		ls[i] = decl(a)
	}
	return ls
}

// resolve checks that every sub-module instance references a module in the
// table.
//
func (d *moduleDefines) resolve() error {
	for _, k := range d.modules() {
		for _, sub := range d.details[k].subModules {
			if _, ok := d.details[sub.kind]; !ok {
				return errors.Wrapf(ErrUnknownModule, "module %q, instance %q of %q", k, sub.name, sub.kind)
			}
		}
	}
	return nil
}

// render renders the module table as Verilog. It either returns the complete
// text or an error.
//
func (d *moduleDefines) render() (string, error) {
	if err := d.resolve(); err != nil {
		return "", err
	}
	var w codewriter.Writer
	keys := d.modules()
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := d.details[k].code.(Blackbox); ok {
			continue
		}
		d.renderModule(&w, k, d.details[k])
	}

	// external code, once per distinct text.
	seen := make(map[string]bool)
	for _, k := range keys {
		var text string
		switch c := d.details[k].code.(type) {
		case Blackbox:
			text = c.Code
		case Wrapper:
			text = c.Cores
		}
		text = strings.Trim(text, "\n")
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		w.Add("")
		w.Add(text)
	}
	return w.String(), nil
}

func (d *moduleDefines) renderModule(w *codewriter.Writer, name string, m *moduleDetails) {
	_, wrapper := m.code.(Wrapper)
	atoms := m.atoms
	if wrapper {
		atoms = make([]atomDetails, len(m.atoms))
		for i, a := range m.atoms {
			if a.kind == OutputParameter {
				a.kind = OutputPassthrough
			}
			atoms[i] = a
		}
	}

	var args, stubs, consts, locals []atomDetails
	for _, a := range atoms {
		switch {
		case a.kind.IsParameter():
			args = append(args, a)
		case a.kind.IsStub():
			stubs = append(stubs, a)
		case a.kind == Constant:
			consts = append(consts, a)
		case a.kind == LocalSignal:
			locals = append(locals, a)
		}
	}
	argNames := make([]string, len(args))
	for i, a := range args {
		argNames[i] = a.name
	}

	if w.Len() > 0 {
		w.Add("")
	}
	if wrapper {
		w.Add("// v-- Setting output parameters to net type for wrapped code.")
	}
	w.Add("module " + name + "(" + strings.Join(argNames, ",") + ");")
	w.Push()
	section(w, "Module arguments", decls(args))
	section(w, "Constant declarations", decls(consts))
	if !wrapper {
		var enums []string
		for _, e := range m.enums {
			enums = append(enums, "localparam "+mangle(e.discriminant)+" = "+strconv.Itoa(e.value)+";")
		}
		section(w, "Enums", enums)
		section(w, "Stub signals", decls(stubs))
		section(w, "Local signals", decls(locals))
		section(w, "Sub module instances", d.instances(m))
	}
	switch c := m.code.(type) {
	case Combinatorial:
		if len(c) > 0 {
			section(w, "Update code", []string{c.render()})
		}
	case CustomText:
		if s := strings.Trim(string(c), "\n"); s != "" {
			section(w, "Update code (custom)", []string{s})
		}
	case Wrapper:
		if s := strings.Trim(c.Code, "\n"); s != "" {
			section(w, "Update code (wrapper)", []string{s})
		}
	}
	w.Pop()
	w.Add("endmodule // " + name)
}

// instances returns the instantiation statements of m's sub-modules. Each
// child parameter is bound to the parent stub <instance>$<parameter>.
//
func (d *moduleDefines) instances(m *moduleDetails) []string {
	var ls []string
	for _, sub := range m.subModules {
		child := d.details[sub.kind]
		typ := sub.kind
		if bb, ok := child.code.(Blackbox); ok {
			typ = bb.Name
		}
		var binds []string
		for _, a := range child.atoms {
			if a.kind.IsParameter() {
				binds = append(binds, "."+a.name+"("+sub.name+Sep+a.name+")")
			}
		}
		ls = append(ls, typ+" "+sub.name+"("+strings.Join(binds, ",")+");")
	}
	return ls
}
