// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"strconv"
	"strings"
)

// A Stmt is a statement of a Combinatorial code body.
//
type Stmt interface {
	render(b *strings.Builder, indent int)
}

// An Expr is an expression of a Combinatorial code body.
//
type Expr interface {
	expr() string
}

// Assign assigns Value to the signal Target.
//
type Assign struct {
	Target string
	Value  Expr
}

// If is a conditional statement. Else may be empty.
//
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// Case selects the statements of the item whose label matches Subject.
//
type Case struct {
	Subject Expr
	Items   []CaseItem
	Default []Stmt
}

// A CaseItem is a labeled branch of a Case statement.
//
type CaseItem struct {
	Label Expr
	Body  []Stmt
}

// Comment is a single line comment.
//
type Comment string

// LinkStmt renders link descriptors as assignments.
//
type LinkStmt []Link

const indentStr = "    "

func line(b *strings.Builder, indent int, s string) {
	for i := 0; i < indent; i++ {
		b.WriteString(indentStr)
	}
	b.WriteString(s)
	b.WriteByte('\n')
}

func renderBlock(b *strings.Builder, indent int, ss []Stmt) {
	for _, s := range ss {
		s.render(b, indent)
	}
}

func (a Assign) render(b *strings.Builder, indent int) {
	line(b, indent, a.Target+" = "+a.Value.expr()+";")
}

func (s If) render(b *strings.Builder, indent int) {
	line(b, indent, "if ("+s.Cond.expr()+") begin")
	renderBlock(b, indent+1, s.Then)
	line(b, indent, "end")
	if len(s.Else) > 0 {
		line(b, indent, "else begin")
		renderBlock(b, indent+1, s.Else)
		line(b, indent, "end")
	}
}

func (s Case) render(b *strings.Builder, indent int) {
	line(b, indent, "case ("+s.Subject.expr()+")")
	for _, it := range s.Items {
		line(b, indent+1, it.Label.expr()+": begin")
		renderBlock(b, indent+2, it.Body)
		line(b, indent+1, "end")
	}
	if len(s.Default) > 0 {
		line(b, indent+1, "default: begin")
		renderBlock(b, indent+2, s.Default)
		line(b, indent+1, "end")
	}
	line(b, indent, "endcase")
}

func (c Comment) render(b *strings.Builder, indent int) {
	line(b, indent, "// "+string(c))
}

func (ls LinkStmt) render(b *strings.Builder, indent int) {
	for _, l := range ls {
		line(b, indent, l.String())
	}
}

// Ref references a signal by its namespace-qualified name.
//
type Ref string

// Lit is a sized literal value.
//
type Lit struct {
	Bits   int
	Value  uint64
	Signed bool
}

// EnumRef references an enum discriminant by its label, as found in a
// TypeDescriptor. See TypeDescriptor.Label.
//
type EnumRef string

// Unary applies Op ("~", "!", "-", "&", "|", "^") to X.
//
type Unary struct {
	Op string
	X  Expr
}

// Binary applies the binary operator Op to X and Y.
//
type Binary struct {
	Op   string
	X, Y Expr
}

// Index selects bit Bit of X.
//
type Index struct {
	X   Expr
	Bit int
}

// Slice selects bits Hi down to Lo of X.
//
type Slice struct {
	X      Expr
	Hi, Lo int
}

// Concat concatenates its parts, most significant first.
//
type Concat []Expr

func (r Ref) expr() string     { return string(r) }
func (l Lit) expr() string     { return literal(l.Bits, l.Value, l.Signed) }
func (e EnumRef) expr() string { return mangle(string(e)) }
func (u Unary) expr() string   { return u.Op + operand(u.X) }
func (b Binary) expr() string  { return operand(b.X) + " " + b.Op + " " + operand(b.Y) }
func (i Index) expr() string   { return operand(i.X) + "[" + strconv.Itoa(i.Bit) + "]" }

func (s Slice) expr() string {
	return operand(s.X) + "[" + strconv.Itoa(s.Hi) + ":" + strconv.Itoa(s.Lo) + "]"
}

func (c Concat) expr() string {
	ps := make([]string, len(c))
	for i, e := range c {
		ps[i] = e.expr()
	}
	return "{" + strings.Join(ps, ", ") + "}"
}

// operand renders e, with parentheses if it is an operator expression.
//
func operand(e Expr) string {
	switch e.(type) {
	case Binary, Unary:
		return "(" + e.expr() + ")"
	}
	return e.expr()
}

// render returns the Verilog rendition of a Combinatorial body.
//
func (c Combinatorial) render() string {
	var b strings.Builder
	line(&b, 0, "always @(*) begin")
	renderBlock(&b, 1, c)
	line(&b, 0, "end")
	return strings.TrimSuffix(b.String(), "\n")
}

// Targets returns the names of all signals assigned in c, in order of
// appearance. A name assigned several times is returned once.
//
func (c Combinatorial) Targets() []string {
	var ts []string
	seen := make(map[string]bool)
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			ts = append(ts, t)
		}
	}
	var walk func([]Stmt)
	walk = func(ss []Stmt) {
		for _, s := range ss {
			switch s := s.(type) {
			case Assign:
				add(s.Target)
			case If:
				walk(s.Then)
				walk(s.Else)
			case Case:
				for _, it := range s.Items {
					walk(it.Body)
				}
				walk(s.Default)
			case LinkStmt:
				for _, l := range s {
					add(l.Target())
				}
			}
		}
	}
	walk(c)
	return ts
}
