// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var blockType = reflect.TypeOf((*Block)(nil)).Elem()

// field is a named sub-block of a composite.
type field struct {
	name string
	b    Block
	v    reflect.Value
}

// subBlocks returns the sub-blocks of b in field declaration order, or nil if
// b is not a pointer to a struct.
//
// Only exported fields are considered. The sub-block name is the field name in
// lowercase unless forced with a field tag: `hw:"name"`. Fields tagged
// `hw:"-"` are ignored. Array and slice elements are named name_0, name_1, etc.
//
func subBlocks(b Block) []field {
	v := reflect.ValueOf(b)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil
	}
	v = v.Elem()
	typ := v.Type()

	var fs []field
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name := strings.ToLower(f.Name)
		if tag, ok := f.Tag.Lookup("hw"); ok {
			tv := strings.Split(tag, ",")
			if tv[0] == "-" {
				continue
			}
			if tv[0] != "" {
				name = tv[0]
			}
		}
		fs = collect(fs, name, v.Field(i))
	}
	return fs
}

func collect(fs []field, name string, fv reflect.Value) []field {
	switch fv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if fv.IsNil() {
			return fs
		}
		if fv.Type().Implements(blockType) {
			return append(fs, field{name, fv.Interface().(Block), fv})
		}
	case reflect.Struct:
		if fv.CanAddr() && fv.Addr().Type().Implements(blockType) {
			a := fv.Addr()
			return append(fs, field{name, a.Interface().(Block), a})
		}
	case reflect.Array, reflect.Slice:
		for i := 0; i < fv.Len(); i++ {
			fs = collect(fs, name+"_"+strconv.Itoa(i), fv.Index(i))
		}
	}
	return fs
}

// mustSubBlocks is like subBlocks but panics if b is not a pointer to a
// struct.
//
func mustSubBlocks(b Block) []field {
	v := reflect.ValueOf(b)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		panic(errors.Errorf("unsupported composite type %T", b))
	}
	return subBlocks(b)
}

// LinkFields links every field of a to the matching field of b by calling
// its Link method. a and b must be pointers to the same struct type. Fields
// without a Link method are skipped.
//
// It implements Link for duplex interface types:
//
//	func (s *Source) Link(other *Source) { hwgen.LinkFields(s, other) }
//
func LinkFields(a, b Block) { callPairs("Link", a, b) }

// LinkConnectFields is like LinkFields but calls the LinkConnect method of
// every field.
//
func LinkConnectFields(a, b Block) { callPairs("LinkConnect", a, b) }

func callPairs(method string, a, b Block) {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		panic(errors.Errorf("cannot link %T to %T", a, b))
	}
	fa, fb := mustSubBlocks(a), mustSubBlocks(b)
	if len(fa) != len(fb) {
		panic(errors.Errorf("cannot link %T instances with different field counts", a))
	}
	for i := range fa {
		m := fa[i].v.MethodByName(method)
		if !m.IsValid() {
			continue
		}
		m.Call([]reflect.Value{fb[i].v})
	}
}

// LinkRenderFields returns the link descriptors of every field of b that
// implements LinkRenderer. this and that are the already qualified names of
// the two linked instances.
//
func LinkRenderFields(b Block, this, that string) []Link {
	var links []Link
	for _, f := range mustSubBlocks(b) {
		if lr, ok := f.b.(LinkRenderer); ok {
			links = append(links, lr.LinkRender(f.name, this, that)...)
		}
	}
	return links
}
