// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// DefaultTopName is the instance name of the root block.
//
const DefaultTopName = "top"

var errEmptyTop = errors.New("empty top module name")

type options struct {
	top    string
	logger *log.Logger
}

// An Option configures a generation call.
//
type Option func(*options)

// WithTopName sets the name of the root module. The default is "top".
// Generation fails if name is empty.
//
func WithTopName(name string) Option {
	return func(o *options) { o.top = name }
}

// WithLogger sets the logger used to report generation progress at debug
// level. By default nothing is logged.
//
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) *options {
	o := &options{top: DefaultTopName}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}

// Generate checks the circuit rooted at root for undriven signals and
// conflicting drivers, then returns its Verilog code. The check error is
// returned as is, see CheckError.
//
// Callers must have called ConnectAll(root) and connected the root's input
// signals beforehand.
//
func Generate(root Block, opts ...Option) (string, error) {
	o := newOptions(opts)
	if err := check(root, o); err != nil {
		return "", err
	}
	return generate(root, o)
}

// GenerateUnchecked returns the Verilog code of the circuit rooted at root
// without checking it first.
//
func GenerateUnchecked(root Block, opts ...Option) (string, error) {
	return generate(root, newOptions(opts))
}

func generate(root Block, o *options) (string, error) {
	if root == nil {
		return "", errors.New("nil root block")
	}
	if o.top == "" {
		return "", errEmptyTop
	}
	d := newModuleDefines()
	root.Accept(o.top, d)
	o.logger.Debug("circuit traversed", "top", o.top, "modules", len(d.details)-1)
	text, err := d.render()
	if err != nil {
		return "", errors.Wrapf(err, "generate %s", o.top)
	}
	o.logger.Debug("verilog rendered", "top", o.top, "bytes", len(text))
	return text, nil
}
