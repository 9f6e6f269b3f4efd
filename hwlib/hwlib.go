// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable circuit blocks for hwgen.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import "github.com/db47h/hwgen"

// common signal names
const (
	pA      = "a"
	pB      = "b"
	pSum    = "sum"
	pClock  = "clock"
	pD      = "d"
	pQ      = "q"
	pEnable = "enable"
	pCount  = "count"
)

func ref(names ...string) hwgen.Ref {
	n := ""
	for _, s := range names {
		n = hwgen.Join(n, s)
	}
	return hwgen.Ref(n)
}

func assign(target string, v hwgen.Expr) hwgen.Assign {
	return hwgen.Assign{Target: target, Value: v}
}
