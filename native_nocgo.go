// Copyright 2025-2026 Patrick J. Scruggs
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

//go:build !cgo || avlog_nocgo

package avlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"unsafe"
)

// goLib stands in for libavutil when the package is built without cgo. It
// keeps level and flags in memory and only ever sees events produced by
// Print, whose Args carry the already formatted message.
type goLib struct {
	lvl       atomic.Int32
	flg       atomic.Int32
	installed atomic.Bool
	out       io.Writer
}

func newNativeLib() nativeLib {
	l := &goLib{out: os.Stderr}
	l.lvl.Store(nativeInfo)
	return l
}

func (g *goLib) setLevel(n int32) { g.lvl.Store(n) }
func (g *goLib) level() int32     { return g.lvl.Load() }
func (g *goLib) setFlags(n int32) { g.flg.Store(n) }
func (g *goLib) flags() int32     { return g.flg.Load() }

func (g *goLib) installDispatcher() { g.installed.Store(true) }
func (g *goLib) installDefault()    { g.installed.Store(false) }

func (g *goLib) render(args Args) (string, error) {
	return *(*string)(args.list), nil
}

func (g *goLib) forwardDefault(_ Source, args Args) {
	g.writeDefault(args.level, *(*string)(args.list))
}

func (g *goLib) itemName(Source) string { return "" }

// print hands msg to the registered callback. The installed flag can go
// stale between the check and dispatch, so an undelivered event falls back to
// the default output like it would in libavutil.
func (g *goLib) print(src Source, level int32, msg string) {
	if g.installed.Load() {
		p := unsafe.Pointer(&msg)
		if dispatch(src, level, msg, Args{level: level, format: p, list: p}) {
			return
		}
	}
	g.writeDefault(level, msg)
}

func (g *goLib) writeDefault(level int32, msg string) {
	if level > g.lvl.Load() {
		return
	}
	if Flags(g.flg.Load()).Has(FlagPrintLevel) {
		msg = "[" + decodeNative(level).String() + "] " + msg
	}
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(g.out, msg)
}
