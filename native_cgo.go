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

//go:build cgo && !avlog_nocgo

package avlog

/*
#cgo pkg-config: libavutil
#include <stdarg.h>
#include <stdlib.h>
#include <libavutil/log.h>

extern void avlogDispatch(void *avcl, int level, char *fmt, void *vl);

static void avlog_trampoline(void *avcl, int level, const char *fmt, va_list vl) {
	va_list cp;
	va_copy(cp, vl);
	avlogDispatch(avcl, level, (char *)fmt, (void *)&cp);
	va_end(cp);
}

static void avlog_install_dispatcher(void) {
	av_log_set_callback(avlog_trampoline);
}

static void avlog_install_default(void) {
	av_log_set_callback(av_log_default_callback);
}

static int avlog_render(int level, const char *fmt, void *vl, char *line, int size) {
	va_list cp;
	int prefix = 0;
	int n;
	va_copy(cp, *(va_list *)vl);
	n = av_log_format_line2(NULL, level, fmt, cp, line, size, &prefix);
	va_end(cp);
	return n;
}

static void avlog_forward_default(void *avcl, int level, const char *fmt, void *vl) {
	va_list cp;
	va_copy(cp, *(va_list *)vl);
	av_log_default_callback(avcl, level, fmt, cp);
	va_end(cp);
}

static const char *avlog_item_name(void *avcl) {
	AVClass *cls;
	if (avcl == NULL) {
		return NULL;
	}
	cls = *(AVClass **)avcl;
	if (cls == NULL || cls->item_name == NULL) {
		return NULL;
	}
	return cls->item_name(avcl);
}

static void avlog_print(void *avcl, int level, const char *msg) {
	av_log(avcl, level, "%s", msg);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// renderBufferSize covers almost every libavutil line in one pass.
const renderBufferSize = 1024

type cgoLib struct{}

func newNativeLib() nativeLib { return cgoLib{} }

func (cgoLib) setLevel(n int32) { C.av_log_set_level(C.int(n)) }
func (cgoLib) level() int32     { return int32(C.av_log_get_level()) }
func (cgoLib) setFlags(n int32) { C.av_log_set_flags(C.int(n)) }
func (cgoLib) flags() int32     { return int32(C.av_log_get_flags()) }

func (cgoLib) installDispatcher() { C.avlog_install_dispatcher() }
func (cgoLib) installDefault()    { C.avlog_install_default() }

func (cgoLib) render(args Args) (string, error) {
	buf := make([]byte, renderBufferSize)
	n := renderInto(args, buf)
	if n < 0 {
		return "", fmt.Errorf("%w: libavutil error %d", ErrRenderFailure, n)
	}
	if n >= len(buf) {
		buf = make([]byte, n+1)
		if n = renderInto(args, buf); n < 0 || n >= len(buf) {
			return "", fmt.Errorf("%w: libavutil error %d", ErrRenderFailure, n)
		}
	}
	return string(buf[:n]), nil
}

func renderInto(args Args, buf []byte) int {
	return int(C.avlog_render(
		C.int(args.level),
		(*C.char)(args.format),
		args.list,
		(*C.char)(unsafe.Pointer(&buf[0])),
		C.int(len(buf)),
	))
}

func (cgoLib) forwardDefault(src Source, args Args) {
	C.avlog_forward_default(unsafe.Pointer(src), C.int(args.level), (*C.char)(args.format), args.list)
}

func (cgoLib) itemName(src Source) string {
	name := C.avlog_item_name(unsafe.Pointer(src))
	if name == nil {
		return ""
	}
	return C.GoString(name)
}

func (cgoLib) print(src Source, level int32, msg string) {
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))
	C.avlog_print(unsafe.Pointer(src), C.int(level), cmsg)
}
