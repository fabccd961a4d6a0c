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

import "C"

import "unsafe"

// avlogDispatch is called by the C trampoline for every libavutil log event.
// vl points at a va_copy owned by the trampoline and dies when this returns.
//
//export avlogDispatch
func avlogDispatch(avcl unsafe.Pointer, level C.int, format *C.char, vl unsafe.Pointer) {
	if format == nil {
		return
	}
	dispatch(Source(avcl), int32(level), C.GoString(format), Args{
		level:  int32(level),
		format: unsafe.Pointer(format),
		list:   vl,
	})
}
