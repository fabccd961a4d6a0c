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

package main

import (
	"log"
	"os"

	"github.com/pjscruggs/slogcp"
	avlog "github.com/pjscruggs/slogcp-avlog"
)

// A minimal runnable example that routes libavutil logging through slogcp.
func main() {
	handler, err := slogcp.NewHandler(os.Stdout)
	if err != nil {
		log.Fatalf("failed to create handler: %v", err)
	}

	avlog.SetLevel(avlog.LevelVerbose)
	avlog.SetFlags(avlog.FlagSkipRepeated)

	reg := avlog.Install(handler, avlog.WithNativeThreshold(true))
	defer reg.Close()

	// Anything libavutil, libavcodec or libavformat logs from here on is a
	// structured slogcp record. Print takes the same av_log path.
	avlog.Print(nil, avlog.LevelWarning, "bridge installed")
	avlog.Print(nil, avlog.LevelDebug, "dropped by the native threshold")
}
