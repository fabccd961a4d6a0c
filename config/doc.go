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

// Package config loads declarative settings for the avlog bridge and applies
// them to libavutil. It exposes a Default() baseline, file loading by
// extension and an AVLOG_* environment overlay.
//
// Example:
//
//	cfg, err := config.Load("/etc/avlog.yaml")
//	if err != nil {
//	    return err
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Apply(); err != nil {
//	    return err
//	}
//	defer avlog.Install(handler, cfg.AdapterOptions()...).Close()
package config
