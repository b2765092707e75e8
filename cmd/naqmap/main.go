// Copyright (C) 2024 The NAQMap Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command naqmap compiles a logical quantum circuit onto a
// zoned neutral-atom architecture description: reuse
// analysis, placement, routing, and code generation, wired
// into a single flag-driven binary.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/atomzone/naqmap/archio"
	"github.com/atomzone/naqmap/circuitio"
	"github.com/atomzone/naqmap/codegen"
	"github.com/atomzone/naqmap/naplacer"
	"github.com/atomzone/naqmap/reuseanalyzer"
	"github.com/atomzone/naqmap/router"
	"github.com/atomzone/naqmap/scheduler"
	"github.com/atomzone/naqmap/synth"
)

var (
	dasharch     string
	dashcircuit  string
	dashconfig   string
	dasho        string
	dashstats    bool
	dashcompress bool
)

func init() {
	flag.StringVar(&dasharch, "arch", "", "architecture description (JSON or YAML)")
	flag.StringVar(&dashcircuit, "circuit", "", "circuit IR file (JSON)")
	flag.StringVar(&dashconfig, "config", "", "synthesizer config file (JSON or YAML); optional")
	flag.StringVar(&dasho, "o", "", "output file for the NAComputation (default stdout)")
	flag.BoolVar(&dashstats, "stats", false, "print synthesis statistics to stderr")
	flag.BoolVar(&dashcompress, "compress", false, "write the NAComputation as zstd-compressed JSON")
}

// config is the on-disk shape of the whole synthesizer
// config tree: nested placer/router slots plus the code
// generator's own, non-opaque knobs.
type config struct {
	Synth   synth.Config   `json:"synthesizer"`
	CodeGen codegen.Config `json:"codeGenerator"`
}

func defaultConfig() config {
	return config{CodeGen: codegen.Config{ParkingOffset: 1, WarnUnsupportedGates: false}}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("naqmap: reading config: %w", err)
	}
	if err := yamlOrJSON(data, &cfg); err != nil {
		return config{}, fmt.Errorf("naqmap: parsing config: %w", err)
	}
	return cfg, nil
}

func main() {
	flag.Parse()
	if dasharch == "" || dashcircuit == "" {
		fmt.Fprintln(os.Stderr, "usage: naqmap -arch <file> -circuit <file> [-config <file>] [-o <file>] [-stats] [-compress]")
		os.Exit(2)
	}

	archData, err := os.ReadFile(dasharch)
	if err != nil {
		exit(err)
	}
	arch, err := archio.LoadYAML(archData)
	if err != nil {
		exit(err)
	}

	circuitData, err := os.ReadFile(dashcircuit)
	if err != nil {
		exit(err)
	}
	nQubits, decoded, err := circuitio.Decode(circuitData)
	if err != nil {
		exit(err)
	}
	singleLayers, twoLayers, err := scheduler.Schedule(nQubits, decoded)
	if err != nil {
		exit(err)
	}

	cfg, err := loadConfig(dashconfig)
	if err != nil {
		exit(err)
	}

	reuseSets, err := reuseanalyzer.Config{}.Analyze(twoLayers)
	if err != nil {
		exit(err)
	}

	var placerCfg naplacer.Config
	if len(cfg.Synth.PlacerConfig) > 0 {
		if err := json.Unmarshal(cfg.Synth.PlacerConfig, &placerCfg); err != nil {
			exit(fmt.Errorf("naqmap: placer config: %w", err))
		}
	}
	var routerCfg router.Config
	if len(cfg.Synth.RouterConfig) > 0 {
		if err := json.Unmarshal(cfg.Synth.RouterConfig, &routerCfg); err != nil {
			exit(fmt.Errorf("naqmap: router config: %w", err))
		}
	}

	s := synth.New(placerCfg, routerCfg)
	layout, stats, err := s.Synthesize(arch, nQubits, twoLayers, reuseSets)
	if err != nil {
		exit(err)
	}

	initial, err := naplacer.InitialPlacement(arch, nQubits, layout.Placements)
	if err != nil {
		exit(err)
	}

	gen := &codegen.Generator{
		Config: cfg.CodeGen,
		Warn:   func(format string, args ...interface{}) { log.Printf(format, args...) },
	}
	comp, err := gen.Generate(arch, nQubits, singleLayers, initial, layout.Placements, layout.Routings)
	if err != nil {
		exit(err)
	}

	out, err := json.MarshalIndent(comp, "", "  ")
	if err != nil {
		exit(err)
	}

	var dst io.WriteCloser = os.Stdout
	if dasho != "" {
		f, err := os.Create(dasho)
		if err != nil {
			exit(err)
		}
		dst = f
		defer f.Close()
	}
	if err := writeOutput(dst, out); err != nil {
		exit(err)
	}

	if dashstats {
		statsJSON, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Fprintln(os.Stderr, string(statsJSON))
	}
}

// writeOutput writes out to dst, zstd-compressing it first
// when -compress is set.
func writeOutput(dst io.Writer, out []byte) error {
	if !dashcompress {
		_, err := dst.Write(out)
		return err
	}
	enc, err := zstd.NewWriter(dst)
	if err != nil {
		return fmt.Errorf("naqmap: zstd writer: %w", err)
	}
	if _, err := enc.Write(out); err != nil {
		enc.Close()
		return fmt.Errorf("naqmap: zstd write: %w", err)
	}
	return enc.Close()
}

func exit(err error) {
	log.Fatalf("naqmap: %v", err)
}
