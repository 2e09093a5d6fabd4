// This file is part of dbg65xx.
//
// dbg65xx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dbg65xx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dbg65xx.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jetsetilly/dbg65xx/curated"
	"gopkg.in/yaml.v3"
)

// Sentinal error patterns.
const (
	LoadFailed     = "config: %v"
	NoProgram      = "config: no program specified"
	UnknownMapping = "config: unknown mapping (%s)"
	MissingInput   = "config: %s mapping requires %s"
	InvalidValue   = "config: invalid %s (%v)"
)

// List of valid mapping schemes.
const (
	MappingListing = "listing"
	MappingDbgInfo = "dbginfo"
)

// Listing locates the files used by the listing mapping. The files are
// BASENAME.sym and BASENAME.map in the directory, along with a listing file
// for every module named in the map file.
type Listing struct {
	Dir      string `yaml:"dir"`
	Basename string `yaml:"basename"`
}

// IO describes the memory mapped devices.
type IO struct {
	// address of the console output byte
	Putc uint32 `yaml:"putc"`

	// base address of the ACIA. zero means there is no ACIA
	ACIA uint32 `yaml:"acia"`

	// file read by the ACIA receiver
	Input string `yaml:"input"`

	// file receiving console output. standard output if empty
	Output string `yaml:"output"`
}

// RunLoop tunes the engine's run loop.
type RunLoop struct {
	Interval time.Duration `yaml:"interval"`
	Batch    int           `yaml:"batch"`
}

// Launch is the complete launch configuration.
type Launch struct {
	// the program image. loaded at address zero
	Program string `yaml:"program"`

	// run without debugging. no mapping is loaded and breakpoints are
	// ignored
	NoDebug bool `yaml:"noDebug"`

	StopOnEntry bool `yaml:"stopOnEntry"`

	// one of MappingListing or MappingDbgInfo
	Mapping string `yaml:"mapping"`

	Listing Listing `yaml:"listing"`

	// the debug database used by the dbginfo mapping
	DbgFile string `yaml:"dbgFile"`

	// the number of bytes preceding the first segment in the program file
	HeaderSize int `yaml:"headerSize"`

	IO      IO      `yaml:"io"`
	RunLoop RunLoop `yaml:"runLoop"`
}

// Defaults returns the default launch configuration.
func Defaults() Launch {
	return Launch{
		StopOnEntry: true,
		Mapping:     MappingListing,
		HeaderSize:  16,
		IO: IO{
			Putc: 0xf001,
		},
		RunLoop: RunLoop{
			Interval: 10 * time.Millisecond,
			Batch:    100000,
		},
	}
}

// Load reads the configuration file at path. Relative paths in the file are
// resolved against the directory containing the file.
func Load(path string) (Launch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Launch{}, curated.Errorf(LoadFailed, err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Launch{}, err
	}

	cfg.resolve(filepath.Dir(path))

	return cfg, nil
}

// Parse reads a configuration from r. Unknown fields are an error. Relative
// paths are not resolved.
func Parse(r io.Reader) (Launch, error) {
	cfg := Defaults()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Launch{}, curated.Errorf(LoadFailed, err)
	}

	return cfg, nil
}

func (cfg *Launch) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	cfg.Program = abs(cfg.Program)
	cfg.DbgFile = abs(cfg.DbgFile)
	cfg.IO.Input = abs(cfg.IO.Input)
	cfg.IO.Output = abs(cfg.IO.Output)
	if cfg.Listing.Dir == "" {
		cfg.Listing.Dir = dir
	} else {
		cfg.Listing.Dir = abs(cfg.Listing.Dir)
	}
}

// Validate checks that the configuration can be used to start a session. The
// mapping inputs are only checked when debugging.
func (cfg Launch) Validate() error {
	if cfg.Program == "" {
		return curated.Errorf(NoProgram)
	}

	if cfg.HeaderSize < 0 {
		return curated.Errorf(InvalidValue, "headerSize", cfg.HeaderSize)
	}
	if cfg.RunLoop.Interval < 0 {
		return curated.Errorf(InvalidValue, "runLoop.interval", cfg.RunLoop.Interval)
	}
	if cfg.RunLoop.Batch < 0 {
		return curated.Errorf(InvalidValue, "runLoop.batch", cfg.RunLoop.Batch)
	}
	if cfg.IO.ACIA != 0 && cfg.IO.ACIA == cfg.IO.Putc {
		return curated.Errorf(InvalidValue, "io.acia", "same address as io.putc")
	}

	if cfg.NoDebug {
		return nil
	}

	switch cfg.Mapping {
	case MappingListing:
		if cfg.Listing.Basename == "" {
			return curated.Errorf(MissingInput, cfg.Mapping, "listing.basename")
		}
	case MappingDbgInfo:
		if cfg.DbgFile == "" {
			return curated.Errorf(MissingInput, cfg.Mapping, "dbgFile")
		}
	default:
		return curated.Errorf(UnknownMapping, cfg.Mapping)
	}

	return nil
}
