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

package sourcemap

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/logger"
)

// ModuleSegment is a module's contribution to a segment.
type ModuleSegment struct {
	Name   string
	Offset uint32
}

// Module is an object file named in the map file. Segments are in the order
// they appear in the map file.
type Module struct {
	Name     string
	Segments []ModuleSegment
}

// segment returns the contribution the module makes to the named segment.
func (m Module) segment(name string) (ModuleSegment, bool) {
	for _, s := range m.Segments {
		if s.Name == name {
			return s, true
		}
	}
	return ModuleSegment{}, false
}

// Segment is a segment from the segment list of the map file.
type Segment struct {
	Name  string
	Start uint32
}

// map file section headers
const (
	modulesHeader  = "Modules list:"
	segmentsHeader = "Segment list:"
)

// the state of the map file parser
type mapSection int

const (
	sectionNone mapSection = iota
	sectionModules
	sectionModule
	sectionSegments
)

// linkerMap is the parsed contents of the map file.
type linkerMap struct {
	modules  []Module
	segments []Segment
}

// segment returns the named segment.
func (lm *linkerMap) segment(name string) (Segment, bool) {
	for _, s := range lm.segments {
		if s.Name == name {
			return s, true
		}
	}
	return Segment{}, false
}

func readMapFile(filename string) (*linkerMap, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &curated.ParseError{Stage: "map", File: filename, Detail: err.Error()}
	}

	lm, err := parseMap(strings.Split(string(data), "\n"))
	if err != nil {
		if pe, ok := err.(*curated.ParseError); ok {
			pe.File = filename
		}
		return nil, err
	}

	return lm, nil
}

// parseMap captures the modules and the segments each contributes to, and the
// start address of every segment that is used by a module.
func parseMap(lines []string) (*linkerMap, error) {
	lm := &linkerMap{}

	// names of segments used by modules
	used := make(map[string]bool)

	var section mapSection
	var mod *Module

	// a module from a library has no listing file and is not included
	var library bool

	endModule := func() {
		if mod != nil && !library {
			lm.modules = append(lm.modules, *mod)
		}
		mod = nil
		library = false
	}

	for i, l := range lines {
		l = strings.TrimRight(l, "\r")

		switch section {
		case sectionNone:
			if strings.HasPrefix(l, modulesHeader) {
				section = sectionModules
			} else if strings.HasPrefix(l, segmentsHeader) {
				section = sectionSegments
			}
			continue // for loop

		case sectionModule:
			if l == "" {
				endModule()
				section = sectionNone
				continue // for loop
			}

			if l[0] == ' ' || l[0] == '\t' {
				flds := strings.Fields(l)
				if len(flds) < 2 {
					continue // for loop
				}

				offs, err := fieldValue(flds[1:], "offs")
				if err != nil {
					return nil, &curated.ParseError{Stage: "map", Line: i + 1, Detail: fmt.Sprintf("segment %s: %v", flds[0], err)}
				}

				mod.Segments = append(mod.Segments, ModuleSegment{Name: flds[0], Offset: offs})
				used[flds[0]] = true
				continue // for loop
			}

			// start of the next module
			endModule()
			section = sectionModules
			fallthrough

		case sectionModules:
			if l == "" {
				// blank line before the first module doesn't end the section
				if len(lm.modules) > 0 {
					section = sectionNone
				}
				continue // for loop
			}

			if n := strings.Index(l, ".o:"); n >= 0 {
				mod = &Module{Name: strings.TrimSpace(l[:n])}
				section = sectionModule
			} else if strings.HasSuffix(l, "):") && strings.Contains(l, "(") {
				// object file from a library. the segments it uses are
				// still noted
				mod = &Module{Name: strings.TrimSuffix(l, ":")}
				library = true
				logger.Logf(logger.Allow, "sourcemap", "skipping library module %s", mod.Name)
				section = sectionModule
			}

		case sectionSegments:
			if l == "" {
				if len(lm.segments) > 0 || len(used) == 0 {
					section = sectionNone
				}
				continue // for loop
			}

			flds := strings.Fields(l)
			if len(flds) < 2 || !used[flds[0]] {
				continue // for loop
			}

			start, err := strconv.ParseUint(flds[1], 16, 32)
			if err != nil {
				return nil, &curated.ParseError{Stage: "map", Line: i + 1, Detail: fmt.Sprintf("segment %s: malformed start address (%s)", flds[0], flds[1])}
			}

			lm.segments = append(lm.segments, Segment{Name: flds[0], Start: uint32(start)})
		}
	}

	// a map file with no trailing blank line
	if section == sectionModule {
		endModule()
	}

	if len(lm.modules) == 0 {
		return nil, &curated.ParseError{Stage: "map", Detail: "no modules found"}
	}

	return lm, nil
}

// fieldValue finds the key=value field with the key (case insensitive) and
// parses the value as hex.
func fieldValue(flds []string, key string) (uint32, error) {
	for _, f := range flds {
		k, v, ok := strings.Cut(f, "=")
		if !ok || !strings.EqualFold(k, key) {
			continue // for loop
		}
		n, err := strconv.ParseUint(v, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("malformed %s value (%s)", key, v)
		}
		return uint32(n), nil
	}
	return 0, fmt.Errorf("no %s value", key)
}
