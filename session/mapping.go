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

package session

import (
	"path/filepath"

	"github.com/jetsetilly/dbg65xx/config"
	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/debuginfo"
	"github.com/jetsetilly/dbg65xx/sourcemap"
)

// Location is a line in a source file. The line is counted from one.
type Location struct {
	File string
	Line int
}

// Mapping converts between source lines and addresses.
type Mapping interface {
	// LineToAddress returns the address of the first instruction generated
	// by the line. Returns false if the line generated no code.
	LineToAddress(file string, line int) (uint32, bool)

	// AddressToLine returns the source line that generated the instruction
	// at the address.
	AddressToLine(address uint32) (Location, bool)
}

// ListingMapping is the Mapping for the listing scheme.
type ListingMapping struct {
	sm *sourcemap.SourceMap
}

// NewListingMapping is the preferred method of initialisation for the
// ListingMapping type.
func NewListingMapping(sm *sourcemap.SourceMap) *ListingMapping {
	return &ListingMapping{sm: sm}
}

// SourceMap returns the underlying source map.
func (m *ListingMapping) SourceMap() *sourcemap.SourceMap {
	return m.sm
}

// LineToAddress implements the Mapping interface.
func (m *ListingMapping) LineToAddress(file string, line int) (uint32, bool) {
	if line < 1 {
		return 0, false
	}
	return m.sm.GetRev(file, line-1)
}

// AddressToLine implements the Mapping interface. The file is the module name
// with the .s extension.
func (m *ListingMapping) AddressToLine(address uint32) (Location, bool) {
	e, ok := m.sm.Get(address)
	if !ok {
		return Location{}, false
	}
	return Location{File: e.Module + ".s", Line: e.SourceLine + 1}, true
}

// DbgInfoMapping is the Mapping for the dbginfo scheme.
type DbgInfoMapping struct {
	db *debuginfo.Database
}

// NewDbgInfoMapping is the preferred method of initialisation for the
// DbgInfoMapping type.
func NewDbgInfoMapping(db *debuginfo.Database) *DbgInfoMapping {
	return &DbgInfoMapping{db: db}
}

// Database returns the underlying debug database.
func (m *DbgInfoMapping) Database() *debuginfo.Database {
	return m.db
}

// LineToAddress implements the Mapping interface.
func (m *DbgInfoMapping) LineToAddress(file string, line int) (uint32, bool) {
	return m.db.LineToAddress(file, line)
}

// AddressToLine implements the Mapping interface. Lines from assembler source
// are preferred over lines from C source or macro expansions.
func (m *DbgInfoMapping) AddressToLine(address uint32) (Location, bool) {
	locs := m.db.AddressToSource(address, true)
	if len(locs) == 0 {
		return Location{}, false
	}
	best := locs[0]
	for _, l := range locs {
		if l.Kind == debuginfo.LineAssembly {
			best = l
			break // for loop
		}
	}
	return Location{File: filepath.Base(best.File), Line: best.Line}, true
}

// LoadMapping loads the mapping named in the configuration.
func LoadMapping(cfg config.Launch) (Mapping, error) {
	switch cfg.Mapping {
	case config.MappingListing:
		sm, err := sourcemap.New(cfg.Listing.Dir, cfg.Listing.Basename)
		if err != nil {
			return nil, err
		}
		return NewListingMapping(sm), nil

	case config.MappingDbgInfo:
		db, err := debuginfo.Parse(cfg.DbgFile)
		if err != nil {
			return nil, err
		}
		db.HeaderSize = cfg.HeaderSize
		return NewDbgInfoMapping(db), nil
	}

	return nil, curated.Errorf(config.UnknownMapping, cfg.Mapping)
}
