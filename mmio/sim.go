package mmio

// PageSize is the size of one simulated peripheral page.
const PageSize = 0x1000

// Sim is a Translator that backs every physical page it is asked about with
// zeroed memory. It lets code written against the memory map run without
// hardware. Physical pages outside the allowed regions are reported unmapped.
type Sim struct {
	regions map[uint8]bool
	pages   map[PhysicalAddress]Block
}

// NewSim returns a Sim that maps pages in the given device regions (top
// address byte). With no regions every page is mapped.
func NewSim(regions ...uint8) *Sim {
	s := &Sim{pages: make(map[PhysicalAddress]Block)}
	if len(regions) > 0 {
		s.regions = make(map[uint8]bool, len(regions))
		for _, r := range regions {
			s.regions[r] = true
		}
	}
	return s
}

func (s *Sim) page(p PhysicalAddress) (Block, bool) {
	if s.regions != nil && !s.regions[uint8(p>>24)] {
		return Block{}, false
	}
	key := p &^ (PageSize - 1)
	pg, ok := s.pages[key]
	if !ok {
		pg = NewBacking(PageSize)
		s.pages[key] = pg
	}
	return pg, true
}

func (s *Sim) Lookup(p PhysicalAddress) (VirtualAddress, bool) {
	pg, ok := s.page(p)
	if !ok {
		return 0, false
	}
	return VirtualAddress(pg.Base() + uintptr(p&(PageSize-1))), true
}

// Block returns the backed block starting at p. The block ends at the end of
// the page.
func (s *Sim) Block(p PhysicalAddress) (Block, bool) {
	pg, ok := s.page(p)
	if !ok {
		return Block{}, false
	}
	return pg.Sub(uintptr(p & (PageSize - 1))), true
}
