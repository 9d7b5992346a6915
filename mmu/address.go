package mmu

// masks for splitting a 16 bit logical address
const (
	pageNumberMask = 0xFF00
	offsetMask     = 0x00FF
)

// Decode splits a logical address into page number and offset. The high
// byte selects the page, the low byte the offset within it.
func Decode(address uint16) (page, offset uint8) {
	return uint8((address & pageNumberMask) >> 8), uint8(address & offsetMask)
}
