package ucd

// Three-stage trie lookup
//
// The character record, decomposition and composition tables all share one
// trie shape, parametrised by two shift widths with shift1+shift2 <= 21.
// Stage 0 maps the high bits of the key to a page of stage 1; stage 1 maps
// the middle bits to a page of the terminal table; the low bits select the
// entry inside that page. Pages are deduplicated by the generator, which is
// what compresses a 21-bit keyspace into a few tens of kilobytes.

// trieIndex resolves the first two trie stages for key c and returns the
// flat index into the trie's terminal table. The generator guarantees that
// every intermediate index is in bounds for any c < 1<<(shift1+shift2) *
// len(index0), so callers only guard the codespace bound on c itself.
func trieIndex(index0, index1 []uint16, shift1, shift2 uint, c uint32) uint32 {
	page0 := uint32(index0[c>>(shift1+shift2)])
	page1 := uint32(index1[(page0<<shift1)|((c>>shift2)&((1<<shift1)-1))])
	return (page1 << shift2) | (c & ((1 << shift2) - 1))
}
