package header

import "github.com/sphinxmix/sphinx-packet/internal/primitives"

// generateFiller builds the deterministic filler (C4) for a route of
// len(keys) hops: a buffer of (n-1)*perHopLen bytes that simulates, hop
// by hop, the effect that peeling has on the as-yet-unwritten tail of
// beta, so that the sender's final-hop MAC matches exactly what every
// relay will observe as it peels its own layer.
//
// Adapted directly from the teacher's generateFiller: each iteration
// XORs a window of that hop's rho-keyed keystream into the
// accumulating buffer, the window sliding and growing by perHopLen
// bytes per hop exactly as onion.go's fillerStart/fillerEnd pair does,
// generalised from the teacher's variable HopPayload.Size() to this
// spec's fixed per_hop_len.
func generateFiller(keys []primitives.KeyBundle, perHopLen, routingInfoLen int) ([]byte, error) {
	n := len(keys)
	fillerLen := (n - 1) * perHopLen
	filler := make([]byte, fillerLen)
	if fillerLen == 0 {
		return filler, nil
	}

	for i := 0; i < n-1; i++ {
		streamLen := routingInfoLen + perHopLen
		stream, err := primitives.PRG(keys[i].Rho[:], streamLen)
		if err != nil {
			return nil, err
		}

		start := routingInfoLen - i*perHopLen
		end := start + (i+1)*perHopLen
		xorInto(filler, stream[start:end])
	}

	return filler, nil
}

// xorInto XORs src into dst in place, over min(len(dst), len(src)) bytes.
func xorInto(dst, src []byte) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
}
