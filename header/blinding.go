package header

import (
	"github.com/sphinxmix/sphinx-packet/internal/primitives"
	"github.com/sphinxmix/sphinx-packet/route"
)

// deriveSharedSecrets computes the blinding chain (C2/C3): for each hop
// i it yields alpha_i = x·b_0·...·b_{i-1}·G and the KeyBundle expanded
// from s_i = x·b_0·...·b_{i-1}·Y_i, then folds in b_i = K_i.B before
// moving to hop i+1.
//
// Rather than tracking a combined scalar (Curve25519 scalar
// multiplication does not expose a raw scalar*scalar product), the
// accumulated blinding factors are kept as a list and re-applied in
// order to G (for alpha) and to each node's public key (for the shared
// secret) - the same technique nymtech-loopix-messaging/sphinx/sphinx.go
// uses in its expoGroupBase/expo helpers, and the teacher's own
// ConstructOnion achieves the equivalent result by folding the running
// blinding factor directly into a mutable scalar each iteration.
// O(n) per hop, O(n^2) overall, which is negligible at n <= MaxHops.
func deriveSharedSecrets(nodes []route.Node, x primitives.Scalar) ([]primitives.GroupElement, []primitives.KeyBundle, error) {
	blindFactors := make([]primitives.Scalar, 0, len(nodes)+1)
	blindFactors = append(blindFactors, x)
	defer func() {
		for i := range blindFactors {
			blindFactors[i] = primitives.Scalar{}
		}
	}()

	alphas := make([]primitives.GroupElement, len(nodes))
	keys := make([]primitives.KeyBundle, len(nodes))

	for i, node := range nodes {
		alpha, err := applyChain(primitives.Basepoint, blindFactors)
		if err != nil {
			return nil, nil, err
		}

		s, err := applyChain(primitives.GroupElement(node.PubKey), blindFactors)
		if err != nil {
			return nil, nil, err
		}

		k := primitives.DeriveKeys(s)
		s = primitives.GroupElement{}

		alphas[i] = alpha
		keys[i] = k
		blindFactors = append(blindFactors, k.B)
	}

	return alphas, keys, nil
}

// applyChain applies each scalar in order to base via repeated scalar
// multiplication: applyChain(P, [s0, s1, ..., sm]) = sm·...·s1·s0·P.
func applyChain(base primitives.GroupElement, scalars []primitives.Scalar) (primitives.GroupElement, error) {
	point := base
	for _, s := range scalars {
		next, err := primitives.ScalarMult(s, point)
		if err != nil {
			return primitives.GroupElement{}, err
		}
		point = next
	}
	return point, nil
}
