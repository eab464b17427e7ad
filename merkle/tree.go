package merkle

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Tree is a keccak256 merkle tree over a caller-ordered leaf list. Leaves
// are hashed with keccak256 and internal nodes combine sorted pairs, matching
// the on-chain proof verifier. An odd node on a layer is carried up unhashed.
type Tree struct {
	leaves []common.Hash
	layers [][]common.Hash
}

func NewTree(leaves [][]byte) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("merkle tree requires at least one leaf")
	}

	hashed := make([]common.Hash, len(leaves))
	for i, l := range leaves {
		hashed[i] = crypto.Keccak256Hash(l)
	}

	layers := [][]common.Hash{hashed}
	for len(layers[len(layers)-1]) > 1 {
		prev := layers[len(layers)-1]
		next := make([]common.Hash, 0, (len(prev)+1)/2)
		for i := 0; i < len(prev); i += 2 {
			if i+1 == len(prev) {
				next = append(next, prev[i])
				continue
			}
			next = append(next, hashPair(prev[i], prev[i+1]))
		}
		layers = append(layers, next)
	}

	return &Tree{
		leaves: hashed,
		layers: layers,
	}, nil
}

func (t *Tree) Root() common.Hash {
	return t.layers[len(t.layers)-1][0]
}

// Proof returns the sibling hashes needed to verify the leaf at the given
// index against the root.
func (t *Tree) Proof(index int) ([]common.Hash, error) {
	if index < 0 || index >= len(t.leaves) {
		return nil, fmt.Errorf("leaf index %d out of range", index)
	}

	proof := make([]common.Hash, 0, len(t.layers)-1)
	for _, layer := range t.layers[:len(t.layers)-1] {
		sibling := index ^ 1
		if sibling < len(layer) {
			proof = append(proof, layer[sibling])
		}
		index /= 2
	}
	return proof, nil
}

// Verify checks a leaf payload against a root using the sibling path
// produced by Proof.
func Verify(root common.Hash, leaf []byte, proof []common.Hash) bool {
	computed := crypto.Keccak256Hash(leaf)
	for _, sibling := range proof {
		computed = hashPair(computed, sibling)
	}
	return computed == root
}

func hashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Hash(a[:], b[:])
}
