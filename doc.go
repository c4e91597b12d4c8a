// Package streamhash is a streaming engine for block-based hash functions.
//
// The engine buffers input at arbitrary chunk boundaries, drives an
// algorithm Adapter's compression function one block at a time, and
// finalizes on a copy of the running state, so a Session can be queried
// repeatedly while it keeps accumulating. On top of that it provides HMAC
// over any fixed-output adapter, extendable output for SHAKE-style variants,
// and digest stretching by re-hashing the digest a configurable number of
// rounds.
//
// Adapters for SHA-1, SHA-2, SHA-3, SHAKE and legacy Keccak-256 live in the
// sha1, sha2 and sha3 packages and are registered by name:
//
//	h, err := streamhash.New("SHA-256", streamhash.Text)
//	if err != nil {
//		return err
//	}
//	if err := h.UpdateString("abc"); err != nil {
//		return err
//	}
//	d, err := h.Digest(nil)
//	fmt.Println(d.Hex())
package streamhash
